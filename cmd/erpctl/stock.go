package main

import (
	"fmt"
	"strings"

	"github.com/alex005489465/MeowManager/internal/types"
	"github.com/spf13/cobra"
)

func newStockCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stock",
		Aliases: []string{"stocks"},
		Short:   "Record stock movements and query stock levels",
	}

	cmd.AddCommand(
		stockInboundCmd(a),
		stockOutboundCmd(a),
		stockListCmd(a),
		stockGetCmd(a),
		stockAvailabilityCmd(a),
		stockMovementsCmd(a),
	)
	return cmd
}

func stockInboundCmd(a *app) *cobra.Command {
	var (
		productID int64
		qty       int
		unitCost  string
		reason    string
	)
	cmd := &cobra.Command{
		Use:   "in",
		Short: "Record goods received into stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := types.StockInboundRequest{
				ProductID: productID,
				Qty:       qty,
				Reason:    reason,
			}
			var err error
			if req.UnitCost, err = optionalMoney("unit-cost", unitCost); err != nil {
				return err
			}

			movement, err := a.services.Stock.Inbound(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), movement)
		},
	}
	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().IntVar(&qty, "qty", 0, "quantity received")
	cmd.Flags().StringVar(&unitCost, "unit-cost", "", "cost per unit")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for the movement")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}

func stockOutboundCmd(a *app) *cobra.Command {
	var (
		productID int64
		qty       int
		reason    string
	)
	cmd := &cobra.Command{
		Use:   "out",
		Short: "Record goods leaving stock",
		RunE: func(cmd *cobra.Command, args []string) error {
			movement, err := a.services.Stock.Outbound(cmd.Context(), types.StockOutboundRequest{
				ProductID: productID,
				Qty:       qty,
				Reason:    reason,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), movement)
		},
	}
	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().IntVar(&qty, "qty", 0, "quantity shipped")
	cmd.Flags().StringVar(&reason, "reason", "", "reason for the movement")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}

func stockListCmd(a *app) *cobra.Command {
	var (
		productID   int64
		productName string
		page, size  int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stock levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.services.Stock.List(cmd.Context(), types.StockSearchRequest{
				PageRequest: pageRequest(page, size),
				ProductID:   productID,
				ProductName: productName,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Int64Var(&productID, "product", 0, "only list stock for this product id")
	cmd.Flags().StringVar(&productName, "name", "", "product name (partial match)")
	addPageFlags(cmd, &page, &size)
	return cmd
}

func stockGetCmd(a *app) *cobra.Command {
	var (
		productID int64
		qtyOnly   bool
	)
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the stock record for a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			if qtyOnly {
				qty, err := a.services.Stock.ProductQuantity(cmd.Context(), productID)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), qty)
				return err
			}

			stock, err := a.services.Stock.GetByProduct(cmd.Context(), productID)
			if err != nil {
				return err
			}
			if stock == nil {
				return notFound(fmt.Sprintf("stock for product %d", productID))
			}
			return printJSON(cmd.OutOrStdout(), stock)
		},
	}
	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().BoolVar(&qtyOnly, "qty", false, "print only the quantity in stock (0 when there is no record)")
	_ = cmd.MarkFlagRequired("product")
	return cmd
}

func stockAvailabilityCmd(a *app) *cobra.Command {
	var (
		productID int64
		qty       int
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether enough stock is available for a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			availability, err := a.services.Stock.CheckAvailability(cmd.Context(), productID, qty)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), availability)
		},
	}
	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().IntVar(&qty, "qty", 0, "required quantity")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}

func stockMovementsCmd(a *app) *cobra.Command {
	var (
		productID    int64
		movementType string
		from, to     string
		page, size   int
	)
	cmd := &cobra.Command{
		Use:   "movements",
		Short: "List stock movements",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr := pageRequest(page, size)

			// a product without other filters uses the per-product endpoint
			if productID != 0 && movementType == "" && from == "" && to == "" {
				res, err := a.services.Stock.MovementsByProduct(cmd.Context(), productID, pr)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), res)
			}

			res, err := a.services.Stock.Movements(cmd.Context(), types.StockMovementSearchRequest{
				PageRequest:  pr,
				ProductID:    productID,
				MovementType: types.MovementType(strings.ToUpper(movementType)),
				StartDate:    from,
				EndDate:      to,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Int64Var(&productID, "product", 0, "product id")
	cmd.Flags().StringVar(&movementType, "type", "", "IN or OUT")
	cmd.Flags().StringVar(&from, "from", "", "start date")
	cmd.Flags().StringVar(&to, "to", "", "end date")
	addPageFlags(cmd, &page, &size)
	return cmd
}
