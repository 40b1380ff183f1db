package main

import (
	"fmt"
	"strings"

	"github.com/alex005489465/MeowManager/internal/types"
	"github.com/spf13/cobra"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Manage the product catalogue",
	}

	cmd.AddCommand(
		productCreateCmd(a),
		productUpdateCmd(a),
		productStatusCmd(a),
		productGetCmd(a),
		productSearchCmd(a),
		productListCmd(a),
		productStatsCmd(a),
	)
	return cmd
}

func productCreateCmd(a *app) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a product from a JSON payload",
		Example: `  erpctl products create --data '{"name":"Cat tree","type":"PHYSICAL","price":1299.5}'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req types.ProductCreateRequest
			if err := readPayload(cmd, data, file, &req); err != nil {
				return err
			}
			product, err := a.services.Products.Create(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON payload")
	cmd.Flags().StringVar(&file, "file", "", "file containing the JSON payload (- for stdin)")
	return cmd
}

func productUpdateCmd(a *app) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace a product's details from a JSON payload (the payload must include the id)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req types.ProductUpdateRequest
			if err := readPayload(cmd, data, file, &req); err != nil {
				return err
			}
			product, err := a.services.Products.Update(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "JSON payload")
	cmd.Flags().StringVar(&file, "file", "", "file containing the JSON payload (- for stdin)")
	return cmd
}

func productStatusCmd(a *app) *cobra.Command {
	var id int64
	var status string
	cmd := &cobra.Command{
		Use:   "set-status",
		Short: "Change a product's status (ACTIVE, INACTIVE or DISCONTINUED)",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.services.Products.UpdateStatus(cmd.Context(), id, types.ProductStatus(strings.ToUpper(status)))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "product id")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func productGetCmd(a *app) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a single product by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			product, err := a.services.Products.GetByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			if product == nil {
				return notFound(fmt.Sprintf("product %d", id))
			}
			return printJSON(cmd.OutOrStdout(), product)
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "product id")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func productSearchCmd(a *app) *cobra.Command {
	var (
		name, productType, status string
		minPrice, maxPrice        string
		sku, barcode              string
		byName                    bool
		page, size                int
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products",
		Long: `Search products matching all the supplied criteria.

With --by-name only the name is used and the full (unpaged) list of matches is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if byName {
				products, err := a.services.Products.SearchByName(cmd.Context(), name)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), products)
			}

			req := types.ProductSearchRequest{
				PageRequest: pageRequest(page, size),
				Name:        name,
				Type:        types.ProductType(strings.ToUpper(productType)),
				Status:      types.ProductStatus(strings.ToUpper(status)),
				SKU:         sku,
				Barcode:     barcode,
			}
			var err error
			if req.MinPrice, err = optionalMoney("min-price", minPrice); err != nil {
				return err
			}
			if req.MaxPrice, err = optionalMoney("max-price", maxPrice); err != nil {
				return err
			}

			res, err := a.services.Products.Search(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "product name (partial match)")
	cmd.Flags().StringVar(&productType, "type", "", "PHYSICAL, DIGITAL or SERVICE")
	cmd.Flags().StringVar(&status, "status", "", "ACTIVE, INACTIVE or DISCONTINUED")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "minimum price")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "maximum price")
	cmd.Flags().StringVar(&sku, "sku", "", "stock keeping unit")
	cmd.Flags().StringVar(&barcode, "barcode", "", "barcode")
	cmd.Flags().BoolVar(&byName, "by-name", false, "search by name only")
	addPageFlags(cmd, &page, &size)
	return cmd
}

func productListCmd(a *app) *cobra.Command {
	var (
		status, productType string
		minPrice, maxPrice  string
		page, size          int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products (all, by status, by type or by price range)",
		RunE: func(cmd *cobra.Command, args []string) error {
			pr := pageRequest(page, size)
			out := cmd.OutOrStdout()

			switch {
			case status != "":
				products, err := a.services.Products.GetByStatus(cmd.Context(), types.ProductSearchStatusRequest{
					PageRequest: pr,
					Status:      types.ProductStatus(strings.ToUpper(status)),
				})
				if err != nil {
					return err
				}
				return printJSON(out, products)

			case productType != "":
				products, err := a.services.Products.GetByType(cmd.Context(), types.ProductSearchTypeRequest{
					PageRequest: pr,
					Type:        types.ProductType(strings.ToUpper(productType)),
				})
				if err != nil {
					return err
				}
				return printJSON(out, products)

			case minPrice != "" || maxPrice != "":
				if minPrice == "" || maxPrice == "" {
					return fmt.Errorf("--min-price and --max-price must be used together")
				}
				lo, err := types.ParseMoney(minPrice)
				if err != nil {
					return fmt.Errorf("invalid --min-price: %w", err)
				}
				hi, err := types.ParseMoney(maxPrice)
				if err != nil {
					return fmt.Errorf("invalid --max-price: %w", err)
				}
				products, err := a.services.Products.GetByPriceRange(cmd.Context(), types.ProductSearchPriceRangeRequest{
					PageRequest: pr,
					MinPrice:    lo,
					MaxPrice:    hi,
				})
				if err != nil {
					return err
				}
				return printJSON(out, products)

			default:
				res, err := a.services.Products.GetAll(cmd.Context(), pr)
				if err != nil {
					return err
				}
				return printJSON(out, res)
			}
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "only list products with this status")
	cmd.Flags().StringVar(&productType, "type", "", "only list products of this type")
	cmd.Flags().StringVar(&minPrice, "min-price", "", "lower bound of the price range")
	cmd.Flags().StringVar(&maxPrice, "max-price", "", "upper bound of the price range")
	cmd.MarkFlagsMutuallyExclusive("status", "type", "min-price")
	cmd.MarkFlagsMutuallyExclusive("status", "type", "max-price")
	addPageFlags(cmd, &page, &size)
	return cmd
}

func productStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show product catalogue statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := a.services.Products.Statistics(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), stats)
		},
	}
}

func optionalMoney(flag, value string) (*types.Money, error) {
	if value == "" {
		return nil, nil
	}
	m, err := types.ParseMoney(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return &m, nil
}
