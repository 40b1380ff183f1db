// Package services binds each ERP operation to its backend endpoint and request/response shapes.
//
// Business failures (success:false) are handled per operation:
//
//   - writes (create, update, status changes, stock movements) and list/statistics queries return an *apperrors.BusinessError
//   - single-record lookups (by id, email, phone) log a warning and return nil
//   - name searches log a warning and return an empty list
//
// Transport failures are always returned.
package services

import (
	"context"
	"log/slog"

	"github.com/alex005489465/MeowManager/internal/apperrors"
	"github.com/alex005489465/MeowManager/internal/client"
)

type Services struct {
	Customers *CustomerService
	Products  *ProductService
	Stock     *StockService
}

func New(apiClient *client.Client, logger *slog.Logger) *Services {
	if logger == nil {
		logger = slog.Default()
	}
	b := base{client: apiClient, logger: logger}
	return &Services{
		Customers: &CustomerService{base: b},
		Products:  &ProductService{base: b},
		Stock:     &StockService{base: b},
	}
}

// base is shared by the domain services
type base struct {
	client *client.Client
	logger *slog.Logger
}

// emptyRequest is sent to endpoints that take no parameters
var emptyRequest = struct{}{}

// fetch validates and sends the request and returns the unwrapped data.
// success:false is returned as *apperrors.BusinessError.
func fetch[T any](ctx context.Context, b base, path string, req any) (T, error) {
	var zero T

	if err := validateRequest(req); err != nil {
		return zero, err
	}

	envelope, err := client.Post[T](ctx, b.client, path, req, nil)
	if err != nil {
		return zero, err
	}

	if !envelope.Success {
		return zero, envelope.BusinessError()
	}

	return envelope.Data, nil
}

// mutate is used for writes and queries: every failure is returned to the caller
func mutate[T any](ctx context.Context, b base, op, path string, req any) (T, error) {
	data, err := fetch[T](ctx, b, path, req)
	if err != nil {
		if apperrors.IsBusinessError(err) {
			apperrors.LogErrorCode(ctx, b.logger, apperrors.ErrorCodeOf(err))
		}
		b.logger.ErrorContext(ctx, "operation failed",
			slog.String("operation", op),
			slog.String("error", apperrors.FormatMessage(err)),
		)
		return data, err
	}
	return data, nil
}

// lookup is used for single-record reads: a business failure (e.g. NOT_FOUND) is logged and a nil result returned
func lookup[T any](ctx context.Context, b base, op, path string, req any) (*T, error) {
	data, err := fetch[*T](ctx, b, path, req)
	if err == nil {
		return data, nil
	}

	if apperrors.IsBusinessError(err) {
		apperrors.LogErrorCode(ctx, b.logger, apperrors.ErrorCodeOf(err))
		b.logger.WarnContext(ctx, "lookup returned no result",
			slog.String("operation", op),
			slog.String("error", apperrors.FormatMessage(err)),
		)
		return nil, nil
	}

	b.logger.ErrorContext(ctx, "operation failed",
		slog.String("operation", op),
		slog.String("error", apperrors.FormatMessage(err)),
	)
	return nil, err
}

// lookupList is lookup for list results: a business failure gives an empty list
func lookupList[T any](ctx context.Context, b base, op, path string, req any) ([]T, error) {
	data, err := lookup[[]T](ctx, b, op, path, req)
	if err != nil {
		return nil, err
	}
	if data == nil || *data == nil {
		return []T{}, nil
	}
	return *data, nil
}
