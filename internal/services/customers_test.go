package services_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/alex005489465/MeowManager/internal/apitest"
	"github.com/alex005489465/MeowManager/internal/apperrors"
	"github.com/alex005489465/MeowManager/internal/client"
	"github.com/alex005489465/MeowManager/internal/services"
	"github.com/alex005489465/MeowManager/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...client.Option) (*services.Services, *apitest.Server) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	srv := apitest.NewServer(t)
	c := client.NewClient(srv.URL, logger, opts...)

	return services.New(c, logger), srv
}

// setupWithLog is setup with the service log captured as text
func setupWithLog(t *testing.T) (*services.Services, *apitest.Server, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	srv := apitest.NewServer(t)
	c := client.NewClient(srv.URL, slog.New(slog.DiscardHandler))

	return services.New(c, logger), srv, &buf
}

// requestBody decodes the body of the last request sent to path
func requestBody(t *testing.T, srv *apitest.Server, path string) map[string]any {
	t.Helper()

	req, ok := srv.LastRequest(path)
	require.True(t, ok, "no request was sent to %s", path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	return body
}

var amy = map[string]any{
	"id":        1,
	"name":      "Amy",
	"gender":    "FEMALE",
	"phone":     "0912345678",
	"address":   "Taipei",
	"status":    "ACTIVE",
	"createdAt": "2024-01-01T10:00:00",
	"updatedAt": "2024-01-01T10:00:00",
}

func TestCustomerCreate(t *testing.T) {
	req := types.CustomerCreateRequest{
		Name:    "Amy",
		Gender:  types.GenderFemale,
		Phone:   "0912345678",
		Address: "Taipei",
	}

	t.Run("success returns the stored customer", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/create", apitest.Success(amy))

		customer, err := svc.Customers.Create(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, customer)

		assert.Equal(t, int64(1), customer.ID)
		assert.Equal(t, "Amy", customer.Name)
		assert.Equal(t, types.CustomerActive, customer.Status)

		body := requestBody(t, srv, "/api/customers/create")
		assert.Equal(t, "Amy", body["name"])
		assert.Equal(t, "FEMALE", body["gender"])
		assert.NotContains(t, body, "email", "empty optional fields are omitted")
	})

	t.Run("business failure is returned with message and code", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/create", apitest.Failure("phone already exists", apperrors.ErrCodeDuplicatePhone))

		customer, err := svc.Customers.Create(context.Background(), req)
		require.Error(t, err)
		assert.Nil(t, customer)

		var be *apperrors.BusinessError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, "phone already exists", be.Message)
		assert.Equal(t, apperrors.ErrCodeDuplicatePhone, be.Code)
		assert.Equal(t, "phone already exists", err.Error())
		assert.Equal(t, "phone already exists (error code: DUPLICATE_PHONE)", apperrors.FormatMessage(err))
	})

	t.Run("field errors in a failure are returned as a business error", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/create", apitest.FailureWithData("validation failed", apperrors.ErrCodeValidationError,
			map[string]any{"phone": "must not be blank"}))

		customer, err := svc.Customers.Create(context.Background(), req)
		assert.Nil(t, customer)
		assert.True(t, apperrors.IsBusinessError(err))
		assert.Equal(t, apperrors.ErrCodeValidationError, apperrors.ErrorCodeOf(err))
	})

	t.Run("http failure is returned as a transport error", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/create", apitest.HTTPError(http.StatusInternalServerError, "", ""))

		_, err := svc.Customers.Create(context.Background(), req)
		assert.True(t, apperrors.IsHTTPError(err))
		assert.False(t, apperrors.IsBusinessError(err))
		assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))
	})
}

func TestCustomerValidation(t *testing.T) {
	tests := []struct {
		name    string
		call    func(*services.Services) error
		wantMsg string
	}{
		{
			name: "missing required fields",
			call: func(s *services.Services) error {
				_, err := s.Customers.Create(context.Background(), types.CustomerCreateRequest{Name: "Amy", Gender: types.GenderFemale})
				return err
			},
			wantMsg: "invalid request: phone is required; address is required",
		},
		{
			name: "invalid gender",
			call: func(s *services.Services) error {
				_, err := s.Customers.Create(context.Background(), types.CustomerCreateRequest{
					Name: "Amy", Gender: "CAT", Phone: "0912", Address: "Taipei",
				})
				return err
			},
			wantMsg: "invalid request: gender must be one of [MALE FEMALE OTHER]",
		},
		{
			name: "invalid email",
			call: func(s *services.Services) error {
				_, err := s.Customers.Create(context.Background(), types.CustomerCreateRequest{
					Name: "Amy", Gender: types.GenderFemale, Phone: "0912", Address: "Taipei", Email: "amy",
				})
				return err
			},
			wantMsg: "invalid request: email must be a valid email",
		},
		{
			name: "invalid birth date",
			call: func(s *services.Services) error {
				_, err := s.Customers.GetByBirthDateRange(context.Background(), "2024-01-01", "01/02/2024")
				return err
			},
			wantMsg: "invalid request: endDate must be a date in YYYY-MM-DD format",
		},
		{
			name: "update without id",
			call: func(s *services.Services) error {
				_, err := s.Customers.Update(context.Background(), types.CustomerUpdateRequest{
					Name: "Amy", Gender: types.GenderFemale, Phone: "0912", Address: "Taipei",
				})
				return err
			},
			wantMsg: "invalid request: id is required",
		},
		{
			name: "invalid status",
			call: func(s *services.Services) error {
				_, err := s.Customers.UpdateStatus(context.Background(), 1, "GONE")
				return err
			},
			wantMsg: "invalid request: status must be one of [ACTIVE SUSPENDED BLACKLIST]",
		},
		{
			name: "negative page",
			call: func(s *services.Services) error {
				page := -1
				_, err := s.Customers.GetAll(context.Background(), types.PageRequest{Page: &page})
				return err
			},
			wantMsg: "invalid request: page must be at least 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, srv := setup(t)

			err := tt.call(svc)

			var be *apperrors.BusinessError
			require.ErrorAs(t, err, &be)
			assert.Equal(t, apperrors.ErrCodeValidationError, be.Code)
			assert.Equal(t, tt.wantMsg, be.Message)
			assert.Empty(t, srv.Requests(), "invalid requests are not sent")
		})
	}
}

func TestCustomerLookups(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(*services.Services) (*types.Customer, error)
		want map[string]any
	}{
		{
			name: "by id",
			path: "/api/customers/getById",
			call: func(s *services.Services) (*types.Customer, error) {
				return s.Customers.GetByID(context.Background(), 1)
			},
			want: map[string]any{"id": float64(1)},
		},
		{
			name: "by email",
			path: "/api/customers/getByEmail",
			call: func(s *services.Services) (*types.Customer, error) {
				return s.Customers.GetByEmail(context.Background(), "amy@example.com")
			},
			want: map[string]any{"email": "amy@example.com"},
		},
		{
			name: "by phone",
			path: "/api/customers/getByPhone",
			call: func(s *services.Services) (*types.Customer, error) {
				return s.Customers.GetByPhone(context.Background(), "0912345678")
			},
			want: map[string]any{"phone": "0912345678"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" found", func(t *testing.T) {
			svc, srv := setup(t)
			srv.Handle(tt.path, apitest.Success(amy))

			customer, err := tt.call(svc)
			require.NoError(t, err)
			require.NotNil(t, customer)
			assert.Equal(t, "Amy", customer.Name)
			assert.Equal(t, tt.want, requestBody(t, srv, tt.path))
		})

		t.Run(tt.name+" not found returns nil", func(t *testing.T) {
			svc, srv := setup(t)
			srv.Handle(tt.path, apitest.Failure("not found", apperrors.ErrCodeNotFound))

			customer, err := tt.call(svc)
			require.NoError(t, err)
			assert.Nil(t, customer)
		})

		t.Run(tt.name+" not found with data returns nil", func(t *testing.T) {
			svc, srv := setup(t)
			srv.Handle(tt.path, apitest.FailureWithData("not found", apperrors.ErrCodeNotFound, "n/a"))

			customer, err := tt.call(svc)
			require.NoError(t, err)
			assert.Nil(t, customer)
		})

		t.Run(tt.name+" success with null data returns nil", func(t *testing.T) {
			svc, srv := setup(t)
			srv.Handle(tt.path, apitest.Success(nil))

			customer, err := tt.call(svc)
			require.NoError(t, err)
			assert.Nil(t, customer)
		})

		t.Run(tt.name+" transport failure is returned", func(t *testing.T) {
			svc, srv := setup(t)
			srv.Handle(tt.path, apitest.HTTPError(http.StatusServiceUnavailable, "maintenance", ""))

			customer, err := tt.call(svc)
			assert.Nil(t, customer)
			assert.True(t, apperrors.IsHTTPError(err))
			assert.Equal(t, "maintenance", err.Error())
		})
	}
}

func TestCustomerLookupTimeout(t *testing.T) {
	svc, srv := setup(t, client.WithTimeout(50*time.Millisecond))
	srv.Handle("/api/customers/getById", srv.Hang())

	customer, err := svc.Customers.GetByID(context.Background(), 1)
	assert.Nil(t, customer)
	assert.True(t, apperrors.IsAbortError(err))
	assert.True(t, apperrors.IsNetworkError(err))
	assert.False(t, apperrors.IsHTTPError(err))
}

func TestCustomerSearchByName(t *testing.T) {
	t.Run("returns matches", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/searchByName", apitest.Success([]any{amy}))

		customers, err := svc.Customers.SearchByName(context.Background(), "Am")
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Amy", customers[0].Name)
		assert.Equal(t, map[string]any{"name": "Am"}, requestBody(t, srv, "/api/customers/searchByName"))
	})

	t.Run("business failure returns an empty list", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/searchByName", apitest.Failure("search failed", ""))

		customers, err := svc.Customers.SearchByName(context.Background(), "Am")
		require.NoError(t, err)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})

	t.Run("validation failure with field errors returns an empty list", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/searchByName", apitest.FailureWithData("validation failed", apperrors.ErrCodeValidationError,
			map[string]any{"phone": "must not be blank"}))

		customers, err := svc.Customers.SearchByName(context.Background(), "Am")
		require.NoError(t, err)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})

	t.Run("null data returns an empty list", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/searchByName", apitest.Success(nil))

		customers, err := svc.Customers.SearchByName(context.Background(), "Am")
		require.NoError(t, err)
		assert.NotNil(t, customers)
		assert.Empty(t, customers)
	})

	t.Run("transport failure is returned", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/searchByName", apitest.Raw(http.StatusOK, "application/json", "{"))

		customers, err := svc.Customers.SearchByName(context.Background(), "Am")
		assert.Nil(t, customers)

		var te *apperrors.TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, apperrors.KindMalformed, te.Kind)
	})
}

func TestCustomerQueries(t *testing.T) {
	page := map[string]any{
		"content":          []any{amy},
		"totalElements":    1,
		"totalPages":       1,
		"size":             10,
		"number":           0,
		"numberOfElements": 1,
		"first":            true,
		"last":             true,
		"empty":            false,
	}

	t.Run("search sends the criteria and the page", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/search", apitest.Success(page))

		res, err := svc.Customers.Search(context.Background(), types.CustomerSearchRequest{
			PageRequest: types.NewPageRequest(0, 10),
			Name:        "Amy",
			Status:      types.CustomerActive,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.TotalElements)
		require.Len(t, res.Content, 1)
		assert.Equal(t, "Amy", res.Content[0].Name)

		assert.Equal(t, map[string]any{
			"page":   float64(0),
			"size":   float64(10),
			"name":   "Amy",
			"status": "ACTIVE",
		}, requestBody(t, srv, "/api/customers/search"))
	})

	t.Run("get all leaves unset paging to the backend", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/getAll", apitest.Success(page))

		_, err := svc.Customers.GetAll(context.Background(), types.NewPageRequest(-1, 0))
		require.NoError(t, err)
		assert.Empty(t, requestBody(t, srv, "/api/customers/getAll"))
	})

	t.Run("get by status", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/getByStatus", apitest.Success(page))

		res, err := svc.Customers.GetByStatus(context.Background(), types.CustomerSearchStatusRequest{Status: types.CustomerActive})
		require.NoError(t, err)
		assert.Len(t, res.Content, 1)
	})

	t.Run("recent", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/getRecent", apitest.Success(page))

		res, err := svc.Customers.Recent(context.Background(), types.NewPageRequest(0, 5))
		require.NoError(t, err)
		assert.True(t, res.First)
		assert.Equal(t, map[string]any{"page": float64(0), "size": float64(5)}, requestBody(t, srv, "/api/customers/getRecent"))
	})

	t.Run("birth date range", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/getByBirthDateRange", apitest.Success([]any{amy}))

		customers, err := svc.Customers.GetByBirthDateRange(context.Background(), "1990-01-01", "1999-12-31")
		require.NoError(t, err)
		assert.Len(t, customers, 1)
		assert.Equal(t, map[string]any{"startDate": "1990-01-01", "endDate": "1999-12-31"}, requestBody(t, srv, "/api/customers/getByBirthDateRange"))
	})

	t.Run("status statistics", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/getStatusStatistics", apitest.Success(map[string]any{"ACTIVE": 3, "SUSPENDED": 1}))

		stats, err := svc.Customers.StatusStatistics(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float64(3), stats["ACTIVE"])
		assert.Empty(t, requestBody(t, srv, "/api/customers/getStatusStatistics"))
	})

	t.Run("query failures are returned", func(t *testing.T) {
		svc, srv := setup(t)
		srv.Handle("/api/customers/getAll", apitest.Failure("database unavailable", apperrors.ErrCodeInternalError))

		res, err := svc.Customers.GetAll(context.Background(), types.PageRequest{})
		assert.Nil(t, res)
		assert.True(t, apperrors.IsBusinessError(err))
		assert.Equal(t, apperrors.ErrCodeInternalError, apperrors.ErrorCodeOf(err))
	})
}

func TestCustomerUpdateStatus(t *testing.T) {
	svc, srv := setup(t)
	srv.Handle("/api/customers/updateStatus", apitest.Success(amy))

	_, err := svc.Customers.UpdateStatus(context.Background(), 1, types.CustomerSuspended)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(1), "status": "SUSPENDED"}, requestBody(t, srv, "/api/customers/updateStatus"))
}

func TestBusinessFailuresLogTheErrorCode(t *testing.T) {
	t.Run("write", func(t *testing.T) {
		svc, srv, logs := setupWithLog(t)
		srv.Handle("/api/customers/create", apitest.Failure("phone already exists", apperrors.ErrCodePhoneAlreadyExists))

		_, err := svc.Customers.Create(context.Background(), types.CustomerCreateRequest{
			Name: "Amy", Gender: types.GenderFemale, Phone: "0912345678", Address: "Taipei",
		})
		require.Error(t, err)

		assert.Contains(t, logs.String(), "resource already exists")
		assert.Contains(t, logs.String(), "error_code=PHONE_ALREADY_EXISTS")
	})

	t.Run("lookup", func(t *testing.T) {
		svc, srv, logs := setupWithLog(t)
		srv.Handle("/api/customers/getById", apitest.Failure("customer not found", apperrors.ErrCodeCustomerNotFound))

		customer, err := svc.Customers.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Nil(t, customer)

		assert.Contains(t, logs.String(), "resource not found")
		assert.Contains(t, logs.String(), "error_code=CUSTOMER_NOT_FOUND")
	})

	t.Run("transport failures are not business codes", func(t *testing.T) {
		svc, srv, logs := setupWithLog(t)
		srv.Handle("/api/customers/getById", apitest.HTTPError(http.StatusServiceUnavailable, "maintenance", ""))

		_, err := svc.Customers.GetByID(context.Background(), 1)
		require.Error(t, err)

		assert.NotContains(t, logs.String(), "no error code provided")
		assert.Contains(t, logs.String(), "operation failed")
	})
}
