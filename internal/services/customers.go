package services

import (
	"context"

	"github.com/alex005489465/MeowManager/internal/types"
)

// CustomerService calls the /api/customers endpoints
type CustomerService struct {
	base
}

// Create creates a customer and returns the stored record
func (s *CustomerService) Create(ctx context.Context, req types.CustomerCreateRequest) (*types.Customer, error) {
	customer, err := mutate[types.Customer](ctx, s.base, "create customer", customerCreatePath, req)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomerService) Update(ctx context.Context, req types.CustomerUpdateRequest) (*types.Customer, error) {
	customer, err := mutate[types.Customer](ctx, s.base, "update customer", customerUpdatePath, req)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateStatus changes the status of a customer (e.g. ACTIVE -> SUSPENDED)
func (s *CustomerService) UpdateStatus(ctx context.Context, id int64, status types.CustomerStatus) (*types.Customer, error) {
	req := types.CustomerStatusUpdateRequest{ID: id, Status: status}
	customer, err := mutate[types.Customer](ctx, s.base, "update customer status", customerUpdateStatusPath, req)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// Search returns a page of customers matching all the supplied criteria
func (s *CustomerService) Search(ctx context.Context, req types.CustomerSearchRequest) (*types.Page[types.Customer], error) {
	page, err := mutate[types.Page[types.Customer]](ctx, s.base, "search customers", customerSearchPath, req)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchByName returns an empty list when the backend reports a failure
func (s *CustomerService) SearchByName(ctx context.Context, name string) ([]types.Customer, error) {
	return lookupList[types.Customer](ctx, s.base, "search customers by name", customerSearchByNamePath, types.CustomerNameRequest{Name: name})
}

func (s *CustomerService) GetAll(ctx context.Context, page types.PageRequest) (*types.Page[types.Customer], error) {
	res, err := mutate[types.Page[types.Customer]](ctx, s.base, "get all customers", customerGetAllPath, page)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// GetByID returns nil when the customer does not exist
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*types.Customer, error) {
	return lookup[types.Customer](ctx, s.base, "get customer by id", customerGetByIDPath, types.CustomerSearchIDRequest{ID: id})
}

// GetByEmail returns nil when no customer has the email
func (s *CustomerService) GetByEmail(ctx context.Context, email string) (*types.Customer, error) {
	return lookup[types.Customer](ctx, s.base, "get customer by email", customerGetByEmailPath, types.CustomerEmailRequest{Email: email})
}

// GetByPhone returns nil when no customer has the phone number
func (s *CustomerService) GetByPhone(ctx context.Context, phone string) (*types.Customer, error) {
	return lookup[types.Customer](ctx, s.base, "get customer by phone", customerGetByPhonePath, types.CustomerPhoneRequest{Phone: phone})
}

func (s *CustomerService) GetByStatus(ctx context.Context, req types.CustomerSearchStatusRequest) (*types.Page[types.Customer], error) {
	page, err := mutate[types.Page[types.Customer]](ctx, s.base, "get customers by status", customerGetByStatusPath, req)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetByBirthDateRange - dates are YYYY-MM-DD
func (s *CustomerService) GetByBirthDateRange(ctx context.Context, startDate, endDate string) ([]types.Customer, error) {
	req := types.CustomerBirthDateRangeRequest{StartDate: startDate, EndDate: endDate}
	return mutate[[]types.Customer](ctx, s.base, "get customers by birth date range", customerGetByBirthDateRangePath, req)
}

// StatusStatistics returns the number of customers per status
func (s *CustomerService) StatusStatistics(ctx context.Context) (types.CustomerStatusStatistics, error) {
	return mutate[types.CustomerStatusStatistics](ctx, s.base, "get customer status statistics", customerStatusStatisticsPath, emptyRequest)
}

// Recent returns the most recently created customers
func (s *CustomerService) Recent(ctx context.Context, page types.PageRequest) (*types.Page[types.Customer], error) {
	res, err := mutate[types.Page[types.Customer]](ctx, s.base, "get recent customers", customerGetRecentPath, page)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
