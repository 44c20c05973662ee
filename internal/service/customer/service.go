package customer

import (
	"context"

	"github.com/educenter/backoffice-go/internal/domain/customer"
)

type CustomerServiceImpl struct {
	customerRepo customer.Repository
}

func NewCustomerService(customerRepo customer.Repository) customer.Service {
	return &CustomerServiceImpl{customerRepo: customerRepo}
}

func (s *CustomerServiceImpl) Create(ctx context.Context, req customer.CreateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	c := customer.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		TaxNumber: req.TaxNumber,
		Address:   req.Address,
		Notes:     req.Notes,
	}

	created, err := s.customerRepo.Create(ctx, c)
	if err != nil {
		return customer.CustomerResponse{}, err
	}

	return mapToResponse(created), nil
}

func (s *CustomerServiceImpl) Get(ctx context.Context, id string) (customer.CustomerResponse, error) {
	c, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return customer.CustomerResponse{}, err
	}

	return mapToResponse(c), nil
}

func (s *CustomerServiceImpl) List(ctx context.Context) ([]customer.CustomerResponse, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]customer.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, mapToResponse(c))
	}

	return result, nil
}

func (s *CustomerServiceImpl) Update(ctx context.Context, req customer.UpdateCustomerRequest) (customer.CustomerResponse, error) {
	if err := req.Validate(); err != nil {
		return customer.CustomerResponse{}, err
	}

	c, err := s.customerRepo.GetByID(ctx, req.ID)
	if err != nil {
		return customer.CustomerResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = req.Email
	}
	if req.Phone != nil {
		c.Phone = req.Phone
	}
	if req.TaxNumber != nil {
		c.TaxNumber = req.TaxNumber
	}
	if req.Address != nil {
		c.Address = req.Address
	}
	if req.Notes != nil {
		c.Notes = req.Notes
	}

	if err := s.customerRepo.Update(ctx, c); err != nil {
		return customer.CustomerResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

func (s *CustomerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.customerRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func mapToResponse(c customer.Customer) customer.CustomerResponse {
	return customer.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		TaxNumber: c.TaxNumber,
		Address:   c.Address,
		Notes:     c.Notes,
	}
}
