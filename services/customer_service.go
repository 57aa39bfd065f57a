package services

import (
	"context"
	"strings"

	"storeapi/dto"
	"storeapi/models"
	"storeapi/pagination"
	"storeapi/services/logger"
	"storeapi/validator"

	"github.com/google/uuid"
)

type CustomerService struct {
	store  CustomerStore
	logger logger.Logger
}

type CustomerServiceOptions struct {
	Store  CustomerStore
	Logger logger.Logger
}

func NewCustomerService(opts CustomerServiceOptions) *CustomerService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	return &CustomerService{store: opts.Store, logger: opts.Logger}
}

func (s *CustomerService) Create(ctx context.Context, req dto.CustomerRequest) (dto.CustomerResponse, error) {
	customer := models.Customer{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}
	if err := validator.ValidateCustomer(&customer); err != nil {
		return dto.CustomerResponse{}, err
	}

	if err := s.store.Create(ctx, &customer); err != nil {
		return dto.CustomerResponse{}, err
	}
	s.logger.Info("customer %s created", customer.ID)
	return dto.ToCustomerResponse(customer), nil
}

func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req dto.CustomerRequest) (dto.CustomerResponse, error) {
	customer, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.CustomerResponse{}, err
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Email = strings.TrimSpace(req.Email)
	customer.Phone = strings.TrimSpace(req.Phone)
	if err := validator.ValidateCustomer(customer); err != nil {
		return dto.CustomerResponse{}, err
	}

	if err := s.store.Update(ctx, customer); err != nil {
		return dto.CustomerResponse{}, err
	}
	return dto.ToCustomerResponse(*customer), nil
}

func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("customer %s deleted", id)
	return nil
}

func (s *CustomerService) Get(ctx context.Context, id uuid.UUID) (dto.CustomerResponse, error) {
	customer, err := s.store.FindByID(ctx, id)
	if err != nil {
		return dto.CustomerResponse{}, err
	}
	return dto.ToCustomerResponse(*customer), nil
}

func (s *CustomerService) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.store.Exists(ctx, id)
}

func (s *CustomerService) List(ctx context.Context, params dto.ListParams) (pagination.PagedResult[dto.CustomerResponse], error) {
	page, err := s.store.List(ctx, params)
	if err != nil {
		return pagination.PagedResult[dto.CustomerResponse]{}, err
	}
	return pagination.Map(page, dto.ToCustomerResponse), nil
}

func (s *CustomerService) Search(ctx context.Context, params dto.CustomerSearchParams) (pagination.PagedResult[dto.CustomerResponse], error) {
	page, err := s.store.Search(ctx, params)
	if err != nil {
		return pagination.PagedResult[dto.CustomerResponse]{}, err
	}
	return pagination.Map(page, dto.ToCustomerResponse), nil
}
