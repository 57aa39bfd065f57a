package services

import (
	"context"
	"fmt"

	"storeapi/builders"
	"storeapi/dto"
	apperrors "storeapi/errors"
	"storeapi/pagination"
	"storeapi/services/logger"
	"storeapi/validator"

	"github.com/google/uuid"
)

// OrderService places orders and serves order lookups. Creating an order
// checks that the customer and every product exist before anything is written.
type OrderService struct {
	orders    OrderStore
	customers CustomerStore
	products  ProductStore
	logger    logger.Logger
}

type OrderServiceOptions struct {
	Orders    OrderStore
	Customers CustomerStore
	Products  ProductStore
	Logger    logger.Logger
}

func NewOrderService(opts OrderServiceOptions) *OrderService {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	return &OrderService{
		orders:    opts.Orders,
		customers: opts.Customers,
		products:  opts.Products,
		logger:    opts.Logger,
	}
}

func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error) {
	if err := validator.ValidateOrderRequest(&req); err != nil {
		return dto.OrderResponse{}, err
	}

	exists, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	if !exists {
		return dto.OrderResponse{}, apperrors.NewAppError(apperrors.ErrCodeValidation,
			fmt.Sprintf("Customer %s does not exist", req.CustomerID), apperrors.ErrCustomerNotFound)
	}

	if err := s.checkProducts(ctx, req.Lines); err != nil {
		return dto.OrderResponse{}, err
	}

	b := builders.NewOrderBuilder().WithCustomerID(req.CustomerID)
	for _, line := range req.Lines {
		b.WithLine(line.ProductID, line.Quantity)
	}
	order := b.Build()

	if err := s.orders.Create(ctx, order); err != nil {
		return dto.OrderResponse{}, err
	}
	s.logger.Info("order %s created for customer %s with %d lines", order.ID, order.CustomerID, len(order.Lines))

	created, err := s.orders.FindByID(ctx, order.ID)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	return dto.ToOrderResponse(*created), nil
}

func (s *OrderService) checkProducts(ctx context.Context, lines []dto.OrderLineRequest) error {
	seen := make(map[uuid.UUID]bool, len(lines))
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}

	found, err := s.products.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	known := make(map[uuid.UUID]bool, len(found))
	for _, p := range found {
		known[p.ID] = true
	}

	for _, id := range ids {
		if !known[id] {
			return apperrors.NewAppError(apperrors.ErrCodeValidation,
				fmt.Sprintf("Product %s does not exist", id), apperrors.ErrProductNotFound)
		}
	}
	return nil
}

func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (dto.OrderResponse, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return dto.OrderResponse{}, err
	}
	return dto.ToOrderResponse(*order), nil
}

func (s *OrderService) Search(ctx context.Context, params dto.OrderSearchParams) (pagination.PagedResult[dto.OrderResponse], error) {
	page, err := s.orders.Search(ctx, params)
	if err != nil {
		return pagination.PagedResult[dto.OrderResponse]{}, err
	}
	return pagination.Map(page, dto.ToOrderResponse), nil
}
