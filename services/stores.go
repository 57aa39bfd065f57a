package services

import (
	"context"
	"time"

	"storeapi/dto"
	"storeapi/models"
	"storeapi/pagination"

	"github.com/google/uuid"
)

// CustomerStore is implemented by repositories.CustomerRepository.
type CustomerStore interface {
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, params dto.ListParams) (pagination.PagedResult[models.Customer], error)
	Search(ctx context.Context, params dto.CustomerSearchParams) (pagination.PagedResult[models.Customer], error)
}

// ProductStore is implemented by repositories.ProductRepository.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, params dto.ListParams) (pagination.PagedResult[models.Product], error)
	Search(ctx context.Context, params dto.ProductSearchParams) (pagination.PagedResult[models.Product], error)
}

// OrderStore is implemented by repositories.OrderRepository.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Search(ctx context.Context, params dto.OrderSearchParams) (pagination.PagedResult[models.Order], error)
}

// ReportOrderSource feeds the report aggregations. Returned orders must
// carry their customer and their lines with products.
type ReportOrderSource interface {
	FindByPeriod(ctx context.Context, start, end time.Time) ([]models.Order, error)
	FindAllWithCustomerAndLines(ctx context.Context) ([]models.Order, error)
}
