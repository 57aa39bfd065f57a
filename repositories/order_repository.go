package repositories

import (
	"context"
	"time"

	"storeapi/commands"
	"storeapi/dto"
	apperrors "storeapi/errors"
	"storeapi/models"
	"storeapi/pagination"
	"storeapi/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	customerMatch = "orders.customer_id IN (SELECT customers.id FROM customers WHERE %s)"
	lineMatch     = "EXISTS (SELECT 1 FROM order_lines JOIN products ON products.id = order_lines.product_id " +
		"WHERE order_lines.order_id = orders.id AND (%s))"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderFilter builds the order search. Customer fields are ORed among
// themselves, product fields likewise against any single line, and the
// groups are ANDed with the id and date constraints.
func OrderFilter(p dto.OrderSearchParams) []query.Scope {
	customer := query.Or(
		query.Contains("customers.name", p.CustomerName),
		query.Contains("customers.email", p.CustomerEmail),
		query.Contains("customers.phone", p.CustomerPhone),
	).Within(customerMatch)

	product := query.Or(
		query.Contains("products.title", p.ProductTitle),
		query.Contains("products.description", p.ProductDescription),
		query.Contains("products.slug", p.ProductSlug),
	).Within(lineMatch)

	// both bounds must hold on the same line
	priceRange := query.And(
		query.Cond(p.ProductPriceStart.IsPositive(), "products.price >= ?", p.ProductPriceStart),
		query.Cond(p.ProductPriceEnd.IsPositive(), "products.price <= ?", p.ProductPriceEnd),
	).Within(lineMatch)

	return []query.Scope{
		query.WhereIf(p.ID != uuid.Nil, "orders.id = ?", p.ID),
		query.Where(customer),
		query.Where(product),
		query.Where(priceRange),
		query.WhereIf(!p.CreatedAtStart.IsZero(), "orders.created_at >= ?", p.CreatedAtStart),
		query.WhereIf(!p.CreatedAtEnd.IsZero(), "orders.created_at <= ?", p.CreatedAtEnd),
		query.WhereIf(!p.UpdatedAtStart.IsZero(), "orders.updated_at >= ?", p.UpdatedAtStart),
		query.WhereIf(!p.UpdatedAtEnd.IsZero(), "orders.updated_at <= ?", p.UpdatedAtEnd),
	}
}

func (r *OrderRepository) withDetails(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Lines.Product")
}

// Create inserts the order and its lines in one transaction.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	return commands.RunInTransaction(ctx, r.db, func(tx *gorm.DB) []commands.Command {
		return []commands.Command{commands.NewCreateCommand(tx.Omit("Customer", "Lines.Product"), order)}
	})
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := r.withDetails(ctx).Where("orders.id = ?", id).First(&order).Error; err != nil {
		return nil, translate(err, apperrors.ErrOrderNotFound)
	}
	return &order, nil
}

func (r *OrderRepository) Search(ctx context.Context, params dto.OrderSearchParams) (pagination.PagedResult[models.Order], error) {
	base := scoped(ctx, r.db, &models.Order{}, OrderFilter(params)...)
	return findPage[models.Order](base, "orders.created_at DESC, orders.id", params.PageParams, "Customer", "Lines.Product")
}

// FindByPeriod returns the orders created within [start, end], both inclusive.
func (r *OrderRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := r.withDetails(ctx).
		Where("orders.created_at >= ? AND orders.created_at <= ?", start, end).
		Order("orders.created_at, orders.id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindAllWithCustomerAndLines(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.withDetails(ctx).Order("orders.created_at, orders.id").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
