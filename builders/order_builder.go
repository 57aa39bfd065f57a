package builders

import (
	"time"

	"storeapi/models"

	"github.com/google/uuid"
)

// OrderBuilder assembles an order step by step.
type OrderBuilder struct {
	order *models.Order
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		order: &models.Order{},
	}
}

// WithID fixes the order id instead of letting the store generate one.
func (b *OrderBuilder) WithID(id uuid.UUID) *OrderBuilder {
	b.order.ID = id
	return b
}

func (b *OrderBuilder) WithCustomerID(customerID uuid.UUID) *OrderBuilder {
	b.order.CustomerID = customerID
	return b
}

// WithCustomer sets both the reference and the loaded customer.
func (b *OrderBuilder) WithCustomer(customer models.Customer) *OrderBuilder {
	b.order.CustomerID = customer.ID
	b.order.Customer = customer
	return b
}

// WithLine adds a line that only references its product.
func (b *OrderBuilder) WithLine(productID uuid.UUID, quantity int) *OrderBuilder {
	b.order.Lines = append(b.order.Lines, models.OrderLine{
		ProductID: productID,
		Quantity:  quantity,
	})
	return b
}

// WithProductLine adds a line carrying the loaded product, so totals can be computed.
func (b *OrderBuilder) WithProductLine(product models.Product, quantity int) *OrderBuilder {
	b.order.Lines = append(b.order.Lines, models.OrderLine{
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
	})
	return b
}

func (b *OrderBuilder) WithCreatedAt(createdAt time.Time) *OrderBuilder {
	b.order.CreatedAt = createdAt
	b.order.UpdatedAt = createdAt
	return b
}

// Build returns the assembled order.
func (b *OrderBuilder) Build() *models.Order {
	return b.order
}
