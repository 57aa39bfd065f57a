package dto

import (
	"time"

	"storeapi/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSearchParams nests a customer filter and a product filter. Inside each
// group the text fields are ORed; groups and ranges are ANDed. Ranges are
// inclusive and a zero bound is no bound.
type OrderSearchParams struct {
	ID uuid.UUID `form:"-" json:"id,omitempty"`

	CustomerName  string `form:"customerName" json:"customerName,omitempty"`
	CustomerEmail string `form:"customerEmail" json:"customerEmail,omitempty"`
	CustomerPhone string `form:"customerPhone" json:"customerPhone,omitempty"`

	ProductTitle       string          `form:"productTitle" json:"productTitle,omitempty"`
	ProductDescription string          `form:"productDescription" json:"productDescription,omitempty"`
	ProductSlug        string          `form:"productSlug" json:"productSlug,omitempty"`
	ProductPriceStart  decimal.Decimal `form:"productPriceStart" json:"productPriceStart"`
	ProductPriceEnd    decimal.Decimal `form:"productPriceEnd" json:"productPriceEnd"`

	CreatedAtStart time.Time `form:"createdAtStart" json:"createdAtStart"`
	CreatedAtEnd   time.Time `form:"createdAtEnd" json:"createdAtEnd"`
	UpdatedAtStart time.Time `form:"updatedAtStart" json:"updatedAtStart"`
	UpdatedAtEnd   time.Time `form:"updatedAtEnd" json:"updatedAtEnd"`

	PageParams
}

type OrderLineRequest struct {
	ProductID uuid.UUID `json:"productId"`
	Quantity  int       `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerID uuid.UUID          `json:"customerId"`
	Lines      []OrderLineRequest `json:"lines"`
}

type OrderLineResponse struct {
	ProductID    uuid.UUID       `json:"productId"`
	ProductTitle string          `json:"productTitle"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	Total        decimal.Decimal `json:"total"`
}

type OrderResponse struct {
	ID         uuid.UUID           `json:"id"`
	CustomerID uuid.UUID           `json:"customerId"`
	Customer   ActorResponse       `json:"customer"`
	Total      decimal.Decimal     `json:"total"`
	Lines      []OrderLineResponse `json:"lines"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// ActorResponse is the customer summary embedded in an order.
type ActorResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func ToOrderResponse(o models.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines))
	for _, line := range o.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:    line.ProductID,
			ProductTitle: line.Product.Title,
			Quantity:     line.Quantity,
			Price:        line.Product.Price,
			Total:        line.Total(),
		})
	}
	return OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Customer: ActorResponse{
			Name:  o.Customer.Name,
			Email: o.Customer.Email,
			Phone: o.Customer.Phone,
		},
		Total:     o.Total(),
		Lines:     lines,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
