package dto

import (
	"storeapi/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSearchParams ORs the text fields and the exact price together,
// then ANDs the optional price range. A zero bound is no bound.
type ProductSearchParams struct {
	Title       string           `form:"title" json:"title,omitempty"`
	Description string           `form:"description" json:"description,omitempty"`
	Slug        string           `form:"slug" json:"slug,omitempty"`
	Price       *decimal.Decimal `form:"price" json:"price,omitempty"`
	PriceStart  decimal.Decimal  `form:"priceStart" json:"priceStart"`
	PriceEnd    decimal.Decimal  `form:"priceEnd" json:"priceEnd"`
	PageParams
}

type ProductRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
}

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
}

func ToProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Slug:        p.Slug,
		Price:       p.Price,
	}
}
