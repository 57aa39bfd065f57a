package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueByPeriodParams bounds the report on order creation time, both ends inclusive.
type RevenueByPeriodParams struct {
	StartPeriod time.Time `form:"startPeriod" json:"startPeriod" validate:"required"`
	EndPeriod   time.Time `form:"endPeriod" json:"endPeriod" validate:"required"`
	PageParams
}

// BestCustomersParams keeps the Top best customers, then pages inside them.
type BestCustomersParams struct {
	Top int `form:"top" json:"top" validate:"min=1"`
	PageParams
}

type RevenuePeriodEntry struct {
	Year         int             `json:"year"`
	Month        string          `json:"month"`
	TotalOrders  int             `json:"totalOrders"`
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type CustomerSpendEntry struct {
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	TotalOrders   int             `json:"totalOrders"`
	SpentAmount   decimal.Decimal `json:"spentAmount"`
}
