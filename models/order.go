package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	ID         uuid.UUID   `json:"id" gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID   `json:"customerId" gorm:"type:uuid;not null;index"`
	Customer   Customer    `json:"customer" gorm:"foreignKey:CustomerID"`
	Lines      []OrderLine `json:"lines" gorm:"foreignKey:OrderID"`
	CreatedAt  time.Time   `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt  time.Time   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// OrderLine is one product entry of an order. Its price is read from the
// product, so Product must be loaded before Total is meaningful.
type OrderLine struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `json:"orderId" gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `json:"productId" gorm:"type:uuid;not null;index"`
	Product   Product   `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int       `json:"quantity" gorm:"not null"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Total is quantity × product price.
func (l OrderLine) Total() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Total sums the line totals.
func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Total())
	}
	return total
}
