package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string          `json:"title" gorm:"not null"`
	Description string          `json:"description"`
	Slug        string          `json:"slug" gorm:"index"`
	Price       decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
