package dto

import (
	"time"

	"storeapi/models"

	"github.com/google/uuid"
)

// CustomerSearchParams matches customers whose name, email or phone
// contains the given text. Blank fields are ignored.
type CustomerSearchParams struct {
	Name  string `form:"name" json:"name,omitempty"`
	Email string `form:"email" json:"email,omitempty"`
	Phone string `form:"phone" json:"phone,omitempty"`
	PageParams
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
