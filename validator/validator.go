package validator

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"storeapi/dto"
	apperrors "storeapi/errors"
	"storeapi/models"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	validate   = newStructValidator()
)

func newStructValidator() *playground.Validate {
	v := playground.New()
	// report fields by their query/json name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.Split(f.Tag.Get(tag), ",")[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// ValidateParams checks the validate tags of a bound request struct.
func ValidateParams(params interface{}) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeValidation, "Invalid request parameters", err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, fmt.Sprintf("%s is required", fe.Field()), apperrors.ErrInvalidInput)
	case "min":
		return apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()), apperrors.ErrInvalidInput)
	case "max":
		return apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param()), apperrors.ErrInvalidInput)
	default:
		return apperrors.NewAppError(apperrors.ErrCodeValidation, fmt.Sprintf("%s is invalid", fe.Field()), apperrors.ErrInvalidInput)
	}
}

// ValidatePeriod rejects a start that falls after the end.
func ValidatePeriod(start, end time.Time) error {
	if start.After(end) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidPeriod, "Start period must not be after end period", apperrors.ErrInvalidPeriod)
	}
	return nil
}

func ValidateCustomer(customer *models.Customer) error {
	if strings.TrimSpace(customer.Name) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Name is required", nil)
	}

	if customer.Email == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Email is required", nil)
	}

	if !isValidEmail(customer.Email) {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidEmail, "Email is invalid", nil)
	}

	return nil
}

func ValidateProduct(product *models.Product) error {
	if strings.TrimSpace(product.Title) == "" {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "Title is required", nil)
	}

	if product.Price.IsNegative() {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, "Price must not be negative", nil)
	}

	return nil
}

// ValidateOrderRequest checks the shape of a new order. Whether the
// referenced customer and products exist is up to the caller.
func ValidateOrderRequest(req *dto.CreateOrderRequest) error {
	if req.CustomerID == uuid.Nil {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "customerId is required", nil)
	}

	if len(req.Lines) == 0 {
		return apperrors.NewAppError(apperrors.ErrCodeRequiredField, "An order needs at least one line", nil)
	}

	for i, line := range req.Lines {
		if line.ProductID == uuid.Nil {
			return apperrors.NewAppError(apperrors.ErrCodeRequiredField, fmt.Sprintf("lines[%d].productId is required", i), nil)
		}
		if line.Quantity <= 0 {
			return apperrors.NewAppError(apperrors.ErrCodeInvalidAmount, fmt.Sprintf("lines[%d].quantity must be positive", i), nil)
		}
	}

	return nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
