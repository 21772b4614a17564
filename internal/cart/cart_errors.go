package cart

import (
	"errors"
	"net/http"
	"strings"

	"shopping-cart-api/internal/pkg/apperror"
	"shopping-cart-api/internal/product"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
)

var (
	ErrCartItemNotFound = apperror.New(
		apperror.CodeNotFound,
		"cart item not found",
		http.StatusNotFound,
	)

	ErrNotOwnedByCustomer = apperror.New(
		apperror.CodeForbidden,
		"cart item does not belong to this customer",
		http.StatusForbidden,
	)

	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"quantity must be a positive integer",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = apperror.New(
		apperror.CodeInvalidInput,
		"invalid cart request",
		http.StatusBadRequest,
	)

	// ErrInvalidProduct is the catch-all for persistence failures during a
	// stock/cart write that the store cannot classify further.
	ErrInvalidProduct = apperror.New(
		apperror.CodeInternalError,
		"could not apply product change",
		http.StatusInternalServerError,
	)
)

func mapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Quantity" {
				return ErrInvalidQuantity
			}
		}
	}
	return ErrInvalidRequest
}

// classifyStoreError narrows postgres write failures into domain errors where
// the constraint tells us the cause, leaving ErrInvalidProduct for the rest.
func classifyStoreError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "foreign_key_violation":
			if strings.Contains(pqErr.Constraint, "product") {
				return product.ErrProductNotFound
			}
		case "check_violation":
			if strings.Contains(pqErr.Constraint, "stock") {
				return product.ErrInsufficientStock
			}
			if strings.Contains(pqErr.Constraint, "quantity") {
				return ErrInvalidQuantity
			}
		}
	}
	return ErrInvalidProduct
}
