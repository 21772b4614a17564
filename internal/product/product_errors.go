package product

import (
	"net/http"

	"shopping-cart-api/internal/pkg/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"product not found",
		http.StatusNotFound,
	)

	ErrInsufficientStock = apperror.New(
		apperror.CodeInvalidState,
		"insufficient stock",
		http.StatusBadRequest,
	)
)
