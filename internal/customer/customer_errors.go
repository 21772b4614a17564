package customer

import (
	"net/http"

	"shopping-cart-api/internal/pkg/apperror"
)

var (
	ErrCustomerNotFound = apperror.New(
		apperror.CodeNotFound,
		"customer not found",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"invalid username or password",
		http.StatusUnauthorized,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"username already registered",
		http.StatusConflict,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to generate authentication token",
		http.StatusInternalServerError,
	)
)
