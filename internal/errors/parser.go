package errors

import (
	"errors"
	"net/http"

	"github.com/brewrain/brewrain-backend/internal/app/service"
)

// ErrorInfo pairs an error code with its user-facing message.
type ErrorInfo struct {
	Code    string
	Message string
}

// ParseError maps service errors to a code and an Indonesian user message.
// Unknown errors fall through to a generic internal error.
func ParseError(err error) ErrorInfo {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		return ErrorInfo{Code: CatalogProductNotFound, Message: "Menu tidak ditemukan"}
	case errors.Is(err, service.ErrSizeNotFound):
		return ErrorInfo{Code: CatalogSizeNotFound, Message: "Ukuran tidak tersedia"}
	case errors.Is(err, service.ErrInvalidIceLevel):
		return ErrorInfo{Code: CatalogInvalidIceLevel, Message: "Pilihan es tidak tersedia"}
	case errors.Is(err, service.ErrInvalidSugarLevel):
		return ErrorInfo{Code: CatalogInvalidSugarLevel, Message: "Pilihan gula tidak tersedia"}
	case errors.Is(err, service.ErrCartLineNotFound):
		return ErrorInfo{Code: CartLineNotFound, Message: "Item keranjang tidak ditemukan"}
	}
	return ErrorInfo{Code: InternalServerError, Message: "Terjadi kesalahan pada server. Silakan coba lagi"}
}

// HTTPStatus returns the HTTP status code an error code responds with.
func HTTPStatus(code string) int {
	switch code {
	case CatalogProductNotFound, CartLineNotFound:
		return http.StatusNotFound
	case CatalogSizeNotFound, CatalogInvalidIceLevel, CatalogInvalidSugarLevel,
		ValidationInvalidInput, ValidationInvalidID, ValidationRequired:
		return http.StatusBadRequest
	case SessionMissing:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
