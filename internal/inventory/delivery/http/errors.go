package http

import (
	"errors"
	"net/http"

	"play-economy/internal/inventory"
	pkgErrors "play-economy/pkg/errors"
)

var errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrInvalidUserID),
		errors.Is(err, inventory.ErrInvalidCatalogItemID),
		errors.Is(err, inventory.ErrInvalidQuantity):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
