package http

import (
	"errors"
	"net/http"

	"play-economy/internal/catalog"
	pkgErrors "play-economy/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	errBlankName   = pkgErrors.NewHTTPError(http.StatusBadRequest, "name must not be blank")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrInvalidItem), errors.Is(err, catalog.ErrInvalidID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case errors.Is(err, catalog.ErrPublishFailed):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, catalog.ErrPublishFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
