package http

import (
	"errors"
	"net/http"

	"github.com/vogiaan1904/docqueue/internal/service"
	pkgErrors "github.com/vogiaan1904/docqueue/pkg/errors"
)

var (
	errAlreadyRegistered = pkgErrors.NewHTTPError(1001, "User already registered in queue", http.StatusConflict)
	errInvalidToken      = pkgErrors.NewHTTPError(1002, "Invalid queue token", http.StatusUnauthorized)
	errInvalidQueueName  = pkgErrors.NewBadRequestError(1003, "Queue name is required")
	errInvalidUserID     = pkgErrors.NewBadRequestError(1004, "User id is required")
	errInvalidCount      = pkgErrors.NewBadRequestError(1005, "Count must not be negative")
	errInvalidRequest    = pkgErrors.NewBadRequestError(1006, "Invalid request")
	errInvalidRedirect   = pkgErrors.NewBadRequestError(1007, "Redirect url must be a relative path")
	errProcessorDisabled = pkgErrors.NewHTTPError(1008, "Queue processor is not configured", http.StatusNotFound)
)

// mapHTTPError returns nil for errors with no HTTP mapping.
func mapHTTPError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, service.ErrAlreadyRegistered):
		return errAlreadyRegistered
	case errors.Is(err, service.ErrInvalidToken):
		return errInvalidToken
	case errors.Is(err, service.ErrInvalidQueueName):
		return errInvalidQueueName
	case errors.Is(err, service.ErrInvalidUserID):
		return errInvalidUserID
	case errors.Is(err, service.ErrInvalidCount):
		return errInvalidCount
	default:
		var httpErr *pkgErrors.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return nil
	}
}
