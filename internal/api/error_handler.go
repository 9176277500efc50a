package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/efinder/venue-booking/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Errors
// carries one message per invalid field on validation failures.
type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures with one message per field.
//   - Logs unexpected errors internally; their detail only reaches the
//     client when dev mode is on.
func NewHTTPErrorHandler(log zerolog.Logger, dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{
				Message: "Validation failed",
				Errors:  ve.Fields,
			})
			return
		}

		code, msg := resolveError(err, log, c, dev)
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, dev bool) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOwnerNotFound),
		errors.Is(err, domain.ErrOrganizerNotFound),
		errors.Is(err, domain.ErrVenueNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, err.Error()

	case errors.Is(err, domain.ErrNotOwnerRole),
		errors.Is(err, domain.ErrNotOrganizerRole):
		return http.StatusForbidden, err.Error()

	// Duplicate email deliberately answers 400, not 409.
	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrVenueInactive),
		errors.Is(err, domain.ErrDateUnavailable),
		errors.Is(err, domain.ErrBookingNotModifiable),
		errors.Is(err, domain.ErrBookingNotDeletable),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrBadClock),
		errors.Is(err, domain.ErrPhotoTooLarge),
		errors.Is(err, domain.ErrPhotoNotImage):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	if dev {
		return http.StatusInternalServerError, err.Error()
	}
	return http.StatusInternalServerError, "Internal server error"
}
