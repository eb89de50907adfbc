package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/myflix/movie-api/internal/api/handler"
	"github.com/myflix/movie-api/internal/core/domain"
)

// errorResponse is the JSON envelope for authentication and framework errors.
// Business errors are rendered as plain text.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - renders validation failures as 422 with the full list of violated rules.
//   - renders duplicate, not-found and bad-id errors as 400 plain text.
//   - logs unexpected errors and answers 500 without leaking details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationErrors
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusUnprocessableEntity, ve)
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)})
			return
		}

		switch {
		case errors.Is(err, domain.ErrUserExists),
			errors.Is(err, domain.ErrUserNotFound),
			errors.Is(err, domain.ErrMovieNotFound),
			errors.Is(err, domain.ErrGenreNotFound),
			errors.Is(err, domain.ErrDirectorNotFound),
			errors.Is(err, domain.ErrInvalidMovieID),
			errors.Is(err, domain.ErrRequiredField):
			_ = c.String(http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, domain.ErrInvalidCredentials):
			_ = c.JSON(http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("unhandled error")

		_ = c.String(http.StatusInternalServerError, "internal server error")
	}
}
