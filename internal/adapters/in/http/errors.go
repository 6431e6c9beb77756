package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"marketplace/internal/adapters/in/http/api"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps use case errors onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, order.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrConcurrentModification),
		errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorHandler renders every error as an api.Error. Internal errors are
// logged and their message is not exposed.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := statusOf(err), err.Error()

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code, message = he.Code, fmt.Sprint(he.Message)
		}

		ctx := c.Request().Context()
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx, "Request failed", "error", err,
				"method", c.Request().Method, "path", c.Path())
			message = http.StatusText(code)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, api.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx, "Failed to write error response", "error", err)
		}
	}
}

func invalidBody(err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body: "+err.Error())
}
