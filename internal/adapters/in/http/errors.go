package http

import (
	"errors"
	"log/slog"
	nethttp "net/http"

	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`

	// Errors lists field violations for validation failures.
	Errors []FieldViolation `json:"errors,omitempty"`

	// AllowedTransitions maps each status to its legal successors as seen
	// by the caller's role. Present only on rejected status transitions.
	AllowedTransitions map[string][]string `json:"allowedTransitions,omitempty"`
}

// FieldViolation names one broken field constraint.
type FieldViolation struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

// respondError translates core failures into HTTP responses. Unrecognized
// errors become 500 with a generic body; the detail stays in the log.
func respondError(c echo.Context, err error) error {
	correlationID := c.Response().Header().Get(CorrelationHeader)

	var validationErr *order.ValidationError
	if errors.As(err, &validationErr) {
		violations := make([]FieldViolation, 0, len(validationErr.Violations))
		for _, v := range validationErr.Violations {
			violations = append(violations, FieldViolation{
				Field:      v.Field,
				Constraint: v.Constraint,
			})
		}
		return c.JSON(nethttp.StatusBadRequest, ErrorResponse{
			Status:  "error",
			Message: "validation failed",
			Errors:  violations,
		})
	}

	var transitionErr *order.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		allowed := make(map[string][]string, len(transitionErr.Allowed))
		for from, targets := range transitionErr.Allowed {
			next := make([]string, 0, len(targets))
			for _, target := range targets {
				next = append(next, target.String())
			}
			allowed[from.String()] = next
		}
		return c.JSON(nethttp.StatusConflict, ErrorResponse{
			Status:             "error",
			Message:            err.Error(),
			AllowedTransitions: allowed,
		})
	}

	var forbiddenErr *order.ForbiddenFieldError
	if errors.As(err, &forbiddenErr) {
		return c.JSON(nethttp.StatusForbidden, ErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(nethttp.StatusNotFound, ErrorResponse{
			Status:  "error",
			Message: "order not found",
		})

	case errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrDeleteState),
		errors.Is(err, errs.ErrVersionConflict):
		return c.JSON(nethttp.StatusConflict, ErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return c.JSON(nethttp.StatusBadRequest, ErrorResponse{
			Status:  "error",
			Message: err.Error(),
		})

	case errors.Is(err, commands.ErrOrderVanished):
		slog.Error("order vanished mid-update",
			"error", err,
			"correlationId", correlationID,
			"path", c.Request().URL.Path,
		)
		return c.JSON(nethttp.StatusConflict, ErrorResponse{
			Status:  "error",
			Message: "order was removed concurrently",
		})

	default:
		slog.Error("unhandled request error",
			"error", err,
			"correlationId", correlationID,
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
		)
		return c.JSON(nethttp.StatusInternalServerError, ErrorResponse{
			Status:  "error",
			Message: "internal server error",
		})
	}
}
