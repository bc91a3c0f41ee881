package http

import (
	nethttp "net/http"

	"flowershop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// CorrelationHeader is the header carrying the request correlation id.
// An incoming id is reused; otherwise one is generated. The id is echoed
// on the response so clients can reference it in support requests.
const CorrelationHeader = "X-Correlation-Id"

// ClientTypeHeader identifies the caller's access class.
const ClientTypeHeader = "X-Client-Type"

// roleContextKey is the echo context key holding the caller's parsed role.
const roleContextKey = "clientRole"

// CorrelationID returns middleware that assigns each request a correlation
// id under X-Correlation-Id.
func CorrelationID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		TargetHeader: CorrelationHeader,
	})
}

// RequireClient returns middleware that resolves the caller's role from the
// X-Client-Type header and stores it on the context. Requests without a
// recognized client type are rejected with 401.
func RequireClient() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := order.RoleFromString(c.Request().Header.Get(ClientTypeHeader))
			if err != nil {
				return c.JSON(nethttp.StatusUnauthorized, ErrorResponse{
					Status:  "error",
					Message: "unauthorized: unrecognized client type",
				})
			}

			c.Set(roleContextKey, role)
			return next(c)
		}
	}
}

// RequireRole returns middleware that restricts a route to one role.
// Wrong client types get 401, matching the behavior of unrecognized ones.
func RequireRole(required order.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if clientRole(c) != required {
				return c.JSON(nethttp.StatusUnauthorized, ErrorResponse{
					Status:  "error",
					Message: "unauthorized: " + required.String() + " access required",
				})
			}
			return next(c)
		}
	}
}

// clientRole reads the role stored by RequireClient. RoleUnknown means the
// middleware did not run, which only happens on misconfigured routes.
func clientRole(c echo.Context) order.Role {
	if role, ok := c.Get(roleContextKey).(order.Role); ok {
		return role
	}
	return order.RoleUnknown
}
