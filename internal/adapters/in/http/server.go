// Package http exposes the order lifecycle over a REST API.
// It coordinates between HTTP handlers and application use cases: handlers
// parse and gate requests, use cases carry the business rules, and the
// error mapper turns typed core failures into status codes.
package http

import (
	nethttp "net/http"

	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Server handles the order REST endpoints.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	updateOrderHandler     commands.UpdateOrderCommandHandler
	softDeleteOrderHandler commands.SoftDeleteOrderCommandHandler

	// Query handlers
	getAllOrdersHandler queries.GetAllOrdersQueryHandler
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	softDeleteOrderHandler commands.SoftDeleteOrderCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateOrderHandler:     updateOrderHandler,
		softDeleteOrderHandler: softDeleteOrderHandler,
		getAllOrdersHandler:    getAllOrdersHandler,
		getOrderByIDHandler:    getOrderByIDHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Every route requires a
// recognized X-Client-Type; creation is app-only and deletion admin-only.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(CorrelationID())

	api := e.Group("/api/v1", RequireClient())
	api.POST("/orders", s.CreateOrder, RequireRole(order.RoleApp))
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder, RequireRole(order.RoleAdmin))
}

// CreateOrder handles POST /api/v1/orders - places a new order.
// The order always starts as pending with a total derived from its items.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(nethttp.StatusBadRequest, ErrorResponse{
			Status:  "error",
			Message: "invalid request body",
		})
	}

	cmd := commands.NewCreateOrderCommand(
		req.CustomerName,
		req.DeliveryAddress,
		toDomainItems(req.OrderItems),
	)

	stored, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(nethttp.StatusCreated, fromAggregate(stored))
}

// GetOrders handles GET /api/v1/orders - lists active orders.
// An optional status query parameter narrows the listing; matching is
// case-insensitive.
func (s *Server) GetOrders(ctx echo.Context) error {
	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetAllOrdersQuery(statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderPayload, 0, len(orders))
	for _, o := range orders {
		response = append(response, fromQueryResponse(o))
	}

	return ctx.JSON(nethttp.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - fetches a single active order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	resp, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, fromQueryResponse(resp))
}

// UpdateOrder handles PATCH /api/v1/orders/:id - role-gated order mutation.
// Admins change exactly the status; app clients change details and may
// cancel a pending order.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(nethttp.StatusBadRequest, ErrorResponse{
			Status:  "error",
			Message: "invalid request body",
		})
	}

	var status *order.Status
	if req.Status != nil {
		parsed, parseErr := order.StatusFromString(*req.Status)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		status = &parsed
	}

	details := order.DetailsPatch{
		CustomerName:    req.CustomerName,
		DeliveryAddress: req.DeliveryAddress,
	}
	if req.OrderItems != nil {
		details.Items = toDomainItems(req.OrderItems)
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, clientRole(ctx), status, details)
	if err != nil {
		return respondError(ctx, err)
	}

	stored, err := s.updateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, fromAggregate(stored))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - soft-deletes an order.
// Only cancelled orders may be deleted unless ignoreState=true.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	ignoreState := ctx.QueryParam("ignoreState") == "true"

	cmd, err := commands.NewSoftDeleteOrderCommand(orderID, ignoreState)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.softDeleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(nethttp.StatusOK, map[string]string{"message": "order deleted successfully"})
}
