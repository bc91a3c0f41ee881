package http_test

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapterhttp "flowershop/internal/adapters/in/http"
	"flowershop/internal/core/application/usecases/commands"
	"flowershop/internal/core/application/usecases/queries"
	"flowershop/internal/core/domain/model/kernel"
	"flowershop/internal/core/domain/model/order"
	"flowershop/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubOrderRepository backs handler tests without a database. Only the
// methods a given test exercises are wired up.
type stubOrderRepository struct {
	getFunc        func(ctx context.Context, id kernel.UUID) (*order.Order, error)
	addFunc        func(ctx context.Context, aggregate *order.Order) (*order.Order, error)
	updateFunc     func(ctx context.Context, aggregate *order.Order) (*order.Order, error)
	softDeleteFunc func(ctx context.Context, id kernel.UUID) error
}

func (s *stubOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	return s.addFunc(ctx, aggregate)
}

func (s *stubOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	return s.updateFunc(ctx, aggregate)
}

func (s *stubOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return s.getFunc(ctx, id)
}

func (s *stubOrderRepository) GetAll(_ context.Context, _ *order.Status) ([]*order.Order, error) {
	return nil, nil
}

func (s *stubOrderRepository) SoftDelete(ctx context.Context, id kernel.UUID) error {
	return s.softDeleteFunc(ctx, id)
}

func (s *stubOrderRepository) PurgeDeletedBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type stubUoW struct {
	repo ports.OrderRepository
}

func (s *stubUoW) Begin(_ context.Context) error          { return nil }
func (s *stubUoW) Commit(_ context.Context) error         { return nil }
func (s *stubUoW) Rollback(_ context.Context) error       { return nil }
func (s *stubUoW) OrderRepository() ports.OrderRepository { return s.repo }

type stubUoWFactory struct {
	repo ports.OrderRepository
}

func (s *stubUoWFactory) Create() commands.OrderUoW {
	return &stubUoW{repo: s.repo}
}

func newTestServer(repo ports.OrderRepository) *echo.Echo {
	factory := &stubUoWFactory{repo: repo}

	server := adapterhttp.NewServer(
		commands.NewCreateOrderCommandHandler(factory),
		commands.NewUpdateOrderCommandHandler(factory),
		commands.NewSoftDeleteOrderCommandHandler(factory),
		queries.GetAllOrdersQueryHandler{},
		queries.GetOrderByIDQueryHandler{},
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func storedOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	items := []order.Item{
		{FlowerID: "rose-red", FlowerName: "Red Rose", Price: decimal.NewFromFloat(5.99), Quantity: 2},
	}
	now := time.Now()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "Alice Bloom", "12 Rose Lane",
		items, decimal.NewFromFloat(11.98), status, 1, now, now,
	)
	require.NoError(t, err)
	return o
}

func doRequest(e *echo.Echo, method, target, clientType, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if clientType != "" {
		req.Header.Set(adapterhttp.ClientTypeHeader, clientType)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_MissingClientType_Returns401(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodGet, "/api/v1/orders", "", "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestRoutes_UnknownClientType_Returns401(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodGet, "/api/v1/orders", "android", "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_AdminClient_Returns401(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodPost, "/api/v1/orders", "admin", `{}`)
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestDeleteOrder_AppClient_Returns401(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodDelete, "/api/v1/orders/"+kernel.NewUUID().String(), "ios", "")
	assert.Equal(t, nethttp.StatusUnauthorized, rec.Code)
}

func TestCreateOrder_ValidBody_Returns201WithDerivedTotal(t *testing.T) {
	repo := &stubOrderRepository{
		addFunc: func(_ context.Context, aggregate *order.Order) (*order.Order, error) {
			return order.RestoreOrder(
				aggregate.ID(), aggregate.CustomerName(), aggregate.DeliveryAddress(),
				aggregate.Items(), aggregate.TotalAmount(), aggregate.Status(),
				1, time.Now(), time.Now(),
			)
		},
	}
	e := newTestServer(repo)

	body := `{
		"customerName": "Alice Bloom",
		"deliveryAddress": "12 Rose Lane",
		"orderItems": [
			{"flowerId": "rose-red", "flowerName": "Red Rose", "price": 5.99, "quantity": 2}
		],
		"totalAmount": 999.99,
		"status": "delivered"
	}`

	rec := doRequest(e, nethttp.MethodPost, "/api/v1/orders", "ios", body)
	require.Equal(t, nethttp.StatusCreated, rec.Code)

	var resp adapterhttp.OrderPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	// Client-supplied total and status are ignored.
	assert.Equal(t, "pending", resp.Status)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromFloat(11.98)))
	assert.Equal(t, "Alice Bloom", resp.CustomerName)
	assert.Len(t, resp.OrderItems, 1)
}

func TestCreateOrder_InvalidPayload_Returns400WithViolations(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	body := `{
		"customerName": "",
		"deliveryAddress": "",
		"orderItems": [
			{"flowerId": "", "flowerName": "Rose", "price": -1, "quantity": 0}
		]
	}`

	rec := doRequest(e, nethttp.MethodPost, "/api/v1/orders", "ios", body)
	require.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var resp adapterhttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Errors)
}

func TestUpdateOrder_AdminIllegalTransition_Returns409WithAllowedTransitions(t *testing.T) {
	existing := storedOrder(t, order.Pending)
	repo := &stubOrderRepository{
		getFunc: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return existing, nil
		},
	}
	e := newTestServer(repo)

	rec := doRequest(e, nethttp.MethodPatch, "/api/v1/orders/"+existing.ID().String(),
		"admin", `{"status": "delivered"}`)
	require.Equal(t, nethttp.StatusConflict, rec.Code)

	var resp adapterhttp.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AllowedTransitions)
	assert.ElementsMatch(t, []string{"confirmed", "cancelled"}, resp.AllowedTransitions["pending"])
	assert.Empty(t, resp.AllowedTransitions["delivered"])
}

func TestUpdateOrder_AdminWithoutStatus_Returns400(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String(),
		"admin", `{"customerName": "Eve"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestUpdateOrder_AppStatusChange_Returns403(t *testing.T) {
	existing := storedOrder(t, order.Pending)
	repo := &stubOrderRepository{
		getFunc: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return existing, nil
		},
	}
	e := newTestServer(repo)

	rec := doRequest(e, nethttp.MethodPatch, "/api/v1/orders/"+existing.ID().String(),
		"ios", `{"status": "confirmed"}`)
	assert.Equal(t, nethttp.StatusForbidden, rec.Code)
}

func TestUpdateOrder_AppCancelsPendingOrder_Returns200(t *testing.T) {
	existing := storedOrder(t, order.Pending)
	repo := &stubOrderRepository{
		getFunc: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return existing, nil
		},
		updateFunc: func(_ context.Context, aggregate *order.Order) (*order.Order, error) {
			return aggregate, nil
		},
	}
	e := newTestServer(repo)

	rec := doRequest(e, nethttp.MethodPatch, "/api/v1/orders/"+existing.ID().String(),
		"ios", `{"status": "CANCELLED"}`)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var resp adapterhttp.OrderPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestUpdateOrder_UnknownStatusValue_Returns400(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodPatch, "/api/v1/orders/"+kernel.NewUUID().String(),
		"admin", `{"status": "shipped"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestUpdateOrder_MalformedID_Returns400(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodPatch, "/api/v1/orders/not-a-uuid",
		"admin", `{"status": "confirmed"}`)
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}

func TestDeleteOrder_ActiveOrder_Returns409(t *testing.T) {
	existing := storedOrder(t, order.Preparing)
	repo := &stubOrderRepository{
		getFunc: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return existing, nil
		},
	}
	e := newTestServer(repo)

	rec := doRequest(e, nethttp.MethodDelete, "/api/v1/orders/"+existing.ID().String(), "admin", "")
	assert.Equal(t, nethttp.StatusConflict, rec.Code)
}

func TestDeleteOrder_IgnoreState_Returns200(t *testing.T) {
	existing := storedOrder(t, order.Preparing)
	deleted := false
	repo := &stubOrderRepository{
		getFunc: func(_ context.Context, _ kernel.UUID) (*order.Order, error) {
			return existing, nil
		},
		softDeleteFunc: func(_ context.Context, _ kernel.UUID) error {
			deleted = true
			return nil
		},
	}
	e := newTestServer(repo)

	rec := doRequest(e, nethttp.MethodDelete,
		"/api/v1/orders/"+existing.ID().String()+"?ignoreState=true", "admin", "")
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.True(t, deleted)
}

func TestCorrelationID_IsEchoedOnResponses(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/orders/"+kernel.NewUUID().String(), nil)
	req.Header.Set(adapterhttp.ClientTypeHeader, "bogus")
	req.Header.Set(adapterhttp.CorrelationHeader, "corr-1234")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "corr-1234", rec.Header().Get(adapterhttp.CorrelationHeader))
}

func TestCorrelationID_IsGeneratedWhenAbsent(t *testing.T) {
	e := newTestServer(&stubOrderRepository{})

	rec := doRequest(e, nethttp.MethodGet, "/api/v1/orders", "bogus", "")
	assert.NotEmpty(t, rec.Header().Get(adapterhttp.CorrelationHeader))
}
