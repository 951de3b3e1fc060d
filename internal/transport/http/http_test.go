package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/productsapp/orders-svc/internal/service/errs"
	"github.com/productsapp/orders-svc/internal/service/models/order"
	"github.com/productsapp/orders-svc/internal/service/models/orderitem"
	"github.com/productsapp/orders-svc/internal/service/models/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	createItems  []orderitem.OrderItem
	findAllQuery order.PageQuery
	changeID     string
	changeStatus status.Status

	order *order.Order
	page  *order.Page
	err   error
}

func (f *fakeService) Create(_ context.Context, items []orderitem.OrderItem) (*order.Order, error) {
	f.createItems = items

	return f.order, f.err
}

func (f *fakeService) FindAll(_ context.Context, query order.PageQuery) (*order.Page, error) {
	f.findAllQuery = query

	return f.page, f.err
}

func (f *fakeService) FindOne(_ context.Context, _ string) (*order.Order, error) {
	return f.order, f.err
}

func (f *fakeService) ChangeStatus(_ context.Context, id string, newStatus status.Status) (*order.Order, error) {
	f.changeID = id
	f.changeStatus = newStatus

	return f.order, f.err
}

func newTestTransport(svc *fakeService) *HTTPTransport {
	transport := NewHTTPTransport(svc)
	transport.RegisterRoutes()

	return transport
}

func TestCreateOrder(t *testing.T) {
	svc := &fakeService{order: &order.Order{ID: "order-1", Status: status.StatusPending}}
	transport := newTestTransport(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"items":[{"productId":1,"quantity":2},{"productId":2,"quantity":1}]}`))
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.createItems, 2)
	assert.Equal(t, int64(1), svc.createItems[0].ProductID)
	assert.Equal(t, 2, svc.createItems[0].Quantity)

	var got order.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "order-1", got.ID)
}

func TestCreateOrder_RejectsEmptyItems(t *testing.T) {
	transport := newTestTransport(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":[]}`))
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "items must not be empty")
}

func TestCreateOrder_RejectsNonPositiveQuantity(t *testing.T) {
	transport := newTestTransport(&fakeService{})

	req := httptest.NewRequest(http.MethodPost, "/api/orders",
		strings.NewReader(`{"items":[{"productId":1,"quantity":0}]}`))
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "quantity must be a positive number")
}

func TestListOrders_ParsesQueryParams(t *testing.T) {
	svc := &fakeService{page: &order.Page{Data: []order.Order{}, Meta: order.PageMeta{Page: 2}}}
	transport := newTestTransport(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=2&limit=5&status=PAID", nil)
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, svc.findAllQuery.Page)
	assert.Equal(t, 5, svc.findAllQuery.Limit)
	require.NotNil(t, svc.findAllQuery.Status)
	assert.Equal(t, status.StatusPaid, *svc.findAllQuery.Status)
}

func TestListOrders_RejectsUnknownStatus(t *testing.T) {
	transport := newTestTransport(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=SHIPPED", nil)
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status must be one of the following values")
}

func TestGetOrder_NotFoundMapsToResponse(t *testing.T) {
	svc := &fakeService{err: errs.NotFoundf("Order with id %s not found", "abc")}
	transport := newTestTransport(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "Order with id abc not found", body.Message)
}

func TestChangeStatus(t *testing.T) {
	svc := &fakeService{order: &order.Order{ID: "order-1", Status: status.StatusPaid}}
	transport := newTestTransport(svc)

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1",
		strings.NewReader(`{"status":"PAID"}`))
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "order-1", svc.changeID)
	assert.Equal(t, status.StatusPaid, svc.changeStatus)
}

func TestChangeStatus_RejectsUnknownStatus(t *testing.T) {
	transport := newTestTransport(&fakeService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/orders/order-1",
		strings.NewReader(`{"status":"SHIPPED"}`))
	rec := httptest.NewRecorder()

	transport.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Status must be one of the following values")
}
