package order_controller_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, http.Handler, string) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	return db, testutil.NewRouter(), token
}

func orderBody(email string) map[string]any {
	return map[string]any{
		"userEmail": email,
		"items": []map[string]any{
			{"productId": "p-1", "productName": "Parka", "price": 19.99, "quantity": 3},
			{"productId": "p-2", "productName": "Toque", "price": 5.01, "quantity": 1},
		},
		"orderSummary": map[string]any{"subtotal": 1, "shipping": 10, "tax": 7.5, "total": 2},
	}
}

func createOrder(t *testing.T, r http.Handler, token string, body map[string]any) models.Order {
	t.Helper()
	w := testutil.Do(t, r, http.MethodPost, "/api/orders", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out models.Order
	testutil.Decode(t, w, &out)
	return out
}

func setStatus(t *testing.T, r http.Handler, token string, o models.Order, body map[string]any) int {
	t.Helper()
	return testutil.Do(t, r, http.MethodPatch, "/api/orders/"+o.ID.String()+"/status", body, token).Code
}

func TestCreateOrderRecomputesSummary(t *testing.T) {
	_, r, token := setup(t)

	o := createOrder(t, r, token, orderBody("Avery@Example.ca"))

	assert.InDelta(t, 64.98, o.OrderSummary.Subtotal, 0.0001)
	assert.InDelta(t, 82.48, o.OrderSummary.Total, 0.0001)
	assert.Equal(t, "avery@example.ca", o.UserEmail)
	assert.Equal(t, models.OrderStatusPending, o.Status)
	assert.Equal(t, "online", o.Channel)
	assert.True(t, strings.HasPrefix(o.OrderID, "ORD-"), o.OrderID)
}

func TestCreateOrderDuplicateOrderID(t *testing.T) {
	_, r, token := setup(t)

	body := orderBody("avery@example.ca")
	body["orderId"] = "ORD-CUSTOM-1"
	createOrder(t, r, token, body)

	w := testutil.Do(t, r, http.MethodPost, "/api/orders", body, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	_, r, token := setup(t)

	w := testutil.Do(t, r, http.MethodPost, "/api/orders", map[string]any{
		"userEmail": "not-an-email",
		"items":     []map[string]any{},
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := testutil.Decode(t, w, nil)
	assert.Contains(t, env.Errors, "userEmail")
	assert.Contains(t, env.Errors, "items")
}

func TestUpdateOrderRecomputesSummary(t *testing.T) {
	_, r, token := setup(t)

	o := createOrder(t, r, token, orderBody("avery@example.ca"))
	w := testutil.Do(t, r, http.MethodPatch, "/api/orders/"+o.ID.String(), map[string]any{
		"items": []map[string]any{{"productId": "p-1", "productName": "Parka", "price": 100, "quantity": 2}},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out models.Order
	testutil.Decode(t, w, &out)
	assert.InDelta(t, 200.0, out.OrderSummary.Subtotal, 0.0001)
	assert.InDelta(t, 217.5, out.OrderSummary.Total, 0.0001)
	assert.Equal(t, o.OrderID, out.OrderID)
}

func TestOrderStatusLifecycle(t *testing.T) {
	_, r, token := setup(t)

	o := createOrder(t, r, token, orderBody("avery@example.ca"))
	assert.Equal(t, http.StatusOK, setStatus(t, r, token, o, map[string]any{"status": "shipped"}))
	assert.Equal(t, http.StatusOK, setStatus(t, r, token, o, map[string]any{"status": "delivered"}))
	assert.Equal(t, http.StatusConflict, setStatus(t, r, token, o, map[string]any{"status": "pending"}))
	assert.Equal(t, http.StatusOK, setStatus(t, r, token, o, map[string]any{"status": "refunded"}))
	assert.Equal(t, http.StatusConflict, setStatus(t, r, token, o, map[string]any{"status": "processing"}))
	assert.Equal(t, http.StatusBadRequest, setStatus(t, r, token, o, map[string]any{"status": "lost"}))
}

func TestCancelRequiresNote(t *testing.T) {
	_, r, token := setup(t)

	o := createOrder(t, r, token, orderBody("avery@example.ca"))

	w := testutil.Do(t, r, http.MethodPatch, "/api/orders/"+o.ID.String()+"/status", map[string]any{"status": "cancelled", "note": "  "}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := testutil.Decode(t, w, nil)
	assert.Contains(t, env.Errors, "note")

	w = testutil.Do(t, r, http.MethodPatch, "/api/orders/"+o.ID.String()+"/status", map[string]any{"status": "cancelled", "note": "Out of stock"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var out models.Order
	testutil.Decode(t, w, &out)
	assert.Equal(t, models.OrderStatusCancelled, out.Status)
	assert.Equal(t, "Out of stock", out.StatusNote)
}

func TestGetOrdersFilters(t *testing.T) {
	_, r, token := setup(t)

	march := orderBody("avery@example.ca")
	march["orderDate"] = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	march["channel"] = "instagram"
	createOrder(t, r, token, march)

	april := orderBody("jordan@example.ca")
	april["orderDate"] = time.Date(2026, 4, 2, 12, 0, 0, 0, time.UTC)
	createOrder(t, r, token, april)

	var list []models.Order
	w := testutil.Do(t, r, http.MethodGet, "/api/orders?from=2026-03-01&to=2026-03-31", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "avery@example.ca", list[0].UserEmail)

	w = testutil.Do(t, r, http.MethodGet, "/api/orders?channel=instagram", nil, "")
	testutil.Decode(t, w, &list)
	assert.Len(t, list, 1)

	w = testutil.Do(t, r, http.MethodGet, "/api/orders?search=JORDAN", nil, "")
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "jordan@example.ca", list[0].UserEmail)

	w = testutil.Do(t, r, http.MethodGet, "/api/orders", nil, "")
	testutil.Decode(t, w, &list)
	require.Len(t, list, 2)
	assert.Equal(t, "jordan@example.ca", list[0].UserEmail)

	w = testutil.Do(t, r, http.MethodGet, "/api/orders?from=03/01/2026", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderStats(t *testing.T) {
	_, r, token := setup(t)

	createOrder(t, r, token, orderBody("a@example.ca"))
	createOrder(t, r, token, orderBody("b@example.ca"))
	cancelled := createOrder(t, r, token, orderBody("c@example.ca"))
	require.Equal(t, http.StatusOK, setStatus(t, r, token, cancelled, map[string]any{"status": "cancelled", "note": "fraud"}))

	w := testutil.Do(t, r, http.MethodGet, "/api/orders/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.OrderStatsResponse
	testutil.Decode(t, w, &stats)

	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 2, stats.ByStatus[models.OrderStatusPending])
	assert.Equal(t, 1, stats.ByStatus[models.OrderStatusCancelled])
	assert.Equal(t, 0, stats.ByStatus[models.OrderStatusRefunded])
	assert.InDelta(t, 164.96, stats.Revenue, 0.0001)
	assert.InDelta(t, 82.48, stats.AverageSale, 0.0001)
}

func TestDownloadInvoice(t *testing.T) {
	_, r, token := setup(t)

	o := createOrder(t, r, token, orderBody("avery@example.ca"))
	w := testutil.Do(t, r, http.MethodGet, "/api/orders/"+o.ID.String()+"/invoice", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-"+o.OrderID+".pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestDeleteOrder(t *testing.T) {
	_, r, token := setup(t)

	o := createOrder(t, r, token, orderBody("avery@example.ca"))
	w := testutil.Do(t, r, http.MethodDelete, "/api/orders/"+o.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(t, r, http.MethodGet, "/api/orders/"+o.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
