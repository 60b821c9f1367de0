package customer_controller_test

import (
	"net/http"
	"testing"

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

func createCustomer(t *testing.T, r http.Handler, token string, body map[string]any) models.User {
	t.Helper()
	w := testutil.Do(t, r, http.MethodPost, "/api/users", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out models.User
	testutil.Decode(t, w, &out)
	return out
}

func TestCreateCustomer(t *testing.T) {
	_, r, token := setup(t)

	u := createCustomer(t, r, token, map[string]any{"fullName": "Avery Tremblay", "email": " Avery@Example.CA ", "segment": "vip"})
	assert.Equal(t, "avery@example.ca", u.Email)
	assert.True(t, u.IsActive)
	assert.Equal(t, models.SegmentVIP, u.Segment)

	w := testutil.Do(t, r, http.MethodPost, "/api/users", map[string]any{"fullName": "Someone Else", "email": "avery@example.ca"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/users", map[string]any{"fullName": "X Y", "email": "x@example.ca", "segment": "gold"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "segment")
}

func TestUpdateCustomerSegmentNone(t *testing.T) {
	_, r, token := setup(t)

	u := createCustomer(t, r, token, map[string]any{"fullName": "Avery Tremblay", "email": "avery@example.ca", "segment": "loyal"})
	w := testutil.Do(t, r, http.MethodPatch, "/api/users/"+u.ID.String(), map[string]any{"segment": "none", "location": "Quebec City"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out models.User
	testutil.Decode(t, w, &out)
	assert.Empty(t, out.Segment)
	assert.Equal(t, "Quebec City", out.Location)

	w = testutil.Do(t, r, http.MethodGet, "/api/users?segment=none", nil, "")
	var list []models.User
	testutil.Decode(t, w, &list)
	assert.Len(t, list, 1)
}

func TestUpdateCustomerDuplicateEmail(t *testing.T) {
	_, r, token := setup(t)

	createCustomer(t, r, token, map[string]any{"fullName": "Avery Tremblay", "email": "avery@example.ca"})
	u := createCustomer(t, r, token, map[string]any{"fullName": "Jordan Singh", "email": "jordan@example.ca"})

	w := testutil.Do(t, r, http.MethodPatch, "/api/users/"+u.ID.String(), map[string]any{"email": "AVERY@example.ca"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Do(t, r, http.MethodPut, "/api/users/"+u.ID.String(), map[string]any{"fullName": "Jordan Singh", "email": "AVERY@example.ca"}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReplaceCustomerClearsOmittedFields(t *testing.T) {
	_, r, token := setup(t)

	u := createCustomer(t, r, token, map[string]any{
		"fullName": "Avery Tremblay",
		"email":    "avery@example.ca",
		"phone":    "514-555-0101",
		"location": "Montreal",
		"segment":  "vip",
		"isActive": false,
	})
	path := "/api/users/" + u.ID.String()

	w := testutil.Do(t, r, http.MethodPut, path, map[string]any{"email": "avery@example.ca"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "fullName")

	w = testutil.Do(t, r, http.MethodPut, path, map[string]any{"fullName": "Avery T.", "email": "Avery.T@Example.CA"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out models.User
	testutil.Decode(t, w, &out)
	assert.Equal(t, "Avery T.", out.FullName)
	assert.Equal(t, "avery.t@example.ca", out.Email)
	assert.Empty(t, out.Phone)
	assert.Empty(t, out.Location)
	assert.Empty(t, out.Segment)
	assert.True(t, out.IsActive)
}

func TestGetCustomersFilters(t *testing.T) {
	_, r, token := setup(t)

	createCustomer(t, r, token, map[string]any{"fullName": "Avery Tremblay", "email": "avery@example.ca", "location": "Montreal", "segment": "vip"})
	createCustomer(t, r, token, map[string]any{"fullName": "Jordan Singh", "email": "jordan@example.ca", "isActive": false})

	var list []models.User
	w := testutil.Do(t, r, http.MethodGet, "/api/users?search=montreal", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "avery@example.ca", list[0].Email)

	w = testutil.Do(t, r, http.MethodGet, "/api/users?isActive=false", nil, "")
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "jordan@example.ca", list[0].Email)

	w = testutil.Do(t, r, http.MethodGet, "/api/users?segment=vip", nil, "")
	testutil.Decode(t, w, &list)
	assert.Len(t, list, 1)
}

func TestCustomerOrdersAndDelete(t *testing.T) {
	db, r, token := setup(t)

	u := createCustomer(t, r, token, map[string]any{"fullName": "Avery Tremblay", "email": "avery@example.ca"})
	require.NoError(t, db.Create(&models.Order{OrderID: "ORD-1", UserEmail: "Avery@Example.ca", Status: "pending", Channel: "online"}).Error)
	require.NoError(t, db.Create(&models.Order{OrderID: "ORD-2", UserEmail: "other@example.ca", Status: "pending", Channel: "online"}).Error)

	w := testutil.Do(t, r, http.MethodGet, "/api/users/"+u.ID.String()+"/orders", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var orders []models.Order
	env := testutil.Decode(t, w, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-1", orders[0].OrderID)
	assert.Equal(t, 1, env.Meta.Total)

	w = testutil.Do(t, r, http.MethodDelete, "/api/users/"+u.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var remaining int64
	require.NoError(t, db.Model(&models.Order{}).Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)

	w = testutil.Do(t, r, http.MethodGet, "/api/users/"+u.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerStatsEndpoint(t *testing.T) {
	_, r, token := setup(t)

	createCustomer(t, r, token, map[string]any{"fullName": "Avery Tremblay", "email": "avery@example.ca", "segment": "vip"})

	w := testutil.Do(t, r, http.MethodGet, "/api/users/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.CustomerStats
	testutil.Decode(t, w, &stats)
	assert.Equal(t, 1, stats.TotalCustomers)
	assert.Equal(t, 1, stats.NewThisMonth)
	assert.Equal(t, 1, stats.BySegment[models.SegmentVIP])
}
