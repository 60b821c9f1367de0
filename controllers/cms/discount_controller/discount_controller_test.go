package discount_controller_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/services"
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

func discountBody(code string) map[string]any {
	now := time.Now().UTC()
	return map[string]any{
		"code":              code,
		"type":              "percentage",
		"value":             20,
		"maxDiscountAmount": 15,
		"validFrom":         now.Add(-time.Hour),
		"validUntil":        now.AddDate(0, 1, 0),
	}
}

func createDiscount(t *testing.T, r http.Handler, token string, body map[string]any) models.Discount {
	t.Helper()
	w := testutil.Do(t, r, http.MethodPost, "/api/discounts", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out models.Discount
	testutil.Decode(t, w, &out)
	return out
}

func TestCreateDiscountNormalizesCode(t *testing.T) {
	_, r, token := setup(t)

	d := createDiscount(t, r, token, discountBody(" spring-20 "))
	assert.Equal(t, "SPRING-20", d.Code)
	assert.True(t, d.IsActive)

	w := testutil.Do(t, r, http.MethodPost, "/api/discounts", discountBody("Spring-20"), token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/discounts", discountBody("SPRING 20!"), token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "code")
}

func TestCreateDiscountRules(t *testing.T) {
	_, r, token := setup(t)

	body := discountBody("BIGSALE")
	body["value"] = 150
	w := testutil.Do(t, r, http.MethodPost, "/api/discounts", body, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "value")

	body = discountBody("BACKWARDS")
	body["validUntil"] = time.Now().UTC().AddDate(0, 0, -2)
	w = testutil.Do(t, r, http.MethodPost, "/api/discounts", body, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "validUntil")

	body = discountBody("FIXED150")
	body["type"] = "fixed"
	body["value"] = 150
	createDiscount(t, r, token, body)
}

func TestValidateDiscount(t *testing.T) {
	_, r, token := setup(t)

	createDiscount(t, r, token, discountBody("SPRING-20"))

	w := testutil.Do(t, r, http.MethodPost, "/api/discounts/validate", map[string]any{"code": "spring-20", "orderAmount": 50}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var quote models.DiscountQuote
	testutil.Decode(t, w, &quote)
	assert.True(t, quote.Valid)
	assert.InDelta(t, 10.0, quote.DiscountAmount, 0.001)
	assert.InDelta(t, 40.0, quote.FinalAmount, 0.001)

	w = testutil.Do(t, r, http.MethodPost, "/api/discounts/validate", map[string]any{"code": "spring-20", "orderAmount": 200}, "")
	testutil.Decode(t, w, &quote)
	assert.InDelta(t, 15.0, quote.DiscountAmount, 0.001)

	w = testutil.Do(t, r, http.MethodPost, "/api/discounts/validate", map[string]any{"code": "NOPE", "orderAmount": 50}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateInactiveDiscount(t *testing.T) {
	_, r, token := setup(t)

	body := discountBody("DORMANT")
	body["isActive"] = false
	createDiscount(t, r, token, body)

	w := testutil.Do(t, r, http.MethodPost, "/api/discounts/validate", map[string]any{"code": "DORMANT", "orderAmount": 50}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var quote models.DiscountQuote
	env := testutil.Decode(t, w, &quote)
	assert.False(t, quote.Valid)
	assert.Equal(t, services.ReasonInactive, env.Message)
	assert.InDelta(t, 50.0, quote.FinalAmount, 0.001)
}

func TestRedeemRespectsUsageLimit(t *testing.T) {
	_, r, token := setup(t)

	body := discountBody("ONCE")
	body["usageLimit"] = 1
	d := createDiscount(t, r, token, body)
	path := "/api/discounts/" + d.ID.String() + "/redeem"

	w := testutil.Do(t, r, http.MethodPost, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out models.Discount
	testutil.Decode(t, w, &out)
	assert.Equal(t, 1, out.UsedCount)

	w = testutil.Do(t, r, http.MethodPost, path, nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/discounts/validate", map[string]any{"code": "ONCE", "orderAmount": 50}, "")
	var quote models.DiscountQuote
	testutil.Decode(t, w, &quote)
	assert.Equal(t, services.ReasonUsageExceeded, quote.Reason)
}

func TestGetDiscountsByStatus(t *testing.T) {
	db, r, token := setup(t)

	createDiscount(t, r, token, discountBody("LIVE"))
	now := time.Now().UTC()
	require.NoError(t, db.Create(&models.Discount{Code: "OLD", Type: "fixed", Value: 5, IsActive: true,
		ValidFrom: now.AddDate(0, -2, 0), ValidUntil: now.AddDate(0, -1, 0)}).Error)
	require.NoError(t, db.Create(&models.Discount{Code: "SOON", Type: "fixed", Value: 5, IsActive: true,
		ValidFrom: now.AddDate(0, 0, 3), ValidUntil: now.AddDate(0, 1, 0)}).Error)

	for status, code := range map[string]string{"active": "LIVE", "expired": "OLD", "scheduled": "SOON"} {
		w := testutil.Do(t, r, http.MethodGet, "/api/discounts?status="+status, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var list []models.Discount
		testutil.Decode(t, w, &list)
		require.Len(t, list, 1, status)
		assert.Equal(t, code, list[0].Code, status)
	}

	w := testutil.Do(t, r, http.MethodGet, "/api/discounts?status=forever", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteDiscount(t *testing.T) {
	_, r, token := setup(t)

	d := createDiscount(t, r, token, discountBody("SPRING-20"))
	path := "/api/discounts/" + d.ID.String()

	w := testutil.Do(t, r, http.MethodPatch, path, map[string]any{"value": 120}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = testutil.Do(t, r, http.MethodPatch, path, map[string]any{"value": 30, "code": "spring-30"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out models.Discount
	testutil.Decode(t, w, &out)
	assert.Equal(t, "SPRING-30", out.Code)
	assert.InDelta(t, 30.0, out.Value, 0.001)

	w = testutil.Do(t, r, http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(t, r, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplaceDiscount(t *testing.T) {
	_, r, token := setup(t)

	body := discountBody("SPRING-20")
	body["usageLimit"] = 5
	d := createDiscount(t, r, token, body)
	path := "/api/discounts/" + d.ID.String()

	w := testutil.Do(t, r, http.MethodPost, path+"/redeem", nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	replacement := discountBody("spring-25")
	delete(replacement, "maxDiscountAmount")
	replacement["value"] = 150
	w = testutil.Do(t, r, http.MethodPut, path, replacement, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "value")

	replacement["value"] = 25
	w = testutil.Do(t, r, http.MethodPut, path, replacement, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var out models.Discount
	testutil.Decode(t, w, &out)
	assert.Equal(t, "SPRING-25", out.Code)
	assert.InDelta(t, 25.0, out.Value, 0.001)
	assert.Zero(t, out.MaxDiscountAmount)
	assert.Zero(t, out.UsageLimit)
	assert.Equal(t, 1, out.UsedCount)
	assert.True(t, out.IsActive)

	other := createDiscount(t, r, token, discountBody("WINTER"))
	w = testutil.Do(t, r, http.MethodPut, "/api/discounts/"+other.ID.String(), replacement, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}
