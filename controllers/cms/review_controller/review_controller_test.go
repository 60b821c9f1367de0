package review_controller_test

import (
	"net/http"
	"testing"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewModeration(t *testing.T) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()

	product := models.Product{Name: "Maple Parka"}
	require.NoError(t, db.Create(&product).Error)

	w := testutil.Do(t, r, http.MethodPost, "/api/reviews", map[string]any{
		"productId": product.ID,
		"userName":  "Avery",
		"rating":    4,
		"comment":   "Warm and light.",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var review models.Review
	testutil.Decode(t, w, &review)
	assert.Equal(t, "Maple Parka", review.ProductName)
	assert.Equal(t, models.ReviewStatusPending, review.Status)

	w = testutil.Do(t, r, http.MethodPost, "/api/reviews", map[string]any{
		"productId": uuid.New(),
		"userName":  "Avery",
		"rating":    4,
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "productId")

	w = testutil.Do(t, r, http.MethodPost, "/api/reviews", map[string]any{
		"productId": product.ID,
		"userName":  "Avery",
		"rating":    6,
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "rating")

	path := "/api/reviews/" + review.ID.String()
	w = testutil.Do(t, r, http.MethodPatch, path+"/status", map[string]any{"status": "approved"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var list []models.Review
	w = testutil.Do(t, r, http.MethodGet, "/api/reviews?status=approved&rating=4&productId="+product.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, review.ID, list[0].ID)

	w = testutil.Do(t, r, http.MethodPatch, path, map[string]any{"rating": 5, "title": "Great"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &review)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, models.ReviewStatusApproved, review.Status)

	w = testutil.Do(t, r, http.MethodDelete, path, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(t, r, http.MethodGet, path, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplaceReview(t *testing.T) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()

	parka := models.Product{Name: "Maple Parka"}
	boots := models.Product{Name: "Snow Boots"}
	require.NoError(t, db.Create(&parka).Error)
	require.NoError(t, db.Create(&boots).Error)

	w := testutil.Do(t, r, http.MethodPost, "/api/reviews", map[string]any{
		"productId": parka.ID,
		"userName":  "Avery",
		"rating":    4,
		"title":     "Warm",
		"comment":   "Warm and light.",
		"status":    "approved",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var review models.Review
	testutil.Decode(t, w, &review)
	path := "/api/reviews/" + review.ID.String()

	w = testutil.Do(t, r, http.MethodPut, path, map[string]any{
		"productId": uuid.New(),
		"userName":  "Avery",
		"rating":    3,
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "productId")

	w = testutil.Do(t, r, http.MethodPut, path, map[string]any{"rating": 3}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "userName")

	w = testutil.Do(t, r, http.MethodPut, path, map[string]any{
		"productId": boots.ID,
		"userName":  "Avery T.",
		"rating":    3,
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	testutil.Decode(t, w, &review)
	assert.Equal(t, boots.ID, review.ProductID)
	assert.Equal(t, "Snow Boots", review.ProductName)
	assert.Equal(t, 3, review.Rating)
	assert.Empty(t, review.Title)
	assert.Empty(t, review.Comment)
	assert.Equal(t, models.ReviewStatusPending, review.Status)

	w = testutil.Do(t, r, http.MethodPut, "/api/reviews/"+uuid.NewString(), map[string]any{
		"productId": boots.ID,
		"userName":  "Avery",
		"rating":    3,
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
