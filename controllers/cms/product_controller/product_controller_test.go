package product_controller_test

import (
	"net/http"
	"testing"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gorm.DB, http.Handler, string) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	return db, testutil.NewRouter(), token
}

func productBody(name string, sizes ...models.ProductSize) map[string]any {
	return map[string]any{
		"name":  name,
		"price": map[string]any{"original": 120, "current": 100, "cost": 40},
		"sizes": sizes,
		"colors": []map[string]any{
			{"name": "Forest Green", "hex": "#228B22"},
		},
	}
}

func createProduct(t *testing.T, r http.Handler, token string, body map[string]any) models.Product {
	t.Helper()
	w := testutil.Do(t, r, http.MethodPost, "/api/products", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out models.Product
	testutil.Decode(t, w, &out)
	return out
}

func TestCreateProductSumsStock(t *testing.T) {
	_, r, token := setup(t)

	body := productBody("Maple Parka", models.ProductSize{Size: "S", Stock: 3}, models.ProductSize{Size: "M", Stock: 4})
	body["totalStock"] = 999
	p := createProduct(t, r, token, body)

	assert.Equal(t, 7, p.TotalStock)
	assert.NotNil(t, p.Images)
	assert.Nil(t, p.CategoryID)
}

func TestCreateProductResolvesCategory(t *testing.T) {
	db, r, token := setup(t)

	cat := models.Category{Name: "Outerwear", Slug: "outerwear", IsActive: true}
	require.NoError(t, db.Create(&cat).Error)

	body := productBody("Maple Parka")
	body["categoryId"] = cat.ID
	p := createProduct(t, r, token, body)
	assert.Equal(t, "Outerwear", p.CategoryName)

	body["categoryId"] = uuid.New()
	w := testutil.Do(t, r, http.MethodPost, "/api/products", body, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := testutil.Decode(t, w, nil)
	assert.Contains(t, env.Errors, "categoryId")
}

func TestCreateProductValidation(t *testing.T) {
	_, r, token := setup(t)

	w := testutil.Do(t, r, http.MethodPost, "/api/products", map[string]any{
		"name":  "Parka",
		"price": map[string]any{"current": 10},
		"sizes": []map[string]any{{"size": "M", "stock": -1}},
	}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := testutil.Decode(t, w, nil)
	assert.Contains(t, env.Errors, "sizes[0].stock")
}

func TestCreateProductRejectsShortHex(t *testing.T) {
	_, r, token := setup(t)

	for _, hex := range []string{"#FFF", "#FFFF", "#11223344", "228B22", "#GGGGGG"} {
		body := productBody("Toque")
		body["colors"] = []map[string]any{{"name": "White", "hex": hex}}
		w := testutil.Do(t, r, http.MethodPost, "/api/products", body, token)
		require.Equal(t, http.StatusBadRequest, w.Code, hex)
		env := testutil.Decode(t, w, nil)
		assert.Contains(t, env.Errors, "colors[0].hex", hex)
	}

	body := productBody("Toque")
	body["colors"] = []map[string]any{{"name": "Snow", "hex": "#fafafa"}}
	createProduct(t, r, token, body)
}

func TestSearchTreatsWildcardsLiterally(t *testing.T) {
	_, r, token := setup(t)
	createProduct(t, r, token, productBody("Parka 50% off"))
	createProduct(t, r, token, productBody("Parka 500"))
	createProduct(t, r, token, productBody("Snow_Boot"))
	createProduct(t, r, token, productBody("SnowXBoot"))

	for search, want := range map[string]string{
		"50%25":     "Parka 50% off",
		"snow_boot": "Snow_Boot",
	} {
		w := testutil.Do(t, r, http.MethodGet, "/api/products?search="+search, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var list []models.Product
		testutil.Decode(t, w, &list)
		require.Len(t, list, 1, search)
		assert.Equal(t, want, list[0].Name)
	}
}

func TestUpdateProductRecomputesStock(t *testing.T) {
	_, r, token := setup(t)

	p := createProduct(t, r, token, productBody("Maple Parka", models.ProductSize{Size: "M", Stock: 2}))

	w := testutil.Do(t, r, http.MethodPatch, "/api/products/"+p.ID.String(), map[string]any{
		"sizes": []map[string]any{{"size": "M", "stock": 5}, {"size": "L", "stock": 6}},
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out models.Product
	testutil.Decode(t, w, &out)
	assert.Equal(t, 11, out.TotalStock)
	assert.Equal(t, "Maple Parka", out.Name)

	w = testutil.Do(t, r, http.MethodPut, "/api/products/"+p.ID.String(), productBody("Rain Shell"), token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	testutil.Decode(t, w, &out)
	assert.Equal(t, 0, out.TotalStock)
	assert.Equal(t, "Rain Shell", out.Name)
}

func TestGetProductsFilters(t *testing.T) {
	_, r, token := setup(t)

	featured := productBody("Merino Sweater", models.ProductSize{Size: "M", Stock: 3})
	featured["isFeatured"] = true
	createProduct(t, r, token, featured)
	createProduct(t, r, token, productBody("Cable Toque"))

	var list []models.Product
	w := testutil.Do(t, r, http.MethodGet, "/api/products?isFeatured=true", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Merino Sweater", list[0].Name)

	w = testutil.Do(t, r, http.MethodGet, "/api/products?inStock=false", nil, "")
	testutil.Decode(t, w, &list)
	require.Len(t, list, 1)
	assert.Equal(t, "Cable Toque", list[0].Name)

	w = testutil.Do(t, r, http.MethodGet, "/api/products?search=merino", nil, "")
	env := testutil.Decode(t, w, &list)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, env.Meta.Total)

	w = testutil.Do(t, r, http.MethodGet, "/api/products?categoryId=nope", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProductStats(t *testing.T) {
	_, r, token := setup(t)

	createProduct(t, r, token, productBody("Parka", models.ProductSize{Size: "M", Stock: 20}))
	createProduct(t, r, token, productBody("Toque", models.ProductSize{Size: "OS", Stock: 3}))
	createProduct(t, r, token, productBody("Scarf"))

	w := testutil.Do(t, r, http.MethodGet, "/api/products/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats models.ProductStats
	testutil.Decode(t, w, &stats)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 1, stats.OutOfStock)
	assert.Equal(t, 1, stats.LowStock)
	assert.Equal(t, 23, stats.TotalInventory)
	assert.InDelta(t, 920.0, stats.InventoryCost, 0.001)
	assert.InDelta(t, 2300.0, stats.RetailValue, 0.001)
}

func TestDeleteProduct(t *testing.T) {
	_, r, token := setup(t)

	p := createProduct(t, r, token, productBody("Parka"))
	w := testutil.Do(t, r, http.MethodDelete, "/api/products/"+p.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/products/"+p.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = testutil.Do(t, r, http.MethodDelete, "/api/products/"+p.ID.String(), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
