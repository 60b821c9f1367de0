//go:build integration

package config_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "maplenest",
			"POSTGRES_PASSWORD": "maplenest",
			"POSTGRES_DB":       "maplenest_admin",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://maplenest:maplenest@%s:%s/maplenest_admin?sslmode=disable", host, port.Port())
}

func TestPostgresEndToEnd(t *testing.T) {
	dsn := startPostgres(t)

	prevDB, prevPool := config.DB, config.Pool
	t.Cleanup(func() {
		config.CloseDB()
		config.DB, config.Pool = prevDB, prevPool
	})
	require.NoError(t, config.InitDB(&config.AppConfig{DatabaseURL: dsn, AutoMigrate: true, Env: "test"}))
	require.NoError(t, config.Pool.Ping(context.Background()))

	_, token := testutil.NewAdmin(t, config.DB, "owner@maplenest.ca", models.AdminRoleSuperAdmin)
	r := testutil.NewRouter()

	body := map[string]any{
		"userEmail": "Claire@Example.ca",
		"items": []map[string]any{
			{"productId": "p-1", "productName": "Parka", "price": 249.5, "quantity": 2},
		},
		"orderSummary": map[string]any{"shipping": 15, "tax": 32.44},
	}
	w := testutil.Do(t, r, http.MethodPost, "/api/orders", body, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var order models.Order
	testutil.Decode(t, w, &order)
	assert.Equal(t, 546.44, order.OrderSummary.Total)

	// jsonb items survive the round trip
	w = testutil.Do(t, r, http.MethodGet, "/api/orders/"+order.ID.String(), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Order
	testutil.Decode(t, w, &fetched)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Parka", fetched.Items[0].ProductName)

	// unique violations come back from pgx as 409
	body["orderId"] = order.OrderID
	w = testutil.Do(t, r, http.MethodPost, "/api/orders", body, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/financial/summary", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = testutil.Do(t, r, http.MethodGet, "/api/activity-logs?action=created_order", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []models.ActivityLog
	testutil.Decode(t, w, &logs)
	assert.Len(t, logs, 1)
}
