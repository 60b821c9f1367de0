package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRecordsRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Metrics("metrics-test"))
	r.GET("/api/orders/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/api/orders/:id",service="metrics-test",status="404"} 1`)
	assert.Contains(t, body, `http_status_category_total{category="4xx",service="metrics-test"}`)
}
