// Package testutil wires an in-memory SQLite database and the full /api
// router for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	category_cache "github.com/BadarHossain1/maplenest-admin-api/cache"
	"github.com/BadarHossain1/maplenest-admin-api/config"
	"github.com/BadarHossain1/maplenest-admin-api/middleware"
	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/routes/cms_routes"
	"github.com/BadarHossain1/maplenest-admin-api/services"
	"github.com/BadarHossain1/maplenest-admin-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Password is the plain-text password of every admin created by NewAdmin.
const Password = "correct-horse-battery"

// Envelope mirrors models.ApiResponse with the payload left raw.
type Envelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Meta    *models.Pagination `json:"meta"`
	Errors  map[string]string  `json:"errors"`
}

// NewDB opens a private in-memory database, migrates it and installs it as
// config.DB until the test ends.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig(gormlogger.Discard))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the shared-cache database alive and serialises
	// the concurrent dataset loads
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	prev := config.DB
	config.DB = db
	category_cache.Invalidate()
	t.Cleanup(func() {
		config.DB = prev
		category_cache.Invalidate()
		_ = sqlDB.Close()
	})
	return db
}

// NewRouter mounts every /api route the way main does, minus the outer
// middleware that needs Redis or Prometheus.
func NewRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	utils.SetupValidator()

	r := gin.New()
	r.Use(middleware.RequestID())
	cms_routes.SetupRoutes(r.Group("/api"))
	return r
}

// NewAdmin stores an active admin with the given role and returns it with a
// signed token.
func NewAdmin(t testing.TB, db *gorm.DB, email, role string) (models.Admin, string) {
	t.Helper()

	hash, err := services.HashAdminPassword(Password)
	require.NoError(t, err)
	admin := models.Admin{Email: email, Name: "Test Admin", PasswordHash: hash, Role: role, Status: models.AdminStatusActive}
	require.NoError(t, db.Create(&admin).Error)

	token, err := services.GenerateAdminJWT(admin.ID.String(), admin.Email)
	require.NoError(t, err)
	return admin, token
}

// Do sends body as JSON (nil for none) and returns the recorded response.
// An empty token sends no Authorization header.
func Do(t testing.TB, r http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unwraps the response envelope and decodes its data into dst when
// dst is not nil.
func Decode(t testing.TB, w *httptest.ResponseRecorder, dst any) Envelope {
	t.Helper()

	var env Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if dst != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, dst), string(env.Data))
	}
	return env
}
