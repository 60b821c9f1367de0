package admin_controller_test

import (
	"net/http"
	"testing"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndMe(t *testing.T) {
	db := testutil.NewDB(t)
	admin, _ := testutil.NewAdmin(t, db, "owner@maplenest.ca", models.AdminRoleSuperAdmin)
	r := testutil.NewRouter()

	w := testutil.Do(t, r, http.MethodPost, "/api/auth/login", map[string]any{"email": "OWNER@maplenest.ca", "password": testutil.Password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login models.AdminLoginResponse
	testutil.Decode(t, w, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, admin.ID, login.Admin.ID)
	assert.NotNil(t, login.Admin.LastLoginAt)

	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "admin_token" {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, login.Token, cookie.Value)

	w = testutil.Do(t, r, http.MethodGet, "/api/auth/me", nil, login.Token)
	require.Equal(t, http.StatusOK, w.Code)
	var me models.AdminResponse
	testutil.Decode(t, w, &me)
	assert.Equal(t, "owner@maplenest.ca", me.Email)
	assert.Equal(t, models.AdminRoleSuperAdmin, me.Role)

	w = testutil.Do(t, r, http.MethodPost, "/api/auth/logout", nil, login.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginFailures(t *testing.T) {
	db := testutil.NewDB(t)
	admin, _ := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()

	w := testutil.Do(t, r, http.MethodPost, "/api/auth/login", map[string]any{"email": "ops@maplenest.ca", "password": "wrong-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	wrong := testutil.Decode(t, w, nil)

	w = testutil.Do(t, r, http.MethodPost, "/api/auth/login", map[string]any{"email": "nobody@maplenest.ca", "password": "wrong-password"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrong.Message, testutil.Decode(t, w, nil).Message)

	require.NoError(t, db.Model(&admin).Update("status", models.AdminStatusSuspended).Error)
	w = testutil.Do(t, r, http.MethodPost, "/api/auth/login", map[string]any{"email": "ops@maplenest.ca", "password": testutil.Password}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	db := testutil.NewDB(t)
	admin, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()

	w := testutil.Do(t, r, http.MethodGet, "/api/auth/me", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	require.NoError(t, db.Model(&admin).Update("status", models.AdminStatusSuspended).Error)
	w = testutil.Do(t, r, http.MethodGet, "/api/auth/me", nil, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestActivityLogsAreSuperAdminOnly(t *testing.T) {
	db := testutil.NewDB(t)
	_, adminToken := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	_, superToken := testutil.NewAdmin(t, db, "owner@maplenest.ca", models.AdminRoleSuperAdmin)
	r := testutil.NewRouter()

	w := testutil.Do(t, r, http.MethodPost, "/api/categories", map[string]any{"name": "Outerwear"}, adminToken)
	require.Equal(t, http.StatusCreated, w.Code)
	w = testutil.Do(t, r, http.MethodPost, "/api/discounts/validate", map[string]any{"code": "NOPE"}, adminToken)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/activity-logs", nil, adminToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/activity-logs?resourceType=category&adminEmail=OPS@maplenest.ca", nil, superToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var logs []models.ActivityLog
	env := testutil.Decode(t, w, &logs)
	require.Len(t, logs, 1)
	assert.Equal(t, "created_category", logs[0].Action)
	assert.Equal(t, http.MethodPost, logs[0].Method)
	assert.Equal(t, http.StatusCreated, logs[0].StatusCode)
	assert.Equal(t, 1, env.Meta.Total)
}
