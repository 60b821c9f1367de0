package contact_controller_test

import (
	"net/http"
	"testing"

	"github.com/BadarHossain1/maplenest-admin-api/models"
	"github.com/BadarHossain1/maplenest-admin-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submit(t *testing.T, r http.Handler) models.Contact {
	t.Helper()
	w := testutil.Do(t, r, http.MethodPost, "/api/contacts", map[string]any{
		"name":    "Avery Tremblay",
		"email":   "avery@example.ca",
		"subject": "Sizing",
		"message": "Does the parka run large?",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out models.Contact
	testutil.Decode(t, w, &out)
	return out
}

func TestSubmitContactIsPublic(t *testing.T) {
	testutil.NewDB(t)
	r := testutil.NewRouter()

	ct := submit(t, r)
	assert.Equal(t, models.InquiryStatusOpen, ct.Status)
	assert.Empty(t, ct.Replies)

	w := testutil.Do(t, r, http.MethodPost, "/api/contacts", map[string]any{"name": "A", "email": "nope"}, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := testutil.Decode(t, w, nil)
	assert.Contains(t, env.Errors, "email")
	assert.Contains(t, env.Errors, "message")
}

func TestContactReadsNeedAdmin(t *testing.T) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()
	submit(t, r)

	w := testutil.Do(t, r, http.MethodGet, "/api/contacts", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/contacts?status=open", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Contact
	testutil.Decode(t, w, &list)
	assert.Len(t, list, 1)
}

func TestReplyMovesOpenToInProgress(t *testing.T) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()
	ct := submit(t, r)
	path := "/api/contacts/" + ct.ID.String()

	w := testutil.Do(t, r, http.MethodPost, path+"/replies", map[string]any{"message": "It runs true to size."}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var out models.Contact
	testutil.Decode(t, w, &out)
	assert.Equal(t, models.InquiryStatusInProgress, out.Status)
	require.Len(t, out.Replies, 1)
	assert.Equal(t, "ops@maplenest.ca", out.Replies[0].Author)

	w = testutil.Do(t, r, http.MethodPatch, path, map[string]any{"status": "resolved"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(t, r, http.MethodPost, path+"/replies", map[string]any{"message": "Following up."}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	testutil.Decode(t, w, &out)
	assert.Equal(t, models.InquiryStatusResolved, out.Status)
	assert.Len(t, out.Replies, 2)

	w = testutil.Do(t, r, http.MethodPatch, path, map[string]any{"status": "closed"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(t, r, http.MethodPost, path+"/replies", map[string]any{"message": "One more thing."}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteContact(t *testing.T) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()
	ct := submit(t, r)

	w := testutil.Do(t, r, http.MethodDelete, "/api/contacts/"+ct.ID.String(), nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	w = testutil.Do(t, r, http.MethodGet, "/api/contacts/"+ct.ID.String(), nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplaceContactKeepsMessage(t *testing.T) {
	db := testutil.NewDB(t)
	_, token := testutil.NewAdmin(t, db, "ops@maplenest.ca", models.AdminRoleAdmin)
	r := testutil.NewRouter()
	ct := submit(t, r)
	path := "/api/contacts/" + ct.ID.String()

	w := testutil.Do(t, r, http.MethodPut, path, map[string]any{"status": "resolved"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.Do(t, r, http.MethodPut, path, map[string]any{"subject": "Fit"}, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, testutil.Decode(t, w, nil).Errors, "status")

	w = testutil.Do(t, r, http.MethodPut, path, map[string]any{"status": "resolved", "message": "rewritten"}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var out models.Contact
	testutil.Decode(t, w, &out)
	assert.Equal(t, models.InquiryStatusResolved, out.Status)
	assert.Empty(t, out.Subject)
	assert.Equal(t, "Does the parka run large?", out.Message)
	assert.Equal(t, "avery@example.ca", out.Email)
}
