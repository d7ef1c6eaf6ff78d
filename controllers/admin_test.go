package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginWithCorrectPassword(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{"password": testAdminPassword}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeInto(t, w, &resp)
	assert.True(t, resp.Success)
}

func TestAdminLoginWithWrongPassword(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{"password": "wrongpassword"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginWithoutPassword(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/admin/login", map[string]any{}, false)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
