package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anita-beauty-backend/models"
)

func TestCreateAndListStatusChecks(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/status", map[string]any{"client_name": "Test Client"}, false)
	require.Equal(t, http.StatusOK, w.Code)

	var created models.StatusCheck
	decodeInto(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Client", created.ClientName)
	assert.False(t, created.Timestamp.IsZero())

	list := doJSON(t, r, http.MethodGet, "/api/status", nil, false)
	require.Equal(t, http.StatusOK, list.Code)

	var checks []models.StatusCheck
	decodeInto(t, list, &checks)
	require.Len(t, checks, 1)
	assert.Equal(t, created.ID, checks[0].ID)
}

func TestCreateStatusCheckRequiresClientName(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/status", map[string]any{}, false)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRootReturnsAPIBanner(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	decodeInto(t, w, &resp)
	assert.Equal(t, "ANITA Art of Beauty API", resp["message"])
}
