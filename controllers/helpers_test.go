package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"anita-beauty-backend/config"
	"anita-beauty-backend/controllers"
	"anita-beauty-backend/models"
	"anita-beauty-backend/routes"
	"anita-beauty-backend/store"
)

const testAdminPassword = "test-admin-pass"

type stubNotifier struct {
	err   error
	calls int
	last  models.ContactMessage
}

func (s *stubNotifier) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	s.calls++
	s.last = msg
	return s.err
}

func newTestServer(t *testing.T) (*gin.Engine, *store.Memory, *stubNotifier) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.InitLogger()

	mem := store.NewMemory()
	notifier := &stubNotifier{}
	cfg := &config.Config{AdminPassword: testAdminPassword, CORSOrigins: "*"}
	ctl := controllers.New(mem, notifier, cfg)
	return routes.SetupRouter(ctl, cfg), mem, notifier
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, asAdmin bool) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if asAdmin {
		req.SetBasicAuth("admin", testAdminPassword)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeInto(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
