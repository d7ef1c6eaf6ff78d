package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"anita-beauty-backend/config"
)

func TestCheckAdminPassword(t *testing.T) {
	assert.True(t, CheckAdminPassword("secret", "secret"))
	assert.False(t, CheckAdminPassword("wrong", "secret"))
	assert.False(t, CheckAdminPassword("", "secret"))
	// an unset secret must never open the gate
	assert.False(t, CheckAdminPassword("", ""))
	assert.False(t, CheckAdminPassword("anything", ""))
}

func TestAdminGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{AdminPassword: "secret"}

	r := gin.New()
	r.GET("/guarded", AdminGate(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic")

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.SetBasicAuth("anyone", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.SetBasicAuth("anyone", "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
