package settings

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newSettingsRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/settings/connection", h.GetConnection)
	r.PUT("/settings/connection", h.SaveConnection)
	r.POST("/settings/connection/test", h.TestConnection)
	return r
}

func TestHandler_GetConnection_NeverEchoesPassword(t *testing.T) {
	svc := NewService(&memoryRepo{stored: ConnectionSettings{Host: "sql01", Password: "top-secret"}}, &fakePinger{})

	w := httptest.NewRecorder()
	newSettingsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings/connection", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "top-secret")
	assert.Contains(t, w.Body.String(), `"has_password":true`)
}

func TestHandler_SaveConnection_Validation(t *testing.T) {
	svc := NewService(&memoryRepo{}, &fakePinger{})

	w := httptest.NewRecorder()
	newSettingsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/settings/connection", bytes.NewBufferString(`{"host":"sql01"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_INPUT")
}

func TestHandler_TestConnection_FailureIsOK(t *testing.T) {
	pinger := &fakePinger{err: context.DeadlineExceeded}
	svc := NewService(&memoryRepo{}, pinger)

	body := `{"host":"sql01","database":"HR","auth_mode":"sql","username":"sa","password":"x"}`
	w := httptest.NewRecorder()
	newSettingsRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/settings/connection/test", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
