package auth

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	autherrors "go-hrms/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	loginFn func(ctx context.Context, email, password string) (LoginResponse, error)
	getMeFn func(ctx context.Context, userID string) (AuthResponse, error)
}

func (f *fakeService) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeService) GetMe(ctx context.Context, userID string) (AuthResponse, error) {
	return f.getMeFn(ctx, userID)
}

func newAuthRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc, false)
	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Next()
	}, h.Me)
	r.POST("/auth/logout", h.Logout)
	return r
}

func TestHandler_Login(t *testing.T) {
	t.Run("success sets cookie", func(t *testing.T) {
		svc := &fakeService{loginFn: func(_ context.Context, email, _ string) (LoginResponse, error) {
			return LoginResponse{User: AuthResponse{Email: email, Role: "hr"}, AccessToken: "tok"}, nil
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"hr@example.com","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		newAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Set-Cookie"), "access_token=tok")
		assert.Contains(t, w.Body.String(), `"access_token":"tok"`)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &fakeService{loginFn: func(context.Context, string, string) (LoginResponse, error) {
			return LoginResponse{}, autherrors.ErrInvalidCredentials
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"hr@example.com","password":"bad"}`))
		newAuthRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Header().Get("Set-Cookie"))
	})

	t.Run("malformed email", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"nope","password":"pw"}`))
		newAuthRouter(&fakeService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Me(t *testing.T) {
	svc := &fakeService{getMeFn: func(_ context.Context, userID string) (AuthResponse, error) {
		assert.Equal(t, "u-1", userID)
		return AuthResponse{ID: userID, Role: "viewer"}, nil
	}}

	w := httptest.NewRecorder()
	newAuthRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"viewer"`)
}

func TestHandler_Logout_ClearsCookie(t *testing.T) {
	w := httptest.NewRecorder()
	newAuthRouter(&fakeService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}
