package user_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/user"
	usererrors "go-hrms/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeUserService struct {
	user.Service
	GetAllFn         func(ctx context.Context) ([]user.UserResponse, error)
	CreateFn         func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	ToggleStatusFn   func(ctx context.Context, actorID, id string, isActive bool) error
	ChangePasswordFn func(ctx context.Context, userID, current, next string) error
}

func (f *fakeUserService) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	return f.GetAllFn(ctx)
}

func (f *fakeUserService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.CreateFn(ctx, req)
}

func (f *fakeUserService) ToggleStatus(ctx context.Context, actorID, id string, isActive bool) error {
	return f.ToggleStatusFn(ctx, actorID, id, isActive)
}

func (f *fakeUserService) ChangePassword(ctx context.Context, userID, current, next string) error {
	return f.ChangePasswordFn(ctx, userID, current, next)
}

const actorID = "0d6f1c1e-1111-4000-8000-000000000001"

func newUserRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := user.NewHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", actorID)
		c.Next()
	})
	r.GET("/users", h.GetAll)
	r.POST("/users", h.Create)
	r.PATCH("/users/:id/status", h.ToggleStatus)
	r.PUT("/users/me/password", h.ChangePassword)
	return r
}

func TestUserHandler_GetAll_Search(t *testing.T) {
	svc := &fakeUserService{GetAllFn: func(context.Context) ([]user.UserResponse, error) {
		return []user.UserResponse{
			{ID: "1", Email: "hr@example.com", Role: "hr"},
			{ID: "2", Email: "acc@example.com", Role: "accountant"},
		}, nil
	}}

	w := httptest.NewRecorder()
	newUserRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users?q=ACC", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "acc@example.com")
	assert.NotContains(t, w.Body.String(), "hr@example.com")
	assert.Contains(t, w.Body.String(), `"total":1`)
}

func TestUserHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeUserService{CreateFn: func(_ context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
			return user.UserResponse{ID: "u-1", Email: req.Email, Role: req.Role}, nil
		}}

		body := `{"name":"سارة","email":"sara@example.com","password":"12345678","role":"hr"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		newUserRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("short password", func(t *testing.T) {
		body := `{"name":"سارة","email":"sara@example.com","password":"123","role":"hr"}`
		w := httptest.NewRecorder()
		newUserRouter(&fakeUserService{}).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := &fakeUserService{CreateFn: func(context.Context, user.CreateUserRequest) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrUserAlreadyExists
		}}

		body := `{"name":"سارة","email":"sara@example.com","password":"12345678","role":"hr"}`
		w := httptest.NewRecorder()
		newUserRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString(body)))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_ToggleStatus_PassesActor(t *testing.T) {
	var gotActor, gotID string
	svc := &fakeUserService{ToggleStatusFn: func(_ context.Context, actor, id string, active bool) error {
		gotActor, gotID = actor, id
		assert.False(t, active)
		return nil
	}}

	w := httptest.NewRecorder()
	newUserRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/users/u-2/status", bytes.NewBufferString(`{"is_active":false}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, actorID, gotActor)
	assert.Equal(t, "u-2", gotID)
}

func TestUserHandler_ChangePassword_Wrong(t *testing.T) {
	svc := &fakeUserService{ChangePasswordFn: func(_ context.Context, userID, _, _ string) error {
		assert.Equal(t, actorID, userID)
		return usererrors.ErrWrongPassword
	}}

	body := `{"current_password":"x","new_password":"new-password"}`
	w := httptest.NewRecorder()
	newUserRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/users/me/password", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
