package rbac

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	Service
	updateFn func(ctx context.Context, role string, permissions []string) (domain.RoleResponse, error)
}

func (f *fakeService) ListRoles() ([]domain.RoleResponse, error) {
	return []domain.RoleResponse{{Name: RoleViewer, Permissions: []string{"employee:read"}}}, nil
}

func (f *fakeService) UpdateRolePermissions(ctx context.Context, role string, permissions []string) (domain.RoleResponse, error) {
	return f.updateFn(ctx, role, permissions)
}

func newHandlerRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(svc)
	r := gin.New()
	r.GET("/rbac/roles", h.ListRoles)
	r.PUT("/rbac/roles/:role/permissions", h.UpdateRolePermissions)
	return r
}

func TestHandler_ListRoles(t *testing.T) {
	w := httptest.NewRecorder()
	newHandlerRouter(&fakeService{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/roles", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"employee:read"`)
}

func TestHandler_UpdateRolePermissions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeService{updateFn: func(_ context.Context, role string, perms []string) (domain.RoleResponse, error) {
			assert.Equal(t, "hr", role)
			assert.Equal(t, []string{"leave:approve"}, perms)
			return domain.RoleResponse{Name: role, Permissions: perms}, nil
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/rbac/roles/hr/permissions", bytes.NewBufferString(`{"permissions":["leave:approve"]}`))
		req.Header.Set("Content-Type", "application/json")
		newHandlerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("admin locked", func(t *testing.T) {
		svc := &fakeService{updateFn: func(context.Context, string, []string) (domain.RoleResponse, error) {
			return domain.RoleResponse{}, rbacerrors.ErrAdminLocked
		}}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/rbac/roles/admin/permissions", bytes.NewBufferString(`{"permissions":[]}`))
		newHandlerRouter(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})

	t.Run("missing body", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/rbac/roles/hr/permissions", bytes.NewBufferString(`{}`))
		newHandlerRouter(&fakeService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
