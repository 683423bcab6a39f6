package rbac

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService, authMiddleware gin.HandlerFunc) {
	group := r.Group("/rbac")
	group.Use(authMiddleware)
	{
		group.GET("/roles", middleware.RBACAuthorize(rbacService, "role", "read"), handler.ListRoles)
		group.PUT("/roles/:role/permissions",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "role", "update"),
			handler.UpdateRolePermissions,
		)
	}
}
