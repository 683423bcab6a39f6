package leave

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
) {
	leaves := r.Group("/leaves")
	leaves.Use(authMiddleware)
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByID)
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Create)
		leaves.PUT("/:id", middleware.RBACAuthorize(rbacService, "leave", "update"), handler.Update)
		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Reject)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "update"), handler.Cancel)
		leaves.DELETE("/:id", middleware.RBACAuthorize(rbacService, "leave", "delete"), handler.Delete)
	}
}
