package promotion

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
	promotions := r.Group("/promotions")
	promotions.Use(authMiddleware)
	{
		promotions.GET("", middleware.RBACAuthorize(rbacService, "promotion", "read"), handler.GetAll)
		promotions.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "promotion", "read"),
			handler.Export,
		)
		promotions.GET("/:id", middleware.RBACAuthorize(rbacService, "promotion", "read"), handler.GetByID)
		promotions.POST("", middleware.RBACAuthorize(rbacService, "promotion", "create"), handler.Create)
		promotions.PUT("/:id", middleware.RBACAuthorize(rbacService, "promotion", "update"), handler.Update)
		promotions.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "promotion", "approve"), handler.Approve)
		promotions.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "promotion", "approve"), handler.Reject)
		promotions.DELETE("/:id", middleware.RBACAuthorize(rbacService, "promotion", "delete"), handler.Delete)
	}
}
