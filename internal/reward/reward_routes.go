package reward

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
	rewards := r.Group("/rewards")
	rewards.Use(authMiddleware)
	{
		rewards.GET("", middleware.RBACAuthorize(rbacService, "reward", "read"), handler.GetAll)
		rewards.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "reward", "read"),
			handler.Export,
		)
		rewards.GET("/:id", middleware.RBACAuthorize(rbacService, "reward", "read"), handler.GetByID)
		rewards.POST("", middleware.RBACAuthorize(rbacService, "reward", "create"), handler.Create)
		rewards.PUT("/:id", middleware.RBACAuthorize(rbacService, "reward", "update"), handler.Update)
		rewards.DELETE("/:id", middleware.RBACAuthorize(rbacService, "reward", "delete"), handler.Delete)
	}
}
