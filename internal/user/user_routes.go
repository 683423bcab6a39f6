package user

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
	users := r.Group("/users")
	users.Use(authMiddleware)
	{
		users.PUT("/me/password", middleware.RateLimitByUser(0.5, 2), handler.ChangePassword)

		users.GET("", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetAll)
		users.GET("/:id", middleware.RBACAuthorize(rbacService, "user", "read"), handler.GetByID)
		users.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "user", "create"),
			handler.Create,
		)
		users.PUT("/:id/role", middleware.RBACAuthorize(rbacService, "user", "update"), handler.UpdateRole)
		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "update"),
			handler.ToggleStatus,
		)
		users.POST("/:id/reset-password",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "user", "update"),
			handler.ResetPassword,
		)
	}
}
