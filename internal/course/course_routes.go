package course

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
	courses := r.Group("/courses")
	courses.Use(authMiddleware)
	{
		courses.GET("", middleware.RBACAuthorize(rbacService, "course", "read"), handler.GetAll)
		courses.GET("/:id", middleware.RBACAuthorize(rbacService, "course", "read"), handler.GetByID)
		courses.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "course", "create"),
			handler.Create,
		)
		courses.PUT("/:id", middleware.RBACAuthorize(rbacService, "course", "update"), handler.Update)
		courses.DELETE("/:id", middleware.RBACAuthorize(rbacService, "course", "delete"), handler.Delete)
	}
}
