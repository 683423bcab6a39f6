package absence

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
	absences := r.Group("/absences")
	absences.Use(authMiddleware)
	{
		absences.GET("", middleware.RBACAuthorize(rbacService, "absence", "read"), handler.GetAll)
		absences.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "absence", "read"),
			handler.Export,
		)
		absences.GET("/:id", middleware.RBACAuthorize(rbacService, "absence", "read"), handler.GetByID)
		absences.POST("", middleware.RBACAuthorize(rbacService, "absence", "create"), handler.Create)
		absences.PUT("/:id", middleware.RBACAuthorize(rbacService, "absence", "update"), handler.Update)
		absences.DELETE("/:id", middleware.RBACAuthorize(rbacService, "absence", "delete"), handler.Delete)
	}
}
