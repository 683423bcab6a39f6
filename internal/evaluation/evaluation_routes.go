package evaluation

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
	evaluations := r.Group("/evaluations")
	evaluations.Use(authMiddleware)
	{
		evaluations.GET("", middleware.RBACAuthorize(rbacService, "evaluation", "read"), handler.GetAll)
		evaluations.GET("/:id", middleware.RBACAuthorize(rbacService, "evaluation", "read"), handler.GetByID)
		evaluations.POST("", middleware.RBACAuthorize(rbacService, "evaluation", "create"), handler.Create)
		evaluations.PUT("/:id", middleware.RBACAuthorize(rbacService, "evaluation", "update"), handler.Update)
		evaluations.DELETE("/:id", middleware.RBACAuthorize(rbacService, "evaluation", "delete"), handler.Delete)
	}
}
