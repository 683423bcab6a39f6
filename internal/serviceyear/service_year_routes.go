package serviceyear

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
	years := r.Group("/service-years")
	years.Use(authMiddleware)
	{
		years.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "serviceyear", "read"),
			handler.GetAll,
		)
		years.GET("/:id",
			middleware.RateLimitByUser(2, 5),
			middleware.RBACAuthorize(rbacService, "serviceyear", "read"),
			handler.GetByID,
		)
		years.POST("",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "serviceyear", "create"),
			handler.Create,
		)
		years.PUT("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "serviceyear", "update"),
			handler.Update,
		)
		years.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "serviceyear", "delete"),
			handler.Delete,
		)
	}
}
