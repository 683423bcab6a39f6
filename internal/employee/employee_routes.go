package employee

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	authMiddleware gin.HandlerFunc,
	rdb *redis.Client,
) {
	employees := r.Group("/employees")
	employees.Use(authMiddleware)
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetAll,
		)

		employees.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetOptions,
		)

		employees.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.Export,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetByID,
		)

		create := []gin.HandlerFunc{
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
		}
		if rdb != nil {
			create = append(create, middleware.Idempotency(rdb))
		}
		employees.POST("", append(create, handler.Create)...)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			handler.Delete,
		)
	}
}
