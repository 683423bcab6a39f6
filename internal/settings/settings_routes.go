package settings

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
	group := r.Group("/settings")
	group.Use(authMiddleware)
	{
		group.GET("/connection", middleware.RBACAuthorize(rbacService, "settings", "read"), handler.GetConnection)
		group.PUT("/connection", middleware.RBACAuthorize(rbacService, "settings", "update"), handler.SaveConnection)
		group.POST("/connection/test",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "settings", "update"),
			handler.TestConnection,
		)
	}
}
