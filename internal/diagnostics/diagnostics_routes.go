package diagnostics

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
	group := r.Group("/diagnostics")
	group.Use(authMiddleware)
	{
		group.POST("/run-all",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "diagnostics", "create"),
			handler.RunAll,
		)
	}
}
