package exchangerate

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
	rates := r.Group("/exchange-rates")
	rates.Use(authMiddleware)
	{
		rates.GET("", middleware.RBACAuthorize(rbacService, "exchange_rate", "read"), handler.GetAll)
		rates.GET("/active", middleware.RBACAuthorize(rbacService, "exchange_rate", "read"), handler.GetActive)
		if rdb != nil {
			rates.POST(
				"",
				middleware.RBACAuthorize(rbacService, "exchange_rate", "create"),
				middleware.Idempotency(rdb),
				handler.SetActive,
			)
		} else {
			rates.POST("", middleware.RBACAuthorize(rbacService, "exchange_rate", "create"), handler.SetActive)
		}
		rates.POST("/:id/archive", middleware.RBACAuthorize(rbacService, "exchange_rate", "update"), handler.Archive)
		rates.POST("/:id/activate", middleware.RBACAuthorize(rbacService, "exchange_rate", "update"), handler.Activate)
	}
}
