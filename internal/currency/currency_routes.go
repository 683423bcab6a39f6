package currency

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	currency := r.Group("/currency")
	currency.Use(authMiddleware, middleware.RateLimitByUser(20, 40))
	{
		currency.GET("/convert", handler.Convert)
		currency.GET("/preference", handler.GetPreference)
		currency.PUT("/preference", handler.SetPreference)
	}
}
