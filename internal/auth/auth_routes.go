package auth

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.GET("/me", authMiddleware, middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/logout", authMiddleware, handler.Logout)
	}
}
