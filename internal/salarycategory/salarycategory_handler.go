package salarycategory

import (
	"net/http"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func GetAll(c *gin.Context) {
	response.Success(c, http.StatusOK, All(), nil)
}

func RegisterRoutes(r *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	r.GET("/salary-categories", authMiddleware, GetAll)
}
