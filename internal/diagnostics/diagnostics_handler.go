package diagnostics

import (
	"net/http"

	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RunAll always answers 200; failing checks are reported in the body.
func (h *Handler) RunAll(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.RunAll(c.Request.Context()), nil)
}
