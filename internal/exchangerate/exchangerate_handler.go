package exchangerate

import (
	"net/http"

	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	rdb     *redis.Client
}

func NewHandler(service Service, rdb ...*redis.Client) *Handler {
	h := &Handler{service: service}
	if len(rdb) > 0 {
		h.rdb = rdb[0]
	}
	return h
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAllRates(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Page(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetActive(c *gin.Context) {
	resp, err := h.service.GetActiveRate(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if resp == nil {
		response.Success(c, http.StatusOK, nil, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) SetActive(c *gin.Context) {
	var req SetActiveRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.SetActiveRate(c.Request.Context(), c.GetString(middleware.ContextUserID), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.RememberIdempotent(c, h.rdb, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Archive(c *gin.Context) {
	resp, err := h.service.ArchiveRate(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Activate(c *gin.Context) {
	resp, err := h.service.ActivateRate(c.Request.Context(), c.GetString(middleware.ContextUserID), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
