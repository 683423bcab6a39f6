package reward

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/export"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reward.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reward.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("reward request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func searchFields(rw RewardResponse) []string {
	return []string{rw.EmployeeName, rw.RewardType, rw.Status, rw.Reason}
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp = response.Search(c, resp, searchFields)
	page, meta := response.Page(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req RewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Export(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	resp = response.Search(c, resp, searchFields)

	t := export.Table{
		Headers: []string{"الموظف", "نوع المكافأة", "المبلغ (USD)", "التاريخ", "الحالة", "السبب"},
		Rows:    make([][]string, 0, len(resp)),
	}
	for _, rw := range resp {
		t.Rows = append(t.Rows, []string{rw.EmployeeName, rw.RewardType, rw.Amount.StringFixed(2), rw.RewardDate, rw.Status, rw.Reason})
	}

	if err := export.Send(c, "rewards", c.DefaultQuery("format", export.FormatCSV), t); err != nil {
		h.writeServiceError(c, err)
	}
}
