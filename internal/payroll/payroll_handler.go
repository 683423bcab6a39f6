package payroll

import (
	"net/http"

	"go-hrms/internal/currency"
	"go-hrms/internal/middleware"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service     Service
	preferences *currency.PreferenceStore
	rdb         *redis.Client
}

func NewHandler(service Service, preferences *currency.PreferenceStore, rdb *redis.Client) *Handler {
	return &Handler{service: service, preferences: preferences, rdb: rdb}
}

func getActorID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// displayCurrency prefers ?currency=, then the caller's saved preference.
func (h *Handler) displayCurrency(c *gin.Context) string {
	if code := c.Query("currency"); code != "" {
		return code
	}
	if h.preferences == nil {
		return currency.DefaultDisplayCurrency
	}
	code, err := h.preferences.Get(c.Request.Context(), getActorID(c))
	if err != nil {
		return currency.DefaultDisplayCurrency
	}
	return code
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), getActorID(c), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	middleware.RememberIdempotent(c, h.rdb, http.StatusCreated, resp)
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var filterReq GetPayrollsFilterRequest
	if err := c.ShouldBindQuery(&filterReq); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), filterReq)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Page(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"), h.displayCurrency(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetBreakdown(c *gin.Context) {
	resp, err := h.service.GetBreakdown(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Regenerate(c *gin.Context) {
	var req RegeneratePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Regenerate(c.Request.Context(), getActorID(c), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	resp, err := h.service.MarkAsPaid(c.Request.Context(), getActorID(c), c.Param("id"))
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

func (h *Handler) RequestPayslip(c *gin.Context) {
	resp, err := h.service.RequestPayslip(c.Request.Context(), getActorID(c), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusAccepted, resp, nil)
}

func (h *Handler) DownloadPayslip(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"), currency.USD)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if resp.PayslipURL == nil || *resp.PayslipURL == "" {
		h.writeServiceError(c, payrollerrors.ErrPayslipNotGenerated)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, *resp.PayslipURL)
}
