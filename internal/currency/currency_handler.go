package currency

import (
	"net/http"

	currencyerrors "go-hrms/internal/currency/errors"
	"go-hrms/internal/middleware"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type Handler struct {
	converter   *Converter
	preferences *PreferenceStore
}

func NewHandler(converter *Converter, preferences *PreferenceStore) *Handler {
	return &Handler{converter: converter, preferences: preferences}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Convert(c *gin.Context) {
	var q ConvertQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	amount, err := decimal.NewFromString(q.Amount)
	if err != nil {
		h.writeServiceError(c, currencyerrors.ErrInvalidAmount)
		return
	}

	var override *decimal.Decimal
	if q.Rate != "" {
		rate, err := decimal.NewFromString(q.Rate)
		if err != nil {
			h.writeServiceError(c, currencyerrors.ErrInvalidRateOverride)
			return
		}
		override = &rate
	}

	conv, err := h.converter.Convert(c.Request.Context(), amount, q.From, q.To, override)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, ConvertResponse{
		Amount:    amount,
		From:      q.From,
		To:        q.To,
		Result:    conv.Amount,
		Rate:      conv.Rate,
		Fallback:  conv.Fallback,
		Formatted: Format(conv.Amount, FormatOptions{Currency: q.To, Locale: q.Locale, ShowSymbol: true}),
	}, nil)
}

func (h *Handler) GetPreference(c *gin.Context) {
	code, err := h.preferences.Get(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, PreferenceResponse{Currency: code}, nil)
}

func (h *Handler) SetPreference(c *gin.Context) {
	var req PreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.preferences.Set(c.Request.Context(), c.GetString(middleware.ContextUserID), req.Currency); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, PreferenceResponse{Currency: req.Currency}, nil)
}
