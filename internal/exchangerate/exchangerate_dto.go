package exchangerate

import (
	"time"

	"github.com/shopspring/decimal"
)

type SetActiveRateRequest struct {
	Rate          decimal.Decimal `json:"rate"`
	EffectiveFrom string          `json:"effective_from" binding:"required"`
	Note          *string         `json:"note" binding:"omitempty,max=500"`
}

type ExchangeRateResponse struct {
	ID             string          `json:"id"`
	BaseCurrency   string          `json:"base_currency"`
	TargetCurrency string          `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
	EffectiveFrom  string          `json:"effective_from"`
	IsActive       bool            `json:"is_active"`
	Note           *string         `json:"note,omitempty"`
	CreatedBy      *string         `json:"created_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func mapToResponse(r ExchangeRate) ExchangeRateResponse {
	resp := ExchangeRateResponse{
		ID:             r.ID.String(),
		BaseCurrency:   r.BaseCurrency,
		TargetCurrency: r.TargetCurrency,
		Rate:           r.Rate,
		EffectiveFrom:  r.EffectiveFrom.Format(time.DateOnly),
		IsActive:       r.IsActive,
		Note:           r.Note,
		CreatedAt:      r.CreatedAt,
	}
	if r.CreatedBy != nil {
		createdBy := r.CreatedBy.String()
		resp.CreatedBy = &createdBy
	}
	return resp
}

func mapToListResponse(rates []ExchangeRate) []ExchangeRateResponse {
	out := make([]ExchangeRateResponse, 0, len(rates))
	for _, r := range rates {
		out = append(out, mapToResponse(r))
	}
	return out
}
