package currency

import "github.com/shopspring/decimal"

type ConvertQuery struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from" binding:"required,oneof=USD TRY"`
	To     string `form:"to" binding:"required,oneof=USD TRY"`
	Rate   string `form:"rate"`
	Locale string `form:"locale"`
}

type ConvertResponse struct {
	Amount    decimal.Decimal `json:"amount"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Result    decimal.Decimal `json:"result"`
	Rate      decimal.Decimal `json:"rate"`
	Fallback  bool            `json:"fallback"`
	Formatted string          `json:"formatted"`
}

type PreferenceRequest struct {
	Currency string `json:"currency" binding:"required,oneof=USD TRY"`
}

type PreferenceResponse struct {
	Currency string `json:"currency"`
}
