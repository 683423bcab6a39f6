package currency

import (
	"context"

	currencyerrors "go-hrms/internal/currency/errors"
	"go-hrms/internal/exchangerate"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	USD = exchangerate.CurrencyUSD
	TRY = exchangerate.CurrencyTRY
)

// FallbackRate is used whenever no exchange rate is active.
var FallbackRate = decimal.RequireFromString("36.50")

// RateProvider is the part of the exchange-rate store the converter reads.
type RateProvider interface {
	GetActiveRate(ctx context.Context) (*exchangerate.ExchangeRateResponse, error)
}

// ResolvedRate is the USD->TRY rate a conversion or payroll actually used.
type ResolvedRate struct {
	Rate           decimal.Decimal `json:"rate"`
	ExchangeRateID string          `json:"exchange_rate_id,omitempty"`
	EffectiveFrom  string          `json:"effective_from,omitempty"`
	Fallback       bool            `json:"fallback"`
}

// FallbackResolvedRate is the rate used when no exchange rate is active.
func FallbackResolvedRate() ResolvedRate {
	return ResolvedRate{Rate: FallbackRate, Fallback: true}
}

type Conversion struct {
	Amount   decimal.Decimal `json:"amount"`
	Rate     decimal.Decimal `json:"rate"`
	Fallback bool            `json:"fallback"`
}

type Converter struct {
	rates  RateProvider
	logger *zap.Logger
}

func NewConverter(rates RateProvider, logger ...*zap.Logger) *Converter {
	l := zap.L().Named("currency.converter")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("currency.converter")
	}
	return &Converter{rates: rates, logger: l}
}

// ResolveRate picks override, then the active rate, then FallbackRate.
func (c *Converter) ResolveRate(ctx context.Context, override *decimal.Decimal) (ResolvedRate, error) {
	if override != nil {
		if !override.IsPositive() {
			return ResolvedRate{}, currencyerrors.ErrInvalidRateOverride
		}
		return ResolvedRate{Rate: *override}, nil
	}

	if c.rates != nil {
		active, err := c.rates.GetActiveRate(ctx)
		if err != nil {
			return ResolvedRate{}, err
		}
		if active != nil {
			return ResolvedRate{
				Rate:           active.Rate,
				ExchangeRateID: active.ID,
				EffectiveFrom:  active.EffectiveFrom,
			}, nil
		}
	}

	c.logger.Warn("no active exchange rate, using fallback", zap.String("rate", FallbackRate.String()))
	return FallbackResolvedRate(), nil
}

func (c *Converter) USDToTRY(ctx context.Context, amountUSD decimal.Decimal, override *decimal.Decimal) (Conversion, error) {
	resolved, err := c.ResolveRate(ctx, override)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{
		Amount:   ConvertUSDToTRY(amountUSD, resolved.Rate),
		Rate:     resolved.Rate,
		Fallback: resolved.Fallback,
	}, nil
}

func (c *Converter) TRYToUSD(ctx context.Context, amountTRY decimal.Decimal, override *decimal.Decimal) (Conversion, error) {
	resolved, err := c.ResolveRate(ctx, override)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{
		Amount:   ConvertTRYToUSD(amountTRY, resolved.Rate),
		Rate:     resolved.Rate,
		Fallback: resolved.Fallback,
	}, nil
}

// Convert dispatches on the currency pair. Same-currency conversion returns
// amount unchanged at rate 1.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string, override *decimal.Decimal) (Conversion, error) {
	if !IsSupported(from) || !IsSupported(to) {
		return Conversion{}, currencyerrors.ErrUnsupportedCurrency
	}

	switch {
	case from == to:
		return Conversion{Amount: amount, Rate: decimal.NewFromInt(1)}, nil
	case from == USD && to == TRY:
		return c.USDToTRY(ctx, amount, override)
	case from == TRY && to == USD:
		return c.TRYToUSD(ctx, amount, override)
	default:
		return Conversion{}, currencyerrors.ErrUnsupportedPair
	}
}

func ConvertUSDToTRY(amountUSD, rate decimal.Decimal) decimal.Decimal {
	return amountUSD.Mul(rate)
}

// ConvertTRYToUSD divides by rate. A non-positive rate yields zero.
func ConvertTRYToUSD(amountTRY, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsPositive() {
		return decimal.Zero
	}
	return amountTRY.Div(rate)
}

func IsSupported(code string) bool {
	return code == USD || code == TRY
}
