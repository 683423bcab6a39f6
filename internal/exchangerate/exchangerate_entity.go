package exchangerate

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	CurrencyUSD = "USD"
	CurrencyTRY = "TRY"

	// SingleActiveIndex is the partial unique index that allows at most one
	// row with is_active = true.
	SingleActiveIndex = "uq_exchange_rates_single_active"
)

type ExchangeRate struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BaseCurrency   string          `gorm:"type:varchar(3);not null"`
	TargetCurrency string          `gorm:"type:varchar(3);not null"`
	Rate           decimal.Decimal `gorm:"type:numeric(18,6);not null"`
	EffectiveFrom  time.Time       `gorm:"type:date;not null"`
	IsActive       bool            `gorm:"not null;index"`
	Note           *string         `gorm:"type:text"`
	CreatedBy      *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt      time.Time       `gorm:"not null;index"`
	UpdatedAt      time.Time
}

func (ExchangeRate) TableName() string {
	return "exchange_rates"
}
