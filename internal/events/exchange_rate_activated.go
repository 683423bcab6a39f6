package events

import "time"

const ExchangeRateActivatedTopic = "hr.exchange_rate.activated.v1"

type ExchangeRateActivatedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	ExchangeRateID string    `json:"exchange_rate_id"`
	BaseCurrency   string    `json:"base_currency"`
	TargetCurrency string    `json:"target_currency"`
	Rate           string    `json:"rate"`
	EffectiveFrom  string    `json:"effective_from"`
	ActivatedBy    string    `json:"activated_by,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
