package reward

import "github.com/shopspring/decimal"

type RewardRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required,uuid"`
	RewardType string          `json:"reward_type" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	RewardDate string          `json:"reward_date" binding:"required"`
	Status     string          `json:"status"`
	Reason     string          `json:"reason"`
}

type RewardResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	RewardType   string          `json:"reward_type"`
	Amount       decimal.Decimal `json:"amount"`
	RewardDate   string          `json:"reward_date"`
	Status       string          `json:"status"`
	Reason       string          `json:"reason"`
}
