package evaluation

import "github.com/shopspring/decimal"

type EvaluationRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required,uuid"`
	Period     string          `json:"period" binding:"required"`
	Score      decimal.Decimal `json:"score"`
	Evaluator  string          `json:"evaluator" binding:"max=150"`
	Notes      string          `json:"notes"`
}

type EvaluationResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	Period       string          `json:"period"`
	Score        decimal.Decimal `json:"score"`
	Rating       string          `json:"rating"`
	Evaluator    string          `json:"evaluator"`
	Notes        string          `json:"notes"`
}
