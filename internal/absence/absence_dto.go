package absence

import "github.com/shopspring/decimal"

type AbsenceRequest struct {
	EmployeeID  string          `json:"employee_id" binding:"required,uuid"`
	AbsenceDate string          `json:"absence_date" binding:"required"`
	AbsenceType string          `json:"absence_type" binding:"required"`
	Hours       decimal.Decimal `json:"hours"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes"`
}

type AbsenceFilter struct {
	Month      string
	EmployeeID string
}

type AbsenceResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	AbsenceDate  string          `json:"absence_date"`
	AbsenceType  string          `json:"absence_type"`
	Hours        decimal.Decimal `json:"hours"`
	Status       string          `json:"status"`
	Notes        string          `json:"notes"`
}
