package payroll

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// FormAmount is a payroll input as the form sends it: a number, a numeric
// string, or a blank field. Blank and null read as zero.
type FormAmount struct {
	decimal.Decimal
}

func NewFormAmount(d decimal.Decimal) FormAmount {
	return FormAmount{Decimal: d}
}

func (a *FormAmount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || len(bytes.TrimSpace(bytes.Trim(trimmed, `"`))) == 0 {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(trimmed)
}

type PayrollInputs struct {
	Category         string     `json:"category" binding:"required"`
	ExperienceYears  FormAmount `json:"experience_years"`
	AdditionalAmount FormAmount `json:"additional_amount"`
	Advances         FormAmount `json:"advances"`
	Loans            FormAmount `json:"loans"`
	OtherDeductions  FormAmount `json:"other_deductions"`
	OvertimeHours    FormAmount `json:"overtime_hours"`
	OvertimeRate     FormAmount `json:"overtime_rate"`
}

func (in PayrollInputs) toInputs() Inputs {
	return Inputs{
		Category:         in.Category,
		ExperienceYears:  in.ExperienceYears.Decimal,
		AdditionalAmount: in.AdditionalAmount.Decimal,
		Advances:         in.Advances.Decimal,
		Loans:            in.Loans.Decimal,
		OtherDeductions:  in.OtherDeductions.Decimal,
		OvertimeHours:    in.OvertimeHours.Decimal,
		OvertimeRate:     in.OvertimeRate.Decimal,
	}
}

type CreatePayrollRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	PeriodStart string `json:"period_start" binding:"required"`
	PeriodEnd   string `json:"period_end" binding:"required"`
	PayrollInputs
}

type RegeneratePayrollRequest struct {
	PayrollInputs
}

type GetPayrollsFilterRequest struct {
	Period     string `form:"period"`
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id"`
}

type GetPayrollQuery struct {
	Currency string `form:"currency"`
}

// DisplayAmounts are the headline figures in the requested currency,
// converted at the payroll's stamped rate.
type DisplayAmounts struct {
	Currency                string          `json:"currency"`
	GrossSalary             decimal.Decimal `json:"gross_salary"`
	TotalDeduction          decimal.Decimal `json:"total_deduction"`
	NetSalary               decimal.Decimal `json:"net_salary"`
	GrossSalaryFormatted    string          `json:"gross_salary_formatted"`
	TotalDeductionFormatted string          `json:"total_deduction_formatted"`
	NetSalaryFormatted      string          `json:"net_salary_formatted"`
}

type PayrollResponse struct {
	ID                        string          `json:"id"`
	EmployeeID                string          `json:"employee_id"`
	EmployeeNumber            string          `json:"employee_number,omitempty"`
	EmployeeName              string          `json:"employee_name,omitempty"`
	PeriodStart               string          `json:"period_start"`
	PeriodEnd                 string          `json:"period_end"`
	Category                  string          `json:"category"`
	ExperienceYears           decimal.Decimal `json:"experience_years"`
	GrossSalary               decimal.Decimal `json:"gross_salary"`
	TotalDeduction            decimal.Decimal `json:"total_deduction"`
	NetSalary                 decimal.Decimal `json:"net_salary"`
	ExchangeRate              decimal.Decimal `json:"exchange_rate"`
	ExchangeRateID            *string         `json:"exchange_rate_id,omitempty"`
	ExchangeRateEffectiveFrom *string         `json:"exchange_rate_effective_from,omitempty"`
	ExchangeRateFallback      bool            `json:"exchange_rate_fallback"`
	Display                   *DisplayAmounts `json:"display,omitempty"`
	Status                    string          `json:"status"`
	StatusLabel               string          `json:"status_label"`
	CreatedBy                 string          `json:"created_by"`
	ApprovedBy                *string         `json:"approved_by,omitempty"`
	ApprovedAt                *string         `json:"approved_at,omitempty"`
	PaidAt                    *string         `json:"paid_at,omitempty"`
	PayslipURL                *string         `json:"payslip_url,omitempty"`
	PayslipGeneratedAt        *string         `json:"payslip_generated_at,omitempty"`
}

type PayrollBreakdownLine struct {
	Type      string          `json:"type"`
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	AmountUSD decimal.Decimal `json:"amount_usd"`
	AmountTRY decimal.Decimal `json:"amount_try"`
}

type PayrollBreakdownResponse struct {
	PayrollID      string                 `json:"payroll_id"`
	ExchangeRate   decimal.Decimal        `json:"exchange_rate"`
	Earnings       []PayrollBreakdownLine `json:"earnings"`
	Deductions     []PayrollBreakdownLine `json:"deductions"`
	GrossSalaryUSD decimal.Decimal        `json:"gross_salary_usd"`
	GrossSalaryTRY decimal.Decimal        `json:"gross_salary_try"`
	DeductionUSD   decimal.Decimal        `json:"total_deduction_usd"`
	DeductionTRY   decimal.Decimal        `json:"total_deduction_try"`
	NetSalaryUSD   decimal.Decimal        `json:"net_salary_usd"`
	NetSalaryTRY   decimal.Decimal        `json:"net_salary_try"`
}
