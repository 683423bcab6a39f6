package payroll

import (
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/salarycategory"

	"github.com/shopspring/decimal"
)

// Inputs are USD amounts entered on the payroll form.
type Inputs struct {
	Category         string
	ExperienceYears  decimal.Decimal
	AdditionalAmount decimal.Decimal
	Advances         decimal.Decimal
	Loans            decimal.Decimal
	OtherDeductions  decimal.Decimal
	OvertimeHours    decimal.Decimal
	OvertimeRate     decimal.Decimal
}

type Result struct {
	Category        salarycategory.Category
	ExperienceTotal decimal.Decimal
	OvertimeAmount  decimal.Decimal
	GrossSalary     decimal.Decimal
	TotalDeduction  decimal.Decimal
	NetSalary       decimal.Decimal
}

// Calculate applies
//
//	gross = min + admin + qualification + experience*years + additional + overtimeHours*overtimeRate
//	net   = gross - (advances + loans + other)
func Calculate(in Inputs) (Result, error) {
	category, err := salarycategory.Find(in.Category)
	if err != nil {
		return Result{}, err
	}

	for _, v := range []decimal.Decimal{
		in.ExperienceYears, in.AdditionalAmount, in.Advances,
		in.Loans, in.OtherDeductions, in.OvertimeHours, in.OvertimeRate,
	} {
		if v.IsNegative() {
			return Result{}, payrollerrors.ErrNegativeAmount
		}
	}

	experienceTotal := category.ExperienceAllowance.Mul(in.ExperienceYears)
	overtime := in.OvertimeHours.Mul(in.OvertimeRate)

	gross := category.MinSalary.
		Add(category.AdminLevel).
		Add(category.QualificationAllowance).
		Add(experienceTotal).
		Add(in.AdditionalAmount).
		Add(overtime)

	deduction := in.Advances.Add(in.Loans).Add(in.OtherDeductions)

	return Result{
		Category:        category,
		ExperienceTotal: experienceTotal,
		OvertimeAmount:  overtime,
		GrossSalary:     gross,
		TotalDeduction:  deduction,
		NetSalary:       gross.Sub(deduction),
	}, nil
}
