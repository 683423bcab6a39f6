package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/currency"

	"github.com/shopspring/decimal"
)

const payslipLineHeight = 16

// payslipLines lays out the payslip body. The built-in PDF fonts have no
// Arabic glyphs, so lines use component codes and the employee number.
func payslipLines(p Payroll) []string {
	usd := func(v decimal.Decimal) string {
		return currency.Format(v, currency.FormatOptions{Currency: currency.USD, Locale: "en-US"})
	}
	try := func(v decimal.Decimal) string {
		return currency.Format(toTRY(v, p.ExchangeRate), currency.FormatOptions{Currency: currency.TRY, Locale: "en-US"})
	}
	row := func(label string, v decimal.Decimal) string {
		return fmt.Sprintf("%-18s USD %14s   TRY %16s", label, usd(v), try(v))
	}

	employee := p.EmployeeID.String()
	if p.Employee != nil && p.Employee.EmployeeNumber != "" {
		employee = p.Employee.EmployeeNumber
	}

	rateLine := fmt.Sprintf("Exchange rate: 1 USD = %s TRY", p.ExchangeRate.String())
	switch {
	case p.ExchangeRateFallback:
		rateLine += " (default rate)"
	case p.ExchangeRateEffectiveFrom != nil:
		rateLine += " (effective " + p.ExchangeRateEffectiveFrom.Format(time.DateOnly) + ")"
	}

	lines := []string{
		"PAYSLIP",
		"",
		"Payroll: " + p.ID.String(),
		"Employee: " + employee,
		fmt.Sprintf("Period: %s to %s", p.PeriodStart.Format(time.DateOnly), p.PeriodEnd.Format(time.DateOnly)),
		"Experience years: " + p.ExperienceYears.String(),
		rateLine,
		"Status: " + p.Status,
		"",
		"EARNINGS",
	}

	components := p.Components
	if len(components) == 0 {
		components = buildComponents(&p)
	}

	var deductions []string
	for _, c := range components {
		if c.ComponentType == ComponentDeduction {
			deductions = append(deductions, row(c.Code, c.Amount))
			continue
		}
		lines = append(lines, row(c.Code, c.Amount))
	}
	lines = append(lines, row("GROSS", p.GrossSalary), "", "DEDUCTIONS")
	lines = append(lines, deductions...)
	lines = append(lines,
		row("TOTAL DEDUCTIONS", p.TotalDeduction),
		"",
		row("NET PAY", p.NetSalary),
	)

	return lines
}

func buildSimplePayslipPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Payslip"}
	}

	var content strings.Builder
	content.WriteString(fmt.Sprintf("BT\n/F1 10 Tf\n%d TL\n50 800 Td\n", payslipLineHeight))
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Courier /Encoding /WinAnsiEncoding >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

// pdfEscape escapes string delimiters and replaces anything outside
// printable ASCII, which the standard fonts cannot draw.
func pdfEscape(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r < 0x20 || r > 0x7e:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
