package currency

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

type FormatOptions struct {
	Currency   string
	Locale     string
	ShowSymbol bool
}

var symbols = map[string]string{
	USD: "$",
	TRY: "₺",
}

var defaultLocales = map[string]string{
	USD: "en-US",
	TRY: "tr-TR",
}

// Format renders amount with locale grouping and exactly two fraction digits.
// Rounding is half away from zero.
func Format(amount decimal.Decimal, opts FormatOptions) string {
	if opts.Currency == "" {
		opts.Currency = USD
	}

	locale := opts.Locale
	if locale == "" {
		locale = defaultLocales[opts.Currency]
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	rounded := amount.Round(2).InexactFloat64()
	text := message.NewPrinter(tag).Sprint(number.Decimal(rounded, number.Scale(2)))

	if !opts.ShowSymbol {
		return text
	}
	if sym, ok := symbols[opts.Currency]; ok {
		return sym + text
	}
	return opts.Currency + " " + text
}
