// Package receipt renders payment receipts: amount in words, printable PDF
// and the spreadsheet export of the payment list.
package receipt

import (
	"strings"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "GH₵"
	currencyMajor  = "Ghana cedis"
	currencyMinor  = "pesewas"
)

// AmountInWords spells a money amount, e.g. 150.50 ->
// "One hundred fifty Ghana cedis and fifty pesewas".
func AmountInWords(amount decimal.Decimal) string {
	amount = amount.Abs().Round(2)
	whole := amount.Truncate(0)
	minor := amount.Sub(whole).Shift(2).IntPart()

	words := num2words.Convert(int(whole.IntPart())) + " " + currencyMajor
	if minor > 0 {
		words += " and " + num2words.Convert(int(minor)) + " " + currencyMinor
	}
	return capitalize(words)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// FormatAmount renders 1500 as "GH₵ 1,500.00".
func FormatAmount(amount decimal.Decimal) string {
	return formatAmount(CurrencySymbol, amount)
}

func formatAmount(symbol string, amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + symbol + " " + b.String() + "." + frac
}
