package helper

import "github.com/shopspring/decimal"

// Money columns are NUMERIC(10,2).
const MoneyScale = 2

var MoneyLimit = decimal.New(1, 8)

// ValidMoney reports whether d fits a money column without rounding.
func ValidMoney(d decimal.Decimal) bool {
	return d.Equal(d.Round(MoneyScale)) && d.Abs().LessThan(MoneyLimit)
}
