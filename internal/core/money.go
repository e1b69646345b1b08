// Package core provides the sale data model, error kinds and the
// formatting helpers shared by reports.
//
// This file contains money parsing and the Brazilian currency format.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "R$"

// ParseDecimal converts a user supplied amount to a decimal.
//
// It accepts both dot (89.90) and comma (89,90) decimal separators, and the
// Brazilian grouped form (1.234,56) where dots group thousands.
//
// Examples:
//   ParseDecimal("3500.00")  -> 3500
//   ParseDecimal("89,90")    -> 89.9
//   ParseDecimal("1.234,56") -> 1234.56
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must not be empty"}
	}
	if strings.Contains(s, ",") {
		if strings.LastIndex(s, ",") < strings.LastIndex(s, ".") {
			return decimal.Zero, &ValidationError{Field: "amount", Reason: "ambiguous separators in " + s}
		}
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "must be a decimal number"}
	}
	return d, nil
}

// FormatCurrency renders v as "R$ 1.234,56": rounded half away from zero to
// cents, period grouping thousands and comma before the cents.
func FormatCurrency(v decimal.Decimal) string {
	fixed := v.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	b.WriteString(CurrencySymbol)
	b.WriteByte(' ')
	b.WriteString(sign)
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(cents)
	return b.String()
}

// ExtractMonth truncates a YYYY-MM-DD string to its YYYY-MM month key.
// Only the shape is checked; calendar validity is ParseDate's job.
func ExtractMonth(date string) (string, error) {
	if len(date) != len(DateLayout) || date[4] != '-' || date[7] != '-' {
		return "", &ValidationError{Field: "date", Reason: "must be in YYYY-MM-DD format"}
	}
	for i := 0; i < len(date); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if date[i] < '0' || date[i] > '9' {
			return "", &ValidationError{Field: "date", Reason: "must be in YYYY-MM-DD format"}
		}
	}
	return date[:7], nil
}
