package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted textual date form.
const DateLayout = "2006-01-02"

// MonthLayout is the layout of month keys.
const MonthLayout = "2006-01"

type (
	Date struct {
		time.Time
	}

	// SaleInput holds the raw fields supplied by the caller for a registration.
	SaleInput struct {
		Product   string
		Seller    string
		Quantity  int
		UnitPrice decimal.Decimal
		Date      string
	}

	// Sale is an immutable registered sale. TotalValue is always Quantity * UnitPrice.
	Sale struct {
		ID         int64
		Product    string
		Seller     string
		Quantity   int
		UnitPrice  decimal.Decimal
		TotalValue decimal.Decimal
		Date       Date
	}
)

// ParseDate parses a YYYY-MM-DD calendar date. Out of range days such as
// 2024-02-30 are rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Reason: "must be a valid YYYY-MM-DD date"}
	}
	return Date{Time: t}, nil
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// MonthKey returns the YYYY-MM month the date falls in.
func (d Date) MonthKey() string {
	return d.Format(MonthLayout)
}

// Validate checks every field and returns the first problem as a *ValidationError.
func (in SaleInput) Validate() error {
	if strings.TrimSpace(in.Product) == "" {
		return &ValidationError{Field: "product", Reason: "must not be empty"}
	}
	if strings.TrimSpace(in.Seller) == "" {
		return &ValidationError{Field: "seller", Reason: "must not be empty"}
	}
	if in.Quantity <= 0 {
		return &ValidationError{Field: "quantity", Reason: "must be greater than zero"}
	}
	if !in.UnitPrice.IsPositive() {
		return &ValidationError{Field: "unit_price", Reason: "must be greater than zero"}
	}
	if _, err := ParseDate(in.Date); err != nil {
		return err
	}
	return nil
}

// NewSale validates in and builds the sale with the given id. Labels are
// trimmed and the total value is computed here, never supplied.
func NewSale(id int64, in SaleInput) (Sale, error) {
	if err := in.Validate(); err != nil {
		return Sale{}, err
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return Sale{}, err
	}
	return Sale{
		ID:         id,
		Product:    strings.TrimSpace(in.Product),
		Seller:     strings.TrimSpace(in.Seller),
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		TotalValue: in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity))),
		Date:       date,
	}, nil
}
