package core

import "github.com/shopspring/decimal"

// SellerStats summarises the sales of one seller.
// AverageValue is only meaningful when SaleCount > 0.
type SellerStats struct {
	TotalValue   decimal.Decimal
	SaleCount    int
	AverageValue decimal.Decimal
}

// ProductStats summarises the sales of one product.
type ProductStats struct {
	TotalQuantity int
	Revenue       decimal.Decimal
	SaleCount     int
}

// MonthTotal is the summed value of a YYYY-MM month.
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}
