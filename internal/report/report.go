// Package report assembles aggregate statistics into named report structures.
//
// The functions in this file are pure: the same sale snapshot always yields
// the same report.
package report

import (
	"errors"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"vendas/internal/analytics"
	"vendas/internal/core"
)

// DefaultRankingLimit is the ranking size used by the general report.
const DefaultRankingLimit = 5

type (
	// GeneralReport is the overview of every registered sale.
	GeneralReport struct {
		TotalValue   decimal.Decimal
		SaleCount    int
		BySeller     map[string]core.SellerStats
		ByProduct    map[string]core.ProductStats
		ByMonth      map[string]decimal.Decimal
		RankingLimit int
		TopSellers   []analytics.Ranked[decimal.Decimal]
		TopProducts  []analytics.Ranked[int]
		// BestMonth is nil when there are no sales.
		BestMonth *core.MonthTotal
	}

	// SellerReport details the sales of one seller.
	SellerReport struct {
		Seller string
		core.SellerStats
		ProductQuantities map[string]int
		Sales             []core.Sale
	}

	// ProductReport details the sales of one product.
	ProductReport struct {
		Product string
		core.ProductStats
		SellerQuantities map[string]int
		Sales            []core.Sale
	}

	// MonthlyReport holds the per-month totals and the best month.
	MonthlyReport struct {
		ByMonth   map[string]decimal.Decimal
		BestMonth core.MonthTotal
	}
)

// General builds the overview report. An empty snapshot yields zero totals
// and empty mappings, never an error; a negative limit is a validation error.
func General(sales []core.Sale, limit int) (GeneralReport, error) {
	r := GeneralReport{
		TotalValue:   analytics.Total(sales),
		SaleCount:    len(sales),
		BySeller:     analytics.BySeller(sales),
		ByProduct:    analytics.ByProduct(sales),
		ByMonth:      analytics.ByMonth(sales),
		RankingLimit: limit,
	}

	var err error
	if r.TopSellers, err = analytics.RankSellers(r.BySeller, limit); err != nil {
		return GeneralReport{}, err
	}
	if r.TopProducts, err = analytics.RankProducts(r.ByProduct, limit); err != nil {
		return GeneralReport{}, err
	}

	best, err := analytics.BestMonth(r.ByMonth)
	switch {
	case err == nil:
		r.BestMonth = &best
	case !errors.Is(err, core.ErrEmptyData):
		return GeneralReport{}, err
	}
	return r, nil
}

// Months lists the monthly totals in ascending month order.
func (r GeneralReport) Months() []core.MonthTotal {
	return analytics.Months(r.ByMonth)
}

// Seller reports the sales whose seller equals name exactly. Without any
// matching sale it fails with a *core.NotFoundError.
func Seller(sales []core.Sale, name string) (SellerReport, error) {
	matched := analytics.Filter(sales, func(s core.Sale) bool { return s.Seller == name })
	if len(matched) == 0 {
		return SellerReport{}, &core.NotFoundError{Kind: "seller", Name: name}
	}
	return SellerReport{
		Seller:            name,
		SellerStats:       analytics.BySeller(matched)[name],
		ProductQuantities: analytics.QuantityBy(matched, func(s core.Sale) string { return s.Product }),
		Sales:             matched,
	}, nil
}

// Product reports the sales whose product equals name exactly. Without any
// matching sale it fails with a *core.NotFoundError.
func Product(sales []core.Sale, name string) (ProductReport, error) {
	matched := analytics.Filter(sales, func(s core.Sale) bool { return s.Product == name })
	if len(matched) == 0 {
		return ProductReport{}, &core.NotFoundError{Kind: "product", Name: name}
	}
	return ProductReport{
		Product:          name,
		ProductStats:     analytics.ByProduct(matched)[name],
		SellerQuantities: analytics.QuantityBy(matched, func(s core.Sale) string { return s.Seller }),
		Sales:            matched,
	}, nil
}

// Monthly returns the per-month totals with the best month. It fails with
// core.ErrEmptyData when there are no sales.
func Monthly(sales []core.Sale) (MonthlyReport, error) {
	byMonth := analytics.ByMonth(sales)
	best, err := analytics.BestMonth(byMonth)
	if err != nil {
		return MonthlyReport{}, err
	}
	return MonthlyReport{ByMonth: byMonth, BestMonth: best}, nil
}

// Months lists the monthly totals in ascending month order.
func (r MonthlyReport) Months() []core.MonthTotal {
	return analytics.Months(r.ByMonth)
}

// SearchSellers returns the distinct seller names containing query,
// ignoring case, in ascending order.
func SearchSellers(sales []core.Sale, query string) ([]string, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil, &core.ValidationError{Field: "query", Reason: "must not be empty"}
	}
	var names []string
	for seller := range analytics.BySeller(sales) {
		if strings.Contains(strings.ToLower(seller), query) {
			names = append(names, seller)
		}
	}
	slices.Sort(names)
	return names, nil
}
