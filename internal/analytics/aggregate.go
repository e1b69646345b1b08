// Package analytics groups sales into per-key statistics and ranks them.
// Every function is pure: inputs are never mutated and empty input yields
// empty, non-nil results.
package analytics

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"vendas/internal/core"
)

// Total sums the total value of every sale.
func Total(sales []core.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalValue)
	}
	return total
}

// BySeller groups sales by exact seller name. Averages are exact decimal
// divisions; rounding is left to presentation.
func BySeller(sales []core.Sale) map[string]core.SellerStats {
	stats := make(map[string]core.SellerStats)
	for _, s := range sales {
		st := stats[s.Seller]
		st.TotalValue = st.TotalValue.Add(s.TotalValue)
		st.SaleCount++
		stats[s.Seller] = st
	}
	for seller, st := range stats {
		st.AverageValue = st.TotalValue.Div(decimal.NewFromInt(int64(st.SaleCount)))
		stats[seller] = st
	}
	return stats
}

// ByProduct groups sales by exact product name.
func ByProduct(sales []core.Sale) map[string]core.ProductStats {
	stats := make(map[string]core.ProductStats)
	for _, s := range sales {
		st := stats[s.Product]
		st.TotalQuantity += s.Quantity
		st.Revenue = st.Revenue.Add(s.TotalValue)
		st.SaleCount++
		stats[s.Product] = st
	}
	return stats
}

// ByMonth sums sale values per YYYY-MM month.
func ByMonth(sales []core.Sale) map[string]decimal.Decimal {
	months := make(map[string]decimal.Decimal)
	for _, s := range sales {
		key := s.Date.MonthKey()
		months[key] = months[key].Add(s.TotalValue)
	}
	return months
}

// QuantityBy sums sold quantities grouped by the key returned from keyFn.
func QuantityBy(sales []core.Sale, keyFn func(core.Sale) string) map[string]int {
	out := make(map[string]int)
	for _, s := range sales {
		out[keyFn(s)] += s.Quantity
	}
	return out
}

// Months lists a monthly mapping in ascending month order.
func Months(monthly map[string]decimal.Decimal) []core.MonthTotal {
	out := make([]core.MonthTotal, 0, len(monthly))
	for month, total := range monthly {
		out = append(out, core.MonthTotal{Month: month, Total: total})
	}
	slices.SortFunc(out, func(a, b core.MonthTotal) int {
		return strings.Compare(a.Month, b.Month)
	})
	return out
}

// Filter returns the sales accepted by keep, in input order.
func Filter(sales []core.Sale, keep func(core.Sale) bool) []core.Sale {
	out := []core.Sale{}
	for _, s := range sales {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
