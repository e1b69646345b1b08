package analytics

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"vendas/internal/core"
)

// Ranked is one position of a ranking.
type Ranked[V any] struct {
	Key   string
	Value V
}

// Rank orders values descending by metric, breaking ties by ascending key,
// and keeps at most limit entries. compare follows the cmp.Compare contract.
func Rank[V any](values map[string]V, limit int, compare func(a, b V) int) ([]Ranked[V], error) {
	if limit < 0 {
		return nil, &core.ValidationError{Field: "limit", Reason: "must not be negative"}
	}
	out := make([]Ranked[V], 0, len(values))
	for k, v := range values {
		out = append(out, Ranked[V]{Key: k, Value: v})
	}
	slices.SortFunc(out, func(a, b Ranked[V]) int {
		if c := compare(b.Value, a.Value); c != 0 {
			return c
		}
		return strings.Compare(a.Key, b.Key)
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// RankValues ranks a key -> amount mapping.
func RankValues(values map[string]decimal.Decimal, limit int) ([]Ranked[decimal.Decimal], error) {
	return Rank(values, limit, decimal.Decimal.Cmp)
}

// RankSellers ranks sellers by total sold value.
func RankSellers(stats map[string]core.SellerStats, limit int) ([]Ranked[decimal.Decimal], error) {
	totals := make(map[string]decimal.Decimal, len(stats))
	for seller, st := range stats {
		totals[seller] = st.TotalValue
	}
	return RankValues(totals, limit)
}

// RankProducts ranks products by total quantity sold.
func RankProducts(stats map[string]core.ProductStats, limit int) ([]Ranked[int], error) {
	quantities := make(map[string]int, len(stats))
	for product, st := range stats {
		quantities[product] = st.TotalQuantity
	}
	return Rank(quantities, limit, cmp.Compare[int])
}

// BestMonth picks the month with the highest total; ties go to the earliest month.
func BestMonth(monthly map[string]decimal.Decimal) (core.MonthTotal, error) {
	if len(monthly) == 0 {
		return core.MonthTotal{}, fmt.Errorf("best month: %w", core.ErrEmptyData)
	}
	var best core.MonthTotal
	first := true
	for month, total := range monthly {
		switch c := total.Cmp(best.Total); {
		case first, c > 0, c == 0 && month < best.Month:
			best = core.MonthTotal{Month: month, Total: total}
			first = false
		}
	}
	return best, nil
}
