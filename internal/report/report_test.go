package report

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"vendas/internal/core"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func buildSales(t *testing.T, inputs ...core.SaleInput) []core.Sale {
	t.Helper()
	out := make([]core.Sale, 0, len(inputs))
	for i, in := range inputs {
		s, err := core.NewSale(int64(i+1), in)
		if err != nil {
			t.Fatalf("sale %d: %v", i, err)
		}
		out = append(out, s)
	}
	return out
}

func in(product, seller string, qty int, price, date string) core.SaleInput {
	return core.SaleInput{Product: product, Seller: seller, Quantity: qty, UnitPrice: d(price), Date: date}
}

func threeSales(t *testing.T) []core.Sale {
	return buildSales(t,
		in("Notebook Dell", "Maria Silva", 2, "3500.00", "2024-01-15"),
		in("Mouse Logitech", "João Santos", 5, "89.90", "2024-01-16"),
		in("Teclado Mecânico", "Maria Silva", 3, "250.00", "2024-01-17"),
	)
}

func TestGeneralThreeSales(t *testing.T) {
	r, err := General(threeSales(t), DefaultRankingLimit)
	if err != nil {
		t.Fatalf("general: %v", err)
	}
	if !r.TotalValue.Equal(d("8199.50")) || r.SaleCount != 3 {
		t.Fatalf("unexpected totals: %s %d", r.TotalValue, r.SaleCount)
	}
	maria := r.BySeller["Maria Silva"]
	if !maria.TotalValue.Equal(d("7750")) || maria.SaleCount != 2 || !maria.AverageValue.Equal(d("3875")) {
		t.Fatalf("unexpected seller stats: %+v", maria)
	}
	if len(r.TopSellers) != 2 || r.TopSellers[0].Key != "Maria Silva" {
		t.Fatalf("unexpected top sellers: %v", r.TopSellers)
	}
	if r.TopProducts[0].Key != "Mouse Logitech" || r.TopProducts[0].Value != 5 {
		t.Fatalf("unexpected top products: %v", r.TopProducts)
	}
	if r.BestMonth == nil || r.BestMonth.Month != "2024-01" || !r.BestMonth.Total.Equal(d("8199.5")) {
		t.Fatalf("unexpected best month: %+v", r.BestMonth)
	}
	if len(r.ByProduct) != 3 || len(r.ByMonth) != 1 {
		t.Fatalf("unexpected mappings: %v %v", r.ByProduct, r.ByMonth)
	}
}

func TestGeneralEmpty(t *testing.T) {
	r, err := General(nil, DefaultRankingLimit)
	if err != nil {
		t.Fatalf("general on empty store must not fail: %v", err)
	}
	if !r.TotalValue.IsZero() || r.SaleCount != 0 {
		t.Fatalf("expected zero totals, got %s %d", r.TotalValue, r.SaleCount)
	}
	if len(r.BySeller) != 0 || len(r.ByProduct) != 0 || len(r.ByMonth) != 0 {
		t.Fatalf("expected empty mappings")
	}
	if r.BestMonth != nil || len(r.TopSellers) != 0 || len(r.TopProducts) != 0 {
		t.Fatalf("expected no rankings and no best month")
	}
}

func TestGeneralNegativeLimit(t *testing.T) {
	if _, err := General(threeSales(t), -1); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGeneralIsIdempotent(t *testing.T) {
	sales := threeSales(t)
	a, _ := General(sales, 2)
	b, _ := General(sales, 2)
	if !a.TotalValue.Equal(b.TotalValue) || len(a.TopSellers) != len(b.TopSellers) {
		t.Fatalf("reports differ")
	}
	for i := range a.TopSellers {
		if a.TopSellers[i].Key != b.TopSellers[i].Key {
			t.Fatalf("rankings differ at %d", i)
		}
	}
}

func TestSeller(t *testing.T) {
	r, err := Seller(threeSales(t), "Maria Silva")
	if err != nil {
		t.Fatalf("seller: %v", err)
	}
	if !r.TotalValue.Equal(d("7750")) || r.SaleCount != 2 || !r.AverageValue.Equal(d("3875")) {
		t.Fatalf("unexpected stats: %+v", r.SellerStats)
	}
	if r.ProductQuantities["Notebook Dell"] != 2 || r.ProductQuantities["Teclado Mecânico"] != 3 {
		t.Fatalf("unexpected quantities: %v", r.ProductQuantities)
	}
	if len(r.Sales) != 2 || r.Sales[0].ID != 1 || r.Sales[1].ID != 3 {
		t.Fatalf("unexpected sales: %v", r.Sales)
	}

	_, err = Seller(threeSales(t), "Unknown Person")
	var nf *core.NotFoundError
	if !errors.As(err, &nf) || nf.Kind != "seller" || nf.Name != "Unknown Person" {
		t.Fatalf("expected seller not found, got %v", err)
	}
	if _, err := Seller(threeSales(t), "maria silva"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("matching must be exact, got %v", err)
	}
}

func TestProduct(t *testing.T) {
	r, err := Product(threeSales(t), "Mouse Logitech")
	if err != nil {
		t.Fatalf("product: %v", err)
	}
	if r.TotalQuantity != 5 || !r.Revenue.Equal(d("449.5")) || r.SaleCount != 1 {
		t.Fatalf("unexpected stats: %+v", r.ProductStats)
	}
	if r.SellerQuantities["João Santos"] != 5 {
		t.Fatalf("unexpected seller quantities: %v", r.SellerQuantities)
	}
	if _, err := Product(threeSales(t), "Impressora"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMonthly(t *testing.T) {
	sales := buildSales(t,
		in("A", "X", 1, "100", "2024-02-01"),
		in("B", "Y", 1, "300", "2024-01-10"),
		in("C", "Z", 2, "150", "2024-02-20"),
	)
	r, err := Monthly(sales)
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	// 2024-01 = 300, 2024-02 = 400
	if r.BestMonth.Month != "2024-02" || !r.BestMonth.Total.Equal(d("400")) {
		t.Fatalf("unexpected best month: %+v", r.BestMonth)
	}
	months := r.Months()
	if len(months) != 2 || months[0].Month != "2024-01" {
		t.Fatalf("unexpected months: %v", months)
	}

	if _, err := Monthly(nil); !errors.Is(err, core.ErrEmptyData) {
		t.Fatalf("expected ErrEmptyData, got %v", err)
	}
}

func TestSearchSellers(t *testing.T) {
	sales := buildSales(t,
		in("A", "Maria Silva", 1, "1", "2024-01-01"),
		in("A", "Mariana Costa", 1, "1", "2024-01-01"),
		in("A", "João Santos", 1, "1", "2024-01-01"),
		in("B", "Maria Silva", 1, "1", "2024-01-02"),
	)
	got, err := SearchSellers(sales, "MARIA")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 2 || got[0] != "Maria Silva" || got[1] != "Mariana Costa" {
		t.Fatalf("unexpected matches: %v", got)
	}
	if got, _ := SearchSellers(sales, "pedro"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
	if _, err := SearchSellers(sales, "  "); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
