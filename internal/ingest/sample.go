package ingest

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"vendas/internal/core"
)

// SampleSales is a small demonstration data set covering January to March 2024.
func SampleSales() []core.SaleInput {
	row := func(product, seller string, qty int, price, date string) core.SaleInput {
		return core.SaleInput{
			Product:   product,
			Seller:    seller,
			Quantity:  qty,
			UnitPrice: decimal.RequireFromString(price),
			Date:      date,
		}
	}
	return []core.SaleInput{
		row("Notebook Dell", "Maria Silva", 2, "3500.00", "2024-01-15"),
		row("Mouse Logitech", "João Santos", 5, "89.90", "2024-01-16"),
		row("Teclado Mecânico", "Maria Silva", 3, "250.00", "2024-01-17"),
		row("Monitor LG", "Carlos Andrade", 2, "1200.00", "2024-01-20"),
		row("Notebook Dell", "João Santos", 1, "3500.00", "2024-02-05"),
		row("Cadeira Gamer", "Maria Silva", 1, "1100.00", "2024-02-10"),
		row("Mouse Logitech", "Ana Pereira", 10, "85.00", "2024-02-12"),
		row("Teclado Mecânico", "Carlos Andrade", 2, "240.00", "2024-03-01"),
		row("Monitor LG", "João Santos", 1, "1150.00", "2024-03-05"),
	}
}

// LoadSample registers every sample sale.
func (l *Loader) LoadSample(ctx context.Context) (Result, error) {
	var res Result
	for i, in := range SampleSales() {
		if _, err := l.store.Register(ctx, in); err != nil {
			return res, fmt.Errorf("sample sale %d: %w", i+1, err)
		}
		res.Registered++
	}
	l.logger.InfoContext(ctx, "Sample data loaded", "registered", res.Registered)
	return res, nil
}

