package report

import (
	"context"
	"fmt"

	"vendas/internal/core"
	applog "vendas/internal/log"
	"vendas/internal/sales"
)

// Service builds reports from the current snapshot of a sale store.
type Service struct {
	store        sales.Lister
	rankingLimit int
	logger       *applog.Logger
}

func NewService(store sales.Lister, rankingLimit int, logger *applog.Logger) *Service {
	if logger == nil {
		logger = applog.Nop()
	}
	return &Service{
		store:        store,
		rankingLimit: rankingLimit,
		logger:       logger.WithComponent(applog.ComponentReport),
	}
}

func (s *Service) snapshot(ctx context.Context) ([]core.Sale, error) {
	all, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sales: %w", err)
	}
	return all, nil
}

// General builds the overview report.
func (s *Service) General(ctx context.Context) (GeneralReport, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return GeneralReport{}, err
	}
	r, err := General(all, s.rankingLimit)
	if err != nil {
		return GeneralReport{}, fmt.Errorf("general report: %w", err)
	}
	s.logger.DebugContext(ctx, "General report built",
		applog.FieldSaleCount, r.SaleCount,
		applog.FieldTotalValue, r.TotalValue.String())
	return r, nil
}

// Seller builds the report of one seller.
func (s *Service) Seller(ctx context.Context, name string) (SellerReport, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return SellerReport{}, err
	}
	r, err := Seller(all, name)
	if err != nil {
		return SellerReport{}, fmt.Errorf("seller report: %w", err)
	}
	return r, nil
}

// Product builds the report of one product.
func (s *Service) Product(ctx context.Context, name string) (ProductReport, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return ProductReport{}, err
	}
	r, err := Product(all, name)
	if err != nil {
		return ProductReport{}, fmt.Errorf("product report: %w", err)
	}
	return r, nil
}

// Monthly builds the monthly report.
func (s *Service) Monthly(ctx context.Context) (MonthlyReport, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return MonthlyReport{}, err
	}
	r, err := Monthly(all)
	if err != nil {
		return MonthlyReport{}, fmt.Errorf("monthly report: %w", err)
	}
	return r, nil
}

// ResolveSeller maps a partial, case-insensitive name to the single seller it
// matches. An exact name is returned unchanged.
func (s *Service) ResolveSeller(ctx context.Context, query string) (string, error) {
	all, err := s.snapshot(ctx)
	if err != nil {
		return "", err
	}
	names, err := SearchSellers(all, query)
	if err != nil {
		return "", err
	}
	for _, n := range names {
		if n == query {
			return n, nil
		}
	}
	switch len(names) {
	case 0:
		return "", &core.NotFoundError{Kind: "seller", Name: query}
	case 1:
		return names[0], nil
	default:
		s.logger.InfoContext(ctx, "Ambiguous seller name", "query", query, "matches", names)
		return "", &core.ValidationError{Field: "seller", Reason: fmt.Sprintf("%q matches %d sellers: %v", query, len(names), names)}
	}
}
