package memory

import (
	"context"
	"strconv"
	"sync"

	"vendas/internal/core"
	applog "vendas/internal/log"
	"vendas/internal/sales"
)

var _ sales.Store = (*Store)(nil)

// Store is an append-only, in-memory sale log. Registrations are serialised;
// readers take a copy and never observe a half-built record.
type Store struct {
	mu     sync.RWMutex
	lastID int64
	items  []core.Sale
	logger *applog.Logger
}

func New(logger *applog.Logger) *Store {
	if logger == nil {
		logger = applog.Nop()
	}
	return &Store{logger: logger.WithComponent(applog.ComponentSales)}
}

// Register validates in and appends the resulting sale. A rejected input
// leaves the store and the id counter untouched.
func (s *Store) Register(ctx context.Context, in core.SaleInput) (core.Sale, error) {
	if err := in.Validate(); err != nil {
		s.logger.WarnContext(ctx, "Sale rejected",
			applog.FieldOperation, applog.OpRegister,
			applog.FieldProduct, in.Product,
			applog.FieldSeller, in.Seller,
			applog.FieldError, err)
		return core.Sale{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sale, err := core.NewSale(s.lastID+1, in)
	if err != nil {
		return core.Sale{}, err
	}
	s.items = append(s.items, sale)
	s.lastID = sale.ID

	s.logger.DebugContext(ctx, "Sale registered",
		applog.NewFields().
			WithOperation(applog.OpRegister).
			WithSale(sale.ID, sale.Product, sale.Seller, sale.TotalValue.String()).
			ToSlice()...)
	return sale, nil
}

// All returns a copy of the registered sales in registration order.
func (s *Store) All(_ context.Context) ([]core.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Sale(nil), s.items...), nil
}

// Len returns the number of registered sales.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the sale with the given id.
func (s *Store) Get(_ context.Context, id int64) (core.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// ids are 1-based and dense, so the position is id-1
	if id < 1 || id > int64(len(s.items)) {
		return core.Sale{}, &core.NotFoundError{Kind: "sale", Name: strconv.FormatInt(id, 10)}
	}
	return s.items[id-1], nil
}
