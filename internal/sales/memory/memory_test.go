package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"vendas/internal/core"
)

func sale(product, seller string, qty int, price, date string) core.SaleInput {
	return core.SaleInput{
		Product:   product,
		Seller:    seller,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(price),
		Date:      date,
	}
}

func TestStoreRegisterAssignsSequentialIDs(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	inputs := []core.SaleInput{
		sale("Notebook Dell", "Maria Silva", 2, "3500.00", "2024-01-15"),
		sale("Mouse Logitech", "João Santos", 5, "89.90", "2024-01-16"),
		sale("Teclado Mecânico", "Maria Silva", 3, "250.00", "2024-01-17"),
	}
	for i, in := range inputs {
		got, err := s.Register(ctx, in)
		if err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
		if got.ID != int64(i+1) {
			t.Fatalf("expected id %d, got %d", i+1, got.ID)
		}
		want := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if !got.TotalValue.Equal(want) {
			t.Fatalf("expected total %s, got %s", want, got.TotalValue)
		}
	}

	all, err := s.All(ctx)
	if err != nil || len(all) != 3 {
		t.Fatalf("unexpected all: len=%d err=%v", len(all), err)
	}
	for i, sl := range all {
		if sl.ID != int64(i+1) {
			t.Fatalf("expected insertion order, got id %d at %d", sl.ID, i)
		}
	}
}

func TestStoreRejectedRegistrationKeepsCounter(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	if _, err := s.Register(ctx, sale("A", "X", 1, "10", "2024-01-01")); err != nil {
		t.Fatalf("register: %v", err)
	}

	bads := []core.SaleInput{
		sale("A", "X", 0, "10", "2024-01-01"),
		sale("A", "X", 1, "-1", "2024-01-01"),
		sale("", "X", 1, "10", "2024-01-01"),
		sale("A", " ", 1, "10", "2024-01-01"),
		sale("A", "X", 1, "10", "2024-02-31"),
	}
	for i, in := range bads {
		if _, err := s.Register(ctx, in); !errors.Is(err, core.ErrValidation) {
			t.Fatalf("case %d expected validation error, got %v", i, err)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("expected store size 1, got %d", s.Len())
	}

	next, err := s.Register(ctx, sale("B", "Y", 1, "5", "2024-01-02"))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if next.ID != 2 {
		t.Fatalf("failed registrations consumed ids: got %d", next.ID)
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	if _, err := s.Register(ctx, sale("A", "X", 1, "10", "2024-01-01")); err != nil {
		t.Fatalf("register: %v", err)
	}
	all, _ := s.All(ctx)
	all[0].Seller = "mutated"

	again, _ := s.All(ctx)
	if again[0].Seller != "X" {
		t.Fatalf("store was mutated through snapshot")
	}
}

func TestStoreGet(t *testing.T) {
	s := New(nil)
	ctx := context.Background()
	if _, err := s.Register(ctx, sale("A", "X", 1, "10", "2024-01-01")); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, err := s.Get(ctx, 1)
	if err != nil || got.Product != "A" {
		t.Fatalf("unexpected get: %+v err=%v", got, err)
	}
	for _, id := range []int64{0, 2, -1} {
		if _, err := s.Get(ctx, id); !errors.Is(err, core.ErrNotFound) {
			t.Fatalf("id %d expected not found, got %v", id, err)
		}
	}
}

func TestStoreConcurrentRegistrationsKeepIDsUnique(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Register(ctx, sale("A", "X", 1, "1", "2024-01-01"))
			_, _ = s.All(ctx)
		}()
	}
	wg.Wait()

	all, _ := s.All(ctx)
	if len(all) != n {
		t.Fatalf("expected %d sales, got %d", n, len(all))
	}
	for i, sl := range all {
		if sl.ID != int64(i+1) {
			t.Fatalf("expected dense increasing ids, got %d at %d", sl.ID, i)
		}
	}
}
