// Package sales defines the ports of the sale record store.
package sales

import (
	"context"

	"vendas/internal/core"
)

type (
	// Registrar validates and appends a sale, assigning the next id.
	Registrar interface {
		Register(ctx context.Context, in core.SaleInput) (core.Sale, error)
	}

	// Lister returns a snapshot of every registered sale in registration order.
	Lister interface {
		All(ctx context.Context) ([]core.Sale, error)
	}

	Store interface {
		Registrar
		Lister
	}
)
