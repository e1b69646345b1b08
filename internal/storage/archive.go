package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"vendas/internal/core"
	applog "vendas/internal/log"

	_ "modernc.org/sqlite"
)

// Run is one archived export: the sale snapshot and its monthly totals.
type Run struct {
	ID         string
	CreatedAt  time.Time
	Sales      []core.Sale
	Monthly    []core.MonthTotal
	TotalValue decimal.Decimal
}

// RunSummary is the stored header of an export run.
type RunSummary struct {
	ID         string
	CreatedAt  time.Time
	SaleCount  int
	TotalValue decimal.Decimal
}

// SQLiteArchive writes export runs to a SQLite database. It is write-mostly:
// the program never rebuilds its sale store from the archive.
type SQLiteArchive struct {
	db     *sql.DB
	logger *applog.Logger
}

func NewSQLiteArchive(dbPath string, logger *applog.Logger) (*SQLiteArchive, error) {
	if logger == nil {
		logger = applog.Nop()
	}
	logger = logger.WithComponent(applog.ComponentStorage)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := RunMigrations(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Debug("Archive schema ready", applog.FieldOperation, applog.OpMigrate, "version", version, applog.FieldPath, dbPath)

	return &SQLiteArchive{db: db, logger: logger}, nil
}

func (a *SQLiteArchive) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// SaveRun stores run in a single transaction. An empty ID is replaced by a
// new UUID; the stored ID is returned.
func (a *SQLiteArchive) SaveRun(ctx context.Context, run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO export_runs (id, created_at, sale_count, total_value) VALUES (?, ?, ?, ?)`,
		run.ID, run.CreatedAt, len(run.Sales), run.TotalValue.String()); err != nil {
		return "", fmt.Errorf("insert export run: %w", err)
	}

	saleStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO sales (run_id, sale_id, product, seller, quantity, unit_price, total_value, sale_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare sale insert: %w", err)
	}
	defer saleStmt.Close()

	for _, s := range run.Sales {
		if _, err := saleStmt.ExecContext(ctx,
			run.ID, s.ID, s.Product, s.Seller, s.Quantity,
			s.UnitPrice.String(), s.TotalValue.String(), s.Date.String()); err != nil {
			return "", fmt.Errorf("insert sale %d: %w", s.ID, err)
		}
	}

	for _, m := range run.Monthly {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO monthly_totals (run_id, month, total_value) VALUES (?, ?, ?)`,
			run.ID, m.Month, m.Total.String()); err != nil {
			return "", fmt.Errorf("insert monthly total %s: %w", m.Month, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit export run: %w", err)
	}

	a.logger.InfoContext(ctx, "Export run archived",
		applog.FieldRunID, run.ID,
		applog.FieldSaleCount, len(run.Sales),
		applog.FieldTotalValue, run.TotalValue.String())
	return run.ID, nil
}

// GetRun returns the header of a stored run.
func (a *SQLiteArchive) GetRun(ctx context.Context, id string) (RunSummary, error) {
	var (
		summary RunSummary
		total   string
	)
	err := a.db.QueryRowContext(ctx,
		`SELECT id, created_at, sale_count, total_value FROM export_runs WHERE id = ?`, id).
		Scan(&summary.ID, &summary.CreatedAt, &summary.SaleCount, &total)
	if errors.Is(err, sql.ErrNoRows) {
		return RunSummary{}, &core.NotFoundError{Kind: "export run", Name: id}
	}
	if err != nil {
		return RunSummary{}, fmt.Errorf("get export run: %w", err)
	}
	if summary.TotalValue, err = decimal.NewFromString(total); err != nil {
		return RunSummary{}, fmt.Errorf("parse run total %q: %w", total, err)
	}
	return summary, nil
}

// MonthlyTotals returns the stored monthly totals of a run in month order.
func (a *SQLiteArchive) MonthlyTotals(ctx context.Context, runID string) ([]core.MonthTotal, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT month, total_value FROM monthly_totals WHERE run_id = ? ORDER BY month`, runID)
	if err != nil {
		return nil, fmt.Errorf("query monthly totals: %w", err)
	}
	defer rows.Close()

	var out []core.MonthTotal
	for rows.Next() {
		var m core.MonthTotal
		var total string
		if err := rows.Scan(&m.Month, &total); err != nil {
			return nil, fmt.Errorf("scan monthly total: %w", err)
		}
		if m.Total, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("parse monthly total %q: %w", total, err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// SellerTotals sums the archived sale values of a run per seller.
func (a *SQLiteArchive) SellerTotals(ctx context.Context, runID string) (map[string]decimal.Decimal, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT seller, total_value FROM sales WHERE run_id = ? ORDER BY sale_id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query sales: %w", err)
	}
	defer rows.Close()

	out := make(map[string]decimal.Decimal)
	for rows.Next() {
		var seller, total string
		if err := rows.Scan(&seller, &total); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		v, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("parse sale total %q: %w", total, err)
		}
		out[seller] = out[seller].Add(v)
	}
	return out, rows.Err()
}
