// Package ingest feeds external sale records into a sale store one at a time.
package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"vendas/internal/core"
	applog "vendas/internal/log"
	"vendas/internal/sales"
)

// Columns of an input row, in order.
const (
	colProduct = iota
	colSeller
	colQuantity
	colUnitPrice
	colDate
	numColumns
)

// RowError describes a rejected input line.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Result summarises an ingestion.
type Result struct {
	Registered int
	Rejected   []RowError
}

// Loader registers records read from CSV sources.
type Loader struct {
	store  sales.Registrar
	logger *applog.Logger
}

func NewLoader(store sales.Registrar, logger *applog.Logger) *Loader {
	if logger == nil {
		logger = applog.Nop()
	}
	return &Loader{store: store, logger: logger.WithComponent(applog.ComponentIngest)}
}

// LoadFile opens path and loads it with LoadCSV.
func (l *Loader) LoadFile(ctx context.Context, path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open sales file: %w", err)
	}
	defer f.Close()

	res, err := l.LoadCSV(ctx, f)
	if err != nil {
		return res, fmt.Errorf("load %s: %w", path, err)
	}
	l.logger.InfoContext(ctx, "Sales file loaded",
		applog.FieldOperation, applog.OpIngest,
		applog.FieldPath, path,
		"registered", res.Registered,
		"rejected", len(res.Rejected))
	return res, nil
}

// LoadCSV reads rows of product,seller,quantity,unit_price,date. A first
// row whose quantity is not an integer is treated as a header and skipped.
// Malformed or invalid rows are collected in the result and do not stop the
// load; read errors and non-validation store errors do.
func (l *Loader) LoadCSV(ctx context.Context, r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var res Result
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return res, fmt.Errorf("read csv: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if res.Registered == 0 && len(res.Rejected) == 0 && isHeader(record) {
			continue
		}

		in, err := parseRecord(record)
		if err == nil {
			_, err = l.store.Register(ctx, in)
		}
		switch {
		case err == nil:
			res.Registered++
		case errors.Is(err, core.ErrValidation):
			l.logger.WarnContext(ctx, "Skipping invalid sale row", applog.FieldLine, line, applog.FieldError, err)
			res.Rejected = append(res.Rejected, RowError{Line: line, Err: err})
		default:
			return res, fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func isHeader(record []string) bool {
	if len(record) <= colQuantity {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(record[colQuantity]))
	return err != nil
}

func parseRecord(record []string) (core.SaleInput, error) {
	if len(record) != numColumns {
		return core.SaleInput{}, &core.ValidationError{
			Field:  "record",
			Reason: fmt.Sprintf("expected %d fields, got %d", numColumns, len(record)),
		}
	}
	qty, err := strconv.Atoi(strings.TrimSpace(record[colQuantity]))
	if err != nil {
		return core.SaleInput{}, &core.ValidationError{Field: "quantity", Reason: "must be an integer"}
	}
	price, err := core.ParseDecimal(record[colUnitPrice])
	if err != nil {
		return core.SaleInput{}, &core.ValidationError{Field: "unit_price", Reason: "must be a decimal number"}
	}
	return core.SaleInput{
		Product:   record[colProduct],
		Seller:    record[colSeller],
		Quantity:  qty,
		UnitPrice: price,
		Date:      strings.TrimSpace(record[colDate]),
	}, nil
}
