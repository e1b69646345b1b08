package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"vendas/internal/analytics"
	"vendas/internal/report"
	"vendas/internal/storage"
)

// File names used inside the report directory.
const (
	TextFileName     = "relatorio_geral.txt"
	MarkdownFileName = "relatorio_geral.md"
)

// FileSink renders the general report into a file of the report directory.
type FileSink struct {
	format Format
	path   string
	render func(io.Writer, report.GeneralReport) error
}

func NewTextSink(dir string) *FileSink {
	return &FileSink{format: TextFormat, path: filepath.Join(dir, TextFileName), render: report.WriteText}
}

func NewMarkdownSink(dir string) *FileSink {
	return &FileSink{format: MarkdownFormat, path: filepath.Join(dir, MarkdownFileName), render: report.WriteMarkdown}
}

func (s *FileSink) Format() Format {
	return s.format
}

// Export writes the report, replacing any previous file.
func (s *FileSink) Export(ctx context.Context, snap Snapshot) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", s.path, err)
	}
	w := bufio.NewWriter(f)
	if err := s.render(w, snap.Report); err != nil {
		f.Close()
		return "", fmt.Errorf("render %s report: %w", s.format, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", s.path, err)
	}

	abs, err := filepath.Abs(s.path)
	if err != nil {
		return s.path, nil
	}
	return abs, nil
}

// SQLiteSink archives the snapshot as a new export run.
type SQLiteSink struct {
	archive *storage.SQLiteArchive
	dbPath  string
}

func NewSQLiteSink(archive *storage.SQLiteArchive, dbPath string) *SQLiteSink {
	return &SQLiteSink{archive: archive, dbPath: dbPath}
}

func (s *SQLiteSink) Format() Format {
	return SQLiteFormat
}

func (s *SQLiteSink) Export(ctx context.Context, snap Snapshot) (string, error) {
	id, err := s.archive.SaveRun(ctx, storage.Run{
		Sales:      snap.Sales,
		Monthly:    analytics.Months(snap.Report.ByMonth),
		TotalValue: snap.Report.TotalValue,
	})
	if err != nil {
		return "", fmt.Errorf("archive export run: %w", err)
	}
	return fmt.Sprintf("%s#%s", s.dbPath, id), nil
}
