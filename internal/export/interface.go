package export

import (
	"context"

	"vendas/internal/core"
	"vendas/internal/report"
)

// Format names an export sink
type Format string

const (
	TextFormat     Format = "text"
	MarkdownFormat Format = "markdown"
	SQLiteFormat   Format = "sqlite"
)

// String implements fmt.Stringer
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is known
func (f Format) IsValid() bool {
	switch f {
	case TextFormat, MarkdownFormat, SQLiteFormat:
		return true
	default:
		return false
	}
}

// Snapshot is what every sink receives: the sales and the report built from them.
type Snapshot struct {
	Sales  []core.Sale
	Report report.GeneralReport
}

// Sink writes a snapshot somewhere and returns where it went
type Sink interface {
	Format() Format
	Export(ctx context.Context, snap Snapshot) (location string, err error)
}

// CleanupFunc releases sink resources
type CleanupFunc func() error

// SinkSet holds the sinks created for a config and their combined cleanup
type SinkSet struct {
	Sinks   []Sink
	Cleanup CleanupFunc
}

// Factory creates sinks based on configuration
type Factory interface {
	CreateSinks(ctx context.Context, config Config) (*SinkSet, error)
}

// Config holds configuration for sink creation
type Config struct {
	Formats      []Format
	ReportDir    string
	SQLiteDBPath string
}
