package export

import (
	"context"
	"errors"
	"fmt"

	applog "vendas/internal/log"
	"vendas/internal/storage"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *applog.Logger
}

// NewFactory creates a new sink factory
func NewFactory(logger *applog.Logger) Factory {
	if logger == nil {
		logger = applog.Nop()
	}
	return &DefaultFactory{
		logger: logger.WithComponent(applog.ComponentExport),
	}
}

// CreateSinks implements Factory.CreateSinks
func (f *DefaultFactory) CreateSinks(_ context.Context, config Config) (*SinkSet, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	set := &SinkSet{}
	var cleanups []CleanupFunc
	for _, format := range config.Formats {
		switch format {
		case TextFormat:
			set.Sinks = append(set.Sinks, NewTextSink(config.ReportDir))
		case MarkdownFormat:
			set.Sinks = append(set.Sinks, NewMarkdownSink(config.ReportDir))
		case SQLiteFormat:
			archive, err := storage.NewSQLiteArchive(config.SQLiteDBPath, f.logger)
			if err != nil {
				closeAll(cleanups)
				return nil, fmt.Errorf("failed to initialize SQLite archive: %w", err)
			}
			set.Sinks = append(set.Sinks, NewSQLiteSink(archive, config.SQLiteDBPath))
			cleanups = append(cleanups, archive.Close)
		default:
			closeAll(cleanups)
			return nil, fmt.Errorf("unsupported export format: %s", format)
		}
		f.logger.Debug("Initialized export sink", applog.FieldFormat, format.String())
	}

	set.Cleanup = func() error { return closeAll(cleanups) }
	return set, nil
}

func closeAll(cleanups []CleanupFunc) error {
	var errs []error
	for _, c := range cleanups {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
