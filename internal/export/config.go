package export

import (
	"fmt"

	"vendas/internal/config"
)

// FromAppConfig converts the application config to export config
func FromAppConfig(appConfig *config.Config) (Config, error) {
	if appConfig == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}

	formats := make([]Format, 0, len(appConfig.ExportFormats))
	for _, f := range appConfig.ExportFormats {
		format := Format(f)
		if !format.IsValid() {
			return Config{}, fmt.Errorf("invalid export format in config: %s", f)
		}
		formats = append(formats, format)
	}

	return Config{
		Formats:      formats,
		ReportDir:    appConfig.ReportDir,
		SQLiteDBPath: appConfig.SQLiteDBPath,
	}, nil
}

// Validate validates the export configuration
func (c Config) Validate() error {
	seen := make(map[Format]bool, len(c.Formats))
	for _, f := range c.Formats {
		if !f.IsValid() {
			return fmt.Errorf("invalid export format: %s", f)
		}
		if seen[f] {
			return fmt.Errorf("duplicate export format: %s", f)
		}
		seen[f] = true

		switch f {
		case TextFormat, MarkdownFormat:
			if c.ReportDir == "" {
				return fmt.Errorf("report directory is required for %s export", f)
			}
		case SQLiteFormat:
			if c.SQLiteDBPath == "" {
				return fmt.Errorf("SQLite database path is required for sqlite export")
			}
		}
	}
	return nil
}

// GetFormats returns all valid export formats
func GetFormats() []Format {
	return []Format{TextFormat, MarkdownFormat, SQLiteFormat}
}
