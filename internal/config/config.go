package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Export format names accepted in EXPORT_FORMATS.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatSQLite   = "sqlite"
)

const maxRankingLimit = 100

type Config struct {
	// Input
	SalesInputFile string
	LoadSampleData bool

	// Reports
	ReportDir     string
	RankingLimit  int
	ExportFormats []string

	// SQLite archive
	SQLiteDBPath string

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		SalesInputFile: getEnv("SALES_INPUT_FILE", ""),
		LoadSampleData: getEnvBool("LOAD_SAMPLE_DATA", true),

		ReportDir:     getEnv("REPORT_DIR", "relatorios"),
		RankingLimit:  getEnvInt("RANKING_LIMIT", 5),
		ExportFormats: getEnvList("EXPORT_FORMATS", []string{FormatText, FormatMarkdown}),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", filepath.Join("relatorios", "vendas.db")),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.SalesInputFile != "" {
		if info, err := os.Stat(c.SalesInputFile); err != nil {
			errors = append(errors, fmt.Sprintf("sales input file '%s' is not readable: %v", c.SalesInputFile, err))
		} else if info.IsDir() {
			errors = append(errors, fmt.Sprintf("sales input file '%s' is a directory", c.SalesInputFile))
		}
	}

	if c.RankingLimit < 0 || c.RankingLimit > maxRankingLimit {
		errors = append(errors, fmt.Sprintf("invalid ranking limit %d: must be between 0 and %d", c.RankingLimit, maxRankingLimit))
	}

	validFormats := []string{FormatText, FormatMarkdown, FormatSQLite}
	for _, f := range c.ExportFormats {
		isValid := false
		for _, v := range validFormats {
			if f == v {
				isValid = true
				break
			}
		}
		if !isValid {
			errors = append(errors, fmt.Sprintf("invalid export format '%s': must be one of %v", f, validFormats))
		}
	}

	if c.exportsFiles() && strings.TrimSpace(c.ReportDir) == "" {
		errors = append(errors, "report directory cannot be empty when exporting text or markdown")
	}

	if c.Exports(FormatSQLite) && c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty when exporting to sqlite")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errors = append(errors, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Exports reports whether format is one of the configured export formats.
func (c *Config) Exports(format string) bool {
	for _, f := range c.ExportFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (c *Config) exportsFiles() bool {
	return c.Exports(FormatText) || c.Exports(FormatMarkdown)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}
