package log

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelDebug, Component: ComponentSales, Output: &buf})

	l.Debug("sale registered", FieldSaleID, 1)
	out := buf.String()
	if !strings.Contains(out, "component=sales") || !strings.Contains(out, "sale_id=1") {
		t.Fatalf("unexpected output: %q", out)
	}

	buf.Reset()
	l.WithComponent(ComponentReport).Info("built")
	if !strings.Contains(buf.String(), "component=report") {
		t.Fatalf("expected report component, got %q", buf.String())
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: slog.LevelWarn, Output: &buf})
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "component=app") {
		t.Fatalf("expected default component, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q expected %v, got %v", in, want, got)
		}
	}
}

func TestLogFields(t *testing.T) {
	f := NewFields().
		WithOperation(OpRegister).
		WithSale(3, "Monitor LG", "Carlos Andrade", "2400").
		WithError(errors.New("boom")).
		WithError(nil)
	if f[FieldOperation] != OpRegister || f[FieldSaleID] != int64(3) || f[FieldError] != "boom" {
		t.Fatalf("unexpected fields: %v", f)
	}
	if len(f.ToSlice()) != len(f)*2 {
		t.Fatalf("unexpected slice length %d", len(f.ToSlice()))
	}
}
