package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestJSONLogger_FieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: slog.LevelInfo, Format: FormatJSON, App: "guarderia", Output: &buf})

	log.Debug("hidden", nil)
	log.With(map[string]any{"module": "billing"}).Info("payment recorded", map[string]any{
		"guarderia_id": "g1",
		"monto":        50000,
	})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line (debug filtered), got %d: %s", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["msg"] != "payment recorded" || entry["app"] != "guarderia" || entry["module"] != "billing" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["guarderia_id"] != "g1" || entry["monto"] != float64(50000) {
		t.Fatalf("missing fields: %v", entry)
	}
}

func TestTextLogger_WritesErrors(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: slog.LevelDebug, Format: FormatText, Output: &buf})

	log.Error("store failed", map[string]any{"error": errors.New("boom"), "attempt": 1})
	if !strings.Contains(buf.String(), "store failed") || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestNop_Discards(t *testing.T) {
	Nop().With(map[string]any{"a": 1}).Error("nothing", map[string]any{"error": errors.New("x")})
}
