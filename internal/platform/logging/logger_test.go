package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := sonic.UnmarshalString(line, &entry); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestLogger_WritesKeyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf, Service: "penca-api", Env: "dev"})

	logger.Debug("hidden")
	logger.Info("aggregated", "penca_id", "p-1", "participants", 3)
	logger.Error("save failed", "error", errors.New("boom"))

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %s", len(lines), buf.String())
	}
	if lines[0]["msg"] != "aggregated" || lines[0]["penca_id"] != "p-1" {
		t.Fatalf("unexpected entry: %v", lines[0])
	}
	if lines[0]["participants"] != float64(3) {
		t.Fatalf("unexpected participants field: %v", lines[0]["participants"])
	}
	if lines[0]["service"] != "penca-api" || lines[0]["env"] != "dev" {
		t.Fatalf("missing base fields: %v", lines[0])
	}
	if lines[1]["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", lines[1])
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	t.Parallel()

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	var buf bytes.Buffer
	logger := New(Options{Level: LevelDebug, Output: &buf})
	logger.InfoContext(ctx, "traced")
	logger.InfoContext(context.Background(), "untraced")

	lines := decodeLines(t, &buf)
	if lines[0]["trace_id"] != traceID.String() || lines[0]["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %v", lines[0])
	}
	if _, ok := lines[1]["trace_id"]; ok {
		t.Fatalf("unexpected trace field without span: %v", lines[1])
	}
}

func TestLogger_WithAndOddArgs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Output: &buf}).With("component", "engine")
	logger.Warn("odd", "dangling")

	lines := decodeLines(t, &buf)
	if lines[0]["component"] != "engine" {
		t.Fatalf("missing With field: %v", lines[0])
	}
	if v, ok := lines[0]["dangling"]; !ok || v != nil {
		t.Fatalf("dangling key must be logged as null: %v", lines[0])
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Level
		wantErr bool
	}{
		{raw: "debug", want: LevelDebug},
		{raw: "", want: LevelInfo},
		{raw: " INFO ", want: LevelInfo},
		{raw: "warning", want: LevelWarn},
		{raw: "error", want: LevelError},
		{raw: "verbose", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, %v; want %v", tc.raw, got, err, tc.want)
		}
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var logger *Logger
	logger.Info("no panic")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
