package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func newBufferLogger() (*SlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	l := slog.New(slog.NewJSONHandler(buf, nil))
	return NewSlogLogger(l), buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	return m
}

func TestSlogLogger_Info(t *testing.T) {
	log, buf := newBufferLogger()

	log.Info(context.Background(), "hello", "k", "v")

	m := decodeLine(t, buf)
	if m["msg"] != "hello" || m["k"] != "v" {
		t.Fatalf("unexpected log record: %v", m)
	}
	if m["level"] != "INFO" {
		t.Fatalf("unexpected level: %v", m["level"])
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newBufferLogger()

	child := log.With("module", "test")
	child.Warn(context.Background(), "careful")

	m := decodeLine(t, buf)
	if m["module"] != "test" {
		t.Fatalf("expected module attribute from With, got: %v", m)
	}
	if m["level"] != "WARN" {
		t.Fatalf("unexpected level: %v", m["level"])
	}
}
