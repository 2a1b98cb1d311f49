package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewQuietByDefault(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf, false)

	log.Debug().Msg("debug message")
	log.Info().Msg("info message")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn level, got %q", buf.String())
	}

	log.Warn().Msg("warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("expected output to contain 'warn message', got: %s", buf.String())
	}
}

func TestNewVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf, true)

	log.Debug().Str("store", "ledger.csv").Msg("debug message")
	output := buf.String()
	if !strings.Contains(output, "debug message") || !strings.Contains(output, "store=ledger.csv") {
		t.Errorf("expected debug output with fields, got: %s", output)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), New(buf, true))

	FromContext(ctx).Info().Msg("test")
	if buf.Len() == 0 {
		t.Error("expected log output from retrieved logger")
	}
}

func TestFromContextDefaultLogger(t *testing.T) {
	// Should not panic when no logger is in context.
	FromContext(context.Background()).Info().Msg("discarded")
}
