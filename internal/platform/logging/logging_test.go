package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewDefaultsToInfoJSON(t *testing.T) {
	t.Parallel()

	logger, err := New("web", Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatal("expected info level enabled")
	}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug level disabled")
	}
}

func TestNewHonorsDebugLevel(t *testing.T) {
	t.Parallel()

	logger, err := New("web", Config{Level: "DEBUG", Format: "console"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatal("expected debug level enabled")
	}
}

func TestNewRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	if _, err := New("web", Config{Level: "chatty"}); err == nil {
		t.Fatal("expected invalid level error")
	}
	if _, err := New("web", Config{Format: "xml"}); err == nil {
		t.Fatal("expected invalid format error")
	}
}

func TestOrNop(t *testing.T) {
	t.Parallel()

	if OrNop(nil) == nil {
		t.Fatal("expected no-op logger")
	}
}
