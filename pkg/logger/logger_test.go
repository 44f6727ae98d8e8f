package logger

import (
	"errors"
	"log/slog"
	"os"
	"testing"
)

func TestScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  string
	}{
		{"basic scope", "contact", "contact"},
		{"nested scope", "marketplace.svc", "marketplace.svc"},
		{"empty scope", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Scope(tt.scope)
			if attr.Key != "scope" {
				t.Errorf("Scope() key = %q, want %q", attr.Key, "scope")
			}
			if attr.Value.String() != tt.want {
				t.Errorf("Scope() value = %q, want %q", attr.Value.String(), tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("something went wrong")},
		{"nil error", nil},
		{"wrapped error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			if attr.Key != "error" {
				t.Errorf("Error() key = %q, want %q", attr.Key, "error")
			}
			gotErr := attr.Value.Any()
			if gotErr != tt.err {
				t.Errorf("Error() value = %v, want %v", gotErr, tt.err)
			}
		})
	}
}

func TestNewLogger_DefaultLevel(t *testing.T) {
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("GO_ENV")

	logger := NewLogger()

	if logger == nil {
		t.Fatal("NewLogger() returned nil")
	}

	if !logger.Enabled(nil, slog.LevelInfo) {
		t.Error("NewLogger() should have info level enabled by default")
	}
	if logger.Enabled(nil, slog.LevelDebug) {
		t.Error("NewLogger() should not have debug level enabled by default")
	}
}

func TestNewLogger_Levels(t *testing.T) {
	origLevel := os.Getenv("LOG_LEVEL")
	defer func() {
		if origLevel == "" {
			os.Unsetenv("LOG_LEVEL")
		} else {
			os.Setenv("LOG_LEVEL", origLevel)
		}
	}()

	tests := []struct {
		level   string
		enabled slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			os.Setenv("LOG_LEVEL", tt.level)

			logger := NewLogger()
			if logger == nil {
				t.Fatal("NewLogger() returned nil")
			}
			if !logger.Enabled(nil, tt.enabled) {
				t.Errorf("NewLogger() with LOG_LEVEL=%s should enable %v", tt.level, tt.enabled)
			}
		})
	}
}

func TestHTTPLogger_NoopWithoutFile(t *testing.T) {
	os.Unsetenv("HTTP_LOG_FILE")

	l := NewHTTPLogger()
	// Must not panic when no file is configured
	l.LogRequest("127.0.0.1", "GET", "/pricing", 200, 0, "test-agent", "req-1")
	if err := l.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
