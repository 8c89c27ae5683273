package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()
	for _, env := range []string{"development", "test", "staging", "production"} {
		log, err := NewLogger(env)
		if err != nil {
			t.Fatalf("NewLogger(%q): %v", env, err)
		}
		if log == nil {
			t.Fatalf("NewLogger(%q): nil logger", env)
		}
	}
}

func TestDevelopmentLoggerEnablesDebug(t *testing.T) {
	t.Parallel()
	dev, err := NewLogger("development")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if !dev.Core().Enabled(zapcore.DebugLevel) {
		t.Error("development logger does not log at debug level")
	}

	prod, err := NewLogger("production")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if prod.Core().Enabled(zapcore.DebugLevel) {
		t.Error("production logger logs at debug level")
	}
}
