package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger()
	assert.NotNil(t, l)

	// All methods should be callable without panicking
	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")
}

func TestNewLoggerWithLevel(t *testing.T) {
	cases := []string{"debug", "info", "warn", "error", "bogus", ""}
	for _, level := range cases {
		l := NewLoggerWithLevel(level)
		assert.NotNil(t, l, "level %q", level)
		l.Info("info message")
	}
}

func TestWithField(t *testing.T) {
	l := NewLogger()

	enriched := l.WithField("key", "value")
	assert.NotNil(t, enriched)

	// The enriched logger is a new instance
	assert.NotSame(t, l, enriched)
	enriched.Info("message with field")
}

func TestWithFields(t *testing.T) {
	l := NewLogger()

	enriched := l.WithFields(map[string]interface{}{
		"one": 1,
		"two": "2",
	})
	assert.NotNil(t, enriched)
	enriched.Info("message with fields")
}

func TestTestLogger(t *testing.T) {
	l := NewTestLogger(t)

	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	l.Fatal("fatal")

	assert.Same(t, l, l.WithField("k", "v"))
	assert.Same(t, l, l.WithFields(map[string]interface{}{"k": "v"}))
}
