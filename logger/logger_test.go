package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	cases := []struct {
		env, level string
		want       zapcore.Level
	}{
		{"local", "", zapcore.DebugLevel},
		{"dev", "warn", zapcore.WarnLevel},
		{"prod", "", zapcore.InfoLevel},
		{"prod", "error", zapcore.ErrorLevel},
	}
	for _, c := range cases {
		t.Run(c.env+"/"+c.level, func(t *testing.T) {
			l, err := New(c.env, c.level)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if !l.Core().Enabled(c.want) {
				t.Errorf("level %v not enabled", c.want)
			}
			if c.want > zapcore.DebugLevel && l.Core().Enabled(c.want-1) {
				t.Errorf("level %v unexpectedly enabled", c.want-1)
			}
		})
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New("staging"); err == nil {
		t.Error("expected error for unknown environment")
	}
	if _, err := New("local", "chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}
