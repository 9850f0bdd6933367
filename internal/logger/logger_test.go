package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		level zapcore.Level
	}{
		{name: "console", level: zapcore.InfoLevel},
		{name: "json", json: true, level: zapcore.InfoLevel},
		{name: "debug", debug: true, level: zapcore.DebugLevel},
		{name: "json debug", json: true, debug: true, level: zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New("resume-scorer", tt.json, tt.debug)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !l.Core().Enabled(tt.level) {
				t.Fatalf("expected %s to be enabled", tt.level)
			}
			if tt.level == zapcore.InfoLevel && l.Core().Enabled(zapcore.DebugLevel) {
				t.Fatal("debug must be disabled without the debug flag")
			}
		})
	}
}
