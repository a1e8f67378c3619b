package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]zapcore.Level{
		DebugLevel: zapcore.DebugLevel,
		InfoLevel:  zapcore.InfoLevel,
		WarnLevel:  zapcore.WarnLevel,
		ErrorLevel: zapcore.ErrorLevel,
		"verbose":  zapcore.InfoLevel,
		"":         zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := toZapLevel(in); got != want {
			t.Errorf("toZapLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestGet_ReturnsSingleton(t *testing.T) {
	a := Get(Options{Level: DebugLevel})
	b := Get(Options{Level: ErrorLevel, Format: FormatJSON})
	if a != b {
		t.Fatalf("Get must return the same instance")
	}
	if !a.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("first call's level should win")
	}
}

func TestNewRespectsLevel(t *testing.T) {
	t.Parallel()

	l := New(Options{Level: WarnLevel, Format: FormatJSON})
	if l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info must be disabled at warn level")
	}
	if !l.Desugar().Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn must be enabled")
	}
	if c := l.Component("scheduler"); c == nil || c.SugaredLogger == nil {
		t.Fatalf("component logger missing")
	}
}
