package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		jsonOutput bool
	}{
		{name: "JSON output mode", jsonOutput: true},
		{name: "Console output mode", jsonOutput: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset global logger
			Logger = nil
			JSONOutput = false

			if err := Initialize(tt.jsonOutput); err != nil {
				t.Fatalf("Initialize() error = %v", err)
			}
			if Logger == nil {
				t.Error("Initialize() did not set global Logger")
			}
			if JSONOutput != tt.jsonOutput {
				t.Errorf("Initialize() JSONOutput = %v, want %v", JSONOutput, tt.jsonOutput)
			}

			Cleanup()
			Logger = zap.NewNop().Sugar()
		})
	}
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{VerbosityUser, zapcore.WarnLevel},
		{VerbosityInfo, zapcore.InfoLevel},
		{VerbosityDebug, zapcore.DebugLevel},
		{VerbosityTrace, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestPackageHelpersNilSafe(t *testing.T) {
	Logger = nil
	defer func() {
		Logger = zap.NewNop().Sugar()
	}()

	// Must not panic with a nil global.
	Info("info")
	Infof("info %d", 1)
	Infow("info", "k", "v")
	Warn("warn")
	Warnf("warn %d", 1)
	Warnw("warn", "k", "v")
	Error("error")
	Errorf("error %d", 1)
	Errorw("error", "k", "v")
	Debug("debug")
	Debugf("debug %d", 1)
	Debugw("debug", "k", "v")
	Cleanup()
}

func TestMinimalEncoderOutput(t *testing.T) {
	enc := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.WarnLevel,
		Message:    "skipping unparsable file",
		LoggerName: "scan",
	}
	fields := []zapcore.Field{zap.String("file", "lib/distribution.ts")}

	buf, err := enc.EncodeEntry(entry, fields)
	if err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	defer buf.Free()

	out := buf.String()
	for _, want := range []string{"WARN", "scan", "skipping unparsable file", "lib/distribution.ts"} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded entry missing %q: %s", want, out)
		}
	}
}

func TestMinimalEncoderClone(t *testing.T) {
	enc := newMinimalEncoder()
	clone := enc.Clone()
	if clone == nil {
		t.Fatal("Clone() returned nil")
	}
	if _, ok := clone.(*minimalEncoder); !ok {
		t.Errorf("Clone() returned %T, want *minimalEncoder", clone)
	}
}
