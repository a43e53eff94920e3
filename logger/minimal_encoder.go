package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

// Gruvbox-flavored palette: warm, muted, easy on eyes.
const (
	colorReset = "\x1b[0m"
	colorTime  = "\x1b[38;5;108m" // muted cyan-green
	colorName  = "\x1b[38;5;208m" // warm orange
	colorDim   = "\x1b[38;5;245m" // grey for fields
	colorInfo  = "\x1b[38;5;223m" // soft cream
	colorWarn  = "\x1b[38;5;214m" // soft yellow
	colorError = "\x1b[38;5;167m" // warm red
)

// minimalEncoder renders calm single-line console output:
//
//	15:04:05 WARN scan.watcher skipping unparsable file  file=x.ts
//
// Structured fields are delegated to an embedded console encoder stripped of
// its time/level/message keys.
type minimalEncoder struct {
	fields zapcore.Encoder
	pool   buffer.Pool
}

func newMinimalEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.LevelKey = ""
	cfg.NameKey = ""
	cfg.CallerKey = ""
	cfg.MessageKey = ""
	cfg.StacktraceKey = ""
	return &minimalEncoder{
		fields: zapcore.NewConsoleEncoder(cfg),
		pool:   buffer.NewPool(),
	}
}

func (e *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{fields: e.fields.Clone(), pool: e.pool}
}

func (e *minimalEncoder) EncodeEntry(entry zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	tail, err := e.fields.EncodeEntry(entry, fields)
	if err != nil {
		return nil, err
	}
	defer tail.Free()

	line := e.pool.Get()
	line.AppendString(colorTime)
	line.AppendString(entry.Time.Format("15:04:05"))
	line.AppendString(colorReset)
	line.AppendString(" ")

	line.AppendString(levelColor(entry.Level))
	line.AppendString(levelLabel(entry.Level))
	line.AppendString(colorReset)
	line.AppendString(" ")

	if entry.LoggerName != "" {
		line.AppendString(colorName)
		line.AppendString(entry.LoggerName)
		line.AppendString(colorReset)
		line.AppendString(" ")
	}

	line.AppendString(levelColor(entry.Level))
	line.AppendString(entry.Message)
	line.AppendString(colorReset)

	if rendered := strings.TrimRight(tail.String(), "\n"); rendered != "" {
		line.AppendString("  ")
		line.AppendString(colorDim)
		line.AppendString(rendered)
		line.AppendString(colorReset)
	}

	line.AppendString("\n")
	return line, nil
}

func levelLabel(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return "DEBUG"
	case zapcore.InfoLevel:
		return "INFO "
	case zapcore.WarnLevel:
		return "WARN "
	default:
		return "ERROR"
	}
}

func levelColor(level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return colorDim
	case zapcore.InfoLevel:
		return colorInfo
	case zapcore.WarnLevel:
		return colorWarn
	default:
		return colorError
	}
}

// The ObjectEncoder half of zapcore.Encoder is forwarded to the field
// encoder so With() fields survive Clone().

func (e *minimalEncoder) AddArray(key string, marshaler zapcore.ArrayMarshaler) error {
	return e.fields.AddArray(key, marshaler)
}

func (e *minimalEncoder) AddObject(key string, marshaler zapcore.ObjectMarshaler) error {
	return e.fields.AddObject(key, marshaler)
}

func (e *minimalEncoder) AddBinary(key string, value []byte) { e.fields.AddBinary(key, value) }

func (e *minimalEncoder) AddByteString(key string, value []byte) { e.fields.AddByteString(key, value) }

func (e *minimalEncoder) AddBool(key string, value bool) { e.fields.AddBool(key, value) }

func (e *minimalEncoder) AddComplex128(key string, value complex128) {
	e.fields.AddComplex128(key, value)
}

func (e *minimalEncoder) AddComplex64(key string, value complex64) { e.fields.AddComplex64(key, value) }

func (e *minimalEncoder) AddDuration(key string, value time.Duration) {
	e.fields.AddDuration(key, value)
}

func (e *minimalEncoder) AddFloat64(key string, value float64) { e.fields.AddFloat64(key, value) }

func (e *minimalEncoder) AddFloat32(key string, value float32) { e.fields.AddFloat32(key, value) }

func (e *minimalEncoder) AddInt(key string, value int) { e.fields.AddInt(key, value) }

func (e *minimalEncoder) AddInt64(key string, value int64) { e.fields.AddInt64(key, value) }

func (e *minimalEncoder) AddInt32(key string, value int32) { e.fields.AddInt32(key, value) }

func (e *minimalEncoder) AddInt16(key string, value int16) { e.fields.AddInt16(key, value) }

func (e *minimalEncoder) AddInt8(key string, value int8) { e.fields.AddInt8(key, value) }

func (e *minimalEncoder) AddString(key, value string) { e.fields.AddString(key, value) }

func (e *minimalEncoder) AddTime(key string, value time.Time) { e.fields.AddTime(key, value) }

func (e *minimalEncoder) AddUint(key string, value uint) { e.fields.AddUint(key, value) }

func (e *minimalEncoder) AddUint64(key string, value uint64) { e.fields.AddUint64(key, value) }

func (e *minimalEncoder) AddUint32(key string, value uint32) { e.fields.AddUint32(key, value) }

func (e *minimalEncoder) AddUint16(key string, value uint16) { e.fields.AddUint16(key, value) }

func (e *minimalEncoder) AddUint8(key string, value uint8) { e.fields.AddUint8(key, value) }

func (e *minimalEncoder) AddUintptr(key string, value uintptr) { e.fields.AddUintptr(key, value) }

func (e *minimalEncoder) AddReflected(key string, value interface{}) error {
	return e.fields.AddReflected(key, value)
}

func (e *minimalEncoder) OpenNamespace(key string) { e.fields.OpenNamespace(key) }
