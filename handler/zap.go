package handler

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kinkinyang/zhmclog/core"
)

// ZapHandler forwards log entries into a zap logger, so applications that
// already log with zap can route this library's records into their own
// sinks. Level and field types are mapped onto their zap equivalents and
// the emitting logger's name is carried as the zap logger name.
//
// Fatal and Panic control flow stays with the emitting Logger; the
// adapter writes through the zapcore.Core so that zap's own exit and
// panic hooks never fire a second time.
type ZapHandler struct {
	core zapcore.Core
}

// NewZapHandler creates a handler that writes into the given zap logger.
func NewZapHandler(logger *zap.Logger) *ZapHandler {
	return &ZapHandler{core: logger.Core()}
}

// Handle converts the entry and writes it if the zap core accepts its level
func (h *ZapHandler) Handle(entry *core.Entry) error {
	ent := zapcore.Entry{
		Level:      zapLevel(entry.Level),
		Time:       entry.Time,
		LoggerName: entry.Logger,
		Message:    entry.Message,
	}
	ce := h.core.Check(ent, nil)
	if ce == nil {
		return nil
	}

	fields := make([]zapcore.Field, 0, len(entry.Fields))
	for _, f := range entry.Fields {
		fields = append(fields, zapField(f))
	}
	ce.Write(fields...)
	return nil
}

// Close flushes the zap core
func (h *ZapHandler) Close() error {
	return h.core.Sync()
}

// zapLevel maps a core.Level to a zapcore.Level. Fatal and Panic map to
// zap's error level: the side effect (exit, panic) belongs to the
// emitting Logger, not to the sink.
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// zapField converts a core.Field to a zap field. Secret values are
// masked here as well; the raw value never reaches the zap core.
func zapField(f core.Field) zapcore.Field {
	switch f.Kind {
	case core.KindString:
		return zap.String(f.Key, f.Str)
	case core.KindInt:
		return zap.Int64(f.Key, f.Num)
	case core.KindFloat:
		return zap.Float64(f.Key, f.Float())
	case core.KindBool:
		return zap.Bool(f.Key, f.Num == 1)
	case core.KindTime:
		return zap.Time(f.Key, time.Unix(0, f.Num))
	case core.KindDuration:
		return zap.Duration(f.Key, time.Duration(f.Num))
	case core.KindError:
		return zap.String(f.Key, f.Str)
	case core.KindSecret:
		return zap.String(f.Key, core.SecretMask)
	default:
		return zap.Any(f.Key, f.Any)
	}
}
