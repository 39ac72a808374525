package logger

import (
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/kinkinyang/zhmclog/core"
	"github.com/kinkinyang/zhmclog/handler"
)

// osExit is a variable to allow overriding os.Exit in tests
var osExit = os.Exit

// Logger is a named logger. Unlike an immutable logger it can be
// reconfigured after creation: consumers attach output handlers and set
// the severity threshold on the instance returned by Get. The level is
// atomic and the handler list is copy-on-write, so logging never takes
// the write lock.
type Logger struct {
	name  string
	level atomic.Int32

	mu       sync.RWMutex
	handlers []handler.Handler
}

func newLogger(name string) *Logger {
	l := &Logger{name: name}
	l.level.Store(int32(core.InfoLevel))
	return l
}

// Name returns the logger's registry name
func (l *Logger) Name() string {
	return l.name
}

// Level returns the current severity threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel sets the severity threshold
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether a record at the given level would be processed
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.Level()
}

// AddHandler attaches an output handler. Handlers run in attach order.
func (l *Logger) AddHandler(h handler.Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	handlers := make([]handler.Handler, len(l.handlers)+1)
	copy(handlers, l.handlers)
	handlers[len(l.handlers)] = h
	l.handlers = handlers
}

// RemoveHandler detaches a previously attached handler. It reports
// whether the handler was found.
func (l *Logger) RemoveHandler(h handler.Handler) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, existing := range l.handlers {
		if existing == h {
			handlers := make([]handler.Handler, 0, len(l.handlers)-1)
			handlers = append(handlers, l.handlers[:i]...)
			handlers = append(handlers, l.handlers[i+1:]...)
			l.handlers = handlers
			return true
		}
	}
	return false
}

// Handlers returns a snapshot of the attached handlers
func (l *Logger) Handlers() []handler.Handler {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.handlers
}

// ensureHandler attaches a NullHandler if the logger has none, so a
// freshly requested logger produces no output anywhere. The check and
// the attach happen under one lock; concurrent first-time access cannot
// attach duplicates.
func (l *Logger) ensureHandler() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.handlers) == 0 {
		l.handlers = []handler.Handler{handler.NewNullHandler()}
	}
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	// Level check before any allocation
	if level < l.Level() {
		return
	}
	l.log(level, msg, fields)
}

// log dispatches a record to the attached handlers
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	l.mu.RLock()
	handlers := l.handlers
	l.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	for _, h := range handlers {
		// A broken handler must not starve the others
		_ = h.Handle(entry)
	}

	core.PutEntry(entry)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.Level() {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message and exits the program with os.Exit(1)
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	osExit(1)
}

// Panic logs a panic message and panics
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	panic(msg)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.Level() {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.Level() {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.Level() {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.Level() {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}
