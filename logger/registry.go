package logger

import "sync"

var (
	registryMu sync.Mutex
	registry   = make(map[string]*Logger)
)

// Get returns the process-wide logger with the given name, creating it
// on first access. A given name maps to exactly one Logger for the
// lifetime of the process.
//
// If the logger has no handlers yet, a NullHandler is attached, so the
// library stays silent until a consumer attaches an output handler and
// sets a level:
//
//	log := logger.Get(trace.APILoggerName)
//	log.AddHandler(handler.NewWriterHandler(handler.WriterConfig{Writer: os.Stdout}))
//	log.SetLevel(logger.DebugLevel)
//
// Repeated calls with the same name never attach duplicate NullHandlers.
func Get(name string) *Logger {
	registryMu.Lock()
	l, ok := registry[name]
	if !ok {
		l = newLogger(name)
		registry[name] = l
	}
	registryMu.Unlock()

	l.ensureHandler()
	return l
}
