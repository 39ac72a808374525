// Package logger provides the process-wide registry of named loggers.
//
// Get returns the logger for a name, creating it on first access. Every
// fresh logger carries a single discard handler and an Info threshold,
// so nothing is printed or routed anywhere until a consumer explicitly
// attaches an output handler. This keeps the library silent by default
// while leaving output format and destination entirely to the consumer:
//
//	log := logger.Get(trace.APILoggerName)
//	log.AddHandler(handler.NewWriterHandler(handler.WriterConfig{
//	    Writer: os.Stdout,
//	}))
//	log.SetLevel(logger.DebugLevel)
//
// Loggers are safe for concurrent use. The level is atomic and handler
// attachment is serialized, so concurrent first-time Gets of the same
// name still end up with exactly one discard handler.
package logger
