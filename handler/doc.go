// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to outputs.
//
// All handlers are synchronous: an entry is fully processed before
// Handle returns, and entries must never be retained afterwards because
// the emitting logger recycles them. Buffering and flushing are the
// concern of whatever the consumer attaches.
//
// Built-in handlers:
//
//   - NullHandler discards everything; the registry attaches one to each
//     new logger so the library is silent by default.
//   - WriterHandler writes formatted entries to any io.Writer.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - ZapHandler forwards entries into an application's zap logger.
package handler
