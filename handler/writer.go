package handler

import (
	"io"
	"os"
	"sync"

	"github.com/kinkinyang/zhmclog/core"
	"github.com/kinkinyang/zhmclog/formatter"
)

// WriterHandler writes formatted log entries synchronously to an
// io.Writer. Writes are serialized with a mutex; buffering, flushing and
// rotation are left to the writer the consumer supplies.
type WriterHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

// WriterConfig holds configuration for a writer handler
type WriterConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter with logger names)
	Formatter formatter.Formatter
}

// NewWriterHandler creates a new writer handler
func NewWriterHandler(cfg WriterConfig) *WriterHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{IncludeLogger: true})
	}

	h := &WriterHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache WriterFormatter for the allocation-free path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats and writes an entry
func (h *WriterHandler) Handle(entry *core.Entry) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	return writeErr
}

// Close closes the underlying writer if it is closable
func (h *WriterHandler) Close() error {
	if c, ok := h.writer.(io.Closer); ok && c != os.Stderr && c != os.Stdout {
		return c.Close()
	}
	return nil
}
