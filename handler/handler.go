package handler

import "github.com/kinkinyang/zhmclog/core"

// Handler defines the interface for log handlers
type Handler interface {
	// Handle processes a log entry. The entry is only valid for the
	// duration of the call; implementations must not retain it.
	Handle(entry *core.Entry) error

	// Close closes the handler and releases resources
	Close() error
}
