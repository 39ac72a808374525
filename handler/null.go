package handler

import "github.com/kinkinyang/zhmclog/core"

// NullHandler discards every entry. The logger registry attaches one to
// each freshly created logger so that the library stays silent until a
// consumer attaches a real output handler.
type NullHandler struct{}

// NewNullHandler creates a new null handler
func NewNullHandler() *NullHandler {
	return &NullHandler{}
}

// Handle discards the entry
func (h *NullHandler) Handle(_ *core.Entry) error {
	return nil
}

// Close is a no-op
func (h *NullHandler) Close() error {
	return nil
}
