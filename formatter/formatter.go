package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/kinkinyang/zhmclog/core"
)

// Formatter renders a log entry into bytes.
type Formatter interface {
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter streams a rendered entry straight into a writer,
// skipping the intermediate byte slice. Handlers probe for it and fall
// back to Format when a formatter does not implement it.
type WriterFormatter interface {
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config carries the options shared by all formatters.
type Config struct {
	// IncludeLogger includes the emitting logger's name in the output
	IncludeLogger bool
	// IncludeCaller includes file and line of the logging call site
	IncludeCaller bool
	// TimestampFormat overrides the time layout (empty for RFC3339)
	TimestampFormat string
}

// Buffers above this size are not returned to the pool.
const maxPooledBuffer = 64 * 1024

var bufPool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

func getBuffer() *bytes.Buffer {
	buf := bufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= maxPooledBuffer {
		bufPool.Put(buf)
	}
}
