// Package formatter renders log entries into bytes.
//
// The library itself never decides how records look; a formatter is only
// involved once a consumer attaches an output handler. TextFormatter
// produces the classic "timestamp - name - LEVEL - message" line,
// JSONFormatter one JSON object per record. Both implement the optional
// WriterFormatter interface to write into an io.Writer without an
// intermediate allocation, using a pooled bytes.Buffer.
package formatter
