package logger_test

import (
	"io"
	"os"

	"github.com/kinkinyang/zhmclog/formatter"
	"github.com/kinkinyang/zhmclog/handler"
	"github.com/kinkinyang/zhmclog/logger"
)

// Request a named logger and send its records to stdout. Without the
// AddHandler call the logger stays silent.
func Example() {
	log := logger.Get("zhmclog.hmc")
	log.AddHandler(handler.NewWriterHandler(handler.WriterConfig{
		Writer: os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			IncludeLogger: true,
		}),
	}))
	log.SetLevel(logger.DebugLevel)

	log.Debug("request sent", logger.String("uri", "/api/cpcs"))
}

// Fan a logger's records out to several destinations at once.
func ExampleGet_multipleDestinations() {
	log := logger.Get("zhmclog.hmc")
	log.AddHandler(handler.NewMultiHandler(
		handler.NewWriterHandler(handler.WriterConfig{Writer: io.Discard}),
		handler.NewWriterHandler(handler.WriterConfig{
			Writer:    io.Discard,
			Formatter: formatter.NewJSONFormatter(formatter.Config{IncludeLogger: true}),
		}),
	))
}
