package formatter

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/kinkinyang/zhmclog/core"
)

// JSONFormatter renders each entry as a single JSON object per line.
// Timestamp, logger name, level and message come first, then caller
// information when enabled, then the entry's fields as top-level
// members keyed by field name.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format renders an entry as a JSON line
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.appendEntry(buf, entry)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// FormatTo renders an entry as a JSON line directly into the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()
	defer putBuffer(buf)

	f.appendEntry(buf, entry)

	_, err := w.Write(buf.Bytes())
	return err
}

func (f *JSONFormatter) appendEntry(buf *bytes.Buffer, entry *core.Entry) {
	buf.WriteString(`{"time":"`)
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte('"')

	if f.IncludeLogger && entry.Logger != "" {
		buf.WriteString(`,"logger":`)
		writeJSONString(buf, entry.Logger)
	}

	buf.WriteString(`,"level":"`)
	buf.WriteString(entry.Level.String())
	buf.WriteString(`","message":`)
	writeJSONString(buf, entry.Message)

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteString(`,"caller":{"file":`)
		writeJSONString(buf, entry.Caller.ShortFile)
		buf.WriteString(`,"line":`)
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		if entry.Caller.Function != "" {
			buf.WriteString(`,"function":`)
			writeJSONString(buf, entry.Caller.Function)
		}
		buf.WriteByte('}')
	}

	for _, field := range entry.Fields {
		buf.WriteByte(',')
		writeJSONString(buf, field.Key)
		buf.WriteByte(':')
		appendFieldValue(buf, field)
	}

	buf.WriteString("}\n")
}

// writeJSONString writes s as a quoted JSON string. Quotes, backslashes
// and control characters are escaped; everything else, including
// multi-byte runes, passes through unchanged.
func writeJSONString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

// appendFieldValue writes a field's value as a JSON value. Numbers and
// bools stay bare, durations render in their string form ("1.5s"), and
// secret values are replaced by the mask.
func appendFieldValue(buf *bytes.Buffer, field core.Field) {
	switch field.Kind {
	case core.KindString, core.KindError:
		writeJSONString(buf, field.Str)
	case core.KindInt:
		buf.WriteString(strconv.FormatInt(field.Num, 10))
	case core.KindFloat:
		buf.WriteString(strconv.FormatFloat(field.Float(), 'f', -1, 64))
	case core.KindBool:
		buf.WriteString(strconv.FormatBool(field.Num == 1))
	case core.KindTime:
		writeJSONString(buf, time.Unix(0, field.Num).Format(time.RFC3339Nano))
	case core.KindDuration:
		writeJSONString(buf, time.Duration(field.Num).String())
	case core.KindSecret:
		writeJSONString(buf, core.SecretMask)
	default:
		writeJSONString(buf, field.StringValue())
	}
}
