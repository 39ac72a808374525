package core

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// FieldKind discriminates how a Field stores its value
type FieldKind uint8

const (
	KindString FieldKind = iota
	KindInt
	KindFloat
	KindBool
	KindTime
	KindDuration
	KindError
	// KindSecret marks credential values (passwords, session tokens);
	// every renderer shows SecretMask instead of the value.
	KindSecret
	KindAny
)

// SecretMask replaces the value of secret fields in any rendering
const SecretMask = "********"

// Field is a structured key-value pair attached to a log record.
// Numeric kinds share the Num slot: integers and counts directly,
// booleans as 0/1, timestamps as nanoseconds since the epoch, durations
// as nanoseconds, floats via their IEEE 754 bits. Any is the fallback
// for arbitrary values and the only kind that can allocate.
type Field struct {
	Key  string
	Kind FieldKind
	Num  int64
	Str  string
	Any  interface{}
}

// Float returns the float64 packed into the Num slot of a KindFloat field
func (f Field) Float() float64 {
	return math.Float64frombits(uint64(f.Num))
}

// StringValue returns the string representation of a field's value.
// Secret fields always render as the mask, never as their value.
func (f Field) StringValue() string {
	switch f.Kind {
	case KindString:
		return f.Str
	case KindInt:
		return strconv.FormatInt(f.Num, 10)
	case KindFloat:
		return strconv.FormatFloat(f.Float(), 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(f.Num == 1)
	case KindTime:
		return time.Unix(0, f.Num).Format(time.RFC3339)
	case KindDuration:
		return time.Duration(f.Num).String()
	case KindError:
		return f.Str
	case KindSecret:
		return SecretMask
	case KindAny:
		return fmt.Sprintf("%v", f.Any)
	default:
		return ""
	}
}
