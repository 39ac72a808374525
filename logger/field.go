package logger

import (
	"math"
	"time"

	"github.com/kinkinyang/zhmclog/core"
)

// Field constructors for the values this library records about HMC
// interactions: resource names and URIs, request counts, timings, and
// credentials that must never appear in output.

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Kind: core.KindString, Str: val}
}

// Int creates an integer field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Kind: core.KindInt, Num: int64(val)}
}

// Int64 creates an integer field from an int64
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Kind: core.KindInt, Num: val}
}

// Float64 creates a float field; the value is packed into the integer
// slot via its IEEE 754 bits
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Kind: core.KindFloat, Num: int64(math.Float64bits(val))}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	var n int64
	if val {
		n = 1
	}
	return core.Field{Key: key, Kind: core.KindBool, Num: n}
}

// Time creates a timestamp field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Kind: core.KindTime, Num: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Kind: core.KindDuration, Num: int64(val)}
}

// Err creates an error field under the key "error"
func Err(err error) core.Field {
	f := core.Field{Key: "error", Kind: core.KindError}
	if err != nil {
		f.Str = err.Error()
	}
	return f
}

// Secret creates a field for a credential value such as a password or
// session token. The value is carried on the field but every renderer
// shows core.SecretMask in its place.
func Secret(key, val string) core.Field {
	return core.Field{Key: key, Kind: core.KindSecret, Str: val}
}

// Any creates a field holding an arbitrary value
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Kind: core.KindAny, Any: val}
}
