package trace

import (
	"fmt"
	"reflect"

	"github.com/kinkinyang/zhmclog/core"
	"github.com/kinkinyang/zhmclog/logger"
)

// Logger names used by the library. Consumers attach output handlers to
// these via logger.Get.
const (
	// APILoggerName receives the entry/exit records of wrapped API
	// functions, at the debug level.
	APILoggerName = "zhmclog.api"
	// HMCLoggerName receives records about interactions with the HMC
	// itself, at the debug level.
	HMCLoggerName = "zhmclog.hmc"
)

// Caps on the rendered size of argument and result representations, so
// large payloads cannot blow up log records.
const (
	maxArgsRepr   = 500
	maxResultRepr = 1000
)

// Logged wraps an API function or method so that every call initiated
// from outside the function's own library emits a pre-call and a
// post-call debug record through the shared API logger:
//
//	==> Client.GetCPC(), args: ("CPC1")
//	<== Client.GetCPC(), result: (&{...}, <nil>)
//
// Calls between packages of the same library are never logged. The
// wrapper changes nothing else: arguments, results and panics pass
// through unmodified, and a call that panics produces no exit record.
//
// The display name and the destination logger are resolved once, when
// Logged is applied; when the API logger is not enabled for debug
// records a wrapped call costs little more than the reflective call
// itself.
//
// Logged is meant to be applied at definition time, typically in a
// constructor or package variable. Applying it to anything that is not a
// non-nil function value is a programming error and panics immediately.
func Logged[F any](fn F) F {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Sprintf("trace.Logged must be applied to a function or method value, got %T", fn))
	}
	if v.IsNil() {
		panic("trace.Logged must be applied to a non-nil function or method value")
	}
	return loggedValue(v, namespaceOf(v)).Interface().(F)
}

// loggedValue builds the wrapper for v. The namespace is the top-level
// namespace of the library the wrapped function belongs to; callers
// inside it are not logged.
func loggedValue(v reflect.Value, namespace string) reflect.Value {
	name := displayName(v)
	log := logger.Get(APILoggerName)
	variadic := v.Type().IsVariadic()

	return reflect.MakeFunc(v.Type(), func(in []reflect.Value) []reflect.Value {
		// Enabled is a single atomic load; the caller check walks the
		// stack and only runs when the logger can emit at all.
		logIt := log.Enabled(core.DebugLevel) && externalCaller(namespace)

		if logIt {
			log.Debugf("==> %s, args: %s", name, tupleRepr(in, maxArgsRepr))
		}

		var out []reflect.Value
		if variadic {
			out = v.CallSlice(in)
		} else {
			out = v.Call(in)
		}

		if logIt {
			log.Debugf("<== %s, result: %s", name, resultRepr(out, maxResultRepr))
		}
		return out
	})
}
