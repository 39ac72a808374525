package trace

import (
	"reflect"
	"runtime"
	"strings"
)

var (
	// selfPkg is this package's import path, resolved from its own
	// runtime function names so it survives forks and vendoring.
	selfPkg = packagePath(runtime.FuncForPC(reflect.ValueOf(packagePath).Pointer()).Name())

	// wrapperPrefix identifies the stack frames of the wrapper closure
	// built in loggedValue, which sit between a caller and the check.
	wrapperPrefix = selfPkg + ".loggedValue"
)

// displayName derives the owner-qualified display name of a function
// value: "f()" for a package-level function, "Owner.f()" for a method or
// a function defined inside another function. Only the immediate owner
// is resolved; deeper nesting is not walked.
func displayName(v reflect.Value) string {
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return "func()"
	}

	full := rf.Name() // e.g. "github.com/acme/hmc.(*Client).GetCPC-fm"
	name := full[strings.LastIndexByte(full, '/')+1:]
	if dot := strings.IndexByte(name, '.'); dot >= 0 {
		name = name[dot+1:] // drop the package qualifier
	}
	// Method values carry a "-fm" suffix, receivers parentheses and a
	// star for pointer receivers.
	name = strings.TrimSuffix(name, "-fm")
	name = strings.NewReplacer("(", "", ")", "", "*", "").Replace(name)
	return name + "()"
}

// namespaceOf returns the top-level namespace of the library defining
// the function value.
func namespaceOf(v reflect.Value) string {
	rf := runtime.FuncForPC(v.Pointer())
	if rf == nil {
		return ""
	}
	return topLevel(packagePath(rf.Name()))
}

// externalCaller reports whether the nearest caller frame below the
// wrapper belongs to a different top-level namespace than the wrapped
// function. Frames of the wrapper itself and of the reflect/runtime
// machinery in between are skipped. No frame state is kept after the
// check returns.
func externalCaller(namespace string) bool {
	var pcs [16]uintptr
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fn := frame.Function
		switch {
		case fn == "":
		case strings.HasPrefix(fn, "runtime."):
		case strings.HasPrefix(fn, "reflect."):
		case strings.HasPrefix(fn, wrapperPrefix):
		default:
			return topLevel(packagePath(fn)) != namespace
		}
		if !more {
			break
		}
	}
	// Caller unknown; better a spurious record than a lost one
	return true
}

// packagePath extracts the import path from a runtime function name,
// e.g. "github.com/acme/hmc/cpc.(*Client).List-fm" -> "github.com/acme/hmc/cpc".
func packagePath(funcName string) string {
	slash := strings.LastIndexByte(funcName, '/')
	dot := strings.IndexByte(funcName[slash+1:], '.')
	if dot < 0 {
		return funcName
	}
	return funcName[:slash+1+dot]
}

// topLevel reduces an import path to the namespace that identifies a
// library: host/owner/repo for domain-style paths, the first element
// otherwise ("main", "testing", plain package names).
func topLevel(pkg string) string {
	first := pkg
	if i := strings.IndexByte(pkg, '/'); i >= 0 {
		first = pkg[:i]
	}
	if !strings.Contains(first, ".") {
		return first
	}
	parts := strings.SplitN(pkg, "/", 4)
	if len(parts) > 3 {
		return strings.Join(parts[:3], "/")
	}
	return pkg
}
