// Package trace instruments the public entry points of an HMC client
// library with call logging.
//
// Logged wraps a function or method value and returns a function of the
// same type that emits "==> name, args: ..." and "<== name, result: ..."
// debug records through the shared API logger (logger.Get(APILoggerName))
// whenever the call comes from outside the library's own namespace.
// Library-internal calls stay unlogged, so a consumer sees one record
// pair per operation they initiated, not one per internal hop.
//
// The records are silent by default: they only become visible once a
// consumer attaches an output handler to the API logger and lowers its
// level to debug. Argument and result representations are capped (500
// and 1000 bytes) and credential values inside them are masked.
package trace
