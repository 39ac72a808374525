// Package core defines the shared types used across zhmclog.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log record, and the Field type for structured
// key-value pairs. An Entry carries the name of the logger that emitted
// it, so formatters can render records from different named loggers
// distinguishably. Fields tagged KindSecret carry credentials; renderers
// substitute SecretMask for their values.
//
// Entry objects are pooled via sync.Pool. The emitting logger gets an
// Entry with GetEntry and returns it with PutEntry once every handler has
// consumed it, which means handlers must treat entries as borrowed and
// never retain them after Handle returns.
package core
