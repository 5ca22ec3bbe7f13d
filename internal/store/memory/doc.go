// Package memory provides in-memory implementations of the store
// interfaces, used when no database URL is configured and as the
// backing stores in tests. Each store guards its state with a single
// mutex, so individual operations are serialized per store while
// different stores proceed concurrently.
package memory
