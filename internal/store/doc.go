// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic; the in-memory and PostgreSQL backends must
// satisfy them with identical observable behavior.
package store
