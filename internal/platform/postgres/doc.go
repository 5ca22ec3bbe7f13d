// Package postgres provides PostgreSQL implementations of the store
// interfaces, using database/sql over the pgx driver. All queries are
// parameterized; multi-statement operations run inside transactions.
package postgres
