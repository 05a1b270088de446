// Package postgres provides PostgreSQL-backed implementations of the
// store interfaces, plus the mapping from driver errors to store sentinel
// errors and the embedded schema migrations.
package postgres
