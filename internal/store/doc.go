// Package store persists the accounts and credential records of the
// reference API server.
//
// Two backends implement the repositories: an in-memory one used when no
// database is configured, and a SQL one running on PostgreSQL (pgx) or SQLite
// (go-sqlite3). The SQL schema is managed by goose migrations from the
// migrations package; queries are built with squirrel so that one set of
// statements serves both dialects.
package store
