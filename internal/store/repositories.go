package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-client/internal/logger"
)

// Repositories bundles the repositories of one backend.
type Repositories struct {
	Accounts AccountRepository
	Records  RecordRepository

	db *DB
}

// NewRepositories opens the backend selected by dsn: empty keeps everything
// in memory, a postgres URL connects to PostgreSQL, any other value is
// treated as a SQLite database file. SQL backends are migrated before use.
func NewRepositories(ctx context.Context, dsn string, log *logger.Logger) (*Repositories, error) {
	if dsn == "" {
		log.Info().Msg("using in-memory storage")
		return NewMemoryRepositories(), nil
	}

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(dsn) {
		db, err = NewConnectPostgres(ctx, dsn, log)
	} else {
		db, err = NewConnectSQLite(ctx, dsn, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s database: %w", db.dialect, err)
	}

	return NewSQLRepositories(db, log), nil
}

// NewMemoryRepositories returns empty in-memory repositories.
func NewMemoryRepositories() *Repositories {
	mem := newMemoryRepository()
	return &Repositories{
		Accounts: mem,
		Records:  mem,
	}
}

// NewSQLRepositories returns repositories backed by db.
func NewSQLRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Accounts: NewAccountRepository(db, log),
		Records:  NewRecordRepository(db, log),
		db:       db,
	}
}

// Close releases the database connection, if any.
func (r *Repositories) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
