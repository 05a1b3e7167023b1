package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/models"
)

// accountRepository is the SQL implementation of [AccountRepository] over
// the "accounts" table.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount maps a unique violation on username to
// [ErrLoginAlreadyExists].
func (r *accountRepository) CreateAccount(ctx context.Context, account Account) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertAccountQuery(account)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrLoginAlreadyExists
		}
		log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error inserting account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *accountRepository) FindAccount(ctx context.Context, username string) (Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.findAccountQuery(username)
	if err != nil {
		return Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		id, hash  string
		createdAt time.Time
		account   Account
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id, &account.User.Username, &hash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.FindAccount").Msg("error scanning account")
		return Account{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	account.User.ID = models.ID(id)
	account.PasswordHash = []byte(hash)
	account.CreatedAt = models.NewTimestamp(createdAt)
	return account, nil
}
