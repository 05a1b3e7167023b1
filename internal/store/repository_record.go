package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/models"
)

// recordRepository is the SQL implementation of [RecordRepository] over the
// "credential_records" table.
type recordRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (models.CredentialRecord, error) {
	var (
		record   models.CredentialRecord
		id       string
		category string
	)
	err := row.Scan(
		&id,
		&record.Title,
		&record.Website,
		&record.Username,
		&record.Secret,
		&record.Notes,
		&category,
		&record.CreatedAt.Time,
		&record.UpdatedAt.Time,
	)
	if err != nil {
		return models.CredentialRecord{}, err
	}

	record.ID = models.ID(id)
	record.Category = models.Category(category)
	return record, nil
}

func (r *recordRepository) ListRecords(ctx context.Context, userID models.ID) ([]models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listRecordsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.ListRecords").Str("user_id", userID.String()).Msg("error querying records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.CredentialRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			log.Err(err).Str("func", "*recordRepository.ListRecords").Msg("error scanning record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *recordRepository) CreateRecord(ctx context.Context, userID models.ID, record models.CredentialRecord) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertRecordQuery(userID, record)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*recordRepository.CreateRecord").Str("id", record.ID.String()).Msg("error inserting record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateRecord runs the UPDATE and reads the row back, so the returned
// record carries the stored CreatedAt.
func (r *recordRepository) UpdateRecord(ctx context.Context, userID models.ID, record models.CredentialRecord) (models.CredentialRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.updateRecordQuery(userID, record)
	if err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			log.Err(err).Str("func", "*recordRepository.UpdateRecord").Str("id", record.ID.String()).Msg("error updating record")
		}
		return models.CredentialRecord{}, err
	}

	query, args, err = r.db.findRecordQuery(userID, record.ID)
	if err != nil {
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stored, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.CredentialRecord{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*recordRepository.UpdateRecord").Msg("error reading updated record")
		return models.CredentialRecord{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stored, nil
}

func (r *recordRepository) DeleteRecord(ctx context.Context, userID, id models.ID) error {
	query, args, err := r.db.deleteRecordQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		if !errors.Is(err, ErrRecordNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*recordRepository.DeleteRecord").Str("id", id.String()).Msg("error deleting record")
		}
		return err
	}

	return nil
}

// execAffectingOne returns ErrRecordNotFound when the statement matched no
// row.
func (r *recordRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
