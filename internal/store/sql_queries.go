package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-client/models"
)

const (
	accountsTable = "accounts"
	recordsTable  = "credential_records"
)

var (
	accountColumns = []string{"id", "username", "password_hash", "created_at"}
	recordColumns  = []string{"id", "title", "website", "username", "password", "notes", "category", "created_at", "updated_at"}
)

func (db *DB) insertAccountQuery(a Account) (string, []any, error) {
	return db.builder.
		Insert(accountsTable).
		Columns(accountColumns...).
		Values(a.User.ID.String(), a.User.Username, string(a.PasswordHash), a.CreatedAt.UTC()).
		ToSql()
}

func (db *DB) findAccountQuery(username string) (string, []any, error) {
	return db.builder.
		Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) listRecordsQuery(userID models.ID) (string, []any, error) {
	return db.builder.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"user_id": userID.String()}).
		OrderBy("created_at", "id").
		ToSql()
}

func (db *DB) findRecordQuery(userID, id models.ID) (string, []any, error) {
	return db.builder.
		Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"user_id": userID.String()}).
		ToSql()
}

func (db *DB) insertRecordQuery(userID models.ID, r models.CredentialRecord) (string, []any, error) {
	return db.builder.
		Insert(recordsTable).
		Columns(append([]string{"user_id"}, recordColumns...)...).
		Values(
			userID.String(),
			r.ID.String(),
			r.Title,
			r.Website,
			r.Username,
			r.Secret,
			r.Notes,
			string(r.Category),
			r.CreatedAt.UTC(),
			r.UpdatedAt.UTC(),
		).
		ToSql()
}

func (db *DB) updateRecordQuery(userID models.ID, r models.CredentialRecord) (string, []any, error) {
	return db.builder.
		Update(recordsTable).
		Set("title", r.Title).
		Set("website", r.Website).
		Set("username", r.Username).
		Set("password", r.Secret).
		Set("notes", r.Notes).
		Set("category", string(r.Category)).
		Set("updated_at", r.UpdatedAt.UTC()).
		Where(sq.Eq{"id": r.ID.String()}).
		Where(sq.Eq{"user_id": userID.String()}).
		ToSql()
}

func (db *DB) deleteRecordQuery(userID, id models.ID) (string, []any, error) {
	return db.builder.
		Delete(recordsTable).
		Where(sq.Eq{"id": id.String()}).
		Where(sq.Eq{"user_id": userID.String()}).
		ToSql()
}
