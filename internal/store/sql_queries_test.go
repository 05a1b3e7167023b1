package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_PostgresPlaceholders(t *testing.T) {
	db := newPostgresDB(nil, logger.Nop())
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		build func() (string, []any, error)
		query string
		args  []any
	}{
		{
			name: "insert account",
			build: func() (string, []any, error) {
				return db.insertAccountQuery(Account{
					User:         models.User{ID: "u1", Username: "alice"},
					PasswordHash: []byte("hash"),
					CreatedAt:    models.NewTimestamp(now),
				})
			},
			query: "INSERT INTO accounts (id,username,password_hash,created_at) VALUES ($1,$2,$3,$4)",
			args:  []any{"u1", "alice", "hash", now},
		},
		{
			name:  "find account",
			build: func() (string, []any, error) { return db.findAccountQuery("alice") },
			query: "SELECT id, username, password_hash, created_at FROM accounts WHERE username = $1",
			args:  []any{"alice"},
		},
		{
			name:  "list records",
			build: func() (string, []any, error) { return db.listRecordsQuery("u1") },
			query: "SELECT id, title, website, username, password, notes, category, created_at, updated_at " +
				"FROM credential_records WHERE user_id = $1 ORDER BY created_at, id",
			args: []any{"u1"},
		},
		{
			name: "update record",
			build: func() (string, []any, error) {
				return db.updateRecordQuery("u1", models.CredentialRecord{
					ID: "r1", Title: "GitHub", Secret: "pw", Category: models.CategoryWork,
					UpdatedAt: models.NewTimestamp(now),
				})
			},
			query: "UPDATE credential_records SET title = $1, website = $2, username = $3, password = $4, " +
				"notes = $5, category = $6, updated_at = $7 WHERE id = $8 AND user_id = $9",
			args: []any{"GitHub", "", "", "pw", "", "work", now, "r1", "u1"},
		},
		{
			name:  "delete record",
			build: func() (string, []any, error) { return db.deleteRecordQuery("u1", "r1") },
			query: "DELETE FROM credential_records WHERE id = $1 AND user_id = $2",
			args:  []any{"r1", "u1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.query, query)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestQueries_SQLitePlaceholders(t *testing.T) {
	db := newSQLiteDB(nil, logger.Nop())

	query, args, err := db.deleteRecordQuery("u1", "r1")

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM credential_records WHERE id = ? AND user_id = ?", query)
	assert.Equal(t, []any{"r1", "u1"}, args)
}

func TestInsertRecordQuery_StoresOwner(t *testing.T) {
	db := newPostgresDB(nil, logger.Nop())
	now := time.Now()

	query, args, err := db.insertRecordQuery("u1", models.CredentialRecord{
		ID: "r1", Title: "GitHub", Secret: "pw",
		CreatedAt: models.NewTimestamp(now), UpdatedAt: models.NewTimestamp(now),
	})

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO credential_records (user_id,id,title,")
	require.Len(t, args, 10)
	assert.Equal(t, "u1", args[0])
	assert.Equal(t, "r1", args[1])
	assert.Equal(t, now.UTC(), args[8])
}
