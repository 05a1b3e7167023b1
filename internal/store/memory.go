package store

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-pass-client/models"
)

// memoryRepository implements both repositories on maps. It is safe for
// concurrent use.
type memoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
	records  map[models.ID][]models.CredentialRecord
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		accounts: make(map[string]Account),
		records:  make(map[models.ID][]models.CredentialRecord),
	}
}

func (m *memoryRepository) CreateAccount(_ context.Context, account Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[account.User.Username]; ok {
		return ErrLoginAlreadyExists
	}
	account.PasswordHash = slices.Clone(account.PasswordHash)
	m.accounts[account.User.Username] = account
	return nil
}

func (m *memoryRepository) FindAccount(_ context.Context, username string) (Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[username]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	account.PasswordHash = slices.Clone(account.PasswordHash)
	return account, nil
}

func (m *memoryRepository) ListRecords(_ context.Context, userID models.ID) ([]models.CredentialRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := slices.Clone(m.records[userID])
	if records == nil {
		records = []models.CredentialRecord{}
	}
	return records, nil
}

func (m *memoryRepository) CreateRecord(_ context.Context, userID models.ID, record models.CredentialRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[userID] = append(m.records[userID], record)
	return nil
}

func (m *memoryRepository) UpdateRecord(_ context.Context, userID models.ID, record models.CredentialRecord) (models.CredentialRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.records[userID]
	idx := slices.IndexFunc(records, func(r models.CredentialRecord) bool { return r.ID == record.ID })
	if idx < 0 {
		return models.CredentialRecord{}, ErrRecordNotFound
	}

	record.CreatedAt = records[idx].CreatedAt
	records[idx] = record
	return record, nil
}

func (m *memoryRepository) DeleteRecord(_ context.Context, userID, id models.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.records[userID]
	idx := slices.IndexFunc(records, func(r models.CredentialRecord) bool { return r.ID == id })
	if idx < 0 {
		return ErrRecordNotFound
	}
	m.records[userID] = slices.Delete(records, idx, idx+1)
	return nil
}
