package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/models"
)

type vaultService struct {
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	records []models.CredentialRecord
	// epoch changes on Reset so that responses to requests issued before a
	// logout are dropped.
	epoch uint64

	inFlight atomic.Int32

	logger *logger.Logger
}

// NewVaultService returns a [VaultService] backed by serverAdapter with an
// empty record list.
func NewVaultService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) VaultService {
	return &vaultService{
		adapter: serverAdapter,
		records: []models.CredentialRecord{},
		logger:  logger,
	}
}

func (v *vaultService) FetchAll(ctx context.Context) error {
	defer v.track()()
	epoch := v.currentEpoch()

	records, err := v.adapter.ListPasswords(ctx)
	if err != nil {
		v.logger.Warn().Err(err).Msg("fetch passwords failed")
		return fmt.Errorf("fetch passwords: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.epoch != epoch {
		v.logger.Debug().Msg("dropping passwords fetched before reset")
		return nil
	}
	v.records = append(make([]models.CredentialRecord, 0, len(records)), records...)

	v.logger.Debug().Int("count", len(records)).Msg("passwords fetched")
	return nil
}

func (v *vaultService) Create(ctx context.Context, payload models.RecordPayload) error {
	defer v.track()()

	if _, err := v.adapter.CreatePassword(ctx, payload); err != nil {
		return fmt.Errorf("create password: %w", err)
	}

	return v.refreshAfterWrite(ctx)
}

func (v *vaultService) Update(ctx context.Context, id models.ID, payload models.RecordPayload) error {
	defer v.track()()

	if _, err := v.adapter.UpdatePassword(ctx, id, payload); err != nil {
		return fmt.Errorf("update password %s: %w", id, err)
	}

	return v.refreshAfterWrite(ctx)
}

func (v *vaultService) refreshAfterWrite(ctx context.Context) error {
	if err := v.FetchAll(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrRefreshAfterWrite, err)
	}
	return nil
}

func (v *vaultService) Remove(ctx context.Context, id models.ID, confirm ConfirmFunc) error {
	record, ok := v.find(id)
	if !ok {
		return nil
	}
	if confirm == nil || !confirm(record) {
		return ErrRemovalNotConfirmed
	}

	defer v.track()()
	epoch := v.currentEpoch()

	if err := v.adapter.DeletePassword(ctx, id); err != nil {
		if !errors.Is(err, adapter.ErrNotFound) {
			return fmt.Errorf("delete password %s: %w", id, err)
		}
		v.logger.Debug().Str("id", id.String()).Msg("password already gone on server")
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.epoch != epoch {
		return nil
	}
	v.records = slices.DeleteFunc(v.records, func(r models.CredentialRecord) bool {
		return r.ID == id
	})
	return nil
}

func (v *vaultService) Records() []models.CredentialRecord {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.records)
}

func (v *vaultService) Loading() bool {
	return v.inFlight.Load() > 0
}

func (v *vaultService) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.epoch++
	v.records = []models.CredentialRecord{}
}

func (v *vaultService) find(id models.ID) (models.CredentialRecord, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	i := slices.IndexFunc(v.records, func(r models.CredentialRecord) bool {
		return r.ID == id
	})
	if i < 0 {
		return models.CredentialRecord{}, false
	}
	return v.records[i], true
}

func (v *vaultService) currentEpoch() uint64 {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.epoch
}

// track marks a request as in flight until the returned func runs.
func (v *vaultService) track() func() {
	v.inFlight.Add(1)
	return func() { v.inFlight.Add(-1) }
}
