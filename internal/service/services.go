package service

import (
	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/models"
)

// Services groups the client services sharing one adapter and one session.
type Services struct {
	Session SessionService
	Vault   VaultService
}

// NewServices wires the vault and session services. The vault and any extra
// scoped stores are reset on logout.
func NewServices(serverAdapter adapter.ServerAdapter, session *models.Session, logger *logger.Logger, scoped ...Resetter) *Services {
	vault := NewVaultService(serverAdapter, logger)
	stores := append([]Resetter{vault}, scoped...)

	return &Services{
		Session: NewSessionService(session, serverAdapter, logger, stores...),
		Vault:   vault,
	}
}
