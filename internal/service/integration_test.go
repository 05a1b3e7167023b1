package service_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/apiserver"
	"github.com/MKhiriev/go-pass-client/internal/config"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/service"
	"github.com/MKhiriev/go-pass-client/internal/store"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newServicesAgainstAPI(t *testing.T) *service.Services {
	t.Helper()
	svc, err := apiserver.NewService(store.NewMemoryRepositories(), apiserver.ServiceConfig{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	h := apiserver.NewHandler(svc, "/api", logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	serverAdapter, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL + "/api",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return service.NewServices(serverAdapter, models.NewSession(), logger.Nop())
}

func TestServices_AgainstAPIServer(t *testing.T) {
	ctx := context.Background()
	svc := newServicesAgainstAPI(t)

	svc.Session.CheckStatus(ctx)
	assert.Equal(t, models.StatusUnauthenticated, svc.Session.Session().Status())

	require.NoError(t, svc.Session.Register(ctx, "alice", "pw"))
	assert.ErrorIs(t, svc.Session.Register(ctx, "alice", "pw"), adapter.ErrConflict)
	assert.ErrorIs(t, svc.Session.Login(ctx, "alice", "wrong"), adapter.ErrUnauthorized)

	require.NoError(t, svc.Session.Login(ctx, "alice", "pw"))
	user, ok := svc.Session.Session().User()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	svc.Session.CheckStatus(ctx)
	assert.Equal(t, models.StatusAuthenticated, svc.Session.Session().Status())

	require.NoError(t, svc.Vault.FetchAll(ctx))
	assert.Empty(t, svc.Vault.Records())

	require.NoError(t, svc.Vault.Create(ctx, models.RecordPayload{
		Title: "GitHub", Secret: "pw1", Category: models.CategoryWork,
	}))
	records := svc.Vault.Records()
	require.Len(t, records, 1)
	id := records[0].ID
	assert.False(t, records[0].WasUpdated())

	require.NoError(t, svc.Vault.Update(ctx, id, models.RecordPayload{
		Title: "GitHub", Secret: "pw2", Category: models.CategoryWork,
	}))
	records = svc.Vault.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "pw2", records[0].Secret)

	require.NoError(t, svc.Vault.Remove(ctx, id, approve))
	assert.Empty(t, svc.Vault.Records())

	svc.Session.Logout(ctx)
	assert.Equal(t, models.StatusUnauthenticated, svc.Session.Session().Status())

	err := svc.Vault.FetchAll(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
