package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err    error
	called bool
	ctx    context.Context
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.called = true
	f.ctx = ctx
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())

	assert.Nil(t, app)
	assert.Error(t, err)
}

func TestApp_RunsUI(t *testing.T) {
	ui := &fakeUI{}
	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ui.called)
	assert.NotNil(t, ui.ctx)
}

func TestApp_WrapsUIError(t *testing.T) {
	boom := errors.New("boom")
	app, err := NewApp(&fakeUI{err: boom}, logger.Nop())
	require.NoError(t, err)

	err = app.run(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestApp_InterruptIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app, err := NewApp(&fakeUI{err: context.Canceled}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.run(ctx))
}

func TestApp_ImplementsClient(t *testing.T) {
	var _ Client = (*App)(nil)
}
