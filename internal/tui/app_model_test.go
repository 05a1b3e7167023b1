package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/app"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/mock"
	"github.com/MKhiriev/go-pass-client/internal/service"
	"github.com/MKhiriev/go-pass-client/internal/view"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClipboard struct {
	text string
	err  error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fixture struct {
	sessions *mock.MockSessionService
	vault    *mock.MockVaultService
	gen      *mock.MockSecretGenerator
	session  *models.Session
	clip     *fakeClipboard
	now      time.Time
	records  []models.CredentialRecord
}

func newTestModel(t *testing.T) (appModel, *fixture) {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		sessions: mock.NewMockSessionService(ctrl),
		vault:    mock.NewMockVaultService(ctrl),
		gen:      mock.NewMockSecretGenerator(ctrl),
		session:  models.NewSession(),
		clip:     &fakeClipboard{},
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.sessions.EXPECT().Session().Return(f.session).AnyTimes()
	f.vault.EXPECT().Records().DoAndReturn(func() []models.CredentialRecord {
		return slices.Clone(f.records)
	}).AnyTimes()

	services := &service.Services{Session: f.sessions, Vault: f.vault}
	opts := Options{
		BuildInfo:      models.NewAppBuildInfo("v1.0.0", "2026-03-01", "abc123"),
		CopyResetDelay: 2 * time.Second,
		Clock:          func() time.Time { return f.now },
		Generator:      f.gen,
		Clipboard:      f.clip,
	}
	return newAppModel(context.Background(), services, opts, logger.Nop()), f
}

func update(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(appModel)
	require.True(t, ok)
	return out, cmd
}

// drain runs cmd and every command it batches, dropping spinner ticks.
// Only use it on commands that do not sleep.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, drain(c)...)
		}
	case spinner.TickMsg, nil:
	default:
		out = append(out, msg)
	}
	return out
}

func feed(t *testing.T, m appModel, cmd tea.Cmd) (appModel, tea.Cmd) {
	t.Helper()
	msgs := drain(cmd)
	require.Len(t, msgs, 1)
	return update(t, m, msgs[0])
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

var (
	recGitHub = models.CredentialRecord{
		ID: "1", Title: "GitHub", Website: "https://github.com", Username: "alice",
		Secret: "s3cret", Category: models.CategoryWork,
	}
	recGmail = models.CredentialRecord{
		ID: "2", Title: "Gmail", Username: "alice@gmail.com", Secret: "pw", Category: models.CategoryEmail,
	}
	recWiki = models.CredentialRecord{ID: "3", Title: "Wiki", Secret: "x"}
)

// inList puts the model on the vault list showing records.
func inList(t *testing.T, m appModel, f *fixture, records ...models.CredentialRecord) appModel {
	t.Helper()
	f.session.Authenticate(models.User{Username: "alice"})
	f.records = records
	m.currentScreen = screenList
	m, _ = update(t, m, listLoadedMsg{})
	return m
}

// ── Start-up ─────────────────────────────────────────────────────────────────

func TestInit_AuthenticatedSessionOpensList(t *testing.T) {
	m, f := newTestModel(t)
	f.sessions.EXPECT().CheckStatus(gomock.Any()).Do(func(context.Context) {
		f.session.Authenticate(models.User{Username: "alice"})
	})
	f.vault.EXPECT().FetchAll(gomock.Any()).DoAndReturn(func(context.Context) error {
		f.records = []models.CredentialRecord{recGitHub, recGmail}
		return nil
	})

	m, cmd := feed(t, m, m.Init())
	assert.Equal(t, screenList, m.currentScreen)
	assert.True(t, m.list.loading)

	m, _ = feed(t, m, cmd)
	assert.False(t, m.list.loading)
	assert.Len(t, m.list.visible, 2)
	assert.Contains(t, m.View(), "alice")
}

func TestInit_AnonymousSessionShowsWelcome(t *testing.T) {
	m, f := newTestModel(t)
	f.sessions.EXPECT().CheckStatus(gomock.Any())

	assert.Contains(t, m.View(), "Checking session")
	m, cmd := feed(t, m, m.Init())

	assert.Nil(t, cmd)
	assert.Equal(t, screenWelcome, m.currentScreen)
}

func TestWelcome_BuildInfoToggle(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenWelcome

	m, _ = update(t, m, runes("v"))
	assert.Contains(t, m.View(), "v1.0.0")
	assert.Contains(t, m.View(), "abc123")

	m, _ = update(t, m, keyEsc)
	assert.False(t, m.welcome.showBuildInfo)
}

// ── Login / Register ─────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	m, f := newTestModel(t)
	m.currentScreen = screenWelcome
	f.sessions.EXPECT().Login(gomock.Any(), "alice", "pw").DoAndReturn(func(context.Context, string, string) error {
		f.session.Authenticate(models.User{Username: "alice"})
		return nil
	})
	f.vault.EXPECT().FetchAll(gomock.Any()).Return(nil)

	m, _ = update(t, m, keyEnter)
	require.Equal(t, screenLogin, m.currentScreen)

	m, _ = update(t, m, runes("alice"))
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, runes("pw"))
	m, cmd := update(t, m, keyEnter)
	assert.True(t, m.login.submitting)

	m, cmd = feed(t, m, cmd)
	assert.Equal(t, screenList, m.currentScreen)
	assert.Empty(t, m.login.password())

	m, _ = feed(t, m, cmd)
	assert.Contains(t, m.View(), view.HintNoRecords)
}

func TestLogin_RejectedShowsServerMessage(t *testing.T) {
	m, f := newTestModel(t)
	m.currentScreen = screenLogin
	f.sessions.EXPECT().Login(gomock.Any(), "alice", "bad").
		Return(fmt.Errorf("login: %w", &adapter.APIError{StatusCode: 401, Message: app.MsgInvalidLoginPassword}))

	m.login = m.login.withUsername("alice")
	m, _ = update(t, m, runes("bad"))
	m, cmd := update(t, m, keyEnter)
	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgInvalidLoginPassword, m.errorOverlay.message)
	assert.Empty(t, m.login.password())
	assert.False(t, m.login.submitting)

	m, _ = update(t, m, keyEnter)
	assert.False(t, m.showError)
}

func TestLogin_KeysIgnoredWhileSubmitting(t *testing.T) {
	m, _ := newTestModel(t)
	m.currentScreen = screenLogin
	m.login.submitting = true

	m, cmd := update(t, m, keyEsc)

	assert.Nil(t, cmd)
	assert.Equal(t, screenLogin, m.currentScreen)
}

func TestRegister_SuccessPrefillsLogin(t *testing.T) {
	m, f := newTestModel(t)
	m.currentScreen = screenRegister
	f.sessions.EXPECT().Register(gomock.Any(), "bob", "pw").Return(nil)

	m, _ = update(t, m, runes("bob"))
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, runes("pw"))
	m, cmd := update(t, m, keyEnter)
	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenLogin, m.currentScreen)
	assert.Equal(t, "bob", m.login.username())
	assert.Equal(t, statusRegistered, m.login.status)
	assert.False(t, f.session.IsAuthenticated())
}

func TestRegister_NetworkError(t *testing.T) {
	m, f := newTestModel(t)
	m.currentScreen = screenRegister
	f.sessions.EXPECT().Register(gomock.Any(), "bob", "pw").
		Return(fmt.Errorf("register: %w", fmt.Errorf("post: %w", adapter.ErrNetwork)))

	m.register = m.register.withUsername("bob")
	m, _ = update(t, m, runes("pw"))
	m, cmd := update(t, m, keyEnter)
	m, _ = feed(t, m, cmd)

	assert.Equal(t, app.MsgNetworkError, m.errorOverlay.message)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestList_SearchFilters(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub, recGmail, recWiki)

	m, _ = update(t, m, runes("/"))
	require.True(t, m.list.searching)
	m, _ = update(t, m, runes("GMAIL"))

	require.Len(t, m.list.visible, 1)
	assert.Equal(t, "Gmail", m.list.visible[0].Title)

	m, _ = update(t, m, runes("zzz"))
	assert.Empty(t, m.list.visible)
	assert.Contains(t, m.View(), view.HintNoMatches)

	m, _ = update(t, m, keyEsc)
	assert.False(t, m.list.searching)
	assert.Equal(t, "GMAILzzz", m.list.filter.Search)
}

func TestList_CategoryCycle(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub, recGmail, recWiki)

	require.Equal(t, []models.Category{
		models.CategoryAll, models.CategoryWork, models.CategoryEmail, models.CategoryUncategorized,
	}, m.list.categories)

	m, _ = update(t, m, keyTab)
	assert.Equal(t, models.CategoryWork, m.list.filter.Category)
	require.Len(t, m.list.visible, 1)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, models.CategoryUncategorized, m.list.filter.Category)
	require.Len(t, m.list.visible, 1)
	assert.Equal(t, "Wiki", m.list.visible[0].Title)
}

func TestList_SelectedCategoryDisappearsResetsToAll(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub, recGmail)
	m, _ = update(t, m, keyTab)
	require.Equal(t, models.CategoryWork, m.list.filter.Category)

	f.records = []models.CredentialRecord{recGmail}
	m, _ = update(t, m, listLoadedMsg{})

	assert.Equal(t, models.CategoryAll, m.list.filter.Category)
	assert.Len(t, m.list.visible, 1)
}

func TestList_RevealToggle(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)

	assert.NotContains(t, m.View(), "s3cret")
	m, _ = update(t, m, keySpace)
	assert.Contains(t, m.View(), "s3cret")
	m, _ = update(t, m, keySpace)
	assert.NotContains(t, m.View(), "s3cret")
}

func TestList_CopySetsMarkerUntilExpiry(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)

	m, cmd := update(t, m, runes("c"))
	require.NotNil(t, cmd)
	m, expire := update(t, m, cmd())

	assert.Equal(t, "s3cret", f.clip.text)
	assert.True(t, m.vis.IsCopied("1", view.FieldSecret))
	assert.False(t, m.vis.IsCopied("1", view.FieldUsername))
	assert.NotNil(t, expire)
	assert.Contains(t, m.View(), "✓ copied")

	f.now = f.now.Add(2 * time.Second)
	m, _ = update(t, m, copyExpiredMsg{})
	assert.False(t, m.vis.IsCopied("1", view.FieldSecret))
	assert.NotContains(t, m.View(), "✓ copied")
}

func TestList_CopyUsernameAndWebsite(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)

	_, cmd := update(t, m, runes("u"))
	cmd()
	assert.Equal(t, "alice", f.clip.text)

	_, cmd = update(t, m, runes("w"))
	cmd()
	assert.Equal(t, "https://github.com", f.clip.text)
}

func TestList_CopyEmptyFieldIsNoop(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recWiki)

	_, cmd := update(t, m, runes("w"))
	assert.Nil(t, cmd)
}

func TestList_CopyFailureIsSilent(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)
	f.clip.err = errors.New("no clipboard")

	m, cmd := update(t, m, runes("c"))
	m, _ = update(t, m, cmd())

	assert.False(t, m.showError)
	assert.False(t, m.vis.IsCopied("1", view.FieldSecret))
}

func TestList_FetchErrorKeepsRecords(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)
	f.vault.EXPECT().FetchAll(gomock.Any()).Return(fmt.Errorf("list: %w", adapter.ErrNetwork))

	m, cmd := update(t, m, runes("r"))
	require.True(t, m.list.loading)
	m, _ = feed(t, m, cmd)

	assert.False(t, m.list.loading)
	assert.Len(t, m.list.visible, 1)
	assert.Equal(t, app.MsgNetworkError, m.errorOverlay.message)
}

func TestList_UnauthorizedLogsOut(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)
	f.sessions.EXPECT().Logout(gomock.Any()).Do(func(context.Context) {
		f.session.Clear()
		f.records = nil
	})

	m, cmd := update(t, m, listLoadedMsg{err: &adapter.APIError{StatusCode: 401}})
	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenWelcome, m.currentScreen)
	assert.Equal(t, app.MsgSessionExpired, m.errorOverlay.message)
	assert.Empty(t, m.list.records)
}

func TestList_LateLoadAfterLogoutIgnored(t *testing.T) {
	m, f := newTestModel(t)
	m.currentScreen = screenWelcome
	f.records = []models.CredentialRecord{recGitHub}

	m, _ = update(t, m, listLoadedMsg{})

	assert.Empty(t, m.list.records)
}

// ── Delete / Logout ──────────────────────────────────────────────────────────

func TestDelete_Confirmed(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub, recGmail)
	f.vault.EXPECT().Remove(gomock.Any(), models.ID("1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.ID, confirm service.ConfirmFunc) error {
			assert.True(t, confirm(recGitHub))
			f.records = []models.CredentialRecord{recGmail}
			return nil
		})

	m, _ = update(t, m, runes("d"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), `Delete "GitHub"?`)

	m, cmd := update(t, m, runes("y"))
	assert.False(t, m.showConfirm)
	m, _ = feed(t, m, cmd)

	require.Len(t, m.list.visible, 1)
	assert.Equal(t, "Gmail", m.list.visible[0].Title)
	assert.Equal(t, statusDeleted, m.list.status)
}

func TestDelete_Declined(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)

	m, _ = update(t, m, runes("d"))
	m, cmd := update(t, m, runes("n"))

	assert.Nil(t, cmd)
	assert.False(t, m.showConfirm)
	assert.True(t, m.pendingDelete.IsZero())
	assert.Len(t, m.list.visible, 1)
}

func TestDelete_ServerError(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)
	f.vault.EXPECT().Remove(gomock.Any(), models.ID("1"), gomock.Any()).
		Return(&adapter.APIError{StatusCode: 500})

	m, _ = update(t, m, runes("d"))
	m, cmd := update(t, m, runes("y"))
	m, _ = feed(t, m, cmd)

	assert.Equal(t, app.MsgFailedToDelete, m.errorOverlay.message)
	assert.Len(t, m.list.visible, 1)
}

func TestDelete_ResultWhileFormOpen(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub, recGmail)
	f.vault.EXPECT().Remove(gomock.Any(), models.ID("1"), gomock.Any()).
		DoAndReturn(func(context.Context, models.ID, service.ConfirmFunc) error {
			f.records = []models.CredentialRecord{recGmail}
			return nil
		})

	m, _ = update(t, m, runes("d"))
	m, deleteCmd := update(t, m, runes("y"))
	m, _ = update(t, m, runes("n"))
	require.Equal(t, screenForm, m.currentScreen)

	m, _ = feed(t, m, deleteCmd)
	assert.False(t, m.list.loading)

	m, _ = update(t, m, keyEsc)
	assert.Equal(t, screenList, m.currentScreen)
	require.Len(t, m.list.visible, 1)
	assert.Equal(t, "Gmail", m.list.visible[0].Title)

	_, cmd := update(t, m, runes("r"))
	assert.NotNil(t, cmd)
}

func TestDelete_ErrorWhileFormOpenIsShown(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)
	f.vault.EXPECT().Remove(gomock.Any(), models.ID("1"), gomock.Any()).
		Return(&adapter.APIError{StatusCode: 500})

	m, _ = update(t, m, runes("d"))
	m, deleteCmd := update(t, m, runes("y"))
	m, _ = update(t, m, runes("n"))
	m, _ = feed(t, m, deleteCmd)

	assert.False(t, m.list.loading)
	assert.True(t, m.showError)
	assert.Equal(t, app.MsgFailedToDelete, m.errorOverlay.message)
}

func TestLogout_ResetsViewState(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)
	m, _ = update(t, m, keySpace)
	f.sessions.EXPECT().Logout(gomock.Any()).Do(func(context.Context) { f.session.Clear() })

	m, _ = update(t, m, runes("L"))
	require.True(t, m.showConfirm)
	assert.Contains(t, m.View(), "Log out?")

	m, cmd := update(t, m, runes("y"))
	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenWelcome, m.currentScreen)
	assert.False(t, m.showError)
	assert.False(t, m.vis.IsRevealed("1"))
	assert.Empty(t, m.list.records)
	assert.Equal(t, view.NewFilter(), m.list.filter)
}

// ── Record form ──────────────────────────────────────────────────────────────

func openNewForm(t *testing.T, m appModel) appModel {
	t.Helper()
	m, _ = update(t, m, runes("n"))
	require.Equal(t, screenForm, m.currentScreen)
	return m
}

func fillForm(t *testing.T, m appModel, title, secret string) appModel {
	t.Helper()
	m, _ = update(t, m, runes(title))
	for range fieldSecret {
		m, _ = update(t, m, keyTab)
	}
	m, _ = update(t, m, runes(secret))
	return m
}

func TestForm_CreateSuccess(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)
	f.vault.EXPECT().Create(gomock.Any(), models.RecordPayload{Title: "GitHub", Secret: "pw", Category: models.CategoryWork}).
		DoAndReturn(func(context.Context, models.RecordPayload) error {
			f.records = []models.CredentialRecord{recGitHub}
			return nil
		})

	m = openNewForm(t, m)
	m = fillForm(t, m, "GitHub", "pw")
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keyTab)
	require.True(t, m.form.onCategory())
	for range 4 {
		m, _ = update(t, m, runes("l"))
	}
	require.Equal(t, models.CategoryWork, m.form.payload().Category)

	m, cmd := update(t, m, keyEnter)
	assert.True(t, m.form.submitting)
	assert.True(t, m.editor.IsPending())

	m, _ = feed(t, m, cmd)
	assert.Equal(t, screenList, m.currentScreen)
	assert.False(t, m.editor.IsOpen())
	assert.Equal(t, statusSaved, m.list.status)
	assert.Len(t, m.list.visible, 1)
}

func TestForm_EditSendsUpdate(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f, recGitHub)
	want := recGitHub.Payload()
	want.Title = "GitHub Work"
	f.vault.EXPECT().Update(gomock.Any(), models.ID("1"), want).Return(nil)

	m, _ = update(t, m, runes("e"))
	require.Equal(t, screenForm, m.currentScreen)
	assert.True(t, m.form.editing)
	assert.Equal(t, "GitHub", m.form.inputs[fieldTitle].Value())

	m, _ = update(t, m, runes(" Work"))
	m, cmd := update(t, m, keyEnter)
	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenList, m.currentScreen)
}

func TestForm_ValidationErrorStaysLocal(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)

	m = openNewForm(t, m)
	m, _ = update(t, m, runes("   "))
	m, cmd := update(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, screenForm, m.currentScreen)
	assert.Equal(t, app.MsgTitleAndPasswordRequired, m.errorOverlay.message)
	assert.False(t, m.editor.IsPending())
}

func TestForm_InvalidWebsite(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)

	m = openNewForm(t, m)
	m, _ = update(t, m, runes("Files"))
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, runes("ftp://files.example"))
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, keyTab)
	m, _ = update(t, m, runes("pw"))
	m, cmd := update(t, m, keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgInvalidWebsite, m.errorOverlay.message)
}

func TestForm_ServerErrorKeepsFormOpen(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)
	f.vault.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&adapter.APIError{StatusCode: 400, Message: "Title too long"})

	m = openNewForm(t, m)
	m = fillForm(t, m, "GitHub", "pw")
	m, cmd := update(t, m, keyEnter)
	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenForm, m.currentScreen)
	assert.True(t, m.editor.IsOpen())
	assert.False(t, m.form.submitting)
	assert.Equal(t, "Title too long", m.errorOverlay.message)
	assert.Equal(t, "GitHub", m.form.inputs[fieldTitle].Value())
}

func TestForm_RefreshAfterWriteClosesForm(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)
	f.vault.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: %w", service.ErrRefreshAfterWrite, adapter.ErrNetwork))

	m = openNewForm(t, m)
	m = fillForm(t, m, "GitHub", "pw")
	m, cmd := update(t, m, keyEnter)
	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenList, m.currentScreen)
	assert.False(t, m.editor.IsOpen())
	assert.Equal(t, app.MsgRefreshAfterWrite, m.errorOverlay.message)
}

func TestForm_CancelIgnoresLateResult(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)
	f.vault.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(&adapter.APIError{StatusCode: 500, Message: "boom"})

	m = openNewForm(t, m)
	m = fillForm(t, m, "GitHub", "pw")
	m, cmd := update(t, m, keyEnter)
	m, _ = update(t, m, keyEsc)
	require.Equal(t, screenList, m.currentScreen)

	m, _ = feed(t, m, cmd)

	assert.Equal(t, screenList, m.currentScreen)
	assert.False(t, m.showError)
	assert.False(t, m.editor.IsOpen())
}

func TestForm_GenerateSecret(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)
	f.gen.EXPECT().Generate().Return("aB3$aB3$aB3$aB3$", nil)

	m = openNewForm(t, m)
	m, _ = update(t, m, runes("GitHub"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})

	assert.Equal(t, "aB3$aB3$aB3$aB3$", m.form.inputs[fieldSecret].Value())
	assert.Equal(t, "GitHub", m.form.inputs[fieldTitle].Value())
}

func TestForm_GenerateSecretFailure(t *testing.T) {
	m, f := newTestModel(t)
	m = inList(t, m, f)
	f.gen.EXPECT().Generate().Return("", errors.New("entropy"))

	m = openNewForm(t, m)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlG})

	assert.Equal(t, app.MsgFailedToGenerate, m.errorOverlay.message)
	assert.Empty(t, m.form.inputs[fieldSecret].Value())
}

// ── Rendering ────────────────────────────────────────────────────────────────

func TestRenderDetail_Dates(t *testing.T) {
	created := models.NewTimestamp(time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local))
	rec := recGitHub
	rec.CreatedAt = created
	rec.UpdatedAt = created

	out := renderDetail(rec, nil)
	assert.Contains(t, out, "Jan 2, 2024")
	assert.NotContains(t, out, "Updated")

	rec.UpdatedAt = models.NewTimestamp(time.Date(2024, 2, 3, 12, 0, 0, 0, time.Local))
	out = renderDetail(rec, nil)
	assert.Contains(t, out, "Updated Feb 3, 2024")
}

func TestRenderDetail_MasksSecret(t *testing.T) {
	out := renderDetail(recGitHub, view.NewVisibility(0, nil))

	assert.NotContains(t, out, "s3cret")
	assert.Contains(t, out, strings.Repeat("•", len("s3cret")))
	assert.Contains(t, out, "Work")
}

func TestCategoryColor(t *testing.T) {
	assert.EqualValues(t, "#10b981", categoryColor(models.CategoryBanking))
	assert.EqualValues(t, "#10b981", categoryColor("Banking"))
	assert.EqualValues(t, defaultCategoryColor, categoryColor(""))
	assert.EqualValues(t, defaultCategoryColor, categoryColor("other"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcd...", fitText("abcdefghij", 7))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		want     string
	}{
		{"nil", nil, "x", ""},
		{"title", view.ErrTitleRequired, "", app.MsgTitleAndPasswordRequired},
		{"secret", view.ErrSecretRequired, "", app.MsgTitleAndPasswordRequired},
		{"website", view.ErrInvalidWebsite, "", app.MsgInvalidWebsite},
		{"category", fmt.Errorf("%w: %q", view.ErrInvalidCategory, "x"), "", app.MsgInvalidCategory},
		{"server message", &adapter.APIError{StatusCode: 409, Message: app.MsgUsernameTaken}, app.MsgRegistrationFailed, app.MsgUsernameTaken},
		{"server fallback", &adapter.APIError{StatusCode: 500}, app.MsgFailedToSave, app.MsgFailedToSave},
		{"network", adapter.ErrNetwork, app.MsgFailedToFetch, app.MsgNetworkError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errorMessage(tt.err, tt.fallback))
		})
	}
}
