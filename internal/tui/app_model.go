package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-pass-client/internal/adapter"
	"github.com/MKhiriev/go-pass-client/internal/app"
	"github.com/MKhiriev/go-pass-client/internal/logger"
	"github.com/MKhiriev/go-pass-client/internal/service"
	"github.com/MKhiriev/go-pass-client/internal/view"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenChecking screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenList
	screenForm
)

const (
	statusRegistered = "Registration successful. Please log in."
	statusSaved      = "Password saved"
	statusDeleted    = "Password deleted"
)

type appModel struct {
	ctx       context.Context
	services  *service.Services
	editor    *view.Editor
	vis       *view.Visibility
	clipboard Clipboard
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	currentScreen screen
	spinner       spinner.Model

	welcome  welcomeModel
	login    authFormModel
	register authFormModel
	list     listModel
	form     recordFormModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete models.ID
}

func newAppModel(ctx context.Context, services *service.Services, opts Options, logger *logger.Logger) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	clip := opts.Clipboard
	if clip == nil {
		clip = SystemClipboard()
	}

	return appModel{
		ctx:           ctx,
		services:      services,
		editor:        view.NewEditor(opts.Generator),
		vis:           view.NewVisibility(opts.CopyResetDelay, opts.Clock),
		clipboard:     clip,
		buildInfo:     opts.BuildInfo,
		logger:        logger,
		currentScreen: screenChecking,
		spinner:       s,
		welcome:       newWelcomeModel(),
		login:         newAuthFormModel("LOG IN"),
		register:      newAuthFormModel("REGISTER"),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdCheckStatus())
}

func (m appModel) busy() bool {
	return m.currentScreen == screenChecking ||
		m.login.submitting ||
		m.register.submitting ||
		m.list.loading ||
		m.form.submitting
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case authCheckedMsg:
		if m.currentScreen != screenChecking {
			return m, nil
		}
		if m.services.Session.Session().IsAuthenticated() {
			return m.enterList()
		}
		m.currentScreen = screenWelcome
		return m, nil
	case loginDoneMsg:
		return m.onLoginDone(msg)
	case registerDoneMsg:
		return m.onRegisterDone(msg)
	case loggedOutMsg:
		return m.onLoggedOut(msg)
	case listLoadedMsg:
		return m.onListLoaded(msg)
	case itemSavedMsg:
		return m.onItemSaved(msg)
	case itemDeletedMsg:
		return m.onItemDeleted(msg)
	case copiedMsg:
		m.vis.MarkCopied(msg.id, msg.field)
		return m, cmdExpireCopied(m.vis.Delay())
	case copyFailedMsg:
		m.logger.Warn().Err(msg.err).Msg("copy to clipboard failed")
		return m, nil
	case copyExpiredMsg:
		m.vis.Expire()
		return m, nil
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateAuth(msg, false)
	case screenRegister:
		return m.updateAuth(msg, true)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	spin := m.spinner.View()

	var body string
	switch m.currentScreen {
	case screenChecking:
		body = spin + " Checking session..."
	case screenWelcome:
		if m.welcome.showBuildInfo {
			body = renderBuildInfoWindow(m.buildInfo)
		} else {
			body = m.welcome.View()
		}
	case screenLogin:
		body = m.login.View(spin)
	case screenRegister:
		body = m.register.View(spin)
	case screenList:
		body = m.list.View(m.vis, m.username(), spin)
	case screenForm:
		body = m.form.View(spin)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m appModel) username() string {
	user, ok := m.services.Session.Session().User()
	if !ok {
		return ""
	}
	return user.Username
}

func (m *appModel) showErrorf(message string) {
	if message == "" {
		return
	}
	m.showError = true
	m.errorOverlay.message = message
}

// vaultFailed reports a failed vault request. A rejected session logs the
// user out instead of showing the request error.
func (m appModel) vaultFailed(err error, fallback string) (tea.Model, tea.Cmd) {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return m, m.cmdLogout(true)
	}
	m.showErrorf(errorMessage(err, fallback))
	return m, nil
}

func (m appModel) enterList() (tea.Model, tea.Cmd) {
	m.currentScreen = screenList
	m.list.loading = true
	return m, tea.Batch(m.spinner.Tick, m.cmdLoadList())
}

func (m appModel) setRecords() appModel {
	records := m.services.Vault.Records()
	m.list = m.list.setRecords(records)
	m.vis.Retain(records)
	return m
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		switch m.confirm.kind {
		case confirmLogout:
			return m, m.cmdLogout(false)
		default:
			id := m.pendingDelete
			m.pendingDelete = ""
			if id.IsZero() {
				return m, nil
			}
			m.list.loading = true
			return m, tea.Batch(m.spinner.Tick, m.cmdDeleteItem(id))
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m appModel) onLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen != screenLogin {
		return m, nil
	}
	m.login.submitting = false
	m.login.inputs[authPassword].SetValue("")
	if msg.err != nil {
		m.showErrorf(errorMessage(msg.err, app.MsgLoginFailed))
		return m, nil
	}
	m.login = newAuthFormModel("LOG IN")
	return m.enterList()
}

func (m appModel) onRegisterDone(msg registerDoneMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen != screenRegister {
		return m, nil
	}
	m.register.submitting = false
	if msg.err != nil {
		m.showErrorf(errorMessage(msg.err, app.MsgRegistrationFailed))
		return m, nil
	}
	m.register = newAuthFormModel("REGISTER")
	m.login = newAuthFormModel("LOG IN").withUsername(msg.username)
	m.login.status = statusRegistered
	m.currentScreen = screenLogin
	return m, nil
}

func (m appModel) onLoggedOut(msg loggedOutMsg) (tea.Model, tea.Cmd) {
	m.editor.Cancel()
	m.vis.Reset()
	m.list = newListModel()
	m.login = newAuthFormModel("LOG IN")
	m.register = newAuthFormModel("REGISTER")
	m.welcome = newWelcomeModel()
	m.showConfirm = false
	m.pendingDelete = ""
	m.currentScreen = screenWelcome
	if msg.expired {
		m.showErrorf(app.MsgSessionExpired)
	}
	return m, nil
}

func (m appModel) onListLoaded(msg listLoadedMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen != screenList && m.currentScreen != screenForm {
		return m, nil
	}
	m.list.loading = false
	m = m.setRecords()
	if msg.err != nil {
		return m.vaultFailed(msg.err, app.MsgFailedToFetch)
	}
	return m, nil
}

func (m appModel) onItemSaved(msg itemSavedMsg) (tea.Model, tea.Cmd) {
	if !m.editor.Finish(msg.sub, msg.err) {
		if m.currentScreen == screenList {
			m = m.setRecords()
		}
		return m, nil
	}
	m.form.submitting = false

	switch {
	case msg.err == nil:
		m = m.setRecords()
		m.currentScreen = screenList
		m.list.status = statusSaved
		return m, cmdClearStatus()
	case errors.Is(msg.err, service.ErrRefreshAfterWrite):
		m.currentScreen = screenList
		return m.vaultFailed(msg.err, app.MsgFailedToSave)
	default:
		return m.vaultFailed(msg.err, app.MsgFailedToSave)
	}
}

// onItemDeleted also runs when the user opened the form while the delete was
// in flight, so the list never keeps a stale record or a stuck spinner.
func (m appModel) onItemDeleted(msg itemDeletedMsg) (tea.Model, tea.Cmd) {
	if m.currentScreen != screenList && m.currentScreen != screenForm {
		return m, nil
	}
	m.list.loading = false
	if msg.err != nil {
		return m.vaultFailed(msg.err, app.MsgFailedToDelete)
	}
	m = m.setRecords()
	m.list.status = statusDeleted
	return m, cmdClearStatus()
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.welcome.showBuildInfo {
		if key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo) {
			m.welcome.showBuildInfo = false
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.welcome.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateAuth(msg tea.Msg, registering bool) (tea.Model, tea.Cmd) {
	form := m.login
	if registering {
		form = m.register
	}

	var cmd tea.Cmd
	keyMsg, ok := msg.(tea.KeyMsg)
	switch {
	case form.submitting:
		return m, nil
	case ok && key.Matches(keyMsg, keys.esc):
		form.status = ""
		m.currentScreen = screenWelcome
	case ok && key.Matches(keyMsg, keys.tab):
		form = form.focusNext()
	case ok && key.Matches(keyMsg, keys.backtab):
		form = form.focusPrev()
	case ok && key.Matches(keyMsg, keys.enter):
		form.submitting = true
		form.status = ""
		submit := m.cmdLogin(form.username(), form.password())
		if registering {
			submit = m.cmdRegister(form.username(), form.password())
		}
		cmd = tea.Batch(m.spinner.Tick, submit)
	default:
		form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	}

	if registering {
		m.register = form
	} else {
		m.login = form
	}
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateSearch(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.visible)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.right):
		m.list = m.list.cycleCategory(1)
	case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.left):
		m.list = m.list.cycleCategory(-1)
	case key.Matches(keyMsg, keys.search):
		m.list.searching = true
		m.list.search.Focus()
		return m, textinput.Blink
	case key.Matches(keyMsg, keys.reveal):
		if r, ok := m.list.current(); ok {
			m.vis.Toggle(r.ID)
		}
	case key.Matches(keyMsg, keys.copy):
		return m, m.copyField(view.FieldSecret)
	case key.Matches(keyMsg, keys.copyUser):
		return m, m.copyField(view.FieldUsername)
	case key.Matches(keyMsg, keys.copySite):
		return m, m.copyField(view.FieldWebsite)
	case key.Matches(keyMsg, keys.newItem):
		m.editor.Open(nil)
		m.form = newRecordFormModel(m.editor.Draft(), false)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		r, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.editor.Open(&r)
		m.form = newRecordFormModel(m.editor.Draft(), true)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		r, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm = confirmModel{kind: confirmDelete, message: r.Title}
		m.pendingDelete = r.ID
	case key.Matches(keyMsg, keys.refresh):
		if m.list.loading {
			return m, nil
		}
		m.list.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoadList())
	case key.Matches(keyMsg, keys.logout):
		m.showConfirm = true
		m.confirm = confirmModel{kind: confirmLogout}
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc) {
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.list = m.list.setSearch(m.list.search.Value())
	return m, cmd
}

func (m appModel) copyField(field view.Field) tea.Cmd {
	r, ok := m.list.current()
	if !ok {
		return nil
	}
	text, ok := copyValue(r, field)
	if !ok {
		return nil
	}
	return cmdCopyToClipboard(m.clipboard, r.ID, field, text)
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if key.Matches(keyMsg, keys.esc) {
			m.editor.Cancel()
			m.form.submitting = false
			m.currentScreen = screenList
			return m, nil
		}
		if m.form.submitting {
			return m, nil
		}

		switch {
		case key.Matches(keyMsg, keys.tab):
			m.form = m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = m.form.focusPrev()
			return m, nil
		case m.form.onCategory() && key.Matches(keyMsg, keys.right):
			m.form = m.form.cycleCategory(1)
			return m, nil
		case m.form.onCategory() && key.Matches(keyMsg, keys.left):
			m.form = m.form.cycleCategory(-1)
			return m, nil
		case key.Matches(keyMsg, keys.showSecret):
			m.form = m.form.toggleSecret()
			return m, nil
		case key.Matches(keyMsg, keys.generate):
			m.editor.SetDraft(m.form.payload())
			secret, err := m.editor.GenerateSecret()
			if err != nil {
				m.logger.Error().Err(err).Msg("generate secret failed")
				m.showErrorf(app.MsgFailedToGenerate)
				return m, nil
			}
			m.form = m.form.setSecret(secret)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.editor.SetDraft(m.form.payload())
			sub, err := m.editor.Begin()
			if err != nil {
				m.showErrorf(errorMessage(err, ""))
				return m, nil
			}
			m.form.submitting = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSaveItem(sub))
		}
	}

	if m.form.onCategory() {
		return m, nil
	}
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}
