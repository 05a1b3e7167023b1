package tui

import (
	"time"

	"github.com/MKhiriev/go-pass-client/internal/view"
	"github.com/MKhiriev/go-pass-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

const statusDuration = 2 * time.Second

func (m appModel) cmdCheckStatus() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Session
	return func() tea.Msg {
		sessions.CheckStatus(ctx)
		return authCheckedMsg{}
	}
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Session
	return func() tea.Msg {
		return loginDoneMsg{err: sessions.Login(ctx, username, password)}
	}
}

func (m appModel) cmdRegister(username, password string) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Session
	return func() tea.Msg {
		return registerDoneMsg{username: username, err: sessions.Register(ctx, username, password)}
	}
}

func (m appModel) cmdLogout(expired bool) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.Session
	return func() tea.Msg {
		sessions.Logout(ctx)
		return loggedOutMsg{expired: expired}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		return listLoadedMsg{err: vault.FetchAll(ctx)}
	}
}

func (m appModel) cmdSaveItem(sub view.Submission) tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		return itemSavedMsg{sub: sub, err: sub.Save(ctx, vault)}
	}
}

// cmdDeleteItem runs after the user answered the confirmation overlay, so
// the removal is approved up front.
func (m appModel) cmdDeleteItem(id models.ID) tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		err := vault.Remove(ctx, id, func(models.CredentialRecord) bool { return true })
		return itemDeletedMsg{id: id, err: err}
	}
}

func cmdCopyToClipboard(clip Clipboard, id models.ID, field view.Field, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clip.WriteAll(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{id: id, field: field}
	}
}

func cmdExpireCopied(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return copyExpiredMsg{}
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
