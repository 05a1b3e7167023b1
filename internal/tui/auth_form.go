package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

const (
	authUsername = iota
	authPassword
)

// authFormModel backs both the login and the registration screen.
type authFormModel struct {
	title      string
	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
}

func newAuthFormModel(title string) authFormModel {
	username := newInput("username", 64)
	password := newInput("password", 128)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	m := authFormModel{
		title:  title,
		inputs: []textinput.Model{username, password},
	}
	focusInputs(m.inputs, m.focus)
	return m
}

func (m authFormModel) username() string {
	return strings.TrimSpace(m.inputs[authUsername].Value())
}

func (m authFormModel) password() string {
	return m.inputs[authPassword].Value()
}

func (m authFormModel) withUsername(username string) authFormModel {
	m.inputs[authUsername].SetValue(username)
	m.focus = authPassword
	focusInputs(m.inputs, m.focus)
	return m
}

func (m authFormModel) focusNext() authFormModel {
	m.focus = (m.focus + 1) % len(m.inputs)
	focusInputs(m.inputs, m.focus)
	return m
}

func (m authFormModel) focusPrev() authFormModel {
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	focusInputs(m.inputs, m.focus)
	return m
}

func (m authFormModel) View(spin string) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Username") + m.inputs[authUsername].View() + "\n")
	b.WriteString(labelStyle.Render("Password") + m.inputs[authPassword].View() + "\n")

	if m.submitting {
		b.WriteString("\n" + spin + " Please wait...")
	} else if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status))
	}

	return renderPage(m.title, b.String(), "tab next field • enter submit • esc back")
}
