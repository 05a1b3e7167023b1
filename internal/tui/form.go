package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-client/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	fieldTitle = iota
	fieldWebsite
	fieldUsername
	fieldSecret
	fieldNotes
	fieldCategory
	formFieldCount
)

var formLabels = [...]string{"Title *", "Website", "Username", "Password *", "Notes", "Category"}

// formCategories are the choices of the category field; the first one is
// "no category".
var formCategories = append([]models.Category{""}, models.Categories...)

type recordFormModel struct {
	inputs      []textinput.Model
	categoryIdx int
	focus       int
	editing     bool
	submitting  bool
	showSecret  bool
}

func newRecordFormModel(draft models.RecordPayload, editing bool) recordFormModel {
	title := newInput("e.g. GitHub", 128)
	website := newInput("https://example.com", 256)
	username := newInput("login or e-mail", 128)
	secret := newInput("ctrl+g to generate", 256)
	secret.EchoMode = textinput.EchoPassword
	secret.EchoCharacter = '•'
	notes := newInput("optional", 1024)

	title.SetValue(draft.Title)
	website.SetValue(draft.Website)
	username.SetValue(draft.Username)
	secret.SetValue(draft.Secret)
	notes.SetValue(draft.Notes)

	m := recordFormModel{
		inputs:  []textinput.Model{title, website, username, secret, notes},
		editing: editing,
	}
	for i, c := range formCategories {
		if c == draft.Category {
			m.categoryIdx = i
		}
	}
	focusInputs(m.inputs, m.focus)
	return m
}

func (m recordFormModel) payload() models.RecordPayload {
	return models.RecordPayload{
		Title:    m.inputs[fieldTitle].Value(),
		Website:  m.inputs[fieldWebsite].Value(),
		Username: m.inputs[fieldUsername].Value(),
		Secret:   m.inputs[fieldSecret].Value(),
		Notes:    m.inputs[fieldNotes].Value(),
		Category: formCategories[m.categoryIdx],
	}
}

func (m recordFormModel) setSecret(secret string) recordFormModel {
	m.inputs[fieldSecret].SetValue(secret)
	return m
}

func (m recordFormModel) toggleSecret() recordFormModel {
	m.showSecret = !m.showSecret
	if m.showSecret {
		m.inputs[fieldSecret].EchoMode = textinput.EchoNormal
	} else {
		m.inputs[fieldSecret].EchoMode = textinput.EchoPassword
	}
	return m
}

func (m recordFormModel) focusNext() recordFormModel {
	m.focus = (m.focus + 1) % formFieldCount
	focusInputs(m.inputs, m.focus)
	return m
}

func (m recordFormModel) focusPrev() recordFormModel {
	m.focus = (m.focus - 1 + formFieldCount) % formFieldCount
	focusInputs(m.inputs, m.focus)
	return m
}

func (m recordFormModel) onCategory() bool {
	return m.focus == fieldCategory
}

func (m recordFormModel) cycleCategory(delta int) recordFormModel {
	m.categoryIdx = (m.categoryIdx + delta + len(formCategories)) % len(formCategories)
	return m
}

func (m recordFormModel) View(spin string) string {
	var b strings.Builder
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		b.WriteString(cursor + labelStyle.Width(12).Render(formLabels[i]) + in.View() + "\n")
	}

	cursor := "  "
	if m.onCategory() {
		cursor = "> "
	}
	category := "‹ " + categoryBadge(formCategories[m.categoryIdx]) + " ›"
	b.WriteString(cursor + labelStyle.Width(12).Render(formLabels[fieldCategory]) + category + "\n")

	if m.submitting {
		b.WriteString("\n" + spin + " Saving...")
	}

	title := "NEW PASSWORD"
	if m.editing {
		title = "EDIT PASSWORD"
	}
	return renderPage(title, b.String(), "tab next • ←/→ category • ctrl+g generate • ctrl+r show • enter save • esc cancel")
}
