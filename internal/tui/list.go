package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-client/internal/view"
	"github.com/MKhiriev/go-pass-client/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const listTitleWidth = 28

// listModel is the record browser: the snapshot taken from the vault, the
// filter and what it lets through.
type listModel struct {
	records    []models.CredentialRecord
	visible    []models.CredentialRecord
	categories []models.Category
	filter     view.Filter

	search    textinput.Model
	searching bool

	idx     int
	loading bool
	status  string
}

func newListModel() listModel {
	search := newInput("search title, website or username", 64)
	return listModel{
		search:     search,
		filter:     view.NewFilter(),
		categories: view.Categories(nil),
	}
}

// setRecords replaces the snapshot, recomputes the category set and drops a
// category selection that is no longer offered.
func (m listModel) setRecords(records []models.CredentialRecord) listModel {
	m.records = records
	m.categories = view.Categories(records)
	m.filter = m.filter.Reconcile(m.categories)
	return m.refilter()
}

func (m listModel) refilter() listModel {
	m.visible = m.filter.Apply(m.records)
	if m.idx >= len(m.visible) {
		m.idx = len(m.visible) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

func (m listModel) setSearch(term string) listModel {
	if term == m.filter.Search {
		return m
	}
	m.filter.Search = term
	m.idx = 0
	return m.refilter()
}

// cycleCategory moves the category selection by delta, wrapping around.
func (m listModel) cycleCategory(delta int) listModel {
	if len(m.categories) == 0 {
		return m
	}
	cur := 0
	for i, c := range m.categories {
		if c == m.filter.Category {
			cur = i
			break
		}
	}
	next := (cur + delta + len(m.categories)) % len(m.categories)
	m.filter.Category = m.categories[next]
	m.idx = 0
	return m.refilter()
}

func (m listModel) current() (models.CredentialRecord, bool) {
	if len(m.visible) == 0 || m.idx < 0 || m.idx >= len(m.visible) {
		return models.CredentialRecord{}, false
	}
	return m.visible[m.idx], true
}

func (m listModel) View(vis *view.Visibility, user, spin string) string {
	var b strings.Builder

	header := titleStyle.Render(appName)
	if user != "" {
		header += helpStyle.Render("  " + user)
	}
	if m.loading {
		header += "  " + spin
	}
	b.WriteString(header + "\n" + uiDivider + "\n")

	search := m.search.View()
	if !m.searching && m.search.Value() == "" {
		search = helpStyle.Render("press / to search")
	}
	b.WriteString(labelStyle.Render("Search") + search + "\n")
	b.WriteString(labelStyle.Render("Category") + "‹ " + m.filter.Category.Label() + " ›\n")
	b.WriteString(uiDivider + "\n")

	switch {
	case m.loading && len(m.records) == 0:
		b.WriteString("Loading...\n")
	case len(m.visible) == 0:
		b.WriteString(helpStyle.Render(m.filter.EmptyHint()) + "\n")
	default:
		for i, r := range m.visible {
			cursor := "  "
			title := fitText(r.Title, listTitleWidth)
			if i == m.idx {
				cursor = "> "
				title = selectedStyle.Render(title)
			}
			pad := strings.Repeat(" ", max(0, listTitleWidth-len([]rune(fitText(r.Title, listTitleWidth)))))
			fmt.Fprintf(&b, "%s%s%s %s %s\n", cursor, title, pad, categoryBadge(r.Category), helpStyle.Render(r.Username))
		}
	}

	if r, ok := m.current(); ok {
		b.WriteString(uiDivider + "\n")
		b.WriteString(renderDetail(r, vis))
		b.WriteString("\n")
	}

	b.WriteString(uiDivider + "\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	if m.searching {
		b.WriteString(helpStyle.Render("type to filter • enter/esc done"))
	} else {
		b.WriteString(helpStyle.Render("n new • e edit • d delete • space show • c/u/w copy • / search • tab category • r refresh • L logout • q quit"))
	}
	return b.String()
}
