package tui

import "strings"

type welcomeModel struct {
	items         []string
	idx           int
	showBuildInfo bool
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Log in", "Register"}}
}

func (m welcomeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(appName))
	b.WriteString("\n\nChoose an action:\n\n")
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor + item + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter select • v about • q quit"))
	return b.String()
}
