package tui

type confirmKind int

const (
	confirmDelete confirmKind = iota
	confirmLogout
)

type confirmModel struct {
	kind    confirmKind
	message string
}

func (m confirmModel) View() string {
	var content string
	switch m.kind {
	case confirmLogout:
		content = "Log out?\n\n"
	default:
		content = "Delete \"" + m.message + "\"?\n\n"
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
