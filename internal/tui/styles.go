package tui

import (
	"strings"

	"github.com/MKhiriev/go-pass-client/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	selectedStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle      = lipgloss.NewStyle().Faint(true).Width(10)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	badgeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Padding(0, 1)
)

const defaultCategoryColor = "#6b7280"

var categoryColors = map[models.Category]string{
	models.CategorySocial:        "#3b82f6",
	models.CategoryEmail:         "#ef4444",
	models.CategoryBanking:       "#10b981",
	models.CategoryWork:          "#f59e0b",
	models.CategoryShopping:      "#8b5cf6",
	models.CategoryEntertainment: "#ec4899",
	models.CategoryGaming:        "#06b6d4",
	models.CategoryEducation:     "#84cc16",
}

func categoryColor(c models.Category) lipgloss.Color {
	if hex, ok := categoryColors[models.Category(strings.ToLower(string(c)))]; ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(defaultCategoryColor)
}

func categoryBadge(c models.Category) string {
	return badgeStyle.Background(categoryColor(c)).Render(c.Label())
}
