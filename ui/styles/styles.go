package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Toup95/AgriDetec-test/internal/api"
)

func InputStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Width(width - 4)
}

func StatusStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}

func UserStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("39")).
		Padding(0, 1).
		MarginLeft(2)
}

func BotStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color("214")).
		Padding(0, 1).
		MarginLeft(2)
}

func ProgramStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("141")).
		Bold(true).
		Padding(0, 2).
		Align(lipgloss.Center)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")).
		Bold(true).
		Padding(0, 2)
}

func MenuItemStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 4)
}

func MenuSelectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("114")).
		Bold(true).
		Padding(0, 2)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Padding(0, 2)
}

func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Padding(0, 2)
}

func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
}

func SuggestionStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("80")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("80")).
		Padding(0, 1).
		MarginLeft(2)
}

// Confidence tier colors: green, orange, red.
func TierStyle(tier api.ConfidenceTier) lipgloss.Style {
	var color lipgloss.Color
	switch tier {
	case api.TierGood:
		color = lipgloss.Color("114")
	case api.TierWarning:
		color = lipgloss.Color("214")
	default:
		color = lipgloss.Color("196")
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

func BarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("39"))
}

func BarTrackStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))
}
