package components

import (
	"strings"

	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

// LanguageChoices is the selection order on the first screen.
var LanguageChoices = []struct {
	Code  string
	Label string
}{
	{i18n.French, "Français"},
	{i18n.English, "English"},
}

func RenderLanguageSelect(cursor int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render("-- AGRIDETECT --") + "\n\n")
	b.WriteString(styles.HintStyle().Render(i18n.T(i18n.French, "language.prompt")) + "\n\n")

	for i, choice := range LanguageChoices {
		if i == cursor {
			b.WriteString(styles.MenuSelectedStyle().Render("> "+choice.Label) + "\n")
		} else {
			b.WriteString(styles.MenuItemStyle().Render(choice.Label) + "\n")
		}
	}

	return b.String()
}
