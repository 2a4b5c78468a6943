package components

import (
	"strings"

	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

// HomeMenuKeys lists the menu entries in display order.
var HomeMenuKeys = []string{
	"home.menu.analyze",
	"home.menu.chat",
	"home.menu.dashboard",
}

func RenderHome(lang string, cursor int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render(i18n.T(lang, "app.title")) + "\n\n")

	for i, key := range HomeMenuKeys {
		label := i18n.T(lang, key)
		if i == cursor {
			b.WriteString(styles.MenuSelectedStyle().Render("> "+label) + "\n")
		} else {
			b.WriteString(styles.MenuItemStyle().Render(label) + "\n")
		}
	}

	b.WriteString("\n" + styles.HintStyle().Render(i18n.T(lang, "home.hint")) + "\n")
	return b.String()
}
