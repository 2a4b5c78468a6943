package components

import (
	"fmt"
	"strings"

	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/internal/imagefile"
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

func RenderCamera(lang, input string, preview *imagefile.Preview, localError string, analyzing bool, dots int, width int) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render(i18n.T(lang, "home.menu.analyze")) + "\n\n")

	if analyzing {
		b.WriteString(styles.HintStyle().Render(i18n.T(lang, "camera.analyzing")+strings.Repeat(".", dots)) + "\n")
		return b.String()
	}

	if preview != nil {
		b.WriteString(renderPreview(preview) + "\n")
		b.WriteString(styles.HintStyle().Render(i18n.T(lang, "camera.preview")) + "\n")
		return b.String()
	}

	b.WriteString(styles.HintStyle().Render(i18n.T(lang, "camera.prompt")) + "\n")
	b.WriteString(styles.InputStyle(width).Render(input) + "\n")
	if localError != "" {
		b.WriteString(styles.ErrorStyle().Render(localError) + "\n")
	}
	return b.String()
}

func renderPreview(preview *imagefile.Preview) string {
	label := styles.LabelStyle()
	var b strings.Builder
	b.WriteString(label.Render("  "+preview.Name) + "\n")
	line := fmt.Sprintf("  %s · %s", preview.HumanSize(), preview.ContentType)
	if preview.Width > 0 && preview.Height > 0 {
		line += fmt.Sprintf(" · %dx%d", preview.Width, preview.Height)
	}
	b.WriteString(label.Render(line))
	return b.String()
}
