package components

import (
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

func RenderInput(input string, width int) string {
	inputStyle := styles.InputStyle(width)
	return inputStyle.Render(input)
}
