package utils

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Markdown styles
func BoldStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func ItalicStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Italic(true)
}

func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true)
}

func ListStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		MarginLeft(2)
}

var orderedListRegex = regexp.MustCompile(`^(\d+)\.\s+(.*)`)

// RenderMarkdown applies the subset of markdown the assistant actually
// emits: headings, bullet and numbered lists, bold and italic.
func RenderMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	var result strings.Builder

	for _, line := range lines {
		// Handle titles (# ## ###) - remove marks for cleaner visual
		if title, found := strings.CutPrefix(line, "### "); found {
			result.WriteString(TitleStyle().Render(processInline(title)) + "\n")
			continue
		} else if title, found := strings.CutPrefix(line, "## "); found {
			result.WriteString(TitleStyle().Render(processInline(title)) + "\n")
			continue
		} else if title, found := strings.CutPrefix(line, "# "); found {
			result.WriteString(TitleStyle().Render(processInline(title)) + "\n")
			continue
		}

		// Handle unordered lists (- or *)
		if listItem, found := strings.CutPrefix(line, "- "); found {
			result.WriteString(ListStyle().Render("• "+processInline(listItem)) + "\n")
			continue
		} else if listItem, found := strings.CutPrefix(line, "* "); found {
			result.WriteString(ListStyle().Render("• "+processInline(listItem)) + "\n")
			continue
		}

		// Handle ordered lists (1. 2. etc.)
		if matches := orderedListRegex.FindStringSubmatch(line); len(matches) == 3 {
			result.WriteString(ListStyle().Render(matches[1]+". "+processInline(matches[2])) + "\n")
			continue
		}

		result.WriteString(processInline(line) + "\n")
	}

	return strings.TrimSuffix(result.String(), "\n")
}

// processInline handles bold then italic, removing the marks.
func processInline(line string) string {
	boldRegex := regexp.MustCompile(`\*\*([^*]|\*[^*])*\*\*`)
	line = boldRegex.ReplaceAllStringFunc(line, func(match string) string {
		content := strings.Trim(match, "*")
		return BoldStyle().Render(content)
	})

	italicRegex := regexp.MustCompile(`_([^_]+)_`)
	line = italicRegex.ReplaceAllStringFunc(line, func(match string) string {
		return ItalicStyle().Render(strings.Trim(match, "_"))
	})

	return line
}
