package components

import (
	"fmt"
	"strings"

	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/internal/models"
	"github.com/Toup95/AgriDetec-test/internal/utils"
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

func RenderMessages(messages []models.ChatMessage) string {
	var b strings.Builder

	userStyle := styles.UserStyle()
	botStyle := styles.BotStyle()
	programStyle := styles.ProgramStyle()

	for _, msg := range messages {
		switch msg.Sender {
		case models.SenderUser:
			b.WriteString(userStyle.Render(msg.Text) + "\n\n")
		case models.SenderBot:
			b.WriteString(botStyle.Render(utils.RenderMarkdown(msg.Text)) + "\n\n")
		case models.SenderProgram:
			b.WriteString(programStyle.Render(msg.Text) + "\n\n")
		}
	}

	return b.String()
}

// RenderSuggestions shows the quick replies under the conversation,
// numbered so keys 1-4 re-send them.
func RenderSuggestions(lang string, suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.HintStyle().Render(i18n.T(lang, "chat.suggestions")) + "\n")
	for i, suggestion := range suggestions {
		b.WriteString(styles.SuggestionStyle().Render(fmt.Sprintf("%d · %s", i+1, suggestion)) + "\n")
	}
	return b.String()
}
