package core

import (
	"strings"
	"unicode/utf8"

	"github.com/Toup95/AgriDetec-test/internal/api"
)

// ValidateChatText checks an outgoing message before it leaves the
// client. The returned string is an i18n key; empty means valid.
func ValidateChatText(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "chat.empty"
	}
	if utf8.RuneCountInString(trimmed) > api.MaxChatLength {
		return "chat.toolong"
	}
	return ""
}
