package app

import (
	"strings"
	"testing"

	"github.com/Toup95/AgriDetec-test/internal/models"
)

func newViewModel(screen models.Screen) *AppModel {
	return &AppModel{appModel: models.AppModel{
		Screen:   screen,
		Language: "fr",
		Width:    80,
	}}
}

func TestViewChatShowsFailureReason(t *testing.T) {
	m := newViewModel(models.ScreenChat)
	m.appModel.Snapshot.ChatError = "Service temporairement indisponible"

	if !strings.Contains(m.View(), "Service temporairement indisponible") {
		t.Error("chat failure reason from core not rendered")
	}
}

func TestViewChatShowsLocalValidation(t *testing.T) {
	m := newViewModel(models.ScreenChat)
	m.appModel.LocalError = "Le message ne peut pas être vide"

	if !strings.Contains(m.View(), "Le message ne peut pas être vide") {
		t.Error("local validation feedback not rendered")
	}
}

func TestViewRendersEachScreen(t *testing.T) {
	for _, screen := range []models.Screen{
		models.ScreenLanguage,
		models.ScreenHome,
		models.ScreenCamera,
		models.ScreenResult,
		models.ScreenChat,
		models.ScreenDashboard,
	} {
		m := newViewModel(screen)
		if m.View() == "" {
			t.Errorf("empty view for screen %v", screen)
		}
	}
}
