package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toup95/AgriDetec-test/internal/dispatcher"
	"github.com/Toup95/AgriDetec-test/internal/models"
	"github.com/Toup95/AgriDetec-test/internal/update"
	"github.com/Toup95/AgriDetec-test/ui/components"
	"github.com/Toup95/AgriDetec-test/ui/styles"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	eventBus := m.dispatcher.GetEventBus()
	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, eventBus)

	return m, cmd
}

func (m *AppModel) View() string {
	am := &m.appModel
	var b strings.Builder

	switch am.Screen {
	case models.ScreenLanguage:
		b.WriteString(components.RenderLanguageSelect(am.LangCursor))
	case models.ScreenHome:
		b.WriteString(components.RenderHome(am.Language, am.MenuCursor))
	case models.ScreenCamera:
		b.WriteString(components.RenderCamera(
			am.Language, am.Input, am.Preview,
			cameraError(am),
			am.Snapshot.Analyzing, am.LoadingDots, am.Width,
		))
	case models.ScreenResult:
		b.WriteString(components.RenderResult(am.Language, am.Snapshot.Result, ""))
	case models.ScreenChat:
		b.WriteString(m.viewChat())
	case models.ScreenDashboard:
		b.WriteString(components.RenderDashboard(am.Language, am.Snapshot, am.LoadingDots))
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatus(am.Status, am.Loading, am.LoadingDots, am.Width))

	return b.String()
}

func (m *AppModel) viewChat() string {
	am := &m.appModel
	var b strings.Builder

	b.WriteString(components.RenderMessages(am.Snapshot.Messages))
	if !am.Snapshot.ChatSending {
		b.WriteString(components.RenderSuggestions(am.Language, am.Snapshot.Suggestions))
	}
	if am.Snapshot.ChatError != "" {
		b.WriteString(styles.ErrorStyle().Render(am.Snapshot.ChatError) + "\n")
	}
	if am.LocalError != "" {
		b.WriteString(styles.ErrorStyle().Render(am.LocalError) + "\n")
	}
	b.WriteString(components.RenderInput(am.Input, am.Width))

	return b.String()
}

// cameraError prefers local validation feedback, then the last analysis
// failure pushed by core.
func cameraError(am *models.AppModel) string {
	if am.LocalError != "" {
		return am.LocalError
	}
	return am.Snapshot.AnalysisError
}
