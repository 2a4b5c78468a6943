package update

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toup95/AgriDetec-test/internal/core"
	"github.com/Toup95/AgriDetec-test/internal/dispatcher"
	"github.com/Toup95/AgriDetec-test/internal/eventbus"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/internal/imagefile"
	"github.com/Toup95/AgriDetec-test/internal/models"
	"github.com/Toup95/AgriDetec-test/ui/components"
)

// HandleKeyMsgWithEventBus handles keyboard input using the event bus.
// Every screen change goes through models.Transition; requests to the
// core are events, never direct calls.
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}

	switch appModel.Screen {
	case models.ScreenLanguage:
		return handleLanguageKey(appModel, keyMsg, eb)
	case models.ScreenHome:
		return handleHomeKey(appModel, keyMsg, eb)
	case models.ScreenCamera:
		return handleCameraKey(appModel, keyMsg, eb)
	case models.ScreenResult:
		return handleResultKey(appModel, keyMsg)
	case models.ScreenChat:
		return handleChatKey(appModel, keyMsg, eb)
	case models.ScreenDashboard:
		return handleDashboardKey(appModel, keyMsg, eb)
	}
	return nil
}

func handleLanguageKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if appModel.LangCursor > 0 {
			appModel.LangCursor--
		}
	case "down", "j":
		if appModel.LangCursor < len(components.LanguageChoices)-1 {
			appModel.LangCursor++
		}
	case "enter":
		choice := components.LanguageChoices[appModel.LangCursor]
		appModel.Language = choice.Code
		sendToCore(appModel, eb, eventbus.SelectLanguageEvent{Code: choice.Code})
		appModel.Screen = models.Transition(appModel.Screen, models.ActionChooseLanguage)
		syncStatus(appModel)
	}
	return nil
}

func handleHomeKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if appModel.MenuCursor > 0 {
			appModel.MenuCursor--
		}
	case "down", "j":
		if appModel.MenuCursor < len(components.HomeMenuKeys)-1 {
			appModel.MenuCursor++
		}
	case "enter":
		switch appModel.MenuCursor {
		case 0:
			appModel.Input = ""
			appModel.Preview = nil
			appModel.LocalError = ""
			appModel.Screen = models.Transition(appModel.Screen, models.ActionOpenCamera)
		case 1:
			appModel.Input = ""
			appModel.LocalError = ""
			appModel.Screen = models.Transition(appModel.Screen, models.ActionOpenChat)
		case 2:
			appModel.Screen = models.Transition(appModel.Screen, models.ActionOpenDashboard)
			sendToCore(appModel, eb, eventbus.LoadDashboardEvent{})
		}
	}
	return nil
}

// handleCameraKey drives the two-step flow: type a path, Enter to
// validate it locally, Enter again to upload. Validation failures stay
// on this screen and never touch the network.
func handleCameraKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	if appModel.Snapshot.Analyzing {
		return nil
	}

	switch keyMsg.String() {
	case "esc":
		if appModel.Preview != nil {
			appModel.Preview = nil
			return nil
		}
		appModel.Input = ""
		appModel.LocalError = ""
		appModel.Screen = models.Transition(appModel.Screen, models.ActionBack)
	case "enter":
		if appModel.Preview != nil {
			sendToCore(appModel, eb, eventbus.AnalyzeImageEvent{Path: appModel.Preview.Path})
			return nil
		}
		path := strings.TrimSpace(appModel.Input)
		if path == "" {
			return nil
		}
		preview, err := imagefile.Validate(path)
		if err != nil {
			appModel.LocalError = err.Error()
			return nil
		}
		appModel.Preview = preview
		appModel.LocalError = ""
	case "backspace":
		if len(appModel.Input) > 0 {
			appModel.Input = appModel.Input[:len(appModel.Input)-1]
		}
	default:
		appendInputRunes(appModel, keyMsg)
	}
	return nil
}

func handleResultKey(appModel *models.AppModel, keyMsg tea.KeyMsg) tea.Cmd {
	switch keyMsg.String() {
	case "n":
		appModel.Input = ""
		appModel.Preview = nil
		appModel.LocalError = ""
		appModel.Screen = models.Transition(appModel.Screen, models.ActionNewAnalysis)
	case "esc":
		appModel.Screen = models.Transition(appModel.Screen, models.ActionBack)
	}
	return nil
}

// handleChatKey ignores input while a reply is pending; digits 1-4 on
// an empty input re-send the matching suggestion.
func handleChatKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	key := keyMsg.String()

	if key == "esc" {
		appModel.Input = ""
		appModel.LocalError = ""
		appModel.Screen = models.Transition(appModel.Screen, models.ActionBack)
		return nil
	}
	if appModel.Snapshot.ChatSending {
		return nil
	}

	switch key {
	case "enter":
		if reason := core.ValidateChatText(appModel.Input); reason != "" {
			appModel.LocalError = i18n.T(appModel.Language, reason)
			return nil
		}
		sendToCore(appModel, eb, eventbus.SendChatEvent{Text: appModel.Input})
		appModel.Input = ""
		appModel.LocalError = ""
	case "backspace":
		if len(appModel.Input) > 0 {
			appModel.Input = appModel.Input[:len(appModel.Input)-1]
		}
	case "1", "2", "3", "4":
		if appModel.Input == "" {
			idx := int(key[0] - '1')
			if idx < len(appModel.Snapshot.Suggestions) {
				sendToCore(appModel, eb, eventbus.SendChatEvent{Text: appModel.Snapshot.Suggestions[idx]})
				return nil
			}
		}
		appendInputRunes(appModel, keyMsg)
	default:
		appendInputRunes(appModel, keyMsg)
	}
	return nil
}

func handleDashboardKey(appModel *models.AppModel, keyMsg tea.KeyMsg, eb *eventbus.EventBus) tea.Cmd {
	switch keyMsg.String() {
	case "r":
		sendToCore(appModel, eb, eventbus.LoadDashboardEvent{})
	case "esc":
		appModel.Screen = models.Transition(appModel.Screen, models.ActionBack)
	}
	return nil
}

func appendInputRunes(appModel *models.AppModel, keyMsg tea.KeyMsg) {
	switch keyMsg.Type {
	case tea.KeyRunes:
		appModel.Input += string(keyMsg.Runes)
		appModel.LocalError = ""
	case tea.KeySpace:
		appModel.Input += " "
	}
}

func sendToCore(appModel *models.AppModel, eb *eventbus.EventBus, event eventbus.UIEvent) {
	if !appModel.ServiceReady {
		appModel.Status = i18n.T(appModel.Language, "status.disconnected")
		return
	}
	if err := eb.SendToCore(event); err != nil {
		appModel.Status = i18n.T(appModel.Language, "error.network")
	}
}

// HandleCoreEvent applies a pushed snapshot. The UI keeps no copy of
// core state beyond the snapshot; a fresh result sequence moves the
// camera screen to the result screen.
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.SnapshotEvent:
		appModel.Snapshot = event.Snapshot
		appModel.Loading = event.Snapshot.ChatSending ||
			event.Snapshot.Analyzing ||
			event.Snapshot.DashboardLoading

		if event.Snapshot.ResultSeq > appModel.LastSeenSeq {
			appModel.LastSeenSeq = event.Snapshot.ResultSeq
			if appModel.Screen == models.ScreenCamera {
				appModel.Screen = models.Transition(appModel.Screen, models.ActionAnalysisDone)
				appModel.Preview = nil
				appModel.Input = ""
			}
		}
		syncStatus(appModel)
	}
	return nil
}

func syncStatus(appModel *models.AppModel) {
	snapshot := appModel.Snapshot
	switch {
	case snapshot.ChatSending:
		appModel.Status = i18n.T(appModel.Language, "chat.sending")
	case snapshot.Analyzing:
		appModel.Status = i18n.T(appModel.Language, "camera.analyzing")
	case snapshot.DashboardLoading:
		appModel.Status = i18n.T(appModel.Language, "dashboard.loading")
	case snapshot.Connected:
		status := i18n.T(appModel.Language, "status.connected")
		if snapshot.ServerVersion != "" {
			status += " · v" + snapshot.ServerVersion
		}
		appModel.Status = status
	default:
		appModel.Status = i18n.T(appModel.Language, "status.disconnected")
	}
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only drive the loading dots animation here.
	if appModel.Loading {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}
