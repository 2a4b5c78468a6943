package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Toup95/AgriDetec-test/internal/dispatcher"
	"github.com/Toup95/AgriDetec-test/internal/eventbus"
	"github.com/Toup95/AgriDetec-test/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, eb *eventbus.EventBus) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, eb)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(appModel)
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	return nil
}
