package models

// Screen is the tagged union of application views.
type Screen int

const (
	ScreenLanguage Screen = iota
	ScreenHome
	ScreenCamera
	ScreenResult
	ScreenChat
	ScreenDashboard
)

func (s Screen) String() string {
	switch s {
	case ScreenLanguage:
		return "language-select"
	case ScreenHome:
		return "home"
	case ScreenCamera:
		return "camera"
	case ScreenResult:
		return "result"
	case ScreenChat:
		return "chatbot"
	case ScreenDashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

// Action is a user-visible cause for a screen change.
type Action int

const (
	ActionChooseLanguage Action = iota
	ActionOpenCamera
	ActionOpenChat
	ActionOpenDashboard
	ActionAnalysisDone
	ActionNewAnalysis
	ActionBack
)

// Transition is the pure screen state machine. Unknown (screen, action)
// pairs keep the current screen; there is no terminal state.
func Transition(s Screen, a Action) Screen {
	switch s {
	case ScreenLanguage:
		if a == ActionChooseLanguage {
			return ScreenHome
		}
	case ScreenHome:
		switch a {
		case ActionOpenCamera:
			return ScreenCamera
		case ActionOpenChat:
			return ScreenChat
		case ActionOpenDashboard:
			return ScreenDashboard
		}
	case ScreenCamera:
		switch a {
		case ActionAnalysisDone:
			return ScreenResult
		case ActionBack:
			return ScreenHome
		}
	case ScreenResult:
		switch a {
		case ActionNewAnalysis:
			return ScreenCamera
		case ActionBack:
			return ScreenHome
		}
	case ScreenChat, ScreenDashboard:
		if a == ActionBack {
			return ScreenHome
		}
	}
	return s
}
