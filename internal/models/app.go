package models

import (
	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/imagefile"
)

// Snapshot is the core state as pushed to the UI. The UI never reaches
// back into core structures; it renders from the latest snapshot only.
type Snapshot struct {
	Messages    []ChatMessage
	Suggestions []string
	ChatSending bool
	ChatError   string

	Analyzing     bool
	Result        *api.AnalysisResult
	ResultSeq     int
	AnalysisError string

	Dashboard        *api.DashboardStats
	DashboardLoading bool
	DashboardFailed  bool

	Connected     bool
	ServerVersion string
}

// AppModel is the local UI state: screen, input fields and the latest
// core snapshot.
type AppModel struct {
	Screen   Screen
	Language string

	Input        string // camera path or chat message, depending on screen
	MenuCursor   int
	LangCursor   int
	Preview      *imagefile.Preview
	LocalError   string // validation feedback, cleared on next input
	LastSeenSeq  int    // last ResultSeq already shown on the result screen
	Status       string
	Loading      bool
	LoadingDots  int
	Width        int
	Height       int
	Snapshot     Snapshot
	ServiceReady bool
}
