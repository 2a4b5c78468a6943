package core

import (
	"sync"
	"time"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/models"
)

// MaxSuggestions caps how many quick replies the UI shows.
const MaxSuggestions = 4

// AppState is the single source of truth for everything the UI renders.
// Each mutator is atomic so snapshots never show a half-applied
// operation.
type AppState struct {
	mu sync.RWMutex

	messages    []models.ChatMessage
	suggestions []string
	chatSending bool
	chatError   string

	analyzing     bool
	result        *api.AnalysisResult
	resultSeq     int
	analysisError string

	dashboard        *api.DashboardStats
	dashboardLoading bool
	dashboardFailed  bool

	connected     bool
	serverVersion string
}

func NewAppState() *AppState {
	return &AppState{
		messages: make([]models.ChatMessage, 0),
	}
}

// Snapshot copies the state for the UI. Slices are cloned so the UI
// can hold them across updates.
func (s *AppState) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]models.ChatMessage, len(s.messages))
	copy(messages, s.messages)
	suggestions := make([]string, len(s.suggestions))
	copy(suggestions, s.suggestions)

	return models.Snapshot{
		Messages:         messages,
		Suggestions:      suggestions,
		ChatSending:      s.chatSending,
		ChatError:        s.chatError,
		Analyzing:        s.analyzing,
		Result:           s.result,
		ResultSeq:        s.resultSeq,
		AnalysisError:    s.analysisError,
		Dashboard:        s.dashboard,
		DashboardLoading: s.dashboardLoading,
		DashboardFailed:  s.dashboardFailed,
		Connected:        s.connected,
		ServerVersion:    s.serverVersion,
	}
}

// AddProgramMessage appends an informational line to the conversation.
func (s *AppState) AddProgramMessage(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, models.ChatMessage{
		Text:      text,
		Sender:    models.SenderProgram,
		Timestamp: time.Now(),
	})
}

// StartChatWithUserMessage atomically appends the user's bubble and
// marks the input as busy. The optimistic append happens before any
// network activity.
func (s *AppState) StartChatWithUserMessage(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatSending = true
	s.chatError = ""
	s.suggestions = nil
	s.messages = append(s.messages, models.ChatMessage{
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: time.Now(),
	})
}

// FinishChatWithReply appends the bot answer and re-enables input.
func (s *AppState) FinishChatWithReply(text string, suggestions []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatSending = false
	s.chatError = ""
	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	s.suggestions = suggestions
	s.messages = append(s.messages, models.ChatMessage{
		Text:      text,
		Sender:    models.SenderBot,
		Timestamp: time.Now(),
	})
}

// FinishChatWithApology appends the fixed apology bubble after a
// failure and re-enables input.
func (s *AppState) FinishChatWithApology(apology, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chatSending = false
	s.chatError = errMsg
	s.suggestions = nil
	s.messages = append(s.messages, models.ChatMessage{
		Text:      apology,
		Sender:    models.SenderBot,
		Timestamp: time.Now(),
	})
}

func (s *AppState) StartAnalysis() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzing = true
	s.analysisError = ""
}

// FinishAnalysisWithResult publishes a new result. ResultSeq lets the
// UI tell a fresh result from a re-render of the previous one.
func (s *AppState) FinishAnalysisWithResult(result *api.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzing = false
	s.analysisError = ""
	s.result = result
	s.resultSeq++
}

func (s *AppState) FinishAnalysisWithError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analyzing = false
	s.analysisError = msg
}

func (s *AppState) StartDashboard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboardLoading = true
	s.dashboardFailed = false
	s.dashboard = nil
}

func (s *AppState) FinishDashboard(stats *api.DashboardStats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboardLoading = false
	s.dashboard = stats
}

// FailDashboard drops any previous data: the dashboard never shows
// partial numbers.
func (s *AppState) FailDashboard() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboardLoading = false
	s.dashboardFailed = true
	s.dashboard = nil
}

func (s *AppState) SetConnected(connected bool, version string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = connected
	s.serverVersion = version
}
