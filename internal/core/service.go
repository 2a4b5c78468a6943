package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/config"
	"github.com/Toup95/AgriDetec-test/internal/eventbus"
	"github.com/Toup95/AgriDetec-test/internal/history"
	"github.com/Toup95/AgriDetec-test/internal/i18n"
	"github.com/Toup95/AgriDetec-test/internal/imagefile"
)

// Backend is the slice of the API client the service needs. *api.Client
// satisfies it; tests substitute a stub.
type Backend interface {
	DetectDisease(ctx context.Context, imagePath, cropType, language string) (*api.AnalysisResult, error)
	SendChat(ctx context.Context, sessionID, message, language string) (*api.ChatReply, error)
	FetchDashboard(ctx context.Context) (*api.DashboardStats, error)
	Health(ctx context.Context) (*api.HealthStatus, error)
}

// Service runs the application core: it consumes UI events, talks to
// the backend one request at a time and pushes state snapshots back.
type Service struct {
	backend   Backend
	state     *AppState
	eventBus  *eventbus.EventBus
	store     *history.Store // may be nil; history is best effort
	sessionID string
	language  string
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

func NewService(cfg *config.Config, backend Backend, store *history.Store, sessionID string, eb *eventbus.EventBus) *Service {
	ctx, cancel := context.WithCancel(context.Background())

	service := &Service{
		backend:   backend,
		state:     NewAppState(),
		eventBus:  eb,
		store:     store,
		sessionID: sessionID,
		language:  cfg.GetLanguage(),
		ctx:       ctx,
		cancel:    cancel,
	}

	service.addWelcomeMessages()
	return service
}

// SetLanguage records the language chosen on the first screen. Called
// from the UI loop before any request is in flight.
func (s *Service) SetLanguage(lang string) {
	if i18n.Supported(lang) {
		s.language = lang
	}
}

func (s *Service) Language() string { return s.language }

// Start pushes the initial state and runs the event loop plus the
// one-off connectivity probe.
func (s *Service) Start() {
	s.pushStateToUI()
	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		s.probeHealth()
	}()
	go func() {
		defer s.wg.Done()
		s.eventLoop()
	}()
}

// Stop cancels in-flight requests and waits for the goroutines, so the
// caller can close the event bus without racing a late push.
func (s *Service) Stop() {
	s.cancel()
	s.wg.Wait()
}

func (s *Service) eventLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case event, ok := <-s.eventBus.UIToCore():
			if !ok {
				return
			}
			s.handleUIEvent(event)
		}
	}
}

func (s *Service) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.AnalyzeImageEvent:
		s.analyzeImage(e.Path, e.CropType)
	case eventbus.SendChatEvent:
		s.sendChat(e.Text)
	case eventbus.LoadDashboardEvent:
		s.loadDashboard()
	case eventbus.SelectLanguageEvent:
		s.SetLanguage(e.Code)
	}
}

// analyzeImage validates locally, then uploads. Validation failures
// never reach the network.
func (s *Service) analyzeImage(path, cropType string) {
	if _, err := imagefile.Validate(path); err != nil {
		s.state.FinishAnalysisWithError(s.userMessage(err))
		s.pushStateToUI()
		return
	}

	s.state.StartAnalysis()
	s.pushStateToUI()

	result, err := s.backend.DetectDisease(s.ctx, path, cropType, s.language)
	if err != nil {
		slog.Warn("analysis failed", "path", path, "error", err)
		s.state.FinishAnalysisWithError(s.userMessage(err))
		s.pushStateToUI()
		return
	}

	slog.Info("analysis complete", "disease", result.DiseaseName, "confidence", result.Confidence)
	s.state.FinishAnalysisWithResult(result)
	s.pushStateToUI()

	if s.store != nil {
		err := s.store.RecordDetection(&history.Detection{
			DiseaseName: result.DiseaseName,
			Confidence:  result.Confidence,
			Severity:    result.Severity,
			Crop:        result.AffectedCrop,
			ImagePath:   path,
		})
		if err != nil {
			slog.Warn("failed to record detection", "error", err)
		}
	}
}

// sendChat appends the user bubble optimistically, then waits for the
// reply. On any failure the fixed apology is appended instead and the
// input is re-enabled.
func (s *Service) sendChat(text string) {
	text = strings.TrimSpace(text)
	if key := ValidateChatText(text); key != "" {
		// Invalid text never produces a user bubble.
		return
	}

	s.state.StartChatWithUserMessage(text)
	s.pushStateToUI()
	s.recordChatTurn(history.SenderUser, text)

	reply, err := s.backend.SendChat(s.ctx, s.sessionID, text, s.language)
	if err != nil {
		slog.Warn("chat failed", "error", err)
		s.state.FinishChatWithApology(i18n.T(s.language, "chat.apology"), s.userMessage(err))
		s.pushStateToUI()
		return
	}

	answer := reply.Text()
	if answer == "" {
		answer = i18n.T(s.language, "chat.apology")
	}
	s.state.FinishChatWithReply(answer, reply.Suggestions)
	s.pushStateToUI()
	s.recordChatTurn(history.SenderBot, answer)
}

// loadDashboard refreshes the statistics. A failure clears everything:
// the dashboard shows placeholders, never partial data.
func (s *Service) loadDashboard() {
	s.state.StartDashboard()
	s.pushStateToUI()

	stats, err := s.backend.FetchDashboard(s.ctx)
	if err != nil {
		slog.Warn("dashboard fetch failed", "error", err)
		s.state.FailDashboard()
		s.pushStateToUI()
		return
	}

	s.state.FinishDashboard(stats)
	s.pushStateToUI()
}

// probeHealth flags connected/disconnected in the status bar once at
// startup.
func (s *Service) probeHealth() {
	status, err := s.backend.Health(s.ctx)
	if err != nil {
		slog.Warn("health probe failed", "error", err)
		s.state.SetConnected(false, "")
	} else {
		s.state.SetConnected(status.Connected(), status.Version)
	}
	s.pushStateToUI()
}

func (s *Service) recordChatTurn(sender, text string) {
	if s.store == nil {
		return
	}
	if err := s.store.RecordChatTurn(s.sessionID, sender, text); err != nil {
		slog.Warn("failed to record chat turn", "error", err)
	}
}

// userMessage maps an error onto the string shown to the user, per the
// fixed taxonomy: validation text as-is, timeout and network through
// i18n, HTTP through the status table.
func (s *Service) userMessage(err error) string {
	var vErr *api.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	var tErr *api.TimeoutError
	if errors.As(err, &tErr) {
		return i18n.T(s.language, "error.timeout")
	}
	var hErr *api.HTTPError
	if errors.As(err, &hErr) {
		return hErr.UserMessage()
	}
	return i18n.T(s.language, "error.network")
}

func (s *Service) pushStateToUI() {
	if err := s.eventBus.SendToUI(eventbus.SnapshotEvent{Snapshot: s.state.Snapshot()}); err != nil {
		slog.Error("failed to push state to UI", "error", err)
	}
}

func (s *Service) addWelcomeMessages() {
	s.state.AddProgramMessage("-- AGRIDETECT --")
	s.state.AddProgramMessage(i18n.T(s.language, "chat.placeholder"))
}
