package core

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Toup95/AgriDetec-test/internal/api"
	"github.com/Toup95/AgriDetec-test/internal/config"
	"github.com/Toup95/AgriDetec-test/internal/eventbus"
	"github.com/Toup95/AgriDetec-test/internal/models"
)

type stubBackend struct {
	detectResult *api.AnalysisResult
	detectErr    error
	detectCalls  int

	chatReply *api.ChatReply
	chatErr   error
	chatCalls int

	dashboard    *api.DashboardStats
	dashboardErr error

	health    *api.HealthStatus
	healthErr error
}

func (b *stubBackend) DetectDisease(ctx context.Context, imagePath, cropType, language string) (*api.AnalysisResult, error) {
	b.detectCalls++
	return b.detectResult, b.detectErr
}

func (b *stubBackend) SendChat(ctx context.Context, sessionID, message, language string) (*api.ChatReply, error) {
	b.chatCalls++
	return b.chatReply, b.chatErr
}

func (b *stubBackend) FetchDashboard(ctx context.Context) (*api.DashboardStats, error) {
	return b.dashboard, b.dashboardErr
}

func (b *stubBackend) Health(ctx context.Context) (*api.HealthStatus, error) {
	return b.health, b.healthErr
}

func newTestService(t *testing.T, backend *stubBackend) *Service {
	t.Helper()
	t.Setenv("AGRIDETECT_HOME", t.TempDir())
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	svc := NewService(cfg, backend, nil, "test-session", eventbus.NewEventBus())
	t.Cleanup(svc.Stop)
	return svc
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "leaf.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func userAndBotMessages(snapshot models.Snapshot) (users, bots []string) {
	for _, msg := range snapshot.Messages {
		switch msg.Sender {
		case models.SenderUser:
			users = append(users, msg.Text)
		case models.SenderBot:
			bots = append(bots, msg.Text)
		}
	}
	return users, bots
}

func TestSendChatAppendsBothBubbles(t *testing.T) {
	backend := &stubBackend{
		chatReply: &api.ChatReply{
			Response:    "Bonjour!",
			Suggestions: []string{"a", "b", "c", "d", "e", "f"},
		},
	}
	svc := newTestService(t, backend)

	svc.sendChat("salut")

	snapshot := svc.state.Snapshot()
	users, bots := userAndBotMessages(snapshot)
	if len(users) != 1 || users[0] != "salut" {
		t.Errorf("user bubbles = %v, want [salut]", users)
	}
	if len(bots) != 1 || bots[0] != "Bonjour!" {
		t.Errorf("bot bubbles = %v, want [Bonjour!]", bots)
	}
	if snapshot.ChatSending {
		t.Error("input should be re-enabled after the reply")
	}
	if len(snapshot.Suggestions) != MaxSuggestions {
		t.Errorf("suggestions = %d, want capped at %d", len(snapshot.Suggestions), MaxSuggestions)
	}
}

func TestSendChatEmptyNeverAppends(t *testing.T) {
	backend := &stubBackend{}
	svc := newTestService(t, backend)

	svc.sendChat("   ")

	users, _ := userAndBotMessages(svc.state.Snapshot())
	if len(users) != 0 {
		t.Errorf("empty message should not append a bubble, got %v", users)
	}
	if backend.chatCalls != 0 {
		t.Error("empty message should never reach the network")
	}
}

func TestSendChatTooLongNeverSends(t *testing.T) {
	backend := &stubBackend{}
	svc := newTestService(t, backend)

	svc.sendChat(strings.Repeat("x", api.MaxChatLength+1))

	if backend.chatCalls != 0 {
		t.Error("over-length message should never reach the network")
	}
}

func TestSendChatFailureAppendsApology(t *testing.T) {
	backend := &stubBackend{chatErr: &api.TimeoutError{URL: "http://x", Timeout: 0}}
	svc := newTestService(t, backend)

	svc.sendChat("salut")

	snapshot := svc.state.Snapshot()
	users, bots := userAndBotMessages(snapshot)
	if len(users) != 1 {
		t.Fatalf("optimistic user bubble missing, got %v", users)
	}
	if len(bots) != 1 {
		t.Fatalf("apology bubble missing, got %v", bots)
	}
	if snapshot.ChatSending {
		t.Error("input must be re-enabled after a failure")
	}
	if snapshot.ChatError == "" {
		t.Error("expected a chat error message")
	}
}

func TestAnalyzeImageSuccess(t *testing.T) {
	backend := &stubBackend{
		detectResult: &api.AnalysisResult{DiseaseName: "Mildiou", Confidence: 0.92},
	}
	svc := newTestService(t, backend)

	svc.analyzeImage(writeTestImage(t), "tomate")

	snapshot := svc.state.Snapshot()
	if snapshot.Analyzing {
		t.Error("analysis flag should clear on completion")
	}
	if snapshot.Result == nil || snapshot.Result.DiseaseName != "Mildiou" {
		t.Errorf("result not published: %+v", snapshot.Result)
	}
	if snapshot.ResultSeq != 1 {
		t.Errorf("ResultSeq = %d, want 1", snapshot.ResultSeq)
	}
}

func TestAnalyzeImageInvalidFileSkipsNetwork(t *testing.T) {
	backend := &stubBackend{}
	svc := newTestService(t, backend)

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("text"), 0o644); err != nil {
		t.Fatal(err)
	}
	svc.analyzeImage(path, "")

	if backend.detectCalls != 0 {
		t.Error("invalid file must never trigger a network call")
	}
	if svc.state.Snapshot().AnalysisError == "" {
		t.Error("expected a local validation error message")
	}
}

func TestAnalyzeImageErrorReenablesControl(t *testing.T) {
	backend := &stubBackend{detectErr: &api.HTTPError{Status: 503, Message: "down"}}
	svc := newTestService(t, backend)

	svc.analyzeImage(writeTestImage(t), "")

	snapshot := svc.state.Snapshot()
	if snapshot.Analyzing {
		t.Error("analysis flag must clear so the user can retry")
	}
	if snapshot.AnalysisError != (&api.HTTPError{Status: 503}).UserMessage() {
		t.Errorf("AnalysisError = %q, want the fixed 503 message", snapshot.AnalysisError)
	}
}

func TestDashboardFailureShowsNoPartialData(t *testing.T) {
	backend := &stubBackend{
		dashboard: &api.DashboardStats{TotalDetections: 10},
	}
	svc := newTestService(t, backend)

	svc.loadDashboard()
	if svc.state.Snapshot().Dashboard == nil {
		t.Fatal("dashboard data missing after successful load")
	}

	backend.dashboardErr = errors.New("boom")
	svc.loadDashboard()

	snapshot := svc.state.Snapshot()
	if snapshot.Dashboard != nil {
		t.Error("failed refresh must not keep stale counters")
	}
	if !snapshot.DashboardFailed {
		t.Error("DashboardFailed should be set")
	}
}

// blockingBackend parks DetectDisease until the context is cancelled,
// to exercise shutdown with a request in flight.
type blockingBackend struct {
	stubBackend
	started chan struct{}
}

func (b *blockingBackend) DetectDisease(ctx context.Context, imagePath, cropType, language string) (*api.AnalysisResult, error) {
	close(b.started)
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestStopJoinsEventLoopBeforeBusClose(t *testing.T) {
	backend := &blockingBackend{started: make(chan struct{})}
	backend.health = &api.HealthStatus{Status: "healthy"}

	t.Setenv("AGRIDETECT_HOME", t.TempDir())
	cfg, err := config.LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	eb := eventbus.NewEventBus()
	svc := NewService(cfg, backend, nil, "test-session", eb)
	svc.Start()

	if err := eb.SendToCore(eventbus.AnalyzeImageEvent{Path: writeTestImage(t)}); err != nil {
		t.Fatal(err)
	}
	<-backend.started

	// Stop must not return until the event loop has finished its
	// in-flight work; closing the bus right after must be safe.
	svc.Stop()
	eb.Close()
}

func TestUserMessageMapping(t *testing.T) {
	svc := newTestService(t, &stubBackend{})

	if got := svc.userMessage(&api.ValidationError{Reason: "trop gros"}); got != "trop gros" {
		t.Errorf("validation message = %q", got)
	}
	if got := svc.userMessage(&api.HTTPError{Status: 413, Message: "raw"}); got != "Image trop volumineuse pour le serveur" {
		t.Errorf("413 message = %q", got)
	}
	if got := svc.userMessage(errors.New("dial tcp: refused")); got == "" {
		t.Error("network errors need a generic connectivity message")
	}
}
