package eventbus

import (
	"testing"
	"time"
)

func TestSendAndReceive(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	if err := eb.SendToCore(SendChatEvent{Text: "salut"}); err != nil {
		t.Fatalf("SendToCore failed: %v", err)
	}

	select {
	case event := <-eb.UIToCore():
		chat, ok := event.(SendChatEvent)
		if !ok {
			t.Fatalf("unexpected event type %T", event)
		}
		if chat.Text != "salut" {
			t.Errorf("Text = %q, want salut", chat.Text)
		}
	case <-time.After(time.Second):
		t.Fatal("event never arrived")
	}
}

func TestSendToCoreFullChannel(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	for i := 0; i < 100; i++ {
		if err := eb.SendToCore(LoadDashboardEvent{}); err != nil {
			t.Fatalf("send %d failed: %v", i, err)
		}
	}
	if err := eb.SendToCore(LoadDashboardEvent{}); err == nil {
		t.Error("expected an error once the channel is full")
	}
}

func TestCircuitBreakerOpensAfterFailures(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Minute)

	for i := 0; i < 3; i++ {
		if cb.IsOpen() {
			t.Fatalf("breaker open after %d failures", i)
		}
		cb.RecordFailure()
	}
	if !cb.IsOpen() {
		t.Error("breaker should open after max failures")
	}

	cb.RecordSuccess()
	if cb.IsOpen() {
		t.Error("breaker should close after a success")
	}
}
