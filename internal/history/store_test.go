package history

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordDetection(t *testing.T) {
	store := setupTestStore(t)

	d := &Detection{
		DiseaseName: "Brûlure précoce",
		Confidence:  0.89,
		Severity:    "Modérée",
		Crop:        "Tomate",
		ImagePath:   "/photos/leaf.jpg",
	}
	if err := store.RecordDetection(d); err != nil {
		t.Fatalf("Failed to record detection: %v", err)
	}
	if d.ID == "" {
		t.Error("RecordDetection should assign an id")
	}

	detections, err := store.RecentDetections(10)
	if err != nil {
		t.Fatalf("Failed to list detections: %v", err)
	}
	if len(detections) != 1 {
		t.Fatalf("Expected 1 detection, got %d", len(detections))
	}
	if detections[0].DiseaseName != d.DiseaseName {
		t.Errorf("Expected disease %s, got %s", d.DiseaseName, detections[0].DiseaseName)
	}
}

func TestRecentDetectionsOrderAndLimit(t *testing.T) {
	store := setupTestStore(t)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		d := &Detection{
			DiseaseName: "Maladie",
			Confidence:  0.5,
			DetectedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.RecordDetection(d); err != nil {
			t.Fatal(err)
		}
	}

	detections, err := store.RecentDetections(2)
	if err != nil {
		t.Fatalf("Failed to list detections: %v", err)
	}
	if len(detections) != 2 {
		t.Fatalf("Expected 2 detections, got %d", len(detections))
	}
	if !detections[0].DetectedAt.After(detections[1].DetectedAt) {
		t.Error("detections should be newest first")
	}
}

func TestChatTurnsPerSession(t *testing.T) {
	store := setupTestStore(t)

	if err := store.RecordChatTurn("s1", SenderUser, "salut"); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordChatTurn("s1", SenderBot, "Bonjour!"); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordChatTurn("s2", SenderUser, "other session"); err != nil {
		t.Fatal(err)
	}

	turns, err := store.ChatTurns("s1")
	if err != nil {
		t.Fatalf("Failed to list chat turns: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("Expected 2 turns, got %d", len(turns))
	}
	if turns[0].Sender != SenderUser || turns[1].Sender != SenderBot {
		t.Error("turns should come back in insertion order")
	}
}
