// Package history keeps a local record of analyses and chat turns in
// SQLite so past results survive restarts. It is client-side recall
// only; the backend dashboard has its own aggregation.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type Store struct {
	conn *sql.DB
}

// Detection is one completed analysis.
type Detection struct {
	ID          string
	DiseaseName string
	Confidence  float64
	Severity    string
	Crop        string
	ImagePath   string
	DetectedAt  time.Time
}

// ChatTurn is one stored conversation message.
type ChatTurn struct {
	ID        int64
	SessionID string
	Sender    string
	Content   string
	CreatedAt time.Time
}

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	store := &Store{conn: conn}
	if err := store.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}
	return store, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS detections (
		id TEXT PRIMARY KEY,
		disease_name TEXT NOT NULL,
		confidence REAL NOT NULL,
		severity TEXT,
		crop TEXT,
		image_path TEXT,
		detected_at TIMESTAMP NOT NULL
	);
	CREATE TABLE IF NOT EXISTS chat_turns (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		sender TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_chat_turns_session ON chat_turns(session_id, id);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// RecordDetection stores a completed analysis and returns its id.
func (s *Store) RecordDetection(d *Detection) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.DetectedAt.IsZero() {
		d.DetectedAt = time.Now()
	}
	_, err := s.conn.Exec(
		`INSERT INTO detections (id, disease_name, confidence, severity, crop, image_path, detected_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ID, d.DiseaseName, d.Confidence, d.Severity, d.Crop, d.ImagePath, d.DetectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert detection: %w", err)
	}
	return nil
}

// RecentDetections returns the newest detections first, at most limit.
func (s *Store) RecentDetections(limit int) ([]Detection, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.conn.Query(
		`SELECT id, disease_name, confidence, severity, crop, image_path, detected_at
		 FROM detections ORDER BY detected_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list detections: %w", err)
	}
	defer rows.Close()

	var detections []Detection
	for rows.Next() {
		var d Detection
		if err := rows.Scan(&d.ID, &d.DiseaseName, &d.Confidence, &d.Severity, &d.Crop, &d.ImagePath, &d.DetectedAt); err != nil {
			return nil, fmt.Errorf("failed to scan detection: %w", err)
		}
		detections = append(detections, d)
	}
	return detections, rows.Err()
}

// RecordChatTurn appends one conversation message.
func (s *Store) RecordChatTurn(sessionID, sender, content string) error {
	_, err := s.conn.Exec(
		`INSERT INTO chat_turns (session_id, sender, content, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, sender, content, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert chat turn: %w", err)
	}
	return nil
}

// ChatTurns returns a session's messages in insertion order.
func (s *Store) ChatTurns(sessionID string) ([]ChatTurn, error) {
	rows, err := s.conn.Query(
		`SELECT id, session_id, sender, content, created_at
		 FROM chat_turns WHERE session_id = ? ORDER BY id`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat turns: %w", err)
	}
	defer rows.Close()

	var turns []ChatTurn
	for rows.Next() {
		var turn ChatTurn
		if err := rows.Scan(&turn.ID, &turn.SessionID, &turn.Sender, &turn.Content, &turn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat turn: %w", err)
		}
		turns = append(turns, turn)
	}
	return turns, rows.Err()
}
