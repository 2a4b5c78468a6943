package models

import "time"

type Sender int

const (
	SenderUser Sender = iota
	SenderBot
	SenderProgram
)

// ChatMessage is one bubble of the conversation. Append-only: messages
// are never mutated after creation.
type ChatMessage struct {
	Text      string
	Sender    Sender
	Timestamp time.Time
}
