package api

import (
	"context"
	"time"
)

// MaxChatLength is the longest message the backend accepts.
const MaxChatLength = 1000

type chatContext struct {
	SessionID string `json:"session_id"`
	Timestamp string `json:"timestamp"`
}

type chatRequest struct {
	Message  string      `json:"message"`
	Language string      `json:"language,omitempty"`
	Context  chatContext `json:"context"`
}

// SendChat posts one conversation turn. The session id correlates turns
// server-side; there is no authentication.
func (c *Client) SendChat(ctx context.Context, sessionID, message, language string) (*ChatReply, error) {
	req := chatRequest{
		Message:  message,
		Language: language,
		Context: chatContext{
			SessionID: sessionID,
			Timestamp: time.Now().Format(time.RFC3339),
		},
	}
	var reply ChatReply
	if err := c.postJSON(ctx, "/api/v1/chat", req, c.requestTimeout, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
