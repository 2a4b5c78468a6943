package api

import (
	"fmt"
	"time"
)

// ValidationError is raised locally, before any network activity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

// TimeoutError means the request deadline elapsed before a response arrived.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request to %s timed out after %s", e.URL, e.Timeout)
}

// HTTPError carries a non-2xx status plus the best message we could
// extract from the response body.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
}

// statusMessages maps common statuses to user-facing messages. Unmapped
// statuses fall back to the server-supplied message.
var statusMessages = map[int]string{
	413: "Image trop volumineuse pour le serveur",
	415: "Format d'image non pris en charge",
	422: "Contenu de la requête invalide",
	500: "Erreur interne du serveur",
	503: "Service temporairement indisponible",
}

// UserMessage returns the fixed translation for well-known statuses,
// otherwise whatever the server said.
func (e *HTTPError) UserMessage() string {
	if msg, ok := statusMessages[e.Status]; ok {
		return msg
	}
	return e.Message
}
