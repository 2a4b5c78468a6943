package api

import (
	"fmt"
	"strings"
	"time"
)

// Treatment is one recommended intervention for a detected disease.
type Treatment struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Application string `json:"application,omitempty"`
	Organic     bool   `json:"organic,omitempty"`
}

// AnalysisResult is the canonical detection response
// (POST /api/v1/detect-disease).
type AnalysisResult struct {
	DiseaseID      string      `json:"disease_id"`
	DiseaseName    string      `json:"disease_name"`
	Confidence     float64     `json:"confidence"`
	Severity       string      `json:"severity"`
	AffectedCrop   string      `json:"affected_crop"`
	Treatments     []Treatment `json:"treatments"`
	PreventionTips []string    `json:"prevention_tips"`
	DetectionDate  time.Time   `json:"detection_date"`
}

// healthyTokens flag a result as "no treatment needed" when any of them
// appears in the disease name, case-insensitively. "sain" also covers
// "saine".
var healthyTokens = []string{"healthy", "sain"}

// IsHealthy reports whether the disease name matches the healthy
// pattern, regardless of the treatments list.
func (r *AnalysisResult) IsHealthy() bool {
	name := strings.ToLower(r.DiseaseName)
	for _, tok := range healthyTokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}

// normalize enforces the canonical [0,1] confidence scale at the decode
// boundary. Backends that report percentages (confidence > 1) are
// brought back onto the canonical scale once, here, never per call site.
func (r *AnalysisResult) normalize() {
	if r.Confidence > 1 {
		r.Confidence /= 100
	}
	if r.Confidence < 0 {
		r.Confidence = 0
	}
	if r.Confidence > 1 {
		r.Confidence = 1
	}
}

// Confidence display tiers. Fixed constants per the UI contract.
const (
	TierGoodThreshold    = 0.8
	TierWarningThreshold = 0.6
)

// ConfidenceTier classifies a [0,1] confidence for display.
type ConfidenceTier int

const (
	TierGood ConfidenceTier = iota
	TierWarning
	TierDanger
)

func TierFor(confidence float64) ConfidenceTier {
	switch {
	case confidence >= TierGoodThreshold:
		return TierGood
	case confidence >= TierWarningThreshold:
		return TierWarning
	default:
		return TierDanger
	}
}

// FormatPercent renders a [0,1] confidence as a percentage with one
// decimal, e.g. 0.891 -> "89.1%".
func FormatPercent(confidence float64) string {
	return fmt.Sprintf("%.1f%%", confidence*100)
}

// ChatReply is the answer to POST /api/v1/chat. The backend has shipped
// the reply under different keys across iterations; Text() resolves
// them in a fixed order.
type ChatReply struct {
	Response    string   `json:"response"`
	TextField   string   `json:"text"`
	MsgField    string   `json:"message"`
	Suggestions []string `json:"suggestions"`
	SessionID   string   `json:"session_id"`
	Timestamp   string   `json:"timestamp"`
}

// Text returns the reply body, probing response, then text, then
// message.
func (r *ChatReply) Text() string {
	switch {
	case r.Response != "":
		return r.Response
	case r.TextField != "":
		return r.TextField
	default:
		return r.MsgField
	}
}

// TopDisease is one entry of the dashboard ranking.
type TopDisease struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DashboardStats aggregates backend counters
// (GET /api/v1/statistics/dashboard).
type DashboardStats struct {
	TotalDetections  int          `json:"total_detections"`
	ActiveUsers      int          `json:"active_users"`
	DiseasesDetected int          `json:"diseases_detected"`
	SuccessRate      float64      `json:"success_rate"`
	TopDiseases      []TopDisease `json:"top_diseases"`
}

// CommonDisease is one catalogue entry (GET /api/v1/diseases/common).
type CommonDisease struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Symptoms      []string `json:"symptoms"`
	Treatment     []string `json:"treatment"`
	CropsAffected []string `json:"crops_affected"`
	Severity      string   `json:"severity"`
	Season        string   `json:"season"`
}

// HealthStatus is the backend health probe response.
type HealthStatus struct {
	Status      string            `json:"status"`
	Version     string            `json:"version"`
	ModelLoaded bool              `json:"model_loaded"`
	Services    map[string]string `json:"services"`
	Uptime      float64           `json:"uptime"`
}

// Connected reports whether the backend considers itself usable.
func (h *HealthStatus) Connected() bool {
	return h.Status == "healthy" || h.Status == "operational" || h.Status == "ok"
}
