package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDisease(t *testing.T) {
	var gotField, gotCrop, gotLang string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/detect-disease", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(16<<20))
		if _, header, err := r.FormFile("file"); err == nil {
			gotField = header.Filename
		}
		gotCrop = r.FormValue("crop_type")
		gotLang = r.FormValue("language")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"disease_id": "tomato_early_blight",
			"disease_name": "Brûlure précoce",
			"confidence": 89,
			"severity": "Modérée",
			"affected_crop": "Tomate",
			"treatments": [{"name": "Traitement cuivre"}],
			"prevention_tips": ["Arroser à la base"]
		}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	imagePath := filepath.Join(dir, "leaf.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("not-really-a-jpeg"), 0o644))

	client := NewClient(server.URL)
	result, err := client.DetectDisease(context.Background(), imagePath, "tomate", "fr")
	require.NoError(t, err)

	assert.Equal(t, "leaf.jpg", gotField)
	assert.Equal(t, "tomate", gotCrop)
	assert.Equal(t, "fr", gotLang)
	assert.Equal(t, "Brûlure précoce", result.DiseaseName)
	// Percent-scale confidence is normalized at the decode boundary.
	assert.InDelta(t, 0.89, result.Confidence, 1e-9)
	assert.Len(t, result.Treatments, 1)
}

func TestDetectDiseaseTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	dir := t.TempDir()
	imagePath := filepath.Join(dir, "leaf.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("png"), 0o644))

	client := NewClient(server.URL, WithAnalyzeTimeout(50*time.Millisecond))
	_, err := client.DetectDisease(context.Background(), imagePath, "", "")
	require.Error(t, err)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
}

func TestTimeoutDuringBodyRead(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Headers go out, then the body stalls past the deadline.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.(http.Flusher).Flush()
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(server.URL, WithRequestTimeout(50*time.Millisecond))
	_, err := client.FetchDashboard(context.Background())
	require.Error(t, err)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 50*time.Millisecond, timeoutErr.Timeout)
}

func TestErrorMessageExtraction(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"json detail", `{"detail": "Le fichier doit être une image"}`, "Le fichier doit être une image"},
		{"json message", `{"message": "quota exceeded"}`, "quota exceeded"},
		{"json error", `{"error": "boom"}`, "boom"},
		{"raw text", `backend fell over`, "backend fell over"},
		{"empty body", ``, "HTTP 502"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errorMessage(502, []byte(tc.body)))
		})
	}
}

func TestHTTPErrorFromServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "invalid content"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchDashboard(context.Background())
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, 422, httpErr.Status)
	assert.Equal(t, "invalid content", httpErr.Message)
	assert.Equal(t, "Contenu de la requête invalide", httpErr.UserMessage())
}

func TestSendChat(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/chat", r.URL.Path)
		require.NoError(t, jsonDecode(r, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "Bonjour!", "suggestions": ["Détecter une maladie", "Conseils"]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	reply, err := client.SendChat(context.Background(), "session-1", "salut", "fr")
	require.NoError(t, err)

	assert.Equal(t, "Bonjour!", reply.Text())
	assert.Len(t, reply.Suggestions, 2)
	assert.Equal(t, "salut", gotBody["message"])
	ctxField, ok := gotBody["context"].(map[string]interface{})
	require.True(t, ok, "chat request must carry a context object")
	assert.Equal(t, "session-1", ctxField["session_id"])
	assert.NotEmpty(t, ctxField["timestamp"])
}

func TestFetchDashboard(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/statistics/dashboard", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"total_detections": 1543,
			"active_users": 342,
			"diseases_detected": 8,
			"success_rate": 95.8,
			"top_diseases": [{"name": "Tache bactérienne", "count": 156}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	stats, err := client.FetchDashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1543, stats.TotalDetections)
	assert.Equal(t, 342, stats.ActiveUsers)
	require.Len(t, stats.TopDiseases, 1)
	assert.Equal(t, 156, stats.TopDiseases[0].Count)
}

func TestHealthFallsBackToRoot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "operational", "version": "1.2.0"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Connected())
	assert.Equal(t, "1.2.0", status.Version)
}

func TestCommonDiseasesQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/diseases/common", r.URL.Path)
		require.Equal(t, "tomate", r.URL.Query().Get("crop_type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"diseases": [{"id": "tomato_late_blight", "name": "Mildiou", "severity": "Élevée", "season": "Saison humide"}], "total": 1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	diseases, err := client.CommonDiseases(context.Background(), "tomate", "")
	require.NoError(t, err)
	require.Len(t, diseases, 1)
	assert.Equal(t, "Mildiou", diseases[0].Name)
}

func jsonDecode(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
