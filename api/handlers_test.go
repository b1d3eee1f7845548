package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/go-stringdist/config"
	"github.com/gcbaptista/go-stringdist/internal/engine"
)

func setupTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	settings := config.DefaultSettings()
	settings.MaxVectorLength = 100
	eng := engine.NewEngine(settings)
	t.Cleanup(eng.Close)
	return eng
}

func setupTestRouter(eng *engine.Engine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, eng)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheckHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doJSON(t, router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %q", response["status"])
	}
}

func TestPairwiseHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
	}{
		{
			name: "valid pairwise request",
			requestBody: map[string]interface{}{
				"method": "lv",
				"a":      []string{"kitten"},
				"b":      []string{"sitting"},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid JSON",
			requestBody:    `{"method": `,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing method",
			requestBody: map[string]interface{}{
				"a": []string{"kitten"},
				"b": []string{"sitting"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown method",
			requestBody: map[string]interface{}{
				"method": "soundex",
				"a":      []string{"kitten"},
				"b":      []string{"sitting"},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wrong weight count",
			requestBody: map[string]interface{}{
				"method":  "lv",
				"a":       []string{"kitten"},
				"b":       []string{"sitting"},
				"weights": []float64{1, 1},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "out of range winkler prefix factor",
			requestBody: map[string]interface{}{
				"method": "jw",
				"a":      []string{"kitten"},
				"b":      []string{"sitting"},
				"p":      0.9,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, "POST", "/distance/pairwise", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d (body: %s)", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestPairwiseHandler_ResultEncoding(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doJSON(t, router, "POST", "/distance/pairwise", map[string]interface{}{
		"method":   "lv",
		"a":        []interface{}{"kitten", nil, "same"},
		"b":        []interface{}{"sitting", "x", "same"},
		"max_dist": 1.0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d (body: %s)", http.StatusOK, w.Code, w.Body.String())
	}

	var response struct {
		Distances []json.RawMessage `json:"distances"`
		Method    string            `json:"method"`
		QueryID   string            `json:"query_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if len(response.Distances) != 3 {
		t.Fatalf("Expected 3 distances, got %d", len(response.Distances))
	}
	// kitten/sitting exceeds the bound of 1, the null operand is Unknown,
	// and equal strings are 0.
	if string(response.Distances[0]) != `"Inf"` {
		t.Errorf("Expected bound-exceeded distance to encode as \"Inf\", got %s", response.Distances[0])
	}
	if string(response.Distances[1]) != "null" {
		t.Errorf("Expected missing operand distance to encode as null, got %s", response.Distances[1])
	}
	if string(response.Distances[2]) != "0" {
		t.Errorf("Expected zero distance, got %s", response.Distances[2])
	}
	if response.Method != "lv" {
		t.Errorf("Expected method 'lv', got %q", response.Method)
	}
	if response.QueryID == "" {
		t.Error("Expected non-empty query ID")
	}
}

func TestMatrixHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doJSON(t, router, "POST", "/distance/matrix", map[string]interface{}{
		"method": "osa",
		"a":      []string{"ca", "kitten"},
		"b":      []string{"ac", "kitten"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d (body: %s)", http.StatusOK, w.Code, w.Body.String())
	}

	var response struct {
		Distances [][]float64 `json:"distances"`
		Rows      int         `json:"rows"`
		Cols      int         `json:"cols"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Rows != 2 || response.Cols != 2 {
		t.Errorf("Expected a 2x2 matrix, got %dx%d", response.Rows, response.Cols)
	}
	if len(response.Distances) != 2 || response.Distances[0][0] != 1 || response.Distances[1][1] != 0 {
		t.Errorf("Unexpected matrix: %v", response.Distances)
	}
}

func TestCorpusHandlers(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	// Create
	w := doJSON(t, router, "PUT", "/corpora/cities", map[string]interface{}{
		"values": []string{"berlin", "paris"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status %d, got %d (body: %s)", http.StatusCreated, w.Code, w.Body.String())
	}

	// Duplicate create
	w = doJSON(t, router, "PUT", "/corpora/cities", map[string]interface{}{
		"values": []string{"rome"},
	})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status %d for duplicate corpus, got %d", http.StatusConflict, w.Code)
	}

	// Get
	w = doJSON(t, router, "GET", "/corpora/cities", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}
	var info struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if info.Name != "cities" || info.Size != 2 {
		t.Errorf("Unexpected corpus info: %+v", info)
	}

	// List
	w = doJSON(t, router, "GET", "/corpora", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Delete
	w = doJSON(t, router, "DELETE", "/corpora/cities", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	// Get after delete
	w = doJSON(t, router, "GET", "/corpora/cities", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d after delete, got %d", http.StatusNotFound, w.Code)
	}
}

func TestCorpusMatrixHandler(t *testing.T) {
	eng := setupTestEngine(t)
	router := setupTestRouter(eng)

	w := doJSON(t, router, "PUT", "/corpora/cities", map[string]interface{}{
		"values": []string{"berlin", "paris"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Failed to create corpus: %d (body: %s)", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "POST", "/corpora/cities/matrix", map[string]interface{}{
		"method": "lv",
		"b":      []string{"berlin"},
	})
	if w.Code != http.StatusAccepted {
		t.Fatalf("Expected status %d, got %d (body: %s)", http.StatusAccepted, w.Code, w.Body.String())
	}

	var accepted struct {
		JobID string `json:"job_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &accepted); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if accepted.JobID == "" {
		t.Fatal("Expected non-empty job ID")
	}

	// Poll the job endpoint until the matrix lands on the job.
	var job struct {
		Status string      `json:"status"`
		Result [][]float64 `json:"result"`
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w = doJSON(t, router, "GET", "/jobs/"+accepted.JobID, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
		}
		if err := json.Unmarshal(w.Body.Bytes(), &job); err != nil {
			t.Fatalf("Failed to parse job: %v", err)
		}
		if job.Status == "completed" || job.Status == "failed" {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if job.Status != "completed" {
		t.Fatalf("Expected completed job, got status %q", job.Status)
	}
	if len(job.Result) != 2 || job.Result[0][0] != 0 || job.Result[1][0] != 4 {
		t.Errorf("Unexpected result matrix: %v", job.Result)
	}
}

func TestCorpusMatrixHandler_UnknownCorpus(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doJSON(t, router, "POST", "/corpora/missing/matrix", map[string]interface{}{
		"method": "lv",
		"b":      []string{"berlin"},
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGetJobHandler_NotFound(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doJSON(t, router, "GET", "/jobs/no-such-job", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestListJobsHandler(t *testing.T) {
	eng := setupTestEngine(t)
	router := setupTestRouter(eng)

	if err := eng.CreateCorpus("cities", []string{"berlin"}); err != nil {
		t.Fatalf("Failed to create corpus: %v", err)
	}

	w := doJSON(t, router, "GET", "/corpora/cities/jobs", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Total != 0 {
		t.Errorf("Expected no jobs yet, got %d", response.Total)
	}
}

func TestGetJobMetricsHandler(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doJSON(t, router, "GET", "/jobs/metrics", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status %d, got %d", http.StatusOK, w.Code)
	}

	var response struct {
		SuccessRate *float64 `json:"success_rate"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.SuccessRate == nil || *response.SuccessRate != 1 {
		t.Errorf("Expected success rate 1 with no jobs, got %v", response.SuccessRate)
	}
}

func TestRequestIDHeader(t *testing.T) {
	router := setupTestRouter(setupTestEngine(t))

	w := doJSON(t, router, "GET", "/health", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("Expected X-Request-ID header to be set")
	}
}
