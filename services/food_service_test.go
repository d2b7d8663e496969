package services

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testVisionService(url string) *VisionService {
	return &VisionService{
		apiKey:  "test-key",
		baseURL: url,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func testFoodService(url string) *FoodService {
	return NewFoodService(testVisionService(url), NewFoodClassifier(NewNutritionTable()))
}

func visionFixture(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			t.Error("expected api key in query string")
		}
		var req visionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if len(req.Requests) != 1 || len(req.Requests[0].Features) != 2 {
			t.Errorf("expected one request with two features, got %+v", req)
		}
		for _, f := range req.Requests[0].Features {
			if f.MaxResults != 10 {
				t.Errorf("feature %s maxResults = %d, want 10", f.Type, f.MaxResults)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestAnalyzeRanksAndDeduplicates(t *testing.T) {
	srv := visionFixture(t, `{
		"responses": [{
			"labelAnnotations": [
				{"description": "Broccoli", "score": 0.90},
				{"description": "Blue sky", "score": 0.99},
				{"description": "Food", "score": 0.80}
			],
			"localizedObjectAnnotations": [
				{"name": "Broccoli", "score": 0.97}
			]
		}]
	}`)
	defer srv.Close()

	result, err := testFoodService(srv.URL).Analyze("aGVsbG8=")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if result.AnalysisID == "" {
		t.Error("expected a non-empty analysis id")
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates (sky discarded, broccoli merged), got %+v", result.Candidates)
	}

	first := result.Candidates[0]
	if first.Name != "Broccoli" {
		t.Errorf("first candidate = %q, want Broccoli", first.Name)
	}
	if first.Confidence != 0.97 {
		t.Errorf("broccoli confidence = %v, want the best score 0.97", first.Confidence)
	}
	if first.Quantum.Calories != 55 || first.Quantum.Protein != 3.7 {
		t.Errorf("unexpected broccoli quantum: %+v", first.Quantum)
	}

	second := result.Candidates[1]
	if second.Name != "Food" {
		t.Errorf("second candidate = %q, want Food", second.Name)
	}
	if second.Quantum != DefaultQuantum {
		t.Errorf("keyword-only label should carry the default quantum, got %+v", second.Quantum)
	}
}

func TestAnalyzeEmptyResult(t *testing.T) {
	srv := visionFixture(t, `{
		"responses": [{
			"labelAnnotations": [
				{"description": "Table", "score": 0.9},
				{"description": "Wood", "score": 0.8}
			]
		}]
	}`)
	defer srv.Close()

	result, err := testFoodService(srv.URL).Analyze("aGVsbG8=")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Candidates) != 0 {
		t.Errorf("expected no candidates, got %+v", result.Candidates)
	}
}

func TestAnalyzeKeepsZeroScoreAnnotations(t *testing.T) {
	srv := visionFixture(t, `{
		"responses": [{
			"labelAnnotations": [
				{"description": "Banana", "score": 0}
			]
		}]
	}`)
	defer srv.Close()

	result, err := testFoodService(srv.URL).Analyze("aGVsbG8=")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Candidates) != 1 {
		t.Fatalf("a zero-score food label must survive, got %+v", result.Candidates)
	}
	got := result.Candidates[0]
	if got.Name != "Banana" || got.Confidence != 0 {
		t.Errorf("candidate = %+v, want Banana with confidence 0", got)
	}
	if got.Quantum.Calories != 105 {
		t.Errorf("unexpected banana quantum: %+v", got.Quantum)
	}
}

func TestAnalyzeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("key invalid"))
	}))
	defer srv.Close()

	_, err := testFoodService(srv.URL).Analyze("aGVsbG8=")
	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ServiceError, got %v", err)
	}
	if se.Status != http.StatusForbidden {
		t.Errorf("status = %d, want 403", se.Status)
	}
	if se.Body != "key invalid" {
		t.Errorf("body = %q, want the upstream body verbatim", se.Body)
	}
}

func TestAnalyzeStripsDataURI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req visionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if got := req.Requests[0].Image.Content; got != "aGVsbG8=" {
			t.Errorf("image content = %q, want the bare base64 payload", got)
		}
		w.Write([]byte(`{"responses":[{}]}`))
	}))
	defer srv.Close()

	if _, err := testFoodService(srv.URL).Analyze("data:image/jpeg;base64,aGVsbG8="); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
}
