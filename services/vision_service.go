package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const visionAPIURL = "https://vision.googleapis.com/v1/images:annotate"

type VisionService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewVisionService initializes the VisionService with the API key from the
// environment and an HTTP client
func NewVisionService() *VisionService {
	return &VisionService{
		apiKey:  os.Getenv("VISION_API_KEY"),
		baseURL: visionAPIURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// VisionAnnotation is one label or localized object with its score.
type VisionAnnotation struct {
	Name  string
	Score float64
}

type visionRequest struct {
	Requests []visionAnnotateRequest `json:"requests"`
}

type visionAnnotateRequest struct {
	Image    visionImage     `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionImage struct {
	Content string `json:"content"`
}

type visionFeature struct {
	Type       string `json:"type"`
	MaxResults int    `json:"maxResults"`
}

type visionResponse struct {
	Responses []struct {
		LabelAnnotations []struct {
			Description string  `json:"description"`
			Score       float64 `json:"score"`
		} `json:"labelAnnotations"`
		LocalizedObjectAnnotations []struct {
			Name  string  `json:"name"`
			Score float64 `json:"score"`
		} `json:"localizedObjectAnnotations"`
	} `json:"responses"`
}

// Annotate sends a base64-encoded image for label detection and object
// localization, 10 results each, and returns both annotation lists.
func (s *VisionService) Annotate(base64Img string) ([]VisionAnnotation, []VisionAnnotation, error) {
	reqBody := visionRequest{
		Requests: []visionAnnotateRequest{{
			Image: visionImage{Content: stripDataURI(base64Img)},
			Features: []visionFeature{
				{Type: "LABEL_DETECTION", MaxResults: 10},
				{Type: "OBJECT_LOCALIZATION", MaxResults: 10},
			},
		}},
	}

	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal vision payload: %w", err)
	}

	u := fmt.Sprintf("%s?key=%s", s.baseURL, s.apiKey)
	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to call Vision API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read vision response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, &ServiceError{Service: "vision", Status: resp.StatusCode, Body: string(body)}
	}

	var vr visionResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, nil, fmt.Errorf("failed to parse vision JSON: %w", err)
	}
	if len(vr.Responses) == 0 {
		return nil, nil, nil
	}

	labels := make([]VisionAnnotation, 0, len(vr.Responses[0].LabelAnnotations))
	for _, l := range vr.Responses[0].LabelAnnotations {
		labels = append(labels, VisionAnnotation{Name: l.Description, Score: l.Score})
	}
	objects := make([]VisionAnnotation, 0, len(vr.Responses[0].LocalizedObjectAnnotations))
	for _, o := range vr.Responses[0].LocalizedObjectAnnotations {
		objects = append(objects, VisionAnnotation{Name: o.Name, Score: o.Score})
	}
	return labels, objects, nil
}

// stripDataURI accepts both raw base64 and "data:<mime>;base64,<data>" URIs.
func stripDataURI(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if idx := strings.Index(s, ","); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
