package services

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// FoodCandidate is a tentative food identification from one image analysis.
// Candidates are transient: the caller copies accepted ones into meal line
// items and discards the rest.
type FoodCandidate struct {
	Name       string          `json:"name"`
	Quantum    NutrientQuantum `json:"quantum"`
	Confidence float64         `json:"confidence"`
}

// AnalysisResult carries the candidates plus a correlation token so callers
// issuing concurrent analyses can discard stale responses.
type AnalysisResult struct {
	AnalysisID string          `json:"analysis_id"`
	Candidates []FoodCandidate `json:"candidates"`
}

type FoodService struct {
	vision     *VisionService
	classifier *FoodClassifier
}

func NewFoodService(vision *VisionService, classifier *FoodClassifier) *FoodService {
	return &FoodService{vision: vision, classifier: classifier}
}

// Analyze runs a captured image through the vision service and folds the
// detected labels and objects into a deduplicated, confidence-ranked list of
// food candidates. A name seen as both a label and an object keeps its best
// score. Non-food names are silently discarded; the result may be empty, in
// which case the caller falls back to a blank line item for manual entry.
func (s *FoodService) Analyze(imageBase64 string) (*AnalysisResult, error) {
	labels, objects, err := s.vision.Annotate(imageBase64)
	if err != nil {
		return nil, err
	}

	best := make(map[string]float64)
	for _, a := range append(labels, objects...) {
		name := strings.ToLower(a.Name)
		if seen, ok := best[name]; !ok || a.Score > seen {
			best[name] = a.Score
		}
	}

	candidates := make([]FoodCandidate, 0, len(best))
	for name, score := range best {
		isFood, quantum := s.classifier.Classify(name)
		if !isFood {
			continue
		}
		candidates = append(candidates, FoodCandidate{
			Name:       capitalizeFirst(name),
			Quantum:    quantum,
			Confidence: score,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].Name < candidates[j].Name
	})

	return &AnalysisResult{
		AnalysisID: uuid.NewString(),
		Candidates: candidates,
	}, nil
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
