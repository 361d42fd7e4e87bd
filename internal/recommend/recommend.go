package recommend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/SharpHawks/TireShop/internal/models"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	modelName       = "gemini-1.5-flash"
	maxResults      = 5
	generateTimeout = 15 * time.Second
)

// generator produces the raw model output for a prompt. It is a field so
// tests can substitute the outbound call.
type generator func(ctx context.Context, prompt string) (string, error)

// Service asks the language model for an ordered tire shortlist, with a
// deterministic fallback when the call fails or yields nothing usable.
type Service struct {
	generate generator
}

// NewService initializes the Gemini client.
func NewService(apiKey string) (*Service, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	// The prompt demands a single JSON object; lock the response type down
	// so we never have to strip markdown fences.
	model.ResponseMIMEType = "application/json"

	return &Service{
		generate: func(ctx context.Context, prompt string) (string, error) {
			res, err := model.GenerateContent(ctx, genai.Text(prompt))
			if err != nil {
				return "", err
			}
			if len(res.Candidates) == 0 || res.Candidates[0].Content == nil || len(res.Candidates[0].Content.Parts) == 0 {
				return "", fmt.Errorf("no response content from model")
			}
			text, ok := res.Candidates[0].Content.Parts[0].(genai.Text)
			if !ok {
				return "", fmt.Errorf("unexpected response part type %T", res.Candidates[0].Content.Parts[0])
			}
			return string(text), nil
		},
	}, nil
}

// recommendationResponse is the strict response contract for the model.
type recommendationResponse struct {
	RecommendedTireIDs []int64 `json:"recommendedTireIds"`
}

// Recommend returns an ordered shortlist of at most 5 tires from the
// candidate set. It never returns an error: any failure of the outbound
// call, a malformed response, or an empty recommendation list degrades to
// the deterministic fallback.
func (s *Service) Recommend(ctx context.Context, prefs models.UserPreferences, candidates []models.Tire) []models.Tire {
	if len(candidates) == 0 {
		return []models.Tire{}
	}

	prompt, err := buildPrompt(prefs, candidates)
	if err != nil {
		log.Printf("Error building recommendation prompt: %v", err)
		return Fallback(prefs, candidates)
	}

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	raw, err := s.generate(genCtx, prompt)
	if err != nil {
		log.Printf("Error getting tire recommendations: %v", err)
		return Fallback(prefs, candidates)
	}

	var parsed recommendationResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("Error parsing recommendation response: %v", err)
		return Fallback(prefs, candidates)
	}

	// Map the recommended IDs back to tire records, preserving the model's
	// ordering and dropping IDs that are not in the candidate set.
	byID := make(map[int64]models.Tire, len(candidates))
	for _, tire := range candidates {
		byID[tire.ID] = tire
	}

	recommendations := make([]models.Tire, 0, maxResults)
	for _, id := range parsed.RecommendedTireIDs {
		tire, ok := byID[id]
		if !ok {
			continue
		}
		recommendations = append(recommendations, tire)
		if len(recommendations) == maxResults {
			break
		}
	}

	if len(recommendations) == 0 {
		return Fallback(prefs, candidates)
	}
	return recommendations
}

// buildPrompt embeds the preferences and the full candidate set, and pins
// the output format the parser expects.
func buildPrompt(prefs models.UserPreferences, candidates []models.Tire) (string, error) {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return "", err
	}
	tiresJSON, err := json.Marshal(candidates)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`As a tire recommendation expert, analyze these user preferences and recommend the best matching tires from the available options.
User preferences: %s
Available tires: %s

Consider the following factors:
- Driving style (%s)
- Weather conditions (%s)
- Budget range (%s)
- Vehicle type (%s)

Return the response as a JSON object containing the IDs of the recommended tires in order of relevance.
Format: { "recommendedTireIds": [1, 2, 3] }`,
		prefsJSON, tiresJSON,
		prefs.DrivingStyle, prefs.Weather, prefs.Budget, prefs.VehicleType)

	return prompt, nil
}
