package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultGeminiModel is a low-latency model that is good enough for lookup-style prompts.
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiProvider implements AirportProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables; an empty modelName
// selects DefaultGeminiModel.
func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	if modelName == "" {
		modelName = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)

	// Force JSON output shaped by the schema so the reply decodes straight into AirportSuggestion.
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = airportSuggestionsSchema()

	// Lookups are factual; keep the model from getting creative with coordinates.
	model.SetTemperature(0.1)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SuggestAirports asks Gemini for airports matching query.
func (p *GeminiProvider) SuggestAirports(ctx context.Context, query string, limit int) ([]AirportSuggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("gemini: empty query")
	}

	resp, err := p.model.GenerateContent(ctx, genai.Text(buildAirportPrompt(query, limit)))
	if err != nil {
		return nil, fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	return parseSuggestions(responseText.String())
}

// airportSuggestionsSchema mirrors AirportSuggestion. Every field is required,
// but the model can still omit some, so decoding stays tolerant.
func airportSuggestionsSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeArray,
		Items: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"iata": {
					Type:        genai.TypeString,
					Description: "The 3-letter IATA code of the airport.",
				},
				"name": {
					Type:        genai.TypeString,
					Description: "The official name of the airport.",
				},
				"city": {
					Type:        genai.TypeString,
					Description: "The primary city served by the airport.",
				},
				"country": {
					Type:        genai.TypeString,
					Description: "The country where the airport is located.",
				},
				"lat": {
					Type:        genai.TypeNumber,
					Description: "The latitude of the airport in decimal degrees.",
				},
				"lon": {
					Type:        genai.TypeNumber,
					Description: "The longitude of the airport in decimal degrees.",
				},
			},
			Required: []string{"iata", "name", "city", "country", "lat", "lon"},
		},
	}
}

func buildAirportPrompt(query string, limit int) string {
	if limit <= 0 {
		limit = 5
	}
	return fmt.Sprintf(`Find airports matching %q. Return up to %d suggestions with their IATA code, name, city, country, latitude, and longitude.
Only include airports that have a published IATA code. Order the suggestions by relevance to the query.`, query, limit)
}

// parseSuggestions decodes the model output. A JSON null or an object instead
// of an array yields no suggestions rather than an error.
func parseSuggestions(raw string) ([]AirportSuggestion, error) {
	cleanJSON := cleanJSONString(raw)
	if cleanJSON == "" || cleanJSON == "null" {
		return nil, nil
	}
	if !strings.HasPrefix(cleanJSON, "[") {
		return nil, nil
	}

	var out []AirportSuggestion
	if err := json.Unmarshal([]byte(cleanJSON), &out); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	return out, nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
