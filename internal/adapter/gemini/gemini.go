// Package gemini extracts structured meal data with Google's Gemini models.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"

	"macrolog/internal/domain"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// ErrMissingAPIKey is returned by New when no API key is given.
var ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")

const systemInstruction = `You are a high-speed nutrition extractor.
Extract meal data into JSON based on typical serving sizes.
Be clinical and concise. If the user logs a full day, use 'full_day' and sum the macros.`

const temperature float32 = 0.1

// generator is the subset of *genai.Models used here.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Extractor implements domain.Extractor on top of the Gemini API.
type Extractor struct {
	models   generator
	model    string
	validate *validator.Validate
}

var _ domain.Extractor = (*Extractor)(nil)

// New creates an Extractor using apiKey. An empty model selects DefaultModel.
func New(ctx context.Context, apiKey, model string) (*Extractor, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return newExtractor(client.Models, model), nil
}

func newExtractor(models generator, model string) *Extractor {
	if model == "" {
		model = DefaultModel
	}
	return &Extractor{models: models, model: model, validate: domain.NewValidator()}
}

// ExtractMeal sends text to the model with the fixed instruction and response
// schema and decodes the answer.
func (e *Extractor) ExtractMeal(ctx context.Context, text string) (*domain.MealFacts, error) {
	resp, err := e.models.GenerateContent(ctx, e.model, genai.Text(text), generateConfig())
	if err != nil {
		return nil, &domain.ExtractError{Kind: domain.ExtractUnavailable, Err: err}
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return nil, &domain.ExtractError{Kind: domain.ExtractEmpty, Err: errors.New("model returned no content")}
	}

	var ans mealAnswer
	if err := json.Unmarshal([]byte(out), &ans); err != nil {
		return nil, &domain.ExtractError{Kind: domain.ExtractMalformed, Err: err}
	}
	if err := e.validate.Struct(ans); err != nil {
		return nil, &domain.ExtractError{Kind: domain.ExtractMalformed, Err: err}
	}
	return ans.facts(), nil
}

// mealAnswer mirrors mealSchema. Pointer fields let a key the model left out
// fail validation instead of decoding as zero.
type mealAnswer struct {
	MealType *string  `json:"meal_type" validate:"required,mealtype"`
	Foods    []string `json:"foods" validate:"required"`
	Calories *int     `json:"calories" validate:"required,gte=0"`
	Protein  *int     `json:"protein" validate:"required,gte=0"`
	Carbs    *int     `json:"carbs" validate:"required,gte=0"`
	Fats     *int     `json:"fats" validate:"required,gte=0"`
	Notes    *string  `json:"notes" validate:"required"`
}

func (a mealAnswer) facts() *domain.MealFacts {
	return &domain.MealFacts{
		MealType: string(domain.NormalizeMealType(*a.MealType)),
		Foods:    a.Foods,
		Calories: *a.Calories,
		Protein:  *a.Protein,
		Carbs:    *a.Carbs,
		Fats:     *a.Fats,
		Notes:    *a.Notes,
	}
}

func generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    mealSchema(),
		Temperature:       genai.Ptr(temperature),
	}
}

func mealSchema() *genai.Schema {
	mealTypes := make([]string, len(domain.MealTypes))
	for i, t := range domain.MealTypes {
		mealTypes[i] = string(t)
	}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"meal_type": {
				Type:        genai.TypeString,
				Description: "breakfast, lunch, dinner, snack, or full_day",
				Enum:        mealTypes,
			},
			"foods": {
				Type:  genai.TypeArray,
				Items: &genai.Schema{Type: genai.TypeString},
			},
			"calories": {Type: genai.TypeInteger},
			"protein":  {Type: genai.TypeInteger, Description: "grams"},
			"carbs":    {Type: genai.TypeInteger, Description: "grams"},
			"fats":     {Type: genai.TypeInteger, Description: "grams"},
			"notes": {
				Type:        genai.TypeString,
				Description: "Very brief context, max 10 words",
			},
		},
		Required:         []string{"meal_type", "foods", "calories", "protein", "carbs", "fats", "notes"},
		PropertyOrdering: []string{"meal_type", "foods", "calories", "protein", "carbs", "fats", "notes"},
	}
}
