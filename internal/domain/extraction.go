package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// MealFacts is the structured data a language model extracts from a free-text
// meal description.
type MealFacts struct {
	MealType string   `json:"meal_type" validate:"required,mealtype"`
	Foods    []string `json:"foods" validate:"required"`
	Calories int      `json:"calories" validate:"gte=0"`
	Protein  int      `json:"protein" validate:"gte=0"`
	Carbs    int      `json:"carbs" validate:"gte=0"`
	Fats     int      `json:"fats" validate:"gte=0"`
	Notes    string   `json:"notes"`
}

// Extraction is a successful extraction together with its call metadata.
type Extraction struct {
	MealFacts
	Timestamp time.Time     `json:"timestamp"`
	RawInput  string        `json:"raw_input"`
	Latency   time.Duration `json:"-"`
}

// LatencyString renders the call latency in seconds with two decimals.
func (e Extraction) LatencyString() string {
	return fmt.Sprintf("%.2fs", e.Latency.Seconds())
}

// MealInput converts the extraction into a save request. The model's own
// calorie estimate is not carried over.
func (e Extraction) MealInput() MealInput {
	mealType := e.MealType
	protein, carbs, fats := e.Protein, e.Carbs, e.Fats
	return MealInput{
		MealType: &mealType,
		Foods:    e.Foods,
		Protein:  &protein,
		Carbs:    &carbs,
		Fats:     &fats,
		Notes:    e.Notes,
		RawInput: e.RawInput,
	}
}

// Extractor is the port for a hosted model that turns text into MealFacts.
type Extractor interface {
	ExtractMeal(ctx context.Context, text string) (*MealFacts, error)
}

// ExtractErrorKind classifies why an extraction produced no result.
type ExtractErrorKind string

const (
	// ExtractUnavailable covers network and remote API failures.
	ExtractUnavailable ExtractErrorKind = "unavailable"
	// ExtractEmpty means the model answered without any content.
	ExtractEmpty ExtractErrorKind = "empty"
	// ExtractMalformed means the answer did not match the response schema.
	ExtractMalformed ExtractErrorKind = "malformed"
)

// ExtractError is returned by extractors for every failure.
type ExtractError struct {
	Kind ExtractErrorKind
	Err  error
}

func (e *ExtractError) Error() string {
	if e.Err == nil {
		return "extract meal: " + string(e.Kind)
	}
	return fmt.Sprintf("extract meal: %s: %v", e.Kind, e.Err)
}

func (e *ExtractError) Unwrap() error { return e.Err }

// ExtractKind reports the kind of err, defaulting to ExtractUnavailable for
// errors that did not come from an extractor.
func ExtractKind(err error) ExtractErrorKind {
	var xe *ExtractError
	if errors.As(err, &xe) {
		return xe.Kind
	}
	return ExtractUnavailable
}
