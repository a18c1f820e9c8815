package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"macrolog/internal/domain"
)

// ExtractionService turns free-text meal descriptions into structured data
// using a hosted model.
type ExtractionService struct {
	extractor domain.Extractor
	log       *zap.Logger
	now       func() time.Time
}

// NewExtractionService creates an ExtractionService around extractor.
func NewExtractionService(extractor domain.Extractor, log *zap.Logger) *ExtractionService {
	return &ExtractionService{extractor: extractor, log: log, now: time.Now}
}

// Extract calls the model and stamps the result with the time, the raw input
// and the call latency. Failures are returned as *domain.ExtractError.
func (s *ExtractionService) Extract(ctx context.Context, text string) (*domain.Extraction, error) {
	start := s.now()
	facts, err := s.extractor.ExtractMeal(ctx, text)
	if err != nil {
		return nil, err
	}
	end := s.now()
	return &domain.Extraction{
		MealFacts: *facts,
		Timestamp: end,
		RawInput:  text,
		Latency:   end.Sub(start),
	}, nil
}

// ExtractMealInfo is Extract with every failure collapsed into a nil result.
// The failure is logged for the operator.
func (s *ExtractionService) ExtractMealInfo(ctx context.Context, text string) *domain.Extraction {
	e, err := s.Extract(ctx, text)
	if err != nil {
		s.log.Error("meal extraction failed",
			zap.String("kind", string(domain.ExtractKind(err))),
			zap.Error(err))
		return nil
	}
	s.log.Debug("meal extracted",
		zap.String("meal_type", e.MealType),
		zap.Duration("latency", e.Latency))
	return e
}
