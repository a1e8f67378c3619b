package service

import (
	"context"
	"time"

	"growroom/internal/biobizz"
)

type AdvisorService struct {
	loader stateLoader
	now    func() time.Time
}

func NewAdvisorService(loader stateLoader) *AdvisorService {
	return &AdvisorService{loader: loader, now: time.Now}
}

// Recommendations evaluates the rules against the stored grow state.
func (s *AdvisorService) Recommendations(ctx context.Context) ([]biobizz.Recommendation, error) {
	now := s.now().UTC()
	st, err := s.loader.load(ctx, now)
	if err != nil {
		return nil, err
	}
	_, recs := evaluate(st, now)
	return recs, nil
}

// Evaluate runs the rules over a caller-provided input. A zero Now means the current time.
func (s *AdvisorService) Evaluate(in biobizz.RecommendationInput) []biobizz.Recommendation {
	if in.Now.IsZero() {
		in.Now = s.now().UTC()
	}
	return biobizz.Recommend(in)
}
