package memory

import (
	"context"
	"time"

	"github.com/wearecreatives/api/internal/model"
)

func (s *Store) CreateReview(_ context.Context, in model.InsertCreativeReview) (*model.CreativeReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextReviewID
	s.nextReviewID++

	review := model.NewCreativeReview(in, id, time.Now())
	s.reviews[id] = review
	return &review, nil
}

func (s *Store) ListReviewsByCreative(_ context.Context, creativeID int) ([]model.CreativeReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reviews := make([]model.CreativeReview, 0)
	for _, review := range s.reviews {
		if review.CreativeID == creativeID {
			reviews = append(reviews, review)
		}
	}
	sortByID(reviews, func(r model.CreativeReview) int { return r.ID })
	return reviews, nil
}
