package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
	"github.com/wearecreatives/api/internal/validation"
)

// ReviewService handles reviews and keeps each creative's aggregate rating in
// sync. The store holds plain records; the recomputation lives here.
type ReviewService struct {
	reviews   repository.ReviewRepository
	creatives repository.CreativeRepository
	validator *validation.Validator
	logger    *slog.Logger
}

func NewReviewService(reviews repository.ReviewRepository, creatives repository.CreativeRepository, v *validation.Validator, logger *slog.Logger) *ReviewService {
	return &ReviewService{reviews: reviews, creatives: creatives, validator: v, logger: logger}
}

// Create stores the review, then recomputes the target creative's rating from
// every review on record. A review for an unknown creative is still stored;
// the recompute just has no profile to update, which gets logged and ignored.
func (s *ReviewService) Create(ctx context.Context, in model.InsertCreativeReview) (*model.CreativeReview, error) {
	if err := s.validator.Check("Invalid review data", in); err != nil {
		return nil, err
	}

	review, err := s.reviews.CreateReview(ctx, in)
	if err != nil {
		s.logger.Error("failed to create review",
			slog.Int("creativeId", in.CreativeID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating review: %w", err)
	}

	if err := s.recomputeRating(ctx, review.CreativeID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			s.logger.Warn("review stored for unknown creative",
				slog.Int("reviewId", review.ID),
				slog.Int("creativeId", review.CreativeID),
			)
		} else {
			return nil, fmt.Errorf("updating rating for creative %d: %w", review.CreativeID, err)
		}
	}

	s.logger.Info("review created",
		slog.Int("id", review.ID),
		slog.Int("creativeId", review.CreativeID),
		slog.Int("rating", review.Rating),
	)
	return review, nil
}

func (s *ReviewService) ListByCreative(ctx context.Context, creativeID int) ([]model.CreativeReview, error) {
	return s.reviews.ListReviewsByCreative(ctx, creativeID)
}

func (s *ReviewService) recomputeRating(ctx context.Context, creativeID int) error {
	reviews, err := s.reviews.ListReviewsByCreative(ctx, creativeID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return nil
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	rating := fmt.Sprintf("%.2f", float64(total)/float64(len(reviews)))

	return s.creatives.UpdateCreativeRating(ctx, creativeID, rating, len(reviews))
}
