package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/service"
)

func TestReviewCreate_RecomputesRating(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := service.NewReviewService(store, store, newTestValidator(t), testLogger())

	profile, err := store.CreateCreative(ctx, model.InsertCreativeProfile{
		ArtistName: "Ines",
		Specialty:  "tattoo",
	})
	if err != nil {
		t.Fatalf("CreateCreative() error = %v", err)
	}

	for _, rating := range []int{4, 5} {
		_, err := svc.Create(ctx, model.InsertCreativeReview{
			CreativeID:    profile.ID,
			ReviewerName:  "Jo",
			ReviewerEmail: "jo@example.com",
			Rating:        rating,
		})
		if err != nil {
			t.Fatalf("Create(rating=%d) error = %v", rating, err)
		}
	}

	got, err := store.GetCreativeByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("GetCreativeByID() error = %v", err)
	}
	if got.Rating != "4.50" {
		t.Errorf("Rating = %q, want %q", got.Rating, "4.50")
	}
	if got.TotalReviews != 2 {
		t.Errorf("TotalReviews = %d, want 2", got.TotalReviews)
	}
}

func TestReviewCreate_UnknownCreativeStillStored(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := service.NewReviewService(store, store, newTestValidator(t), testLogger())

	review, err := svc.Create(ctx, model.InsertCreativeReview{
		CreativeID:    99,
		ReviewerName:  "Jo",
		ReviewerEmail: "jo@example.com",
		Rating:        5,
	})
	if err != nil {
		t.Fatalf("Create() error = %v, want review stored despite missing creative", err)
	}

	reviews, err := svc.ListByCreative(ctx, 99)
	if err != nil {
		t.Fatalf("ListByCreative() error = %v", err)
	}
	if len(reviews) != 1 || reviews[0].ID != review.ID {
		t.Errorf("ListByCreative() = %v, want the stored review", reviews)
	}
}

func TestReviewCreate_Validation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := service.NewReviewService(store, store, newTestValidator(t), testLogger())

	_, err := svc.Create(ctx, model.InsertCreativeReview{
		CreativeID:    1,
		ReviewerName:  "Jo",
		ReviewerEmail: "not-an-email",
		Rating:        6,
	})
	if !errors.Is(err, apperror.ErrValidation) {
		t.Fatalf("Create() error = %v, want ErrValidation", err)
	}

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("Create() error is not an *apperror.AppError: %v", err)
	}
	if _, ok := appErr.Fields["rating"]; !ok {
		t.Errorf("Fields = %v, want an entry for rating", appErr.Fields)
	}
	if _, ok := appErr.Fields["reviewerEmail"]; !ok {
		t.Errorf("Fields = %v, want an entry for reviewerEmail", appErr.Fields)
	}

	// Nothing should have been stored.
	reviews, err := svc.ListByCreative(ctx, 1)
	if err != nil {
		t.Fatalf("ListByCreative() error = %v", err)
	}
	if len(reviews) != 0 {
		t.Errorf("ListByCreative() after failed create = %v, want empty", reviews)
	}
}
