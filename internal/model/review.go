package model

import "time"

// CreativeReview is a star rating (1–5) left for a creative, with optional text.
// Creating one triggers recomputation of the target profile's Rating and
// TotalReviews (see service.ReviewService).
type CreativeReview struct {
	ID            int       `json:"id"`
	CreativeID    int       `json:"creativeId"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
	Rating        int       `json:"rating"`
	ReviewText    *string   `json:"reviewText"`
	ProjectType   *string   `json:"projectType"`
	IsVerified    bool      `json:"isVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// InsertCreativeReview is the client-supplied portion of a review.
type InsertCreativeReview struct {
	CreativeID    int     `json:"creativeId" validate:"required"`
	ReviewerName  string  `json:"reviewerName" validate:"required"`
	ReviewerEmail string  `json:"reviewerEmail" validate:"required,email"`
	Rating        int     `json:"rating" validate:"required,min=1,max=5"`
	ReviewText    *string `json:"reviewText"`
	ProjectType   *string `json:"projectType"`
}

// NewCreativeReview builds a full review record from a create payload.
func NewCreativeReview(in InsertCreativeReview, id int, now time.Time) CreativeReview {
	return CreativeReview{
		ID:            id,
		CreativeID:    in.CreativeID,
		ReviewerName:  in.ReviewerName,
		ReviewerEmail: in.ReviewerEmail,
		Rating:        in.Rating,
		ReviewText:    in.ReviewText,
		ProjectType:   in.ProjectType,
		IsVerified:    false,
		CreatedAt:     now,
	}
}
