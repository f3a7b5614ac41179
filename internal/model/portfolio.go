package model

import "time"

// PortfolioItem is a single artwork submission, optionally linked to a creative.
//
// Items submitted through the API are approved immediately (IsApproved true,
// ApprovedAt set) — there is no moderation queue in front of the public listing.
// Featured is settable only by seed data; API creates always start unfeatured.
type PortfolioItem struct {
	ID          int        `json:"id"`
	CreativeID  *int       `json:"creativeId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl"`
	Category    string     `json:"category"`
	Style       string     `json:"style"`
	Tags        []string   `json:"tags"`
	Featured    bool       `json:"featured"`
	IsApproved  bool       `json:"isApproved"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ApprovedAt  *time.Time `json:"approvedAt"`
}

// InsertPortfolioItem is the client-supplied portion of a portfolio item.
type InsertPortfolioItem struct {
	CreativeID  *int     `json:"creativeId"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Style       string   `json:"style" validate:"required"`
	Tags        []string `json:"tags"`
}

// NewPortfolioItem builds a full portfolio record from a create payload.
// Tags defaults to an empty list (never null in responses).
func NewPortfolioItem(in InsertPortfolioItem, id int, now time.Time) PortfolioItem {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	approvedAt := now
	return PortfolioItem{
		ID:          id,
		CreativeID:  in.CreativeID,
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Style:       in.Style,
		Tags:        tags,
		Featured:    false,
		IsApproved:  true,
		SubmittedAt: now,
		ApprovedAt:  &approvedAt,
	}
}
