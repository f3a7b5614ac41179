// Package model defines the data structures used throughout the application.
//
// Every entity comes in two shapes:
//
//   - A full-record struct (CreativeProfile, PortfolioItem, ...) holding the
//     server-assigned id and every server-managed field. This is what the store
//     keeps and what the API returns.
//   - An InsertX struct holding only the client-supplied fields, carrying the
//     `validate` tags the request validator enforces.
//
// A NewX function maps one to the other, filling in the id, timestamps, and
// defaults. Keeping the mapping explicit means a create payload can never smuggle
// in a value for a server-managed field — there is simply no field to decode into.
//
// JSON tags are camelCase to match the shapes the client already consumes
// (artistName, imageUrl, respondedAt, ...). Optional fields are pointers and
// serialize as null when absent.
package model

import "time"

// CreativeProfile is an artist or illustrator listed on the platform.
//
// Rating and TotalReviews are derived fields: they are recomputed whenever a
// review is created for this profile and must never be written by any other
// path. Rating is a decimal string ("4.50") with exactly two fractional digits.
type CreativeProfile struct {
	ID               int       `json:"id"`
	UserID           *int      `json:"userId"`
	ArtistName       string    `json:"artistName"`
	Bio              *string   `json:"bio"`
	Specialty        string    `json:"specialty"` // "tattoo", "illustration", "digital", ...
	Location         *string   `json:"location"`
	InstagramHandle  *string   `json:"instagramHandle"`
	PortfolioWebsite *string   `json:"portfolioWebsite"`
	ProfileImageURL  *string   `json:"profileImageUrl"`
	IsVerified       bool      `json:"isVerified"`
	Rating           string    `json:"rating"`
	TotalReviews     int       `json:"totalReviews"`
	JoinedAt         time.Time `json:"joinedAt"`
}

// DefaultRating is the rating a profile carries before any review exists.
const DefaultRating = "0.00"

// InsertCreativeProfile is the client-supplied portion of a profile.
type InsertCreativeProfile struct {
	UserID           *int    `json:"userId"`
	ArtistName       string  `json:"artistName" validate:"required"`
	Bio              *string `json:"bio"`
	Specialty        string  `json:"specialty" validate:"required"`
	Location         *string `json:"location"`
	InstagramHandle  *string `json:"instagramHandle"`
	PortfolioWebsite *string `json:"portfolioWebsite"`
	ProfileImageURL  *string `json:"profileImageUrl"`
}

// NewCreativeProfile builds a full profile record from a create payload.
// The store supplies the id and creation time.
func NewCreativeProfile(in InsertCreativeProfile, id int, now time.Time) CreativeProfile {
	return CreativeProfile{
		ID:               id,
		UserID:           in.UserID,
		ArtistName:       in.ArtistName,
		Bio:              in.Bio,
		Specialty:        in.Specialty,
		Location:         in.Location,
		InstagramHandle:  in.InstagramHandle,
		PortfolioWebsite: in.PortfolioWebsite,
		ProfileImageURL:  in.ProfileImageURL,
		IsVerified:       false,
		Rating:           DefaultRating,
		TotalReviews:     0,
		JoinedAt:         now,
	}
}

// ProfileUpdate lists exactly the mutable profile fields. A nil field means
// "leave unchanged"; a non-nil field fully replaces the stored value.
// Server-managed fields (id, isVerified, rating, totalReviews, joinedAt) are
// deliberately absent so no caller can overwrite them through an update.
type ProfileUpdate struct {
	ArtistName       *string `json:"artistName" validate:"omitempty,min=1"`
	Specialty        *string `json:"specialty" validate:"omitempty,min=1"`
	Bio              *string `json:"bio"`
	Location         *string `json:"location"`
	InstagramHandle  *string `json:"instagramHandle"`
	PortfolioWebsite *string `json:"portfolioWebsite"`
	ProfileImageURL  *string `json:"profileImageUrl"`
}
