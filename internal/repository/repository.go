// Package repository declares the storage interfaces the service layer depends
// on. Services receive these interfaces, never a concrete store — the in-memory
// implementation lives in repository/memory, and anything else (a SQL store,
// a test double) can slot in behind the same seam.
//
// Contract shared by every implementation:
//   - Create* assigns the next sequential id for the entity type (counters
//     start at 1 and ids are never reused) and returns the stored record with
//     all server-managed fields filled in.
//   - Get* returns apperror.ErrNotFound (wrapped) for unknown ids.
//   - List* returns an empty, non-nil slice when nothing matches.
//   - Returned records are copies; mutating them does not touch stored state.
package repository

import (
	"context"

	"github.com/wearecreatives/api/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error)
	GetUserByID(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type CreativeRepository interface {
	CreateCreative(ctx context.Context, in model.InsertCreativeProfile) (*model.CreativeProfile, error)
	GetCreativeByID(ctx context.Context, id int) (*model.CreativeProfile, error)
	GetCreativeByUserID(ctx context.Context, userID int) (*model.CreativeProfile, error)
	ListCreatives(ctx context.Context) ([]model.CreativeProfile, error)
	UpdateCreative(ctx context.Context, id int, upd model.ProfileUpdate) (*model.CreativeProfile, error)

	// UpdateCreativeRating is the only write path for the derived rating
	// fields; profile updates cannot touch them.
	UpdateCreativeRating(ctx context.Context, id int, rating string, totalReviews int) error
}

type PortfolioRepository interface {
	CreatePortfolioItem(ctx context.Context, in model.InsertPortfolioItem) (*model.PortfolioItem, error)
	GetPortfolioItemByID(ctx context.Context, id int) (*model.PortfolioItem, error)
	ListPortfolioItems(ctx context.Context) ([]model.PortfolioItem, error)
	ListFeaturedPortfolioItems(ctx context.Context) ([]model.PortfolioItem, error)
	ListApprovedPortfolioItems(ctx context.Context) ([]model.PortfolioItem, error)
	ListPendingPortfolioItems(ctx context.Context) ([]model.PortfolioItem, error)
	ListPortfolioItemsByCreative(ctx context.Context, creativeID int) ([]model.PortfolioItem, error)
	ApprovePortfolioItem(ctx context.Context, id int) (*model.PortfolioItem, error)
}

type CollaborationRepository interface {
	CreateCollaboration(ctx context.Context, in model.InsertCollaborationRequest) (*model.CollaborationRequest, error)
	GetCollaborationByID(ctx context.Context, id int) (*model.CollaborationRequest, error)
	ListCollaborations(ctx context.Context) ([]model.CollaborationRequest, error)

	// ListCollaborationsByCreative matches either side of the request.
	ListCollaborationsByCreative(ctx context.Context, creativeID int) ([]model.CollaborationRequest, error)

	// UpdateCollaborationStatus sets the status and stamps RespondedAt. The
	// caller validates the status against the allowed transitions first.
	UpdateCollaborationStatus(ctx context.Context, id int, status string) (*model.CollaborationRequest, error)
}

type ReviewRepository interface {
	CreateReview(ctx context.Context, in model.InsertCreativeReview) (*model.CreativeReview, error)
	ListReviewsByCreative(ctx context.Context, creativeID int) ([]model.CreativeReview, error)
}

type ServiceRepository interface {
	CreateService(ctx context.Context, in model.InsertService) (*model.Service, error)
	GetServiceByID(ctx context.Context, id int) (*model.Service, error)
	ListServices(ctx context.Context) ([]model.Service, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, in model.InsertBooking) (*model.Booking, error)
	GetBookingByID(ctx context.Context, id int) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
}

type ContactRepository interface {
	CreateContactMessage(ctx context.Context, in model.InsertContactMessage) (*model.ContactMessage, error)
	GetContactMessageByID(ctx context.Context, id int) (*model.ContactMessage, error)
	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
}
