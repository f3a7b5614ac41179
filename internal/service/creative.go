// Package service contains the business logic layer: request validation,
// the review → rating recomputation, collaboration status transitions, and
// account provisioning.
//
// Services receive repository interfaces, never the concrete store, and they
// know nothing about HTTP. Validation failures and missing records come back
// as apperror values; the handler layer translates those to status codes.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
	"github.com/wearecreatives/api/internal/validation"
)

// CreativeService handles creative profile operations.
type CreativeService struct {
	repo      repository.CreativeRepository
	validator *validation.Validator
	logger    *slog.Logger
}

func NewCreativeService(repo repository.CreativeRepository, v *validation.Validator, logger *slog.Logger) *CreativeService {
	return &CreativeService{repo: repo, validator: v, logger: logger}
}

func (s *CreativeService) Create(ctx context.Context, in model.InsertCreativeProfile) (*model.CreativeProfile, error) {
	if err := s.validator.Check("Invalid creative profile data", in); err != nil {
		return nil, err
	}

	profile, err := s.repo.CreateCreative(ctx, in)
	if err != nil {
		s.logger.Error("failed to create creative profile",
			slog.String("artistName", in.ArtistName),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating creative profile: %w", err)
	}

	s.logger.Info("creative profile created",
		slog.Int("id", profile.ID),
		slog.String("artistName", profile.ArtistName),
	)
	return profile, nil
}

// GetByID returns apperror.ErrNotFound (wrapped) for unknown ids; the caller
// maps that to a 404 rather than treating it as a failure.
func (s *CreativeService) GetByID(ctx context.Context, id int) (*model.CreativeProfile, error) {
	return s.repo.GetCreativeByID(ctx, id)
}

func (s *CreativeService) List(ctx context.Context) ([]model.CreativeProfile, error) {
	profiles, err := s.repo.ListCreatives(ctx)
	if err != nil {
		s.logger.Error("failed to list creative profiles", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing creative profiles: %w", err)
	}
	return profiles, nil
}

// Update applies a partial update over the mutable profile fields. Derived and
// server-managed fields are not reachable from ProfileUpdate at all.
func (s *CreativeService) Update(ctx context.Context, id int, upd model.ProfileUpdate) (*model.CreativeProfile, error) {
	if err := s.validator.Check("Invalid creative profile data", upd); err != nil {
		return nil, err
	}

	profile, err := s.repo.UpdateCreative(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("creative profile updated", slog.Int("id", profile.ID))
	return profile, nil
}
