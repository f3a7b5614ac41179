package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
	"github.com/wearecreatives/api/internal/validation"
)

// CollaborationService handles collaboration requests between creatives.
type CollaborationService struct {
	repo      repository.CollaborationRepository
	validator *validation.Validator
	logger    *slog.Logger
}

func NewCollaborationService(repo repository.CollaborationRepository, v *validation.Validator, logger *slog.Logger) *CollaborationService {
	return &CollaborationService{repo: repo, validator: v, logger: logger}
}

func (s *CollaborationService) Create(ctx context.Context, in model.InsertCollaborationRequest) (*model.CollaborationRequest, error) {
	if err := s.validator.Check("Invalid collaboration request data", in); err != nil {
		return nil, err
	}

	request, err := s.repo.CreateCollaboration(ctx, in)
	if err != nil {
		s.logger.Error("failed to create collaboration request",
			slog.Int("fromCreativeId", in.FromCreativeID),
			slog.Int("toCreativeId", in.ToCreativeID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating collaboration request: %w", err)
	}

	s.logger.Info("collaboration request created",
		slog.Int("id", request.ID),
		slog.Int("fromCreativeId", request.FromCreativeID),
		slog.Int("toCreativeId", request.ToCreativeID),
	)
	return request, nil
}

func (s *CollaborationService) GetByID(ctx context.Context, id int) (*model.CollaborationRequest, error) {
	return s.repo.GetCollaborationByID(ctx, id)
}

func (s *CollaborationService) List(ctx context.Context) ([]model.CollaborationRequest, error) {
	return s.repo.ListCollaborations(ctx)
}

func (s *CollaborationService) ListByCreative(ctx context.Context, creativeID int) ([]model.CollaborationRequest, error) {
	return s.repo.ListCollaborationsByCreative(ctx, creativeID)
}

// UpdateStatus moves a request out of pending. Only accepted, declined, and
// completed are legal targets; the check happens here, before the store is
// touched, so a rejected status leaves the record exactly as it was.
func (s *CollaborationService) UpdateStatus(ctx context.Context, id int, status string) (*model.CollaborationRequest, error) {
	switch status {
	case model.CollaborationStatusAccepted,
		model.CollaborationStatusDeclined,
		model.CollaborationStatusCompleted:
	default:
		return nil, apperror.ValidationField("Invalid status value", "status",
			"Must be one of: accepted, declined, completed")
	}

	request, err := s.repo.UpdateCollaborationStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("collaboration status updated",
		slog.Int("id", request.ID),
		slog.String("status", request.Status),
	)
	return request, nil
}
