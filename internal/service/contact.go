package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
	"github.com/wearecreatives/api/internal/validation"
)

// ContactService handles messages from the contact form.
type ContactService struct {
	repo      repository.ContactRepository
	validator *validation.Validator
	logger    *slog.Logger
}

func NewContactService(repo repository.ContactRepository, v *validation.Validator, logger *slog.Logger) *ContactService {
	return &ContactService{repo: repo, validator: v, logger: logger}
}

func (s *ContactService) Create(ctx context.Context, in model.InsertContactMessage) (*model.ContactMessage, error) {
	if err := s.validator.Check("Invalid contact message data", in); err != nil {
		return nil, err
	}

	message, err := s.repo.CreateContactMessage(ctx, in)
	if err != nil {
		s.logger.Error("failed to create contact message",
			slog.String("email", in.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating contact message: %w", err)
	}

	s.logger.Info("contact message received",
		slog.Int("id", message.ID),
		slog.String("service", message.Service),
	)
	return message, nil
}

func (s *ContactService) GetByID(ctx context.Context, id int) (*model.ContactMessage, error) {
	return s.repo.GetContactMessageByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context) ([]model.ContactMessage, error) {
	return s.repo.ListContactMessages(ctx)
}
