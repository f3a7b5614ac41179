package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
	"github.com/wearecreatives/api/internal/validation"
)

// BookingService handles appointment booking requests.
type BookingService struct {
	repo      repository.BookingRepository
	validator *validation.Validator
	logger    *slog.Logger
}

func NewBookingService(repo repository.BookingRepository, v *validation.Validator, logger *slog.Logger) *BookingService {
	return &BookingService{repo: repo, validator: v, logger: logger}
}

func (s *BookingService) Create(ctx context.Context, in model.InsertBooking) (*model.Booking, error) {
	if err := s.validator.Check("Invalid booking data", in); err != nil {
		return nil, err
	}

	booking, err := s.repo.CreateBooking(ctx, in)
	if err != nil {
		s.logger.Error("failed to create booking",
			slog.String("email", in.Email),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	s.logger.Info("booking created",
		slog.Int("id", booking.ID),
		slog.String("email", booking.Email),
	)
	return booking, nil
}

func (s *BookingService) GetByID(ctx context.Context, id int) (*model.Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.repo.ListBookings(ctx)
}
