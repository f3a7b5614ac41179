package memory

import (
	"context"
	"time"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

func (s *Store) CreateBooking(_ context.Context, in model.InsertBooking) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextBookingID
	s.nextBookingID++

	booking := model.NewBooking(in, id, time.Now())
	s.bookings[id] = booking
	return &booking, nil
}

func (s *Store) GetBookingByID(_ context.Context, id int) (*model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, apperror.NotFound("booking", id)
	}
	return &booking, nil
}

func (s *Store) ListBookings(_ context.Context) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]model.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		bookings = append(bookings, booking)
	}
	sortByID(bookings, func(b model.Booking) int { return b.ID })
	return bookings, nil
}
