package model

import "time"

// BookingStatusPending is the status every new booking starts with.
const BookingStatusPending = "pending"

// Booking is a consultation request against a catalog service. The service
// reference is weak — a booking may name no service at all.
type Booking struct {
	ID            int        `json:"id"`
	FirstName     string     `json:"firstName"`
	LastName      string     `json:"lastName"`
	Email         string     `json:"email"`
	Phone         *string    `json:"phone"`
	ServiceID     *int       `json:"serviceId"`
	PreferredDate *time.Time `json:"preferredDate"`
	Message       *string    `json:"message"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// InsertBooking is the client-supplied portion of a booking.
type InsertBooking struct {
	FirstName     string     `json:"firstName" validate:"required"`
	LastName      string     `json:"lastName" validate:"required"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         *string    `json:"phone"`
	ServiceID     *int       `json:"serviceId"`
	PreferredDate *time.Time `json:"preferredDate"`
	Message       *string    `json:"message"`
}

// NewBooking builds a full booking record from a create payload.
func NewBooking(in InsertBooking, id int, now time.Time) Booking {
	return Booking{
		ID:            id,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Phone:         in.Phone,
		ServiceID:     in.ServiceID,
		PreferredDate: in.PreferredDate,
		Message:       in.Message,
		Status:        BookingStatusPending,
		CreatedAt:     now,
	}
}
