package model

import "time"

// ContactStatusUnread is the status every new contact message starts with.
const ContactStatusUnread = "unread"

// ContactMessage is a message submitted through the site's contact form.
type ContactMessage struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Service   string    `json:"service"` // which catalog service the enquiry is about
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertContactMessage is the client-supplied portion of a contact message.
type InsertContactMessage struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Service   string `json:"service" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

// NewContactMessage builds a full contact record from a create payload.
func NewContactMessage(in InsertContactMessage, id int, now time.Time) ContactMessage {
	return ContactMessage{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Service:   in.Service,
		Message:   in.Message,
		Status:    ContactStatusUnread,
		CreatedAt: now,
	}
}
