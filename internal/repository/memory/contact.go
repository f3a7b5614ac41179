package memory

import (
	"context"
	"time"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

func (s *Store) CreateContactMessage(_ context.Context, in model.InsertContactMessage) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextContactID
	s.nextContactID++

	message := model.NewContactMessage(in, id, time.Now())
	s.contacts[id] = message
	return &message, nil
}

func (s *Store) GetContactMessageByID(_ context.Context, id int) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message, ok := s.contacts[id]
	if !ok {
		return nil, apperror.NotFound("contact message", id)
	}
	return &message, nil
}

func (s *Store) ListContactMessages(_ context.Context) ([]model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]model.ContactMessage, 0, len(s.contacts))
	for _, message := range s.contacts {
		messages = append(messages, message)
	}
	sortByID(messages, func(m model.ContactMessage) int { return m.ID })
	return messages, nil
}
