package memory

import (
	"context"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/model"
)

// CreateUser stores an account. Username uniqueness is the caller's problem
// (UserService checks via GetUserByUsername before creating) — the store
// itself enforces nothing beyond id assignment.
func (s *Store) CreateUser(_ context.Context, in model.InsertUser) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextUserID
	s.nextUserID++

	user := model.NewUser(in, id)
	s.users[id] = user
	return &user, nil
}

func (s *Store) GetUserByID(_ context.Context, id int) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	return &user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, apperror.NotFoundBy("user", "username", username)
}
