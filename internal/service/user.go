package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wearecreatives/api/internal/apperror"
	"github.com/wearecreatives/api/internal/auth"
	"github.com/wearecreatives/api/internal/model"
	"github.com/wearecreatives/api/internal/repository"
	"github.com/wearecreatives/api/internal/validation"
)

// UserService provisions user accounts. There are no user routes; accounts
// exist so creative profiles can reference them, and Register is the only way
// one comes into being.
type UserService struct {
	repo      repository.UserRepository
	passwords *auth.PasswordService
	validator *validation.Validator
	logger    *slog.Logger
}

func NewUserService(repo repository.UserRepository, passwords *auth.PasswordService, v *validation.Validator, logger *slog.Logger) *UserService {
	return &UserService{repo: repo, passwords: passwords, validator: v, logger: logger}
}

// Register creates an account with a bcrypt-hashed password. Usernames are
// unique; a taken name comes back as apperror.ErrConflict.
func (s *UserService) Register(ctx context.Context, in model.InsertUser) (*model.User, error) {
	if err := s.validator.Check("Invalid user data", in); err != nil {
		return nil, err
	}

	_, err := s.repo.GetUserByUsername(ctx, in.Username)
	if err == nil {
		return nil, apperror.Conflict("Username is already taken")
	}
	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("checking username %q: %w", in.Username, err)
	}

	hash, err := s.passwords.Hash(in.Password)
	if err != nil {
		return nil, apperror.ValidationField("Invalid user data", "password", err.Error())
	}
	in.Password = hash

	user, err := s.repo.CreateUser(ctx, in)
	if err != nil {
		s.logger.Error("failed to create user",
			slog.String("username", in.Username),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered",
		slog.Int("id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}
