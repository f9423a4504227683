package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/adpshop/backend/internal/models"
	"github.com/adpshop/backend/internal/repo"
	"github.com/adpshop/backend/pkg/hash"
	"github.com/adpshop/backend/pkg/logging"
)

type UserService struct {
	Repo *repo.GormRepo
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "user.register")

	if in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("email and password required: %w", ErrValidation)
	}

	exists, err := s.Repo.UserExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	}

	pwHash, err := hash.HashPassword(in.Password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Email:        in.Email,
		PasswordHash: pwHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		// the check above raced another registration, the unique index wins
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("email already registered: %w", ErrConflict)
		}
		return nil, err
	}

	l.Info("user registered", "user_id", user.ID)
	return &user, nil
}

// Login collapses "unknown email" and "wrong password" into the same error
// so the response does not leak which check failed.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrUnauthorized
	}
	return user, nil
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.Repo.UserExistsByEmail(ctx, email)
}
