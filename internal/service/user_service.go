package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"motor-backend/internal/domain"
	"motor-backend/internal/repository"
	"motor-backend/internal/validator"
)

// UserService handles account registration and authentication.
// Passwords are stored as bcrypt hashes only.
type UserService struct {
	users      repository.UserRepository
	validator  *validator.Validator
	bcryptCost int
}

// NewUserService creates a new UserService.
func NewUserService(users repository.UserRepository, v *validator.Validator, bcryptCost int) *UserService {
	return &UserService{
		users:      users,
		validator:  v,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account from credentials.
func (s *UserService) Register(ctx context.Context, creds *validator.Credentials) (*domain.User, error) {
	if creds == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := s.validator.ValidateRegistration(creds); err != nil {
		return nil, &domain.Error{Code: domain.CodeInvalidInput, Message: err.Error()}
	}

	existing, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, &domain.Error{Code: domain.CodeInvalidInput, Message: "username already taken"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     creds.Username,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials against the stored hash. Blank
// fields are rejected before the user store is touched.
func (s *UserService) Authenticate(ctx context.Context, creds *validator.Credentials) (*domain.User, error) {
	if creds == nil {
		return nil, domain.ErrInvalidInput
	}
	if err := s.validator.ValidateLogin(creds); err != nil {
		return nil, &domain.Error{Code: domain.CodeInvalidInput, Message: err.Error()}
	}

	user, err := s.users.GetByUsername(ctx, creds.Username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrAuthentication
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, domain.ErrAuthentication
	}
	return user, nil
}
