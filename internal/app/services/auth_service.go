package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dkravch/studyplan/internal/app/models"
	"github.com/dkravch/studyplan/internal/pkg/apperrors"
	"github.com/dkravch/studyplan/internal/pkg/auth"
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo   UserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo UserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// validateCredentials checks the registration input.
func (s *AuthService) validateCredentials(username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters long", apperrors.ErrValidationFailed)
	}

	return nil
}

// Register creates a new user with a hashed password. The caller must log in
// separately to obtain a token.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if err := s.validateCredentials(username, password); err != nil {
		return err
	}

	exists, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return fmt.Errorf("error checking if username exists: %w", err)
	}
	if exists {
		return apperrors.ErrUserAlreadyExists
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: hashed,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique constraint closes the window between the existence
		// check and the insert.
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return apperrors.ErrUserAlreadyExists
		}
		return fmt.Errorf("user creation error: %w", err)
	}

	s.logger.Info().Str("username", username).Msg("User registered")
	return nil
}

// Login verifies the credentials and issues a signed token. Unknown username
// and wrong password produce the same error so users cannot be enumerated.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("error retrieving user: %w", err)
	}

	if user == nil || !auth.CheckPassword(user.Password, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", fmt.Errorf("error generating token: %w", err)
	}

	return token, nil
}
