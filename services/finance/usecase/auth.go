package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/fintrackr/fintrackr/internal/pkg/jwt"
	"github.com/fintrackr/fintrackr/internal/pkg/logger"
	"github.com/fintrackr/fintrackr/internal/pkg/models"
	"github.com/fintrackr/fintrackr/services/finance"
)

// Register creates a new account. Username and email collisions are
// checked case-insensitively before the insert; the raw password is
// bcrypt-hashed and never stored.
func (u *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserInfo, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	if username == "" || email == "" || req.Password == "" {
		return nil, finance.ErrMissingFields
	}

	if _, err := u.userRepo.GetUserByUsername(ctx, username); err == nil {
		return nil, finance.ErrUsernameTaken
	} else if !errors.Is(err, finance.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := u.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, finance.ErrEmailTaken
	} else if !errors.Is(err, finance.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("username", user.Username))

	return user.Info(), nil
}

// Login authenticates by username or email (both case-insensitive) and
// issues a session token. Unknown identifier and wrong password yield
// the same error.
func (u *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	identifier := strings.TrimSpace(req.UsernameOrEmail)
	if identifier == "" || req.Password == "" {
		return nil, finance.ErrInvalidCredentials
	}

	user, err := u.userRepo.GetUserByUsername(ctx, identifier)
	if errors.Is(err, finance.ErrUserNotFound) {
		user, err = u.userRepo.GetUserByEmail(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, finance.ErrUserNotFound) {
			return nil, finance.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, finance.ErrInvalidCredentials
	}

	token, _, err := jwtpkg.GenerateToken(user.ID, user.Username, user.Email, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  user.Info(),
	}, nil
}

// GetProfile resolves the authenticated user's public fields
func (u *AuthUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserInfo, error) {
	user, err := u.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, finance.ErrUserNotFound) {
			return nil, finance.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user.Info(), nil
}
