package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campoflow/fieldops-api/internal/auth"
	"github.com/campoflow/fieldops-api/internal/domain"
	"github.com/campoflow/fieldops-api/internal/repository"
)

// AuthService authenticates operators and issues bearer tokens.
type AuthService struct {
	userRepo *repository.UserRepository
	tokens   *auth.TokenManager
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login validates the credentials and returns a signed token. Unknown
// users and wrong passwords produce the same error so callers cannot
// probe for accounts.
func (s *AuthService) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.Active {
		return nil, domain.ErrBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login rejected", zap.String("username", req.Username))
		return nil, domain.ErrBadCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username, user.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("login succeeded",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username),
	)

	return &domain.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
	}, nil
}

// CreateUser registers an operator account with a bcrypt password hash.
func (s *AuthService) CreateUser(ctx context.Context, username, displayName, password string) error {
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return fmt.Errorf("username %s: %w", username, domain.ErrDuplicate)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		DisplayName:  displayName,
		PasswordHash: string(hash),
		Active:       true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}
