package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/CrisOrc/prueba-tecnica-Konecta/models"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/password"
	"github.com/CrisOrc/prueba-tecnica-Konecta/pkg/token"
)

// AuthService registers users and exchanges credentials for signed tokens.
type AuthService struct {
	users  UserRepository
	tokens *token.Manager
	hasher *password.Hasher
	logger *zap.Logger
}

func NewAuthService(users UserRepository, tokens *token.Manager, hasher *password.Hasher, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
	}
}

// Register creates a user with a hashed password. The email must not be in
// use by any existing user.
func (s *AuthService) Register(ctx context.Context, name, email, plaintext string, role models.Role) (*models.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.Uint("userId", user.ID), zap.String("email", email))
	return user, nil
}

// Login verifies the credentials and returns a signed token for the user.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if !s.hasher.Check(plaintext, user.Password) {
		s.logger.Warn("login with invalid password", zap.String("email", email))
		return "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Generate(user)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("user logged in", zap.Uint("userId", user.ID))
	return tok, nil
}
