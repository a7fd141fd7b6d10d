package auth

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"gallery/internal/config"
	"gallery/internal/models"
	"gallery/internal/repository"
)

var ErrBadCredentials = errors.New("invalid username or password")

type Service struct {
	Repo   repository.Repository
	Config config.AuthConfig
	Logger *zap.Logger
}

// Login verifies admin credentials and returns a signed session token.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", ErrBadCredentials
	}
	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.IsAdmin {
		return nil, "", ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrBadCredentials
	}
	token, err := IssueToken([]byte(s.Config.JWTSecret), user.ID, user.Username, s.Config.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// EnsureAdminUser creates the configured admin account if it does not exist.
// A blank configured password skips bootstrap entirely.
func (s *Service) EnsureAdminUser(ctx context.Context) error {
	username := strings.TrimSpace(s.Config.AdminUsername)
	if username == "" || s.Config.AdminPassword == "" {
		return nil
	}
	existing, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s.Config.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.Repo.CreateUser(ctx, &models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Info("admin user bootstrapped", zap.String("username", username))
	}
	return nil
}
