package user

import (
	"errors"
	"fmt"

	"docportal/config"
	userRepo "docportal/database/repository/user"
	"docportal/models"
	"docportal/utils"

	"go.uber.org/zap"
)

// ErrEmailRequired signals a login or promotion call without an email.
var ErrEmailRequired = errors.New("email is required")

// DefaultUserService is the production UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// Login upserts the account and issues a bearer token. The token hash is
// cached so the auth middleware can reject tokens superseded by a later login.
func (s *DefaultUserService) Login(email, name string) (*LoginResponse, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}

	stored, err := s.Repo.Upsert(&models.User{Email: email, Name: name})
	if err != nil {
		return nil, fmt.Errorf("login upsert: %w", err)
	}

	token, err := utils.GenerateToken(email)
	if err != nil {
		return nil, fmt.Errorf("login token: %w", err)
	}

	if err := utils.SaveTokenHash(utils.GetAuthCacheClient(), email, utils.HashToken(token), config.AppConfig.TokenTTL); err != nil {
		s.Logger.Warn("failed to cache token hash", zap.String("email", email), zap.Error(err))
	}

	s.Logger.Info("user logged in", zap.String("email", email))
	return &LoginResponse{Token: token, User: *stored}, nil
}

// GetAllUsers lists every account.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IsAdmin reports whether the account holds the admin role.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// PromoteToAdmin grants the admin role.
func (s *DefaultUserService) PromoteToAdmin(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if err := s.Repo.SetRole(email, models.RoleAdmin); err != nil {
		return err
	}
	s.Logger.Info("user promoted to admin", zap.String("email", email))
	return nil
}
