package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnas-hms/ovr-system/internal/identity"
	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
}

// AuthService определяет контракт аутентификации по сессионным токенам
type AuthService interface {
	Login(ctx context.Context, username, password string) (*identity.Session, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users    UserRepository
	sessions identity.Store
	logger   *logrus.Logger
}

func NewAuthService(users UserRepository, sessions identity.Store, logger *logrus.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

// Login проверяет учетные данные и открывает сессию. Несуществующий
// пользователь и неверный пароль неразличимы для вызывающего.
func (s *authService) Login(ctx context.Context, username, password string) (*identity.Session, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})
	log.Info("Attempting to log in")

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			log.Warn("Login attempted with an unknown username")
			return nil, models.ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return nil, fmt.Errorf("service: could not log in: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempted with a wrong password")
		return nil, models.ErrInvalidCredentials
	}

	if user.Blocked {
		log.Warn("Login attempted on a blocked account")
		return nil, models.ErrUserBlocked
	}

	session := &identity.Session{
		Token:        uuid.NewString(),
		UserID:       user.ID,
		Username:     user.Username,
		FullName:     user.FullName,
		DepartmentID: user.DepartmentID,
		Roles:        user.Roles,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		log.WithError(err).Error("Failed to create session")
		return nil, fmt.Errorf("service: could not log in: %w", err)
	}

	log.WithField("user_id", user.ID).Info("Logged in successfully")
	return session, nil
}

// Logout закрывает сессию. Отсутствующий токен - не ошибка.
func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.WithError(err).Error("Failed to delete session")
		return fmt.Errorf("service: could not log out: %w", err)
	}
	return nil
}
