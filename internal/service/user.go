package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnas-hms/ovr-system/internal/identity"
	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Минимальная длина пароля учетной записи
const minPasswordLength = 6

// UserService определяет контракт администрирования учетных записей
type UserService interface {
	CreateUser(ctx context.Context, user *models.User, password string, actor *identity.Session) (*models.User, error)
	ListUsers(ctx context.Context, actor *identity.Session) ([]*models.User, error)
	DeleteUser(ctx context.Context, id int64, actor *identity.Session) error
	SetBlocked(ctx context.Context, id int64, blocked bool, actor *identity.Session) error
}

type userService struct {
	repo   UserRepository
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

// CreateUser создает учетную запись. Доступно только отделу качества;
// пароль хэшируется здесь и в открытом виде дальше не передается.
func (s *userService) CreateUser(ctx context.Context, user *models.User, password string, actor *identity.Session) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "user",
		"method":   "CreateUser",
		"username": user.Username,
	})
	log.Info("Attempting to create user")

	if !actor.IsQuality() {
		log.Warn("User creation attempted by a non-quality user")
		return nil, models.ErrNotAuthorized
	}

	if err := validateNewUser(user, password); err != nil {
		log.WithError(err).Warn("User creation rejected by validation")
		return nil, err
	}

	// Занятость имени проверяется заранее ради понятной ошибки
	if _, err := s.repo.GetByUsername(ctx, user.Username); err == nil {
		return nil, &models.ValidationError{Field: "username", Reason: "already taken"}
	} else if !errors.Is(err, models.ErrUserNotFound) {
		log.WithError(err).Error("Failed to check username availability")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}
	user.PasswordHash = string(hash)

	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", created.ID).Info("User created successfully")
	return created, nil
}

// ListUsers возвращает все учетные записи. Доступно только отделу качества.
func (s *userService) ListUsers(ctx context.Context, actor *identity.Session) ([]*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "ListUsers",
	})

	if !actor.IsQuality() {
		log.Warn("User listing attempted by a non-quality user")
		return nil, models.ErrNotAuthorized
	}

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list users from repository")
		return nil, fmt.Errorf("service: could not list users: %w", err)
	}
	return users, nil
}

// DeleteUser удаляет учетную запись. Доступно только отделу качества;
// собственную запись удалить нельзя.
func (s *userService) DeleteUser(ctx context.Context, id int64, actor *identity.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "DeleteUser",
		"user_id": id,
	})
	log.Info("Attempting to delete user")

	if !actor.IsQuality() {
		log.Warn("User deletion attempted by a non-quality user")
		return models.ErrNotAuthorized
	}
	if actor.UserID == id {
		return &models.ValidationError{Field: "id", Reason: "cannot delete own account"}
	}

	if err := s.repo.DeleteUser(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete user in repository")
		return fmt.Errorf("service: could not delete user: %w", err)
	}

	log.Info("User deleted successfully")
	return nil
}

// SetBlocked блокирует или разблокирует учетную запись. Доступно только
// отделу качества; собственную запись заблокировать нельзя.
func (s *userService) SetBlocked(ctx context.Context, id int64, blocked bool, actor *identity.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "SetBlocked",
		"user_id": id,
		"blocked": blocked,
	})
	log.Info("Attempting to change user blocked state")

	if !actor.IsQuality() {
		log.Warn("User blocking attempted by a non-quality user")
		return models.ErrNotAuthorized
	}
	if actor.UserID == id && blocked {
		return &models.ValidationError{Field: "id", Reason: "cannot block own account"}
	}

	if err := s.repo.SetBlocked(ctx, id, blocked); err != nil {
		log.WithError(err).Error("Failed to change user blocked state in repository")
		return fmt.Errorf("service: could not change user blocked state: %w", err)
	}

	log.Info("User blocked state changed successfully")
	return nil
}

// validateNewUser отклоняет некорректную учетную запись до какой-либо записи
func validateNewUser(user *models.User, password string) error {
	if user.Username == "" {
		return &models.ValidationError{Field: "username", Reason: "required"}
	}
	if user.FullName == "" {
		return &models.ValidationError{Field: "full_name", Reason: "required"}
	}
	if user.DepartmentID <= 0 {
		return &models.ValidationError{Field: "department_id", Reason: "required"}
	}
	if len(password) < minPasswordLength {
		return &models.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	for _, role := range user.Roles {
		if role != identity.RoleQuality && role != identity.RoleReviewer {
			return &models.ValidationError{Field: "roles", Reason: "unknown role"}
		}
	}
	return nil
}
