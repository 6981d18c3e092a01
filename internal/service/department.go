package service

import (
	"context"
	"fmt"

	"github.com/alnas-hms/ovr-system/internal/identity"
	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/sirupsen/logrus"
)

// DepartmentRepository определяет контракт для работы с бд отделов
type DepartmentRepository interface {
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
	ListDepartments(ctx context.Context) ([]*models.Department, error)
}

// DepartmentService определяет контракт для справочника отделов
type DepartmentService interface {
	CreateDepartment(ctx context.Context, name string, actor *identity.Session) (*models.Department, error)
	ListDepartments(ctx context.Context) ([]*models.Department, error)
}

type departmentService struct {
	repo   DepartmentRepository
	logger *logrus.Logger
}

func NewDepartmentService(repo DepartmentRepository, logger *logrus.Logger) DepartmentService {
	return &departmentService{
		repo:   repo,
		logger: logger,
	}
}

// CreateDepartment добавляет отдел в справочник. Доступно только отделу качества.
func (s *departmentService) CreateDepartment(ctx context.Context, name string, actor *identity.Session) (*models.Department, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "CreateDepartment",
		"name":    name,
	})
	log.Info("Attempting to create department")

	if !actor.IsQuality() {
		log.Warn("Department creation attempted by a non-quality user")
		return nil, models.ErrNotAuthorized
	}
	if name == "" {
		return nil, &models.ValidationError{Field: "name", Reason: "required"}
	}

	dept, err := s.repo.CreateDepartment(ctx, name)
	if err != nil {
		log.WithError(err).Error("Failed to create department in repository")
		return nil, fmt.Errorf("service: could not create department: %w", err)
	}

	log.WithField("department_id", dept.ID).Info("Department created successfully")
	return dept, nil
}

// ListDepartments возвращает все отделы справочника
func (s *departmentService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "department",
		"method":  "ListDepartments",
	})

	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list departments from repository")
		return nil, fmt.Errorf("service: could not list departments: %w", err)
	}

	return departments, nil
}
