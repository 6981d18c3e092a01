package repository

import (
	"context"
	"fmt"

	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/alnas-hms/ovr-system/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

type departmentRepository struct {
	db *pgxpool.Pool
}

func NewDepartmentRepository(db *pgxpool.Pool) service.DepartmentRepository {
	return &departmentRepository{db: db}
}

// CreateDepartment добавляет отдел; повторное имя возвращает существующую строку
func (r *departmentRepository) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	var dept models.Department
	err := r.db.QueryRow(ctx, `
		INSERT INTO departments (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name`, name).Scan(&dept.ID, &dept.Name)
	if err != nil {
		return nil, fmt.Errorf("repository: insert department: %w", err)
	}
	return &dept, nil
}

func (r *departmentRepository) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("repository: list departments: %w", err)
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var dept models.Department
		if err := rows.Scan(&dept.ID, &dept.Name); err != nil {
			return nil, fmt.Errorf("repository: scan department: %w", err)
		}
		departments = append(departments, &dept)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: list departments: %w", err)
	}
	return departments, nil
}
