package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/alnas-hms/ovr-system/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) service.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, username, password_hash, full_name, title, department_id, roles, blocked
		FROM users
		WHERE username = $1`, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.FullName,
		&user.Title, &user.DepartmentID, &user.Roles, &user.Blocked,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository: get user by username: %w", err)
	}
	return &user, nil
}

// CreateUser записывает учетную запись; хэш пароля уже посчитан вызывающим
func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, full_name, title, department_id, roles)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		user.Username, user.PasswordHash, user.FullName, user.Title,
		user.DepartmentID, user.Roles,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("repository: insert user: %w", err)
	}
	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, password_hash, full_name, title, department_id, roles, blocked
		FROM users
		ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("repository: list users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.FullName,
			&user.Title, &user.DepartmentID, &user.Roles, &user.Blocked); err != nil {
			return nil, fmt.Errorf("repository: scan user: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// SetBlocked блокирует или разблокирует учетную запись
func (r *userRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET blocked = $1 WHERE id = $2`, blocked, id)
	if err != nil {
		return fmt.Errorf("repository: set user blocked: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrUserNotFound
	}
	return nil
}
