package models

// User - учетная запись сотрудника. Пароль хранится только как bcrypt-хэш.
// Заблокированная учетная запись сохраняется, но не может открыть сессию.
type User struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"full_name"`
	Title        string   `json:"title"`
	DepartmentID int64    `json:"department_id"`
	Roles        []string `json:"roles"`
	Blocked      bool     `json:"blocked"`
}
