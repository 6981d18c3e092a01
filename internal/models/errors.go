package models

import (
	"errors"
	"fmt"
)

// Ошибки движка, различимые через errors.Is/As на границе транспорта
var (
	ErrIncidentNotFound   = errors.New("incident not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("user account is blocked")
	ErrNotAuthorized      = errors.New("caller is not authorized for this operation")
)

// PreconditionError - операция отклонена из-за невыполненного предусловия
// состояния; запись не изменяется. Сообщение всегда называет предусловие.
type PreconditionError struct {
	Precondition string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Precondition
}

// ValidationError - входные данные отклонены до какой-либо записи
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}
