package models

import (
	"time"

	"github.com/google/uuid"
)

// Department - справочные данные об отделе (создаются административно)
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DepartmentAssignment - связь инцидента с ответственным отделом (fan-out).
// Пара (инцидент, отдел) уникальна: повторное назначение не создает дубликат.
type DepartmentAssignment struct {
	IncidentID     uuid.UUID `json:"incident_id"`
	DepartmentID   int64     `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Responded      bool      `json:"responded"`
	AssignedAt     time.Time `json:"assigned_at"`
}

// DepartmentResponse - ответ отдела: вероятные причины, корректирующее
// действие и срок. Существует только при наличии назначения для той же пары.
type DepartmentResponse struct {
	ID               uuid.UUID `json:"id"`
	IncidentID       uuid.UUID `json:"incident_id"`
	DepartmentID     int64     `json:"department_id"`
	DepartmentName   string    `json:"department_name"`
	Reason           string    `json:"reason"`
	CorrectiveAction string    `json:"corrective_action"`
	DueDate          time.Time `json:"due_date"`
	RespondedAt      time.Time `json:"responded_at"`
}
