package models

import (
	"time"

	"github.com/google/uuid"
)

// Reporter - сотрудник, подавший сообщение об инциденте
type Reporter struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	ReportedAt time.Time `json:"reported_at"`
}

// Incident - запись об инциденте (OVR). Записи никогда не удаляются.
type Incident struct {
	ID              uuid.UUID  `json:"id"`
	ReporterID      int64      `json:"reporter_id"`
	IncidentDate    time.Time  `json:"incident_date"`
	IncidentTime    string     `json:"incident_time"`
	Location        string     `json:"location"`
	Description     string     `json:"description"`
	ImmediateAction string     `json:"immediate_action"`
	Status          Status     `json:"status"`
	Responded       bool       `json:"responded"`
	CreatedAt       time.Time  `json:"created_at"`
	ClosedAt        *time.Time `json:"closed_at,omitempty"`
}

// IndividualKind - вариант пострадавшего лица
type IndividualKind string

const (
	IndividualPatient IndividualKind = "Patient"
	IndividualStaff   IndividualKind = "Staff"
	IndividualVisitor IndividualKind = "Visitor"
)

// AffectedIndividual - пострадавшее лицо; создается при подаче и далее неизменно.
// MRN заполняется только для варианта Patient.
type AffectedIndividual struct {
	ID         int64          `json:"id"`
	IncidentID uuid.UUID      `json:"incident_id"`
	Kind       IndividualKind `json:"kind"`
	Name       string         `json:"name"`
	MRN        string         `json:"mrn,omitempty"`
}

// IncidentSubmission - полный набор строк, записываемых атомарно при подаче
type IncidentSubmission struct {
	Reporter       Reporter
	Incident       Incident
	Individuals    []AffectedIndividual
	AttachmentRefs []string
}

// IncidentSummary - строка списка инцидентов (дедуплицирована по id инцидента)
type IncidentSummary struct {
	ID           uuid.UUID `json:"id"`
	IncidentDate time.Time `json:"incident_date"`
	Location     string    `json:"location"`
	ReporterName string    `json:"reporter_name"`
	Status       Status    `json:"status"`
	Responded    bool      `json:"responded"`
	CreatedAt    time.Time `json:"created_at"`
}

// IncidentFilter - фильтры списка инцидентов
type IncidentFilter struct {
	DepartmentID *int64
	Status       *Status
	Responded    *bool
	From         *time.Time
	To           *time.Time
	Page         int
	PageSize     int
}

// IncidentView - согласованное детальное представление инцидента:
// объединение всех назначений, ответов отделов и обратной связи качества
type IncidentView struct {
	Incident       Incident               `json:"incident"`
	Reporter       Reporter               `json:"reporter"`
	Individuals    []AffectedIndividual   `json:"individuals"`
	Assignments    []DepartmentAssignment `json:"assignments"`
	Responses      []DepartmentResponse   `json:"responses"`
	Review         *QualityReview         `json:"review,omitempty"`
	AttachmentRefs []string               `json:"attachment_refs"`
	AllResponded   bool                   `json:"all_responded"`
	NextAction     NextAction             `json:"next_action"`
}
