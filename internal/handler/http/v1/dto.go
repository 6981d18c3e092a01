package v1

import "time"

// SubmitIncidentRequest - входной формат подачи инцидента.
// Формат даты YYYY-MM-DD, времени HH:MM.
type SubmitIncidentRequest struct {
	ReporterName    string   `json:"reporter_name" binding:"required" example:"Aisha Al-Harbi"`
	ReporterTitle   string   `json:"reporter_title" example:"Staff Nurse"`
	IncidentDate    string   `json:"incident_date" binding:"required" example:"2026-08-12"`
	IncidentTime    string   `json:"incident_time" binding:"required" example:"14:35"`
	Location        string   `json:"location" binding:"required" example:"Ward 3, Room 12"`
	Description     string   `json:"description" binding:"required" example:"Patient slipped near the bed"`
	ImmediateAction string   `json:"immediate_action" example:"Patient examined by the duty physician"`
	Patient         bool     `json:"patient"`
	PatientName     string   `json:"patient_name,omitempty" example:"Omar K."`
	MRN             string   `json:"mrn,omitempty" example:"MRN-104233"`
	Employee        bool     `json:"employee"`
	EmployeeName    string   `json:"employee_name,omitempty"`
	Visitor         bool     `json:"visitor"`
	VisitorName     string   `json:"visitor_name,omitempty"`
	Attachments     []string `json:"attachments,omitempty"`
}

type SubmitIncidentResponse struct {
	ID string `json:"id" example:"7b0f4c39-52a6-4f26-9102-3f4cf6d7a91b"`
}

type AssignRequest struct {
	DepartmentID int64 `json:"department_id" binding:"required" example:"4"`
}

// DepartmentResponseRequest - ответ отдела. department_id опционален:
// по умолчанию берется отдел сессии, отдел качества может указать чужой.
type DepartmentResponseRequest struct {
	Reason           string `json:"reason" binding:"required" example:"Wet floor was not signposted"`
	CorrectiveAction string `json:"corrective_action" binding:"required" example:"Signage added, cleaning log revised"`
	DueDate          string `json:"due_date" binding:"required" example:"2026-09-15"`
	DepartmentID     *int64 `json:"department_id,omitempty" example:"4"`
}

type DepartmentResponseResult struct {
	ID string `json:"id"`
}

type FeedbackRequest struct {
	Categorization string `json:"categorization" binding:"required" example:"Patient Care"`
	Type           string `json:"type" binding:"required" example:"Near Miss Events"`
	RiskScoring    int    `json:"risk_scoring" binding:"required,min=1,max=5" example:"3"`
	Effectiveness  string `json:"effectiveness" binding:"required" example:"Effective (OVR Closed)"`
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required" example:"Pharmacy"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"quality.lead"`
	Password string `json:"password" binding:"required" example:"s3cret"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	UserID   int64    `json:"user_id"`
	FullName string   `json:"full_name"`
	Roles    []string `json:"roles"`
}

type CreateUserRequest struct {
	Username     string   `json:"username" binding:"required" example:"nursing.head"`
	Password     string   `json:"password" binding:"required,min=6" example:"s3cret!"`
	FullName     string   `json:"full_name" binding:"required" example:"Mona Al-Harbi"`
	Title        string   `json:"title" example:"Head Nurse"`
	DepartmentID int64    `json:"department_id" binding:"required" example:"4"`
	Roles        []string `json:"roles,omitempty" example:"quality"`
}

type BlockUserRequest struct {
	Blocked bool `json:"blocked"`
}

type UserDTO struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	FullName     string   `json:"full_name"`
	Title        string   `json:"title"`
	DepartmentID int64    `json:"department_id"`
	Roles        []string `json:"roles"`
	Blocked      bool     `json:"blocked"`
}

// IncidentSummaryDTO - строка списка инцидентов
type IncidentSummaryDTO struct {
	ID           string    `json:"id"`
	IncidentDate string    `json:"incident_date"`
	Location     string    `json:"location"`
	ReporterName string    `json:"reporter_name"`
	Status       string    `json:"status"`
	Responded    bool      `json:"responded"`
	CreatedAt    time.Time `json:"created_at"`
}

type AssignmentDTO struct {
	DepartmentID   int64     `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Responded      bool      `json:"responded"`
	AssignedAt     time.Time `json:"assigned_at"`
}

type ResponseDTO struct {
	ID               string    `json:"id"`
	DepartmentID     int64     `json:"department_id"`
	DepartmentName   string    `json:"department_name"`
	Reason           string    `json:"reason"`
	CorrectiveAction string    `json:"corrective_action"`
	DueDate          string    `json:"due_date"`
	RespondedAt      time.Time `json:"responded_at"`
}

type IndividualDTO struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
	MRN  string `json:"mrn,omitempty"`
}

type ReviewDTO struct {
	Categorization string     `json:"categorization"`
	Type           string     `json:"type"`
	RiskScoring    int        `json:"risk_scoring"`
	Effectiveness  string     `json:"effectiveness"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	Reviewed       bool       `json:"reviewed"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
}

// IncidentViewDTO - детальное представление инцидента с вычисленным
// следующим шагом рабочего процесса
type IncidentViewDTO struct {
	ID              string          `json:"id"`
	ReporterName    string          `json:"reporter_name"`
	ReporterTitle   string          `json:"reporter_title"`
	IncidentDate    string          `json:"incident_date"`
	IncidentTime    string          `json:"incident_time"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	ImmediateAction string          `json:"immediate_action"`
	Status          string          `json:"status"`
	Responded       bool            `json:"responded"`
	AllResponded    bool            `json:"all_responded"`
	NextAction      string          `json:"next_action"`
	CreatedAt       time.Time       `json:"created_at"`
	ClosedAt        *time.Time      `json:"closed_at,omitempty"`
	Individuals     []IndividualDTO `json:"affected_individuals"`
	Assignments     []AssignmentDTO `json:"assignments"`
	Responses       []ResponseDTO   `json:"responses"`
	Review          *ReviewDTO      `json:"review,omitempty"`
	Attachments     []string        `json:"attachments,omitempty"`
}

type DepartmentDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"incident not found"`
}
