package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alnas-hms/ovr-system/internal/audit"
	"github.com/alnas-hms/ovr-system/internal/identity"
	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IncidentRepository определяет контракт для работы с бд инцидентов.
// Каждая мутация выполняется одной транзакцией с блокировкой строки инцидента:
// чтение состояния, проверка предусловий и запись не чередуются с другими
// операциями по тому же инциденту.
type IncidentRepository interface {
	CreateIncident(ctx context.Context, sub *models.IncidentSubmission) (uuid.UUID, error)
	AssignDepartment(ctx context.Context, incidentID uuid.UUID, departmentID int64) error
	SaveResponse(ctx context.Context, resp *models.DepartmentResponse) (uuid.UUID, error)
	SaveFeedback(ctx context.Context, review *models.QualityReview) error
	MarkReviewed(ctx context.Context, incidentID uuid.UUID, reviewerID int64) error
	CloseIncident(ctx context.Context, incidentID uuid.UUID) error
	GetIncidentView(ctx context.Context, id uuid.UUID) (*models.IncidentView, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.IncidentSummary, error)
	GetViewFromCache(ctx context.Context, id uuid.UUID) (*models.IncidentView, error)
	SetViewCache(ctx context.Context, view *models.IncidentView) error
	InvalidateViewCache(ctx context.Context, id uuid.UUID) error
}

// IncidentService определяет контракт бизнес-логики рабочего процесса OVR
type IncidentService interface {
	SubmitIncident(ctx context.Context, sub *models.IncidentSubmission) (uuid.UUID, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.IncidentView, error)
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.IncidentSummary, error)
	AssignDepartment(ctx context.Context, incidentID uuid.UUID, departmentID int64, actor *identity.Session) error
	RecordResponse(ctx context.Context, resp *models.DepartmentResponse, actor *identity.Session) (uuid.UUID, error)
	SubmitFeedback(ctx context.Context, review *models.QualityReview, actor *identity.Session) error
	ReviewIncident(ctx context.Context, incidentID uuid.UUID, actor *identity.Session) error
	CloseIncident(ctx context.Context, incidentID uuid.UUID, actor *identity.Session) error
}

type incidentService struct {
	repo      IncidentRepository
	logger    *logrus.Logger
	publisher audit.EventPublisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, publisher audit.EventPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// SubmitIncident атомарно создает репортера, инцидент, пострадавших лиц
// и ссылки на вложения. Новый инцидент получает статус New.
func (s *incidentService) SubmitIncident(ctx context.Context, sub *models.IncidentSubmission) (uuid.UUID, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "SubmitIncident",
		"reporter": sub.Reporter.Name,
	})
	log.Info("Attempting to submit a new incident")

	if err := validateSubmission(sub); err != nil {
		log.WithError(err).Warn("Incident submission rejected by validation")
		return uuid.Nil, err
	}

	sub.Incident.Status = models.StatusNew
	sub.Incident.Responded = false

	id, err := s.repo.CreateIncident(ctx, sub)
	if err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return uuid.Nil, fmt.Errorf("service: could not submit incident: %w", err)
	}

	s.publishAudit(ctx, log, audit.Event{
		IncidentID: id,
		Action:     audit.ActionSubmitted,
		Detail:     sub.Incident.Location,
	})

	log.WithField("incident_id", id).Info("Incident submitted successfully")
	return id, nil
}

// GetIncident возвращает согласованное детальное представление инцидента
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.IncidentView, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident view")

	cached, err := s.repo.GetViewFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident view from cache")
	}
	if cached != nil {
		return cached, nil
	}

	view, err := s.repo.GetIncidentView(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident view from repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.repo.SetViewCache(ctx, view); err != nil {
		log.WithError(err).Warn("Failed to cache incident view")
	}

	log.Info("Incident view fetched successfully")
	return view, nil
}

// ListIncidents возвращает список инцидентов по фильтрам отдела/статуса/дат
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.IncidentSummary, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      filter.Page,
		"page_size": filter.PageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// AssignDepartment связывает инцидент с ответственным отделом (fan-out).
// Повторное назначение того же отдела - no-op по таблице связей, но статус
// все равно возвращается в Assigned: в конвейер поступила новая работа.
func (s *incidentService) AssignDepartment(ctx context.Context, incidentID uuid.UUID, departmentID int64, actor *identity.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "AssignDepartment",
		"incident_id":   incidentID,
		"department_id": departmentID,
	})
	log.Info("Attempting to assign department")

	// Авторизация проверяется до чтения состояния
	if !actor.IsQuality() {
		log.Warn("Assignment attempted by a non-quality user")
		return models.ErrNotAuthorized
	}

	if err := s.repo.AssignDepartment(ctx, incidentID, departmentID); err != nil {
		log.WithError(err).Error("Failed to assign department in repository")
		return fmt.Errorf("service: could not assign department: %w", err)
	}

	if err := s.repo.InvalidateViewCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident view cache")
	}

	s.publishAudit(ctx, log, audit.Event{
		IncidentID: incidentID,
		Action:     audit.ActionAssigned,
		ActorID:    actor.UserID,
		Detail:     fmt.Sprintf("department %d", departmentID),
	})

	log.Info("Department assigned successfully")
	return nil
}

// RecordResponse фиксирует ответ отдела: причины, корректирующее действие,
// срок. Требует существующего назначения для пары (инцидент, отдел) и
// переводит инцидент в Pending.
func (s *incidentService) RecordResponse(ctx context.Context, resp *models.DepartmentResponse, actor *identity.Session) (uuid.UUID, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "incident",
		"method":        "RecordResponse",
		"incident_id":   resp.IncidentID,
		"department_id": resp.DepartmentID,
	})
	log.Info("Attempting to record department response")

	// Отвечать может сам отдел; отдел качества может править от имени любого
	if actor.DepartmentID != resp.DepartmentID && !actor.IsQuality() {
		log.Warn("Response attempted on behalf of another department")
		return uuid.Nil, models.ErrNotAuthorized
	}

	if err := validateResponse(resp); err != nil {
		log.WithError(err).Warn("Department response rejected by validation")
		return uuid.Nil, err
	}

	id, err := s.repo.SaveResponse(ctx, resp)
	if err != nil {
		log.WithError(err).Error("Failed to save department response in repository")
		return uuid.Nil, fmt.Errorf("service: could not record response: %w", err)
	}

	if err := s.repo.InvalidateViewCache(ctx, resp.IncidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident view cache")
	}

	s.publishAudit(ctx, log, audit.Event{
		IncidentID: resp.IncidentID,
		Action:     audit.ActionResponded,
		ActorID:    actor.UserID,
		Detail:     fmt.Sprintf("department %d", resp.DepartmentID),
	})

	log.WithField("response_id", id).Info("Department response recorded successfully")
	return id, nil
}

// SubmitFeedback сохраняет обратную связь отдела качества: категоризацию,
// тип, оценку риска и вердикт. Повторная подача перезаписывает прежнюю
// (latest wins); флаг ревью при этом не трогается.
func (s *incidentService) SubmitFeedback(ctx context.Context, review *models.QualityReview, actor *identity.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "SubmitFeedback",
		"incident_id": review.IncidentID,
	})
	log.Info("Attempting to submit quality feedback")

	if !actor.IsQuality() {
		log.Warn("Feedback attempted by a non-quality user")
		return models.ErrNotAuthorized
	}

	if err := validateFeedback(review); err != nil {
		log.WithError(err).Warn("Quality feedback rejected by validation")
		return err
	}

	review.ReviewerID = actor.UserID
	review.FeedbackGiven = true

	if err := s.repo.SaveFeedback(ctx, review); err != nil {
		log.WithError(err).Error("Failed to save quality feedback in repository")
		return fmt.Errorf("service: could not submit feedback: %w", err)
	}

	if err := s.repo.InvalidateViewCache(ctx, review.IncidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident view cache")
	}

	s.publishAudit(ctx, log, audit.Event{
		IncidentID: review.IncidentID,
		Action:     audit.ActionFeedback,
		ActorID:    actor.UserID,
		Detail:     string(review.Type),
	})

	log.Info("Quality feedback submitted successfully")
	return nil
}

// ReviewIncident подтверждает обратную связь. Доступно только ревьюеру;
// требует поданной и еще не подтвержденной обратной связи.
func (s *incidentService) ReviewIncident(ctx context.Context, incidentID uuid.UUID, actor *identity.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ReviewIncident",
		"incident_id": incidentID,
	})
	log.Info("Attempting to review quality feedback")

	if !actor.CanReview() {
		log.Warn("Review attempted by a user without the reviewer role")
		return models.ErrNotAuthorized
	}

	if err := s.repo.MarkReviewed(ctx, incidentID, actor.UserID); err != nil {
		log.WithError(err).Error("Failed to mark feedback reviewed in repository")
		return fmt.Errorf("service: could not review incident: %w", err)
	}

	if err := s.repo.InvalidateViewCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident view cache")
	}

	s.publishAudit(ctx, log, audit.Event{
		IncidentID: incidentID,
		Action:     audit.ActionReviewed,
		ActorID:    actor.UserID,
	})

	log.Info("Quality feedback reviewed successfully")
	return nil
}

// CloseIncident закрывает инцидент. Доступно только отделу качества;
// требует подтвержденной обратной связи. Закрытие необратимо.
func (s *incidentService) CloseIncident(ctx context.Context, incidentID uuid.UUID, actor *identity.Session) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CloseIncident",
		"incident_id": incidentID,
	})
	log.Info("Attempting to close incident")

	if !actor.IsQuality() {
		log.Warn("Close attempted by a non-quality user")
		return models.ErrNotAuthorized
	}

	if err := s.repo.CloseIncident(ctx, incidentID); err != nil {
		log.WithError(err).Error("Failed to close incident in repository")
		return fmt.Errorf("service: could not close incident: %w", err)
	}

	if err := s.repo.InvalidateViewCache(ctx, incidentID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident view cache")
	}

	s.publishAudit(ctx, log, audit.Event{
		IncidentID: incidentID,
		Action:     audit.ActionClosed,
		ActorID:    actor.UserID,
	})

	log.Info("Incident closed successfully")
	return nil
}

// publishAudit отправляет событие аудита; сбой публикации не отменяет операцию
func (s *incidentService) publishAudit(ctx context.Context, log *logrus.Entry, event audit.Event) {
	event.Timestamp = time.Now().UTC()
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish audit event")
	}
}

// validateSubmission отклоняет некорректную подачу до какой-либо записи
func validateSubmission(sub *models.IncidentSubmission) error {
	if sub.Reporter.Name == "" {
		return &models.ValidationError{Field: "reporter_name", Reason: "required"}
	}
	if sub.Incident.Location == "" {
		return &models.ValidationError{Field: "location", Reason: "required"}
	}
	if sub.Incident.Description == "" {
		return &models.ValidationError{Field: "description", Reason: "required"}
	}
	if sub.Incident.IncidentDate.IsZero() {
		return &models.ValidationError{Field: "incident_date", Reason: "required"}
	}
	if _, err := time.Parse("15:04", sub.Incident.IncidentTime); err != nil {
		return &models.ValidationError{Field: "incident_time", Reason: "must be in HH:MM format"}
	}
	for _, ind := range sub.Individuals {
		switch ind.Kind {
		case models.IndividualPatient:
			if ind.MRN == "" {
				return &models.ValidationError{Field: "mrn", Reason: "required for affected patients"}
			}
		case models.IndividualStaff, models.IndividualVisitor:
			// MRN не применим
		default:
			return &models.ValidationError{Field: "affected_individuals", Reason: "unknown individual kind"}
		}
		if ind.Name == "" {
			return &models.ValidationError{Field: "affected_individuals", Reason: "name is required"}
		}
	}
	return nil
}

// validateResponse отклоняет некорректный ответ отдела до какой-либо записи
func validateResponse(resp *models.DepartmentResponse) error {
	if resp.Reason == "" {
		return &models.ValidationError{Field: "reason", Reason: "required"}
	}
	if resp.CorrectiveAction == "" {
		return &models.ValidationError{Field: "corrective_action", Reason: "required"}
	}
	if resp.DueDate.IsZero() {
		return &models.ValidationError{Field: "due_date", Reason: "required"}
	}
	return nil
}

// validateFeedback отклоняет некорректную обратную связь до какой-либо записи
func validateFeedback(review *models.QualityReview) error {
	if !models.ValidOVRType(review.Type) {
		return &models.ValidationError{Field: "type", Reason: "unknown event type"}
	}
	if review.RiskScore < models.RiskScoreMin || review.RiskScore > models.RiskScoreMax {
		return &models.ValidationError{Field: "risk_scoring", Reason: "must be between 1 and 5"}
	}
	if !models.ValidEffectiveness(review.Effectiveness) {
		return &models.ValidationError{Field: "effectiveness", Reason: "unknown effectiveness verdict"}
	}
	return nil
}
