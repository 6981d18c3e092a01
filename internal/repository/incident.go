package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/alnas-hms/ovr-system/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type incidentRepository struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &incidentRepository{
		db:       db,
		redis:    redisClient,
		cacheTTL: cacheTTL,
	}
}

// lockIncident читает и блокирует строку инцидента до конца транзакции.
// Все мутации проходят через эту блокировку, поэтому конкурирующие операции
// по одному инциденту выполняются последовательно.
func lockIncident(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*models.Incident, error) {
	var inc models.Incident
	err := tx.QueryRow(ctx, `
		SELECT id, reporter_id, incident_date, incident_time, location, description,
		       immediate_action, status, responded, created_at, closed_at
		FROM incidents
		WHERE id = $1
		FOR UPDATE`, id).Scan(
		&inc.ID, &inc.ReporterID, &inc.IncidentDate, &inc.IncidentTime, &inc.Location,
		&inc.Description, &inc.ImmediateAction, &inc.Status, &inc.Responded,
		&inc.CreatedAt, &inc.ClosedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("repository: lock incident: %w", err)
	}
	return &inc, nil
}

// CreateIncident записывает репортера, инцидент, пострадавших лиц и ссылки
// на вложения одной транзакцией: либо сохраняется все, либо ничего.
func (r *incidentRepository) CreateIncident(ctx context.Context, sub *models.IncidentSubmission) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var reporterID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO reporters (name, title, reported_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		sub.Reporter.Name, sub.Reporter.Title, sub.Reporter.ReportedAt,
	).Scan(&reporterID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: insert reporter: %w", err)
	}

	var incidentID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO incidents (reporter_id, incident_date, incident_time, location,
		                       description, immediate_action, status, responded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		reporterID, sub.Incident.IncidentDate, sub.Incident.IncidentTime,
		sub.Incident.Location, sub.Incident.Description, sub.Incident.ImmediateAction,
		sub.Incident.Status, sub.Incident.Responded,
	).Scan(&incidentID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: insert incident: %w", err)
	}

	for _, ind := range sub.Individuals {
		_, err = tx.Exec(ctx, `
			INSERT INTO affected_individuals (incident_id, kind, name, mrn)
			VALUES ($1, $2, $3, $4)`,
			incidentID, ind.Kind, ind.Name, ind.MRN,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("repository: insert affected individual: %w", err)
		}
	}

	for pos, ref := range sub.AttachmentRefs {
		_, err = tx.Exec(ctx, `
			INSERT INTO incident_attachments (incident_id, ref, position)
			VALUES ($1, $2, $3)`,
			incidentID, ref, pos,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("repository: insert attachment ref: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("repository: commit tx: %w", err)
	}
	return incidentID, nil
}

// AssignDepartment добавляет связь (инцидент, отдел) и переводит инцидент
// в Assigned. Повторное назначение не дублирует связь, но статус все равно
// становится Assigned.
func (r *incidentRepository) AssignDepartment(ctx context.Context, incidentID uuid.UUID, departmentID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	inc, err := lockIncident(ctx, tx, incidentID)
	if err != nil {
		return err
	}
	if err := models.GuardAssign(inc.Status); err != nil {
		return err
	}

	var exists bool
	err = tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM departments WHERE id = $1)`, departmentID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("repository: check department: %w", err)
	}
	if !exists {
		return models.ErrDepartmentNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO department_assignments (incident_id, department_id)
		VALUES ($1, $2)
		ON CONFLICT (incident_id, department_id) DO NOTHING`,
		incidentID, departmentID,
	)
	if err != nil {
		return fmt.Errorf("repository: insert assignment: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE incidents SET status = $1 WHERE id = $2`,
		models.StatusAssigned, incidentID)
	if err != nil {
		return fmt.Errorf("repository: update incident status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: commit tx: %w", err)
	}
	return nil
}

// SaveResponse сохраняет ответ отдела. Требует существующего назначения;
// повторный ответ того же отдела перезаписывает прежний. Связь и инцидент
// помечаются отвеченными, статус становится Pending.
func (r *incidentRepository) SaveResponse(ctx context.Context, resp *models.DepartmentResponse) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	inc, err := lockIncident(ctx, tx, resp.IncidentID)
	if err != nil {
		return uuid.Nil, err
	}

	var assigned bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM department_assignments
		              WHERE incident_id = $1 AND department_id = $2)`,
		resp.IncidentID, resp.DepartmentID,
	).Scan(&assigned)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: check assignment: %w", err)
	}
	if err := models.GuardRespond(inc.Status, assigned); err != nil {
		return uuid.Nil, err
	}

	var responseID uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO department_responses (incident_id, department_id, reason,
		                                  corrective_action, due_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (incident_id, department_id) DO UPDATE SET
			reason            = EXCLUDED.reason,
			corrective_action = EXCLUDED.corrective_action,
			due_date          = EXCLUDED.due_date,
			responded_at      = now()
		RETURNING id`,
		resp.IncidentID, resp.DepartmentID, resp.Reason, resp.CorrectiveAction, resp.DueDate,
	).Scan(&responseID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: upsert response: %w", err)
	}

	_, err = tx.Exec(ctx, `
		UPDATE department_assignments SET responded = TRUE
		WHERE incident_id = $1 AND department_id = $2`,
		resp.IncidentID, resp.DepartmentID,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: update assignment: %w", err)
	}

	_, err = tx.Exec(ctx, `UPDATE incidents SET status = $1, responded = TRUE WHERE id = $2`,
		models.StatusPending, resp.IncidentID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("repository: update incident status: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("repository: commit tx: %w", err)
	}
	return responseID, nil
}

// SaveFeedback сохраняет обратную связь отдела качества. Повторная подача
// перезаписывает прежнюю; колонки ревью при перезаписи не трогаются.
func (r *incidentRepository) SaveFeedback(ctx context.Context, review *models.QualityReview) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	inc, err := lockIncident(ctx, tx, review.IncidentID)
	if err != nil {
		return err
	}
	if err := models.GuardFeedback(inc.Status, inc.Responded); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO quality_reviews (incident_id, categorization, type, risk_score,
		                             effectiveness, reviewer_id, feedback_given, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, now())
		ON CONFLICT (incident_id) DO UPDATE SET
			categorization = EXCLUDED.categorization,
			type           = EXCLUDED.type,
			risk_score     = EXCLUDED.risk_score,
			effectiveness  = EXCLUDED.effectiveness,
			reviewer_id    = EXCLUDED.reviewer_id,
			feedback_given = TRUE,
			submitted_at   = now()`,
		review.IncidentID, review.Categorization, review.Type, review.RiskScore,
		review.Effectiveness, review.ReviewerID,
	)
	if err != nil {
		return fmt.Errorf("repository: upsert quality review: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: commit tx: %w", err)
	}
	return nil
}

// MarkReviewed подтверждает обратную связь. Требует поданной и еще не
// подтвержденной обратной связи.
func (r *incidentRepository) MarkReviewed(ctx context.Context, incidentID uuid.UUID, reviewerID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	inc, err := lockIncident(ctx, tx, incidentID)
	if err != nil {
		return err
	}

	feedbackGiven, reviewed, err := reviewState(ctx, tx, incidentID)
	if err != nil {
		return err
	}
	if err := models.GuardReview(inc.Status, feedbackGiven, reviewed); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE quality_reviews
		SET reviewed = TRUE, reviewed_at = now(), reviewed_by = $1
		WHERE incident_id = $2`,
		reviewerID, incidentID,
	)
	if err != nil {
		return fmt.Errorf("repository: mark reviewed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: commit tx: %w", err)
	}
	return nil
}

// CloseIncident переводит инцидент в терминальный статус Done и фиксирует
// момент закрытия. Требует подтвержденной обратной связи.
func (r *incidentRepository) CloseIncident(ctx context.Context, incidentID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	inc, err := lockIncident(ctx, tx, incidentID)
	if err != nil {
		return err
	}

	feedbackGiven, reviewed, err := reviewState(ctx, tx, incidentID)
	if err != nil {
		return err
	}
	if err := models.GuardClose(inc.Status, feedbackGiven, reviewed); err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		UPDATE incidents SET status = $1, closed_at = now() WHERE id = $2`,
		models.StatusDone, incidentID,
	)
	if err != nil {
		return fmt.Errorf("repository: close incident: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: commit tx: %w", err)
	}
	return nil
}

func reviewState(ctx context.Context, tx pgx.Tx, incidentID uuid.UUID) (feedbackGiven, reviewed bool, err error) {
	err = tx.QueryRow(ctx, `
		SELECT feedback_given, reviewed FROM quality_reviews WHERE incident_id = $1`,
		incidentID,
	).Scan(&feedbackGiven, &reviewed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("repository: read review state: %w", err)
	}
	return feedbackGiven, reviewed, nil
}

// GetIncidentView собирает детальное представление инцидента: сам инцидент,
// репортера, пострадавших, назначения, ответы, обратную связь и вложения.
func (r *incidentRepository) GetIncidentView(ctx context.Context, id uuid.UUID) (*models.IncidentView, error) {
	view := &models.IncidentView{}

	err := r.db.QueryRow(ctx, `
		SELECT i.id, i.reporter_id, i.incident_date, i.incident_time, i.location,
		       i.description, i.immediate_action, i.status, i.responded, i.created_at,
		       i.closed_at, rp.name, rp.title, rp.reported_at
		FROM incidents i
		JOIN reporters rp ON rp.id = i.reporter_id
		WHERE i.id = $1`, id).Scan(
		&view.Incident.ID, &view.Incident.ReporterID, &view.Incident.IncidentDate,
		&view.Incident.IncidentTime, &view.Incident.Location, &view.Incident.Description,
		&view.Incident.ImmediateAction, &view.Incident.Status, &view.Incident.Responded,
		&view.Incident.CreatedAt, &view.Incident.ClosedAt,
		&view.Reporter.Name, &view.Reporter.Title, &view.Reporter.ReportedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrIncidentNotFound
		}
		return nil, fmt.Errorf("repository: get incident: %w", err)
	}
	view.Reporter.ID = view.Incident.ReporterID

	rows, err := r.db.Query(ctx, `
		SELECT id, incident_id, kind, name, mrn
		FROM affected_individuals WHERE incident_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: get affected individuals: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ind models.AffectedIndividual
		if err := rows.Scan(&ind.ID, &ind.IncidentID, &ind.Kind, &ind.Name, &ind.MRN); err != nil {
			return nil, fmt.Errorf("repository: scan affected individual: %w", err)
		}
		view.Individuals = append(view.Individuals, ind)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: get affected individuals: %w", err)
	}
	rows.Close()

	rows, err = r.db.Query(ctx, `
		SELECT a.incident_id, a.department_id, d.name, a.responded, a.assigned_at
		FROM department_assignments a
		JOIN departments d ON d.id = a.department_id
		WHERE a.incident_id = $1
		ORDER BY a.assigned_at`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: get assignments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a models.DepartmentAssignment
		if err := rows.Scan(&a.IncidentID, &a.DepartmentID, &a.DepartmentName, &a.Responded, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("repository: scan assignment: %w", err)
		}
		view.Assignments = append(view.Assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: get assignments: %w", err)
	}
	rows.Close()

	rows, err = r.db.Query(ctx, `
		SELECT r.id, r.incident_id, r.department_id, d.name, r.reason,
		       r.corrective_action, r.due_date, r.responded_at
		FROM department_responses r
		JOIN departments d ON d.id = r.department_id
		WHERE r.incident_id = $1
		ORDER BY r.responded_at`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: get responses: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var resp models.DepartmentResponse
		if err := rows.Scan(&resp.ID, &resp.IncidentID, &resp.DepartmentID, &resp.DepartmentName,
			&resp.Reason, &resp.CorrectiveAction, &resp.DueDate, &resp.RespondedAt); err != nil {
			return nil, fmt.Errorf("repository: scan response: %w", err)
		}
		view.Responses = append(view.Responses, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: get responses: %w", err)
	}
	rows.Close()

	var review models.QualityReview
	err = r.db.QueryRow(ctx, `
		SELECT incident_id, categorization, type, risk_score, effectiveness,
		       reviewer_id, feedback_given, submitted_at, reviewed, reviewed_at, reviewed_by
		FROM quality_reviews WHERE incident_id = $1`, id).Scan(
		&review.IncidentID, &review.Categorization, &review.Type, &review.RiskScore,
		&review.Effectiveness, &review.ReviewerID, &review.FeedbackGiven,
		&review.SubmittedAt, &review.Reviewed, &review.ReviewedAt, &review.ReviewedBy,
	)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: get quality review: %w", err)
	}
	if err == nil {
		view.Review = &review
	}

	rows, err = r.db.Query(ctx, `
		SELECT ref FROM incident_attachments WHERE incident_id = $1 ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("repository: get attachments: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("repository: scan attachment: %w", err)
		}
		view.AttachmentRefs = append(view.AttachmentRefs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: get attachments: %w", err)
	}

	view.AllResponded = view.ComputeAllResponded()
	view.NextAction = view.ComputeNextAction()
	return view, nil
}

// ListIncidents возвращает сводки инцидентов по фильтрам. Фильтр по отделу
// идет через таблицу назначений; DISTINCT гасит размножение строк от
// множественных назначений.
func (r *incidentRepository) ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.IncidentSummary, error) {
	query := `
		SELECT DISTINCT i.id, i.incident_date, i.location, rp.name, i.status,
		                i.responded, i.created_at
		FROM incidents i
		JOIN reporters rp ON rp.id = i.reporter_id`
	args := []any{}
	where := []string{}

	if filter.DepartmentID != nil {
		query += ` JOIN department_assignments da ON da.incident_id = i.id`
		args = append(args, *filter.DepartmentID)
		where = append(where, fmt.Sprintf("da.department_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("i.status = $%d", len(args)))
	}
	if filter.Responded != nil {
		args = append(args, *filter.Responded)
		where = append(where, fmt.Sprintf("i.responded = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		where = append(where, fmt.Sprintf("i.incident_date >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		where = append(where, fmt.Sprintf("i.incident_date <= $%d", len(args)))
	}
	for i, cond := range where {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	args = append(args, filter.PageSize)
	query += fmt.Sprintf(" ORDER BY i.created_at DESC LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.PageSize)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: list incidents: %w", err)
	}
	defer rows.Close()

	var incidents []*models.IncidentSummary
	for rows.Next() {
		var s models.IncidentSummary
		if err := rows.Scan(&s.ID, &s.IncidentDate, &s.Location, &s.ReporterName,
			&s.Status, &s.Responded, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("repository: scan incident summary: %w", err)
		}
		incidents = append(incidents, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: list incidents: %w", err)
	}
	return incidents, nil
}

func viewCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("incident_view:%s", id)
}

// GetViewFromCache возвращает закешированное представление или nil при промахе
func (r *incidentRepository) GetViewFromCache(ctx context.Context, id uuid.UUID) (*models.IncidentView, error) {
	data, err := r.redis.Get(ctx, viewCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get view from cache: %w", err)
	}
	var view models.IncidentView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("repository: unmarshal cached view: %w", err)
	}
	return &view, nil
}

func (r *incidentRepository) SetViewCache(ctx context.Context, view *models.IncidentView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("repository: marshal view: %w", err)
	}
	if err := r.redis.Set(ctx, viewCacheKey(view.Incident.ID), data, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("repository: set view cache: %w", err)
	}
	return nil
}

func (r *incidentRepository) InvalidateViewCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redis.Del(ctx, viewCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("repository: invalidate view cache: %w", err)
	}
	return nil
}
