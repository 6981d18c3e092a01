package v1

import (
	"time"

	"github.com/alnas-hms/ovr-system/internal/models"
)

const dateLayout = "2006-01-02"

func toSubmission(req *SubmitIncidentRequest) (*models.IncidentSubmission, error) {
	date, err := time.Parse(dateLayout, req.IncidentDate)
	if err != nil {
		return nil, &models.ValidationError{Field: "incident_date", Reason: "must be in YYYY-MM-DD format"}
	}

	sub := &models.IncidentSubmission{
		Reporter: models.Reporter{
			Name:       req.ReporterName,
			Title:      req.ReporterTitle,
			ReportedAt: time.Now().UTC(),
		},
		Incident: models.Incident{
			IncidentDate:    date,
			IncidentTime:    req.IncidentTime,
			Location:        req.Location,
			Description:     req.Description,
			ImmediateAction: req.ImmediateAction,
		},
		AttachmentRefs: req.Attachments,
	}

	if req.Patient {
		sub.Individuals = append(sub.Individuals, models.AffectedIndividual{
			Kind: models.IndividualPatient,
			Name: req.PatientName,
			MRN:  req.MRN,
		})
	}
	if req.Employee {
		sub.Individuals = append(sub.Individuals, models.AffectedIndividual{
			Kind: models.IndividualStaff,
			Name: req.EmployeeName,
		})
	}
	if req.Visitor {
		sub.Individuals = append(sub.Individuals, models.AffectedIndividual{
			Kind: models.IndividualVisitor,
			Name: req.VisitorName,
		})
	}
	return sub, nil
}

func toSummaryDTO(s *models.IncidentSummary) IncidentSummaryDTO {
	return IncidentSummaryDTO{
		ID:           s.ID.String(),
		IncidentDate: s.IncidentDate.Format(dateLayout),
		Location:     s.Location,
		ReporterName: s.ReporterName,
		Status:       string(s.Status),
		Responded:    s.Responded,
		CreatedAt:    s.CreatedAt,
	}
}

func toViewDTO(v *models.IncidentView) IncidentViewDTO {
	dto := IncidentViewDTO{
		ID:              v.Incident.ID.String(),
		ReporterName:    v.Reporter.Name,
		ReporterTitle:   v.Reporter.Title,
		IncidentDate:    v.Incident.IncidentDate.Format(dateLayout),
		IncidentTime:    v.Incident.IncidentTime,
		Location:        v.Incident.Location,
		Description:     v.Incident.Description,
		ImmediateAction: v.Incident.ImmediateAction,
		Status:          string(v.Incident.Status),
		Responded:       v.Incident.Responded,
		AllResponded:    v.AllResponded,
		NextAction:      string(v.NextAction),
		CreatedAt:       v.Incident.CreatedAt,
		ClosedAt:        v.Incident.ClosedAt,
		Attachments:     v.AttachmentRefs,
	}
	for _, ind := range v.Individuals {
		dto.Individuals = append(dto.Individuals, IndividualDTO{
			Kind: string(ind.Kind),
			Name: ind.Name,
			MRN:  ind.MRN,
		})
	}
	for _, a := range v.Assignments {
		dto.Assignments = append(dto.Assignments, AssignmentDTO{
			DepartmentID:   a.DepartmentID,
			DepartmentName: a.DepartmentName,
			Responded:      a.Responded,
			AssignedAt:     a.AssignedAt,
		})
	}
	for _, r := range v.Responses {
		dto.Responses = append(dto.Responses, ResponseDTO{
			ID:               r.ID.String(),
			DepartmentID:     r.DepartmentID,
			DepartmentName:   r.DepartmentName,
			Reason:           r.Reason,
			CorrectiveAction: r.CorrectiveAction,
			DueDate:          r.DueDate.Format(dateLayout),
			RespondedAt:      r.RespondedAt,
		})
	}
	if v.Review != nil {
		dto.Review = &ReviewDTO{
			Categorization: v.Review.Categorization,
			Type:           string(v.Review.Type),
			RiskScoring:    v.Review.RiskScore,
			Effectiveness:  string(v.Review.Effectiveness),
			SubmittedAt:    v.Review.SubmittedAt,
			Reviewed:       v.Review.Reviewed,
			ReviewedAt:     v.Review.ReviewedAt,
		}
	}
	return dto
}
