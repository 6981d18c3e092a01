package models

import (
	"time"

	"github.com/google/uuid"
)

// OVRType - тип события по классификации отдела качества
type OVRType string

const (
	TypeNearMiss    OVRType = "Near Miss Events"
	TypeAdverse     OVRType = "Adverse Events"
	TypeSignificant OVRType = "Significant Events"
	TypeSentinel    OVRType = "Sentinel Events"
)

// ValidOVRType проверяет принадлежность значения фиксированному словарю типов
func ValidOVRType(t OVRType) bool {
	switch t {
	case TypeNearMiss, TypeAdverse, TypeSignificant, TypeSentinel:
		return true
	}
	return false
}

// Effectiveness - вердикт об эффективности корректирующего действия
type Effectiveness string

const (
	EffectivenessEffective   Effectiveness = "Effective (OVR Closed)"
	EffectivenessIneffective Effectiveness = "Ineffective"
)

// ValidEffectiveness проверяет вердикт по фиксированному словарю
func ValidEffectiveness(e Effectiveness) bool {
	return e == EffectivenessEffective || e == EffectivenessIneffective
}

// Границы оценки риска
const (
	RiskScoreMin = 1
	RiskScoreMax = 5
)

// QualityReview - обратная связь отдела качества по инциденту.
// На инцидент существует не более одной записи: повторная подача
// перезаписывает категоризацию, тип, риск и вердикт (latest wins).
// Reviewed выставляется только операцией подтверждения ревьюером.
type QualityReview struct {
	IncidentID     uuid.UUID     `json:"incident_id"`
	Categorization string        `json:"categorization"`
	Type           OVRType       `json:"type"`
	RiskScore      int           `json:"risk_score"`
	Effectiveness  Effectiveness `json:"effectiveness"`
	ReviewerID     int64         `json:"reviewer_id"`
	FeedbackGiven  bool          `json:"feedback_given"`
	SubmittedAt    *time.Time    `json:"submitted_at,omitempty"`
	Reviewed       bool          `json:"reviewed"`
	ReviewedAt     *time.Time    `json:"reviewed_at,omitempty"`
	ReviewedBy     *int64        `json:"reviewed_by,omitempty"`
}
