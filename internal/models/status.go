package models

// Status - явное состояние жизненного цикла инцидента.
// New -> Assigned -> Pending -> Done; Assigned и Pending могут чередоваться:
// новое назначение возвращает инцидент в Assigned, ответ отдела - в Pending.
type Status string

const (
	StatusNew      Status = "New"
	StatusAssigned Status = "Assigned"
	StatusPending  Status = "Pending"
	StatusDone     Status = "Done"
)

// ParseStatus возвращает статус по строке фильтра
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusNew, StatusAssigned, StatusPending, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Terminal сообщает, является ли статус терминальным
func (s Status) Terminal() bool {
	return s == StatusDone
}

// GuardAssign проверяет допустимость назначения отдела
func GuardAssign(status Status) error {
	if status.Terminal() {
		return &PreconditionError{Precondition: "incident is closed"}
	}
	return nil
}

// GuardRespond проверяет допустимость ответа отдела.
// assigned - существует ли назначение для пары (инцидент, отдел).
func GuardRespond(status Status, assigned bool) error {
	if status.Terminal() {
		return &PreconditionError{Precondition: "incident is closed"}
	}
	if !assigned {
		return &PreconditionError{Precondition: "department is not assigned to this incident"}
	}
	return nil
}

// GuardFeedback проверяет допустимость обратной связи качества:
// хотя бы один отдел уже ответил, инцидент не закрыт
func GuardFeedback(status Status, responded bool) error {
	if status.Terminal() {
		return &PreconditionError{Precondition: "incident is closed"}
	}
	if status != StatusPending || !responded {
		return &PreconditionError{Precondition: "no department has responded yet"}
	}
	return nil
}

// GuardReview проверяет допустимость подтверждения обратной связи ревьюером
func GuardReview(status Status, feedbackGiven, reviewed bool) error {
	if status.Terminal() {
		return &PreconditionError{Precondition: "incident is closed"}
	}
	if !feedbackGiven {
		return &PreconditionError{Precondition: "quality feedback has not been submitted"}
	}
	if reviewed {
		return &PreconditionError{Precondition: "feedback is already reviewed"}
	}
	return nil
}

// GuardClose проверяет допустимость закрытия: обратная связь дана и подтверждена
func GuardClose(status Status, feedbackGiven, reviewed bool) error {
	if status.Terminal() {
		return &PreconditionError{Precondition: "incident is already closed"}
	}
	if !feedbackGiven {
		return &PreconditionError{Precondition: "quality feedback has not been submitted"}
	}
	if !reviewed {
		return &PreconditionError{Precondition: "feedback has not been reviewed"}
	}
	return nil
}

// NextAction - вычисленное следующее допустимое действие по инциденту.
// Единственный источник истины для вызывающих сторон вместо разрозненных флагов.
type NextAction string

const (
	NextActionAssign   NextAction = "assign"
	NextActionRespond  NextAction = "respond"
	NextActionFeedback NextAction = "feedback"
	NextActionReview   NextAction = "review"
	NextActionClose    NextAction = "close"
	NextActionNone     NextAction = "none"
)

// ComputeNextAction проецирует граф сущностей инцидента в следующее действие
func (v *IncidentView) ComputeNextAction() NextAction {
	switch {
	case v.Incident.Status.Terminal():
		return NextActionNone
	case v.Incident.Status == StatusNew:
		return NextActionAssign
	case v.Incident.Status == StatusAssigned:
		return NextActionRespond
	case v.Review == nil || !v.Review.FeedbackGiven:
		return NextActionFeedback
	case !v.Review.Reviewed:
		return NextActionReview
	default:
		return NextActionClose
	}
}

// ComputeAllResponded сообщает, ответили ли все назначенные отделы.
// Отлично от флага Incident.Responded, который означает "ответил хотя бы один".
func (v *IncidentView) ComputeAllResponded() bool {
	if len(v.Assignments) == 0 {
		return false
	}
	for _, a := range v.Assignments {
		if !a.Responded {
			return false
		}
	}
	return true
}
