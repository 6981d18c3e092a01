package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"New", "Assigned", "Pending", "Done"} {
		status, ok := ParseStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, Status(valid), status)
	}

	_, ok := ParseStatus("Closed")
	assert.False(t, ok)
	_, ok = ParseStatus("")
	assert.False(t, ok)
}

func TestGuardAssign(t *testing.T) {
	// Назначение допустимо в любом нетерминальном статусе
	assert.NoError(t, GuardAssign(StatusNew))
	assert.NoError(t, GuardAssign(StatusAssigned))
	assert.NoError(t, GuardAssign(StatusPending))

	err := GuardAssign(StatusDone)
	require.Error(t, err)
	assert.ErrorContains(t, err, "incident is closed")
}

func TestGuardRespond(t *testing.T) {
	assert.NoError(t, GuardRespond(StatusAssigned, true))
	assert.NoError(t, GuardRespond(StatusPending, true))

	// Без назначения ответ отклоняется с именем предусловия
	err := GuardRespond(StatusAssigned, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "department is not assigned")

	err = GuardRespond(StatusDone, true)
	require.Error(t, err)
	assert.ErrorContains(t, err, "incident is closed")
}

func TestGuardFeedback(t *testing.T) {
	assert.NoError(t, GuardFeedback(StatusPending, true))

	// Пока ни один отдел не ответил, обратная связь недопустима
	err := GuardFeedback(StatusAssigned, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "no department has responded")

	err = GuardFeedback(StatusNew, false)
	require.Error(t, err)

	err = GuardFeedback(StatusDone, true)
	require.Error(t, err)
	assert.ErrorContains(t, err, "incident is closed")
}

func TestGuardReview(t *testing.T) {
	assert.NoError(t, GuardReview(StatusPending, true, false))

	err := GuardReview(StatusPending, false, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "feedback has not been submitted")

	// Повторное подтверждение отклоняется
	err = GuardReview(StatusPending, true, true)
	require.Error(t, err)
	assert.ErrorContains(t, err, "already reviewed")

	err = GuardReview(StatusDone, true, false)
	require.Error(t, err)
}

func TestGuardClose(t *testing.T) {
	assert.NoError(t, GuardClose(StatusPending, true, true))

	err := GuardClose(StatusPending, true, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "feedback has not been reviewed")

	err = GuardClose(StatusPending, false, false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "feedback has not been submitted")

	// Повторное закрытие отклоняется
	err = GuardClose(StatusDone, true, true)
	require.Error(t, err)
	assert.ErrorContains(t, err, "already closed")
}

func TestComputeNextAction(t *testing.T) {
	tests := []struct {
		name     string
		view     IncidentView
		expected NextAction
	}{
		{
			name:     "новый инцидент ждет назначения",
			view:     IncidentView{Incident: Incident{Status: StatusNew}},
			expected: NextActionAssign,
		},
		{
			name:     "назначенный инцидент ждет ответа отдела",
			view:     IncidentView{Incident: Incident{Status: StatusAssigned}},
			expected: NextActionRespond,
		},
		{
			name:     "ответ получен, обратная связь не подана",
			view:     IncidentView{Incident: Incident{Status: StatusPending}},
			expected: NextActionFeedback,
		},
		{
			name: "обратная связь подана, ждет ревью",
			view: IncidentView{
				Incident: Incident{Status: StatusPending},
				Review:   &QualityReview{FeedbackGiven: true},
			},
			expected: NextActionReview,
		},
		{
			name: "ревью подтверждено, можно закрывать",
			view: IncidentView{
				Incident: Incident{Status: StatusPending},
				Review:   &QualityReview{FeedbackGiven: true, Reviewed: true},
			},
			expected: NextActionClose,
		},
		{
			name:     "закрытый инцидент действий не имеет",
			view:     IncidentView{Incident: Incident{Status: StatusDone}},
			expected: NextActionNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.ComputeNextAction())
		})
	}
}

func TestComputeAllResponded(t *testing.T) {
	// Без назначений "все ответили" не имеет смысла
	view := IncidentView{}
	assert.False(t, view.ComputeAllResponded())

	view.Assignments = []DepartmentAssignment{
		{DepartmentID: 1, Responded: true},
		{DepartmentID: 2, Responded: false},
	}
	assert.False(t, view.ComputeAllResponded())

	view.Assignments[1].Responded = true
	assert.True(t, view.ComputeAllResponded())
}
