package v1

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alnas-hms/ovr-system/internal/identity"
	identity_mocks "github.com/alnas-hms/ovr-system/internal/identity/mocks"
	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/alnas-hms/ovr-system/internal/service/mocks"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "test-session-token"

type testEnv struct {
	incidentService   *mocks.MockIncidentService
	departmentService *mocks.MockDepartmentService
	authService       *mocks.MockAuthService
	userService       *mocks.MockUserService
	sessions          *identity_mocks.MockStore
	router            *gin.Engine
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) *testEnv {
	ctrl := gomock.NewController(t)
	env := &testEnv{
		incidentService:   mocks.NewMockIncidentService(ctrl),
		departmentService: mocks.NewMockDepartmentService(ctrl),
		authService:       mocks.NewMockAuthService(ctrl),
		userService:       mocks.NewMockUserService(ctrl),
		sessions:          identity_mocks.NewMockStore(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	handler := NewHandler(env.incidentService, env.departmentService, env.authService, env.userService, logger)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	env.router = gin.New()
	api := env.router.Group("/api/v1")
	handler.RegisterRoutes(api, env.sessions, logger)

	return env
}

// expectSession настраивает успешную проверку тестового токена
func (env *testEnv) expectSession(session *identity.Session) {
	session.Token = testToken
	env.sessions.EXPECT().
		Get(gomock.Any(), testToken).
		Return(session, nil).
		AnyTimes()
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func authHeader() map[string]string {
	return map[string]string{"Authorization": "Bearer " + testToken}
}

func marshalBody(t *testing.T, v any) *bytes.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func qualitySession() *identity.Session {
	return &identity.Session{
		UserID:       7,
		Username:     "quality.lead",
		DepartmentID: 1,
		Roles:        []string{identity.RoleQuality},
	}
}

func departmentSession(deptID int64) *identity.Session {
	return &identity.Session{
		UserID:       21,
		Username:     "nursing.head",
		DepartmentID: deptID,
	}
}

func TestSubmitIncident_Success(t *testing.T) {
	env := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := SubmitIncidentRequest{
		ReporterName:  "Aisha Al-Harbi",
		ReporterTitle: "Staff Nurse",
		IncidentDate:  "2026-08-12",
		IncidentTime:  "14:35",
		Location:      "Ward 3, Room 12",
		Description:   "Patient slipped near the bed",
		Patient:       true,
		PatientName:   "Omar K.",
		MRN:           "MRN-104233",
	}

	env.incidentService.EXPECT().
		SubmitIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, sub *models.IncidentSubmission) (uuid.UUID, error) {
			assert.Equal(t, "Aisha Al-Harbi", sub.Reporter.Name)
			require.Len(t, sub.Individuals, 1)
			assert.Equal(t, models.IndividualPatient, sub.Individuals[0].Kind)
			assert.Equal(t, "MRN-104233", sub.Individuals[0].MRN)
			return incidentID, nil
		})

	// Подача инцидента не требует сессии
	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents", marshalBody(t, reqBody))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp SubmitIncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID.String(), resp.ID)
}

func TestSubmitIncident_BadDateFormat(t *testing.T) {
	env := newTestHandler(t)
	reqBody := SubmitIncidentRequest{
		ReporterName: "Aisha Al-Harbi",
		IncidentDate: "12/08/2026",
		IncidentTime: "14:35",
		Location:     "Ward 3",
		Description:  "x",
	}

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents", marshalBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitIncident_MissingRequiredField(t *testing.T) {
	env := newTestHandler(t)
	reqBody := SubmitIncidentRequest{
		ReporterName: "Aisha Al-Harbi",
		IncidentDate: "2026-08-12",
		IncidentTime: "14:35",
		// Location отсутствует
		Description: "x",
	}

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents", marshalBody(t, reqBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_RequiresSession(t *testing.T) {
	env := newTestHandler(t)

	// Без заголовка Authorization
	w := makeRequest(env.router, http.MethodGet, "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListIncidents_UnknownToken(t *testing.T) {
	env := newTestHandler(t)
	env.sessions.EXPECT().
		Get(gomock.Any(), "stale-token").
		Return(nil, identity.ErrSessionNotFound)

	w := makeRequest(env.router, http.MethodGet, "/api/v1/incidents", nil,
		map[string]string{"Authorization": "Bearer stale-token"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	summaries := []*models.IncidentSummary{
		{
			ID:           uuid.New(),
			IncidentDate: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			Location:     "Ward 3",
			ReporterName: "Aisha Al-Harbi",
			Status:       models.StatusPending,
			Responded:    true,
		},
	}

	env.incidentService.EXPECT().
		ListIncidents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, f models.IncidentFilter) ([]*models.IncidentSummary, error) {
			require.NotNil(t, f.Status)
			assert.Equal(t, models.StatusPending, *f.Status)
			require.NotNil(t, f.DepartmentID)
			assert.Equal(t, int64(4), *f.DepartmentID)
			return summaries, nil
		})

	w := makeRequest(env.router, http.MethodGet, "/api/v1/incidents?status=Pending&department_id=4", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentSummaryDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "2026-08-12", resp[0].IncidentDate)
	assert.Equal(t, "Pending", resp[0].Status)
}

func TestListIncidents_InvalidStatusFilter(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	w := makeRequest(env.router, http.MethodGet, "/api/v1/incidents?status=Closed", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	view := &models.IncidentView{
		Incident: models.Incident{
			ID:           incidentID,
			IncidentDate: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC),
			IncidentTime: "14:35",
			Location:     "Ward 3",
			Description:  "Patient slipped near the bed",
			Status:       models.StatusAssigned,
		},
		Reporter: models.Reporter{Name: "Aisha Al-Harbi"},
		Assignments: []models.DepartmentAssignment{
			{DepartmentID: 4, DepartmentName: "Nursing"},
		},
	}
	view.NextAction = view.ComputeNextAction()

	env.incidentService.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(view, nil)

	w := makeRequest(env.router, http.MethodGet, "/api/v1/incidents/"+incidentID.String(), nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentViewDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "respond", resp.NextAction)
	require.Len(t, resp.Assignments, 1)
	assert.Equal(t, "Nursing", resp.Assignments[0].DepartmentName)
}

func TestGetIncident_NotFound(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(nil, models.ErrIncidentNotFound)

	w := makeRequest(env.router, http.MethodGet, "/api/v1/incidents/"+incidentID.String(), nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncident_InvalidID(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	w := makeRequest(env.router, http.MethodGet, "/api/v1/incidents/not-a-uuid", nil, authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssignDepartment_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		AssignDepartment(gomock.Any(), incidentID, int64(4), gomock.Any()).
		Return(nil)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/assign",
		marshalBody(t, AssignRequest{DepartmentID: 4}), authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAssignDepartment_Forbidden(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(departmentSession(4))
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		AssignDepartment(gomock.Any(), incidentID, int64(4), gomock.Any()).
		Return(models.ErrNotAuthorized)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/assign",
		marshalBody(t, AssignRequest{DepartmentID: 4}), authHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAssignDepartment_ClosedIncidentConflict(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		AssignDepartment(gomock.Any(), incidentID, int64(4), gomock.Any()).
		Return(&models.PreconditionError{Precondition: "incident is closed"})

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/assign",
		marshalBody(t, AssignRequest{DepartmentID: 4}), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "incident is closed")
}

func TestRecordResponse_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(departmentSession(4))
	incidentID := uuid.New()
	responseID := uuid.New()

	env.incidentService.EXPECT().
		RecordResponse(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, resp *models.DepartmentResponse, _ *identity.Session) (uuid.UUID, error) {
			// Без department_id в теле отдел берется из сессии
			assert.Equal(t, int64(4), resp.DepartmentID)
			assert.Equal(t, incidentID, resp.IncidentID)
			assert.Equal(t, "2026-09-15", resp.DueDate.Format("2006-01-02"))
			return responseID, nil
		})

	w := makeRequest(env.router, http.MethodPut, "/api/v1/incidents/"+incidentID.String()+"/response",
		marshalBody(t, DepartmentResponseRequest{
			Reason:           "Wet floor was not signposted",
			CorrectiveAction: "Signage added",
			DueDate:          "2026-09-15",
		}), authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp DepartmentResponseResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, responseID.String(), resp.ID)
}

func TestRecordResponse_NotAssignedConflict(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(departmentSession(4))
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		RecordResponse(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, &models.PreconditionError{Precondition: "department is not assigned to this incident"})

	w := makeRequest(env.router, http.MethodPut, "/api/v1/incidents/"+incidentID.String()+"/response",
		marshalBody(t, DepartmentResponseRequest{
			Reason:           "x",
			CorrectiveAction: "y",
			DueDate:          "2026-09-15",
		}), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not assigned")
}

func TestRecordResponse_ExplicitDepartmentReachesService(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()
	responseID := uuid.New()
	deptID := int64(9)

	env.incidentService.EXPECT().
		RecordResponse(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, resp *models.DepartmentResponse, session *identity.Session) (uuid.UUID, error) {
			// Явный department_id из тела имеет приоритет над отделом сессии
			assert.Equal(t, deptID, resp.DepartmentID)
			assert.NotEqual(t, session.DepartmentID, resp.DepartmentID)
			return responseID, nil
		})

	w := makeRequest(env.router, http.MethodPut, "/api/v1/incidents/"+incidentID.String()+"/response",
		marshalBody(t, DepartmentResponseRequest{
			DepartmentID:     &deptID,
			Reason:           "Handover checklist was skipped",
			CorrectiveAction: "Checklist reinstated and audited weekly",
			DueDate:          "2026-09-20",
		}), authHeader())

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRecordResponse_ExplicitDepartmentForbiddenForOthers(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(departmentSession(4))
	incidentID := uuid.New()
	deptID := int64(9)

	env.incidentService.EXPECT().
		RecordResponse(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, models.ErrNotAuthorized)

	w := makeRequest(env.router, http.MethodPut, "/api/v1/incidents/"+incidentID.String()+"/response",
		marshalBody(t, DepartmentResponseRequest{
			DepartmentID:     &deptID,
			Reason:           "x",
			CorrectiveAction: "y",
			DueDate:          "2026-09-20",
		}), authHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubmitFeedback_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		SubmitFeedback(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, review *models.QualityReview, _ *identity.Session) error {
			assert.Equal(t, incidentID, review.IncidentID)
			assert.Equal(t, models.TypeNearMiss, review.Type)
			assert.Equal(t, 3, review.RiskScore)
			return nil
		})

	w := makeRequest(env.router, http.MethodPut, "/api/v1/incidents/"+incidentID.String()+"/feedback",
		marshalBody(t, FeedbackRequest{
			Categorization: "Patient Care",
			Type:           "Near Miss Events",
			RiskScoring:    3,
			Effectiveness:  "Effective (OVR Closed)",
		}), authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSubmitFeedback_RiskOutOfRange(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	// Оценка риска вне 1..5 отклоняется еще валидатором запроса
	w := makeRequest(env.router, http.MethodPut, "/api/v1/incidents/"+incidentID.String()+"/feedback",
		marshalBody(t, FeedbackRequest{
			Categorization: "Patient Care",
			Type:           "Near Miss Events",
			RiskScoring:    9,
			Effectiveness:  "Ineffective",
		}), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitFeedback_NoResponseYetConflict(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		SubmitFeedback(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.PreconditionError{Precondition: "no department has responded yet"})

	w := makeRequest(env.router, http.MethodPut, "/api/v1/incidents/"+incidentID.String()+"/feedback",
		marshalBody(t, FeedbackRequest{
			Categorization: "Patient Care",
			Type:           "Adverse Events",
			RiskScoring:    4,
			Effectiveness:  "Ineffective",
		}), authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestReviewIncident_Success(t *testing.T) {
	env := newTestHandler(t)
	session := qualitySession()
	session.Roles = append(session.Roles, identity.RoleReviewer)
	env.expectSession(session)
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		ReviewIncident(gomock.Any(), incidentID, gomock.Any()).
		Return(nil)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/review", nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReviewIncident_AlreadyReviewedConflict(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		ReviewIncident(gomock.Any(), incidentID, gomock.Any()).
		Return(&models.PreconditionError{Precondition: "feedback is already reviewed"})

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/review", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCloseIncident_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		CloseIncident(gomock.Any(), incidentID, gomock.Any()).
		Return(nil)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/close", nil, authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCloseIncident_UnreviewedConflict(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())
	incidentID := uuid.New()

	env.incidentService.EXPECT().
		CloseIncident(gomock.Any(), incidentID, gomock.Any()).
		Return(&models.PreconditionError{Precondition: "feedback has not been reviewed"})

	w := makeRequest(env.router, http.MethodPost, "/api/v1/incidents/"+incidentID.String()+"/close", nil, authHeader())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "has not been reviewed")
}

func TestCreateDepartment_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	env.departmentService.EXPECT().
		CreateDepartment(gomock.Any(), "Pharmacy", gomock.Any()).
		Return(&models.Department{ID: 5, Name: "Pharmacy"}, nil)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/departments",
		marshalBody(t, CreateDepartmentRequest{Name: "Pharmacy"}), authHeader())

	require.Equal(t, http.StatusCreated, w.Code)
	var resp DepartmentDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.ID)
}

func TestCreateUser_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	env.userService.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), "s3cret", gomock.Any()).
		DoAndReturn(func(_ any, user *models.User, _ string, _ *identity.Session) (*models.User, error) {
			assert.Equal(t, "lab.tech", user.Username)
			assert.Equal(t, int64(6), user.DepartmentID)
			created := *user
			created.ID = 42
			return &created, nil
		})

	w := makeRequest(env.router, http.MethodPost, "/api/v1/users",
		marshalBody(t, CreateUserRequest{
			Username:     "lab.tech",
			Password:     "s3cret",
			FullName:     "Reem Al-Otaibi",
			Title:        "Lab Technician",
			DepartmentID: 6,
		}), authHeader())

	require.Equal(t, http.StatusCreated, w.Code)
	var resp UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "lab.tech", resp.Username)
	// Хеш пароля не попадает в ответ
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCreateUser_ShortPassword(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	// Пароль короче шести символов отклоняется валидатором запроса
	w := makeRequest(env.router, http.MethodPost, "/api/v1/users",
		marshalBody(t, CreateUserRequest{
			Username:     "lab.tech",
			Password:     "12345",
			FullName:     "Reem Al-Otaibi",
			DepartmentID: 6,
		}), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUser_Forbidden(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(departmentSession(4))

	env.userService.EXPECT().
		CreateUser(gomock.Any(), gomock.Any(), "s3cret", gomock.Any()).
		Return(nil, models.ErrNotAuthorized)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/users",
		marshalBody(t, CreateUserRequest{
			Username:     "lab.tech",
			Password:     "s3cret",
			FullName:     "Reem Al-Otaibi",
			DepartmentID: 6,
		}), authHeader())

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListUsers_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	env.userService.EXPECT().
		ListUsers(gomock.Any(), gomock.Any()).
		Return([]*models.User{
			{ID: 7, Username: "quality.lead", FullName: "Huda Al-Qahtani", DepartmentID: 1, Roles: []string{identity.RoleQuality}},
			{ID: 42, Username: "lab.tech", FullName: "Reem Al-Otaibi", DepartmentID: 6, Blocked: true},
		}, nil)

	w := makeRequest(env.router, http.MethodGet, "/api/v1/users", nil, authHeader())

	require.Equal(t, http.StatusOK, w.Code)
	var resp []UserDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.True(t, resp[1].Blocked)
}

func TestDeleteUser_NotFound(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	env.userService.EXPECT().
		DeleteUser(gomock.Any(), int64(99), gomock.Any()).
		Return(models.ErrUserNotFound)

	w := makeRequest(env.router, http.MethodDelete, "/api/v1/users/99", nil, authHeader())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetUserBlocked_Success(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	env.userService.EXPECT().
		SetBlocked(gomock.Any(), int64(42), true, gomock.Any()).
		Return(nil)

	w := makeRequest(env.router, http.MethodPut, "/api/v1/users/42/block",
		marshalBody(t, BlockUserRequest{Blocked: true}), authHeader())

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetUserBlocked_InvalidID(t *testing.T) {
	env := newTestHandler(t)
	env.expectSession(qualitySession())

	w := makeRequest(env.router, http.MethodPut, "/api/v1/users/abc/block",
		marshalBody(t, BlockUserRequest{Blocked: true}), authHeader())

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_Success(t *testing.T) {
	env := newTestHandler(t)

	env.authService.EXPECT().
		Login(gomock.Any(), "quality.lead", "s3cret").
		Return(&identity.Session{
			Token:    "fresh-token",
			UserID:   7,
			FullName: "Huda Al-Qahtani",
			Roles:    []string{identity.RoleQuality},
		}, nil)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/login",
		marshalBody(t, LoginRequest{Username: "quality.lead", Password: "s3cret"}))

	require.Equal(t, http.StatusOK, w.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "fresh-token", resp.Token)
	assert.Equal(t, int64(7), resp.UserID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestHandler(t)

	env.authService.EXPECT().
		Login(gomock.Any(), "quality.lead", "wrong").
		Return(nil, models.ErrInvalidCredentials)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/login",
		marshalBody(t, LoginRequest{Username: "quality.lead", Password: "wrong"}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_BlockedAccount(t *testing.T) {
	env := newTestHandler(t)

	env.authService.EXPECT().
		Login(gomock.Any(), "lab.tech", "s3cret").
		Return(nil, models.ErrUserBlocked)

	w := makeRequest(env.router, http.MethodPost, "/api/v1/login",
		marshalBody(t, LoginRequest{Username: "lab.tech", Password: "s3cret"}))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "blocked")
}

func TestHealthCheck(t *testing.T) {
	env := newTestHandler(t)

	w := makeRequest(env.router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
