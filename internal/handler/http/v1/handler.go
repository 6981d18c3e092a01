package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alnas-hms/ovr-system/internal/models"
	"github.com/alnas-hms/ovr-system/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	incidentService   service.IncidentService
	departmentService service.DepartmentService
	authService       service.AuthService
	userService       service.UserService
	logger            *logrus.Logger
	validate          *validator.Validate
}

func NewHandler(incidentService service.IncidentService, departmentService service.DepartmentService, authService service.AuthService, userService service.UserService, logger *logrus.Logger) *Handler {
	return &Handler{
		incidentService:   incidentService,
		departmentService: departmentService,
		authService:       authService,
		userService:       userService,
		logger:            logger,
		validate:          validator.New(),
	}
}

// respondError переводит ошибки домена в HTTP-статусы:
// валидация - 400, авторизация - 403, не найдено - 404, предусловие - 409
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	var preconditionErr *models.PreconditionError

	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Request rejected by validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, models.ErrNotAuthorized):
		log.WithError(err).Warn("Request rejected by authorization")
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized for this operation"})
	case errors.Is(err, models.ErrIncidentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
	case errors.Is(err, models.ErrDepartmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "department not found"})
	case errors.Is(err, models.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.As(err, &preconditionErr):
		log.WithError(err).Warn("Request rejected by workflow precondition")
		c.JSON(http.StatusConflict, gin.H{"error": preconditionErr.Error()})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func incidentIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident id"})
		return uuid.Nil, false
	}
	return id, true
}

// @Summary Log in
// @Description Exchange username and password for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session, err := h.authService.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		if errors.Is(err, models.ErrUserBlocked) {
			c.JSON(http.StatusForbidden, gin.H{"error": "user account is blocked"})
			return
		}
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:    session.Token,
		UserID:   session.UserID,
		FullName: session.FullName,
		Roles:    session.Roles,
	})
}

// @Summary Log out
// @Description Invalidate the current session token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")
	session := sessionFromContext(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "session token required"})
		return
	}
	if err := h.authService.Logout(c.Request.Context(), session.Token); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Submit an incident report
// @Description Submit a new occurrence report. Open to any hospital staff member, no session required.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body SubmitIncidentRequest true "Incident submission"
// @Success 201 {object} SubmitIncidentResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [post]
func (h *Handler) submitIncident(c *gin.Context) {
	var input SubmitIncidentRequest
	log := h.logger.WithField("method", "submitIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sub, err := toSubmission(&input)
	if err != nil {
		respondError(c, log, err)
		return
	}

	id, err := h.incidentService.SubmitIncident(c.Request.Context(), sub)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, SubmitIncidentResponse{ID: id.String()})
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents filtered by department, status, responded flag and date range
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param department_id query int false "Filter by assigned department"
// @Param status query string false "Filter by status" Enums(New, Assigned, Pending, Done)
// @Param responded query bool false "Filter by responded flag"
// @Param from query string false "Incident date lower bound (YYYY-MM-DD)"
// @Param to query string false "Incident date upper bound (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} IncidentSummaryDTO
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	var filter models.IncidentFilter
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	if raw := c.Query("department_id"); raw != "" {
		deptID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid department_id"})
			return
		}
		filter.DepartmentID = &deptID
	}
	if raw := c.Query("status"); raw != "" {
		status, valid := models.ParseStatus(raw)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("responded"); raw != "" {
		responded, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responded flag"})
			return
		}
		filter.Responded = &responded
	}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
			return
		}
		filter.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(dateLayout, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
			return
		}
		filter.To = &to
	}

	incidents, err := h.incidentService.ListIncidents(c.Request.Context(), filter)
	if err != nil {
		respondError(c, log, err)
		return
	}

	result := make([]IncidentSummaryDTO, 0, len(incidents))
	for _, inc := range incidents {
		result = append(result, toSummaryDTO(inc))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Get incident details
// @Description Get the full incident view: reporter, affected individuals, assignments, responses, quality review and the computed next workflow action
// @Tags Incidents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentViewDTO
// @Failure 400 {object} ErrorResponse "Invalid incident id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	log := h.logger.WithField("method", "getIncident")
	id, ok := incidentIDParam(c)
	if !ok {
		return
	}

	view, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toViewDTO(view))
}

// @Summary Assign a department to an incident
// @Description Route the incident to a responsible department. Quality department only. Assigning an already assigned department is a no-op on the link but still moves the incident to Assigned.
// @Tags Workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param assignment body AssignRequest true "Assignment request"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 404 {object} ErrorResponse "Incident or department not found"
// @Failure 409 {object} ErrorResponse "Incident is closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/assign [post]
func (h *Handler) assignDepartment(c *gin.Context) {
	log := h.logger.WithField("method", "assignDepartment")
	id, ok := incidentIDParam(c)
	if !ok {
		return
	}

	var input AssignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := h.incidentService.AssignDepartment(c.Request.Context(), id, input.DepartmentID, sessionFromContext(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Record a department response
// @Description Record the assigned department's reasons, corrective action and due date. Requires an existing assignment; a repeated response overwrites the previous one. The department defaults to the caller's own; quality department users may pass department_id to respond on behalf of another department.
// @Tags Workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param response body DepartmentResponseRequest true "Department response"
// @Success 200 {object} DepartmentResponseResult
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Responding on behalf of another department"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 409 {object} ErrorResponse "Department is not assigned or incident is closed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/response [put]
func (h *Handler) recordResponse(c *gin.Context) {
	log := h.logger.WithField("method", "recordResponse")
	id, ok := incidentIDParam(c)
	if !ok {
		return
	}

	var input DepartmentResponseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dueDate, err := time.Parse(dateLayout, input.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "due_date must be in YYYY-MM-DD format"})
		return
	}

	session := sessionFromContext(c)
	departmentID := session.DepartmentID
	if input.DepartmentID != nil {
		departmentID = *input.DepartmentID
	}
	resp := &models.DepartmentResponse{
		IncidentID:       id,
		DepartmentID:     departmentID,
		Reason:           input.Reason,
		CorrectiveAction: input.CorrectiveAction,
		DueDate:          dueDate,
	}

	respID, err := h.incidentService.RecordResponse(c.Request.Context(), resp, session)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DepartmentResponseResult{ID: respID.String()})
}

// @Summary Submit quality feedback
// @Description Record the quality department's categorization, event type, risk scoring and effectiveness verdict. Requires at least one department response; a repeated submission overwrites the previous one, leaving an existing review confirmation in place.
// @Tags Workflow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param feedback body FeedbackRequest true "Quality feedback"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid request or unknown vocabulary value"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 409 {object} ErrorResponse "No department has responded yet"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/feedback [put]
func (h *Handler) submitFeedback(c *gin.Context) {
	log := h.logger.WithField("method", "submitFeedback")
	id, ok := incidentIDParam(c)
	if !ok {
		return
	}

	var input FeedbackRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := &models.QualityReview{
		IncidentID:     id,
		Categorization: input.Categorization,
		Type:           models.OVRType(input.Type),
		RiskScore:      input.RiskScoring,
		Effectiveness:  models.Effectiveness(input.Effectiveness),
	}

	if err := h.incidentService.SubmitFeedback(c.Request.Context(), review, sessionFromContext(c)); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Review quality feedback
// @Description Confirm the submitted quality feedback. Reviewer role only; feedback must exist and not be reviewed yet.
// @Tags Workflow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid incident id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a reviewer"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 409 {object} ErrorResponse "Feedback missing or already reviewed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/review [post]
func (h *Handler) reviewIncident(c *gin.Context) {
	log := h.logger.WithField("method", "reviewIncident")
	id, ok := incidentIDParam(c)
	if !ok {
		return
	}

	if err := h.incidentService.ReviewIncident(c.Request.Context(), id, sessionFromContext(c)); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Close an incident
// @Description Move the incident to the terminal Done status. Quality department only; feedback must be reviewed first. Closing is irreversible.
// @Tags Workflow
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid incident id"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 404 {object} ErrorResponse "Incident not found"
// @Failure 409 {object} ErrorResponse "Feedback has not been reviewed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /incidents/{id}/close [post]
func (h *Handler) closeIncident(c *gin.Context) {
	log := h.logger.WithField("method", "closeIncident")
	id, ok := incidentIDParam(c)
	if !ok {
		return
	}

	if err := h.incidentService.CloseIncident(c.Request.Context(), id, sessionFromContext(c)); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create a department
// @Description Add a department to the routing directory. Quality department only.
// @Tags Departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param department body CreateDepartmentRequest true "Department"
// @Success 201 {object} DepartmentDTO
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /departments [post]
func (h *Handler) createDepartment(c *gin.Context) {
	log := h.logger.WithField("method", "createDepartment")

	var input CreateDepartmentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dept, err := h.departmentService.CreateDepartment(c.Request.Context(), input.Name, sessionFromContext(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, DepartmentDTO{ID: dept.ID, Name: dept.Name})
}

// @Summary Get the department directory
// @Tags Departments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} DepartmentDTO
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /departments [get]
func (h *Handler) listDepartments(c *gin.Context) {
	log := h.logger.WithField("method", "listDepartments")

	departments, err := h.departmentService.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}

	result := make([]DepartmentDTO, 0, len(departments))
	for _, dept := range departments {
		result = append(result, DepartmentDTO{ID: dept.ID, Name: dept.Name})
	}
	c.JSON(http.StatusOK, result)
}

func toUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:           user.ID,
		Username:     user.Username,
		FullName:     user.FullName,
		Title:        user.Title,
		DepartmentID: user.DepartmentID,
		Roles:        user.Roles,
		Blocked:      user.Blocked,
	}
}

// @Summary Create a user account
// @Description Create a staff account with department, roles and password. Quality department only.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body CreateUserRequest true "User account"
// @Success 201 {object} UserDTO
// @Failure 400 {object} ErrorResponse "Invalid request or username taken"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [post]
func (h *Handler) createUser(c *gin.Context) {
	log := h.logger.WithField("method", "createUser")

	var input CreateUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		Username:     input.Username,
		FullName:     input.FullName,
		Title:        input.Title,
		DepartmentID: input.DepartmentID,
		Roles:        input.Roles,
	}
	created, err := h.userService.CreateUser(c.Request.Context(), user, input.Password, sessionFromContext(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toUserDTO(created))
}

// @Summary Get all user accounts
// @Description List staff accounts. Quality department only.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserDTO
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")

	users, err := h.userService.ListUsers(c.Request.Context(), sessionFromContext(c))
	if err != nil {
		respondError(c, log, err)
		return
	}

	result := make([]UserDTO, 0, len(users))
	for _, user := range users {
		result = append(result, toUserDTO(user))
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Delete a user account
// @Description Remove a staff account. Quality department only; own account cannot be deleted.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid user id or own account"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	log := h.logger.WithField("method", "deleteUser")

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID, sessionFromContext(c)); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Block or unblock a user account
// @Description Toggle the blocked state of a staff account. A blocked account keeps its data but cannot log in. Quality department only; own account cannot be blocked.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param state body BlockUserRequest true "Blocked state"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invalid request or own account"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Not a quality department user"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/block [put]
func (h *Handler) setUserBlocked(c *gin.Context) {
	log := h.logger.WithField("method", "setUserBlocked")

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var input BlockUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.userService.SetBlocked(c.Request.Context(), userID, input.Blocked, sessionFromContext(c)); err != nil {
		respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
