package v1

import (
	"github.com/alnas-hms/ovr-system/internal/identity"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, sessions identity.Store, log *logrus.Logger) {
	// Подача инцидента открыта любому сотруднику, сессия не требуется
	api.POST("/login", h.login)
	api.POST("/incidents", h.submitIncident)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", SessionAuthMiddleware(sessions, log))
	{
		protected.POST("/logout", h.logout)

		incidents := protected.Group("/incidents")
		{
			incidents.GET("", h.listIncidents)
			incidents.GET("/:id", h.getIncident)

			// Шаги рабочего процесса
			incidents.POST("/:id/assign", h.assignDepartment)
			incidents.PUT("/:id/response", h.recordResponse)
			incidents.PUT("/:id/feedback", h.submitFeedback)
			incidents.POST("/:id/review", h.reviewIncident)
			incidents.POST("/:id/close", h.closeIncident)
		}

		departments := protected.Group("/departments")
		{
			departments.POST("", h.createDepartment)
			departments.GET("", h.listDepartments)
		}

		// Администрирование учетных записей
		users := protected.Group("/users")
		{
			users.POST("", h.createUser)
			users.GET("", h.listUsers)
			users.DELETE("/:id", h.deleteUser)
			users.PUT("/:id/block", h.setUserBlocked)
		}
	}
}
