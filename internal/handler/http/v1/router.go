package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1.
// Health-check доступен без API-ключа, остальные маршруты защищены.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup, auth gin.HandlerFunc) {
	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", auth)

	// Маршруты для работы с инцидентами
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.reportIncident)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/votes", h.voteIncident)
	}

	// Маршрут для обновления местоположения
	protected.POST("/location/update", h.updateLocation)

	// Маршруты для зон риска и оценки маршрутов
	protected.GET("/zones", h.listZones)
	protected.POST("/routes/score", h.scoreRoute)

	// Маршрут для статистики
	protected.GET("/stats", h.getStats)
}
