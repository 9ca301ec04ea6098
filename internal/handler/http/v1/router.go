package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Прием показаний и статуса устройства
	loc := api.Group("/location")
	{
		loc.POST("/fix", h.pushFix)
		loc.POST("/state", h.setDeviceState)
	}

	// Принудительные синхронизация и детекция
	api.POST("/sync/now", h.syncNow)
	api.POST("/detect/now", h.checkNow)

	// Статусная поверхность для UI
	api.GET("/status", h.getStatus)
	api.GET("/nearby", h.getNearby)
	api.DELETE("/status/error", h.clearError)

	// Управление трансляцией
	api.PUT("/broadcast", h.setBroadcasting)

	// Подтверждение алертов со стороны UI
	api.POST("/alerts/:id/ack", h.acknowledgeAlert)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
