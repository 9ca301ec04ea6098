package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/proximity_alert_system/internal/config"
	"github.com/shenikar/proximity_alert_system/internal/location"
	"github.com/shenikar/proximity_alert_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	proximityService service.ProximityService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(proximityService service.ProximityService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		proximityService: proximityService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Push a GPS fix
// @Description Push a single GPS fix from the device into the location source. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param fix body FixRequest true "GPS fix"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/fix [post]
func (h *Handler) pushFix(c *gin.Context) {
	var input FixRequest
	log := h.logger.WithField("method", "pushFix")

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

	h.proximityService.OfferFix(DTOToFixModel(input))
	c.Status(http.StatusAccepted)
}

// @Summary Update device positioning state
// @Description Update positioning permission/availability and foreground/background mode. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param state body DeviceStateRequest true "Device positioning state"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /location/state [post]
func (h *Handler) setDeviceState(c *gin.Context) {
	var input DeviceStateRequest
	log := h.logger.WithField("method", "setDeviceState")

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

	h.proximityService.SetDeviceState(*input.PermissionGranted, *input.PositioningEnabled, input.BackgroundMode)
	c.Status(http.StatusOK)
}

// @Summary Force an immediate location sync
// @Description Publish the current fix to all broadcast groups, bypassing throttle and distance gating. Requires API key.
// @Tags Sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "No location available"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sync/now [post]
func (h *Handler) syncNow(c *gin.Context) {
	log := h.logger.WithField("method", "syncNow")

	if err := h.proximityService.SyncNow(c.Request.Context()); err != nil {
		if errors.Is(err, location.ErrNoLocationAvailable) {
			c.JSON(http.StatusConflict, gin.H{"error": "no location available"})
			return
		}
		log.WithError(err).Error("Forced sync failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Force an immediate detection pass
// @Description Run a proximity detection pass on the last known fix and feed state. Requires API key.
// @Tags Detection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 "OK"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /detect/now [post]
func (h *Handler) checkNow(c *gin.Context) {
	h.proximityService.CheckNow(c.Request.Context())
	c.Status(http.StatusOK)
}

// @Summary Get sync and detection status
// @Description Get the current status surface for UI binding. Requires API key.
// @Tags Status
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /status [get]
func (h *Handler) getStatus(c *gin.Context) {
	syncSt := h.proximityService.SyncStatus()
	detectSt := h.proximityService.DetectStatus()

	c.JSON(http.StatusOK, StatusResponse{
		IsSyncing:        syncSt.IsSyncing,
		LastSyncTime:     syncSt.LastSyncTime,
		ActiveGroupCount: syncSt.ActiveGroupCount,
		SyncError:        syncSt.Error,
		IsDetecting:      detectSt.IsDetecting,
		DetectError:      detectSt.Error,
	})
}

// @Summary Get nearby members
// @Description Get members within the proximity radius and the full distance-sorted list. Requires API key.
// @Tags Detection
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} NearbyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /nearby [get]
func (h *Handler) getNearby(c *gin.Context) {
	view := h.proximityService.DetectStatus()
	c.JSON(http.StatusOK, NearbyResponse{
		Nearby:     CandidatesToResponses(view.Nearby),
		ByDistance: CandidatesToResponses(view.ByDistance),
	})
}

// @Summary Toggle broadcasting for a group
// @Description Enable or disable publishing the user's location for a group. Disabling marks the published location inactive. Requires API key.
// @Tags Sync
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param broadcast body BroadcastRequest true "Broadcast toggle request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /broadcast [put]
func (h *Handler) setBroadcasting(c *gin.Context) {
	var input BroadcastRequest
	log := h.logger.WithField("method", "setBroadcasting")

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

	if err := h.proximityService.SetBroadcasting(c.Request.Context(), input.GroupID, *input.Broadcasting); err != nil {
		log.WithError(err).Error("Failed to set broadcasting state")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Clear sticky errors
// @Description Clear sticky sync/detection errors. Requires API key.
// @Tags Status
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /status/error [delete]
func (h *Handler) clearError(c *gin.Context) {
	h.proximityService.ClearError()
	c.Status(http.StatusNoContent)
}

// @Summary Acknowledge an alert
// @Description Mark a fired proximity alert as acknowledged by the user. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert record ID"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id}/ack [post]
func (h *Handler) acknowledgeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "acknowledgeAlert").WithField("id", id)

	if err := h.proximityService.AcknowledgeAlert(c.Request.Context(), id); err != nil {
		log.WithError(err).Warn("Failed to acknowledge alert")
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
