package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/proximity_alert_system/internal/config"
	"github.com/shenikar/proximity_alert_system/internal/location"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/shenikar/proximity_alert_system/internal/scheduler"
	"github.com/shenikar/proximity_alert_system/internal/service"
	"github.com/shenikar/proximity_alert_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockProximityService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockProximityService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(mockService, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, router
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

func TestPushFix_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FixRequest{
		Latitude:   55.7558,
		Longitude:  37.6173,
		CapturedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	mockService.EXPECT().
		OfferFix(gomock.Any()).
		Do(func(fix models.Fix) {
			assert.Equal(t, reqBody.Latitude, fix.Latitude)
			assert.Equal(t, reqBody.Longitude, fix.Longitude)
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/fix", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestPushFix_InvalidJSON(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().OfferFix(gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/location/fix", bytes.NewBufferString(`{"latitude": 55.0`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestPushFix_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FixRequest{ // Отсутствует CapturedAt
		Latitude:  55.7558,
		Longitude: 37.6173,
	}

	mockService.EXPECT().OfferFix(gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/fix", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'CapturedAt' failed on the 'required' tag")
}

func TestPushFix_OutOfRangeLatitude(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	reqBody := FixRequest{
		Latitude:   95.0, // Вне диапазона [-90, 90]
		Longitude:  37.6173,
		CapturedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	mockService.EXPECT().OfferFix(gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/fix", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Latitude' failed on the 'latitude' tag")
}

func TestSetDeviceState_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	granted := true
	enabled := true
	reqBody := DeviceStateRequest{
		PermissionGranted:  &granted,
		PositioningEnabled: &enabled,
		BackgroundMode:     true,
	}

	mockService.EXPECT().SetDeviceState(true, true, true).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/location/state", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetDeviceState_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetDeviceState(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Отсутствуют обязательные булевы поля
	w := makeRequest(router, "POST", "/api/v1/location/state", bytes.NewBufferString(`{"background_mode": true}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestSyncNow_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SyncNow(gomock.Any()).Return(nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sync/now", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncNow_NoLocationAvailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SyncNow(gomock.Any()).Return(fmt.Errorf("service: %w", location.ErrNoLocationAvailable)).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sync/now", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "no location available")
}

func TestSyncNow_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SyncNow(gomock.Any()).Return(errors.New("publish failed")).Times(1)

	w := makeRequest(router, "POST", "/api/v1/sync/now", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestCheckNow_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().CheckNow(gomock.Any()).Times(1)

	w := makeRequest(router, "POST", "/api/v1/detect/now", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStatus_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	lastSync := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockService.EXPECT().SyncStatus().Return(scheduler.Status{
		IsSyncing:        false,
		LastSyncTime:     lastSync,
		ActiveGroupCount: 2,
		Error:            "publish to group g1 failed: redis down",
	}).Times(1)
	mockService.EXPECT().DetectStatus().Return(service.DetectionView{
		IsDetecting: false,
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/status", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp StatusResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ActiveGroupCount)
	assert.Equal(t, lastSync, resp.LastSyncTime.UTC())
	assert.Contains(t, resp.SyncError, "redis down")
	assert.Empty(t, resp.DetectError)
}

func TestGetNearby_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	nearby := []models.ProximityCandidate{
		{RemoteUserID: "remote-1", GroupID: "g1", DistanceMeters: 25.0, Fix: models.Fix{Latitude: 55.0002, Longitude: 37.0}},
	}
	byDistance := append(nearby, models.ProximityCandidate{
		RemoteUserID: "remote-2", GroupID: "g1", DistanceMeters: 250.0, Fix: models.Fix{Latitude: 55.002, Longitude: 37.0},
	})

	mockService.EXPECT().DetectStatus().Return(service.DetectionView{
		Nearby:     nearby,
		ByDistance: byDistance,
	}).Times(1)

	w := makeRequest(router, "GET", "/api/v1/nearby", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp NearbyResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Nearby, 1)
	require.Len(t, resp.ByDistance, 2)
	assert.Equal(t, "remote-1", resp.Nearby[0].RemoteUserID)
	assert.Equal(t, 25.0, resp.Nearby[0].DistanceMeters)
	assert.Equal(t, "remote-2", resp.ByDistance[1].RemoteUserID)
}

func TestSetBroadcasting_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	broadcasting := true
	reqBody := BroadcastRequest{
		GroupID:      "g1",
		Broadcasting: &broadcasting,
	}

	mockService.EXPECT().SetBroadcasting(gomock.Any(), "g1", true).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/broadcast", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetBroadcasting_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().SetBroadcasting(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Отсутствует group_id
	w := makeRequest(router, "PUT", "/api/v1/broadcast", bytes.NewBufferString(`{"broadcasting": true}`), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'GroupID' failed on the 'required' tag")
}

func TestSetBroadcasting_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	broadcasting := false
	reqBody := BroadcastRequest{
		GroupID:      "g1",
		Broadcasting: &broadcasting,
	}

	mockService.EXPECT().SetBroadcasting(gomock.Any(), "g1", false).Return(errors.New("db down")).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", "/api/v1/broadcast", bytes.NewBuffer(bodyBytes), map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestClearError_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().ClearError().Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/status/error", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID := uuid.New()

	mockService.EXPECT().AcknowledgeAlert(gomock.Any(), alertID).Return(nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/ack", alertID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAcknowledgeAlert_InvalidID(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().AcknowledgeAlert(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/alerts/invalid-uuid/ack", nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid alert ID")
}

func TestAcknowledgeAlert_NotFound(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	alertID := uuid.New()

	mockService.EXPECT().AcknowledgeAlert(gomock.Any(), alertID).Return(errors.New("alert not found")).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/alerts/%s/ack", alertID.String()), nil, map[string]string{"X-API-Key": "test-api-key"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "alert not found")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
