package v1

import (
	"time"

	"github.com/shenikar/proximity_alert_system/internal/models"
)

// FixRequest DTO для показания GPS от устройства
// @Description DTO для показания GPS от устройства
type FixRequest struct {
	Latitude   float64   `json:"latitude" validate:"required,latitude"`
	Longitude  float64   `json:"longitude" validate:"required,longitude"`
	Accuracy   *float64  `json:"accuracy,omitempty" validate:"omitempty,gte=0"`
	Altitude   *float64  `json:"altitude,omitempty"`
	Heading    *float64  `json:"heading,omitempty" validate:"omitempty,gte=0,lt=360"`
	Speed      *float64  `json:"speed,omitempty" validate:"omitempty,gte=0"`
	CapturedAt time.Time `json:"captured_at" validate:"required"`
}

// DeviceStateRequest DTO для статуса позиционирования устройства
// @Description DTO для статуса позиционирования устройства
type DeviceStateRequest struct {
	PermissionGranted  *bool `json:"permission_granted" validate:"required"`
	PositioningEnabled *bool `json:"positioning_enabled" validate:"required"`
	BackgroundMode     bool  `json:"background_mode"`
}

// BroadcastRequest DTO для переключения трансляции в группе
// @Description DTO для переключения трансляции в группе
type BroadcastRequest struct {
	GroupID      string `json:"group_id" validate:"required"`
	Broadcasting *bool  `json:"broadcasting" validate:"required"`
}

// StatusResponse DTO статуса синхронизации и детекции
// @Description DTO статуса синхронизации и детекции
type StatusResponse struct {
	IsSyncing        bool      `json:"is_syncing"`
	LastSyncTime     time.Time `json:"last_sync_time"`
	ActiveGroupCount int       `json:"active_group_count"`
	SyncError        string    `json:"sync_error,omitempty"`
	IsDetecting      bool      `json:"is_detecting"`
	DetectError      string    `json:"detect_error,omitempty"`
}

// NearbyMemberResponse DTO одного участника в списке близости
// @Description DTO одного участника в списке близости
type NearbyMemberResponse struct {
	RemoteUserID   string  `json:"remote_user_id"`
	GroupID        string  `json:"group_id"`
	DistanceMeters float64 `json:"distance_meters"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
}

// NearbyResponse DTO представлений детектора
// @Description DTO представлений детектора
type NearbyResponse struct {
	Nearby     []NearbyMemberResponse `json:"nearby"`
	ByDistance []NearbyMemberResponse `json:"by_distance"`
}

// DTOToFixModel преобразует DTO показания в доменную модель
func DTOToFixModel(dto FixRequest) models.Fix {
	return models.Fix{
		Latitude:   dto.Latitude,
		Longitude:  dto.Longitude,
		Accuracy:   dto.Accuracy,
		Altitude:   dto.Altitude,
		Heading:    dto.Heading,
		Speed:      dto.Speed,
		CapturedAt: dto.CapturedAt,
	}
}

// CandidatesToResponses преобразует кандидатов детектора в DTO
func CandidatesToResponses(candidates []models.ProximityCandidate) []NearbyMemberResponse {
	responses := make([]NearbyMemberResponse, len(candidates))
	for i, c := range candidates {
		responses[i] = NearbyMemberResponse{
			RemoteUserID:   c.RemoteUserID,
			GroupID:        c.GroupID,
			DistanceMeters: c.DistanceMeters,
			Latitude:       c.Fix.Latitude,
			Longitude:      c.Fix.Longitude,
		}
	}
	return responses
}
