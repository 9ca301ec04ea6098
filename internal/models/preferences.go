package models

// Стили оповещения
const (
	AlertStyleSilent    = "silent"
	AlertStyleVibration = "vibration"
	AlertStyleSound     = "sound"
	AlertStyleBoth      = "both"
)

// NotificationPreferences - настройки оповещений пользователя.
// Принадлежат внешнему CRUD профиля, здесь только читаются.
type NotificationPreferences struct {
	EnableProximityAlerts bool    `json:"enable_proximity_alerts"`
	ProximityRadiusMeters float64 `json:"proximity_radius_meters"`
	// Тихие часы в локальном времени, формат "HH:MM"; пустая строка - не заданы
	QuietHoursStart string `json:"quiet_hours_start,omitempty"`
	QuietHoursEnd   string `json:"quiet_hours_end,omitempty"`
	AlertStyle      string `json:"alert_style"`
}
