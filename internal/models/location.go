package models

import (
	"time"
)

// PublishedLocation - опубликованное местоположение пользователя в группе.
// Ключ (user_id, group_id), last-write-wins, история не хранится.
type PublishedLocation struct {
	UserID      string    `json:"user_id"`
	GroupID     string    `json:"group_id"`
	Fix         Fix       `json:"fix"`
	LastUpdated time.Time `json:"last_updated"`
	IsActive    bool      `json:"is_active"`
}

// ProximityCandidate - кандидат на алерт близости, пересчитывается на каждом проходе детектора
type ProximityCandidate struct {
	RemoteUserID   string  `json:"remote_user_id"`
	GroupID        string  `json:"group_id"`
	DistanceMeters float64 `json:"distance_meters"`
	Fix            Fix     `json:"fix"`
}

// MembershipBroadcastState - состояние трансляции пользователя в группе.
// Принадлежит CRUD членства групп, здесь только читается.
type MembershipBroadcastState struct {
	UserID         string `json:"user_id"`
	GroupID        string `json:"group_id"`
	IsBroadcasting bool   `json:"is_broadcasting"`
	IsVisible      bool   `json:"is_visible"`
}
