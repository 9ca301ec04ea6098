package models

import (
	"time"

	"github.com/google/uuid"
)

// AlertRecord - запись о сработавшем алерте близости.
// Используется дебаунсером для подавления повторов в пределах окна.
type AlertRecord struct {
	ID           uuid.UUID `json:"id"`
	RemoteUserID string    `json:"remote_user_id"`
	GroupID      string    `json:"group_id"`
	FiredAt      time.Time `json:"fired_at"`
	Acknowledged bool      `json:"acknowledged"`
}

// Градации интенсивности сигнала по дистанции
const (
	IntensityUrgent   = "urgent"
	IntensityStandard = "standard"
	IntensityGentle   = "gentle"
)

// LastNotified - отметка последнего фонового оповещения для пары
// (удаленный пользователь, группа). Живет в долговременном хранилище
// фоновой задачи и переживает перезапуск процесса.
type LastNotified struct {
	RemoteUserID string    `json:"remote_user_id"`
	GroupID      string    `json:"group_id"`
	NotifiedAt   time.Time `json:"notified_at"`
}
