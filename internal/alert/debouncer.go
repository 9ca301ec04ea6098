package alert

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// Пороги градации интенсивности сигнала по дистанции
const (
	urgentBandMeters   = 20.0
	standardBandMeters = 50.0
)

// Recorder определяет контракт записи сработавших алертов
type Recorder interface {
	AppendAlertRecord(ctx context.Context, record *models.AlertRecord) error
}

// Preferences определяет контракт чтения настроек оповещений
type Preferences interface {
	GetNotificationPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error)
}

// BroadcastState сообщает, транслирует ли локальный пользователь
// местоположение в данную группу
type BroadcastState interface {
	IsBroadcasting(groupID string) bool
}

// Event - решение о срабатывании алерта, передаваемое внешнему sink.
// Дебаунсер решает только «что» и «с какой интенсивностью», не «как».
type Event struct {
	RemoteUserID   string    `json:"remote_user_id"`
	GroupID        string    `json:"group_id"`
	DistanceMeters float64   `json:"distance_meters"`
	Intensity      string    `json:"intensity"`
	Style          string    `json:"style"`
	FiredAt        time.Time `json:"fired_at"`
}

// Sink - внешний отрисовщик алерта (тост/вибрация/звук)
type Sink interface {
	Fire(ctx context.Context, event Event) error
}

// Config - параметры дебаунсера
type Config struct {
	// Окно подавления повторов для пары (пользователь, группа)
	Window time.Duration
	// Интервал чистки внутреннего окна
	PruneInterval time.Duration
	// Подавлять алерты, когда локальный пользователь сам не транслирует
	OnlyWhenBroadcasting bool
}

// Debouncer решает, показывать ли алерт по кандидату близости:
// прекондиция трансляции, настройки, тихие часы и временное окно повторов.
// Срабатывает на каждом проходе детекции, пока участник в радиусе, -
// повторы гасятся только окном, не переходом через границу радиуса.
type Debouncer struct {
	recorder  Recorder
	prefs     Preferences
	broadcast BroadcastState
	sink      Sink
	logger    *logrus.Logger
	userID    string
	cfg       Config

	mu        sync.Mutex
	lastFired map[string]time.Time

	// Подменяется в тестах для детерминированного времени
	now func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// New создает дебаунсер алертов
func New(recorder Recorder, prefs Preferences, broadcast BroadcastState, sink Sink, logger *logrus.Logger, userID string, cfg Config) *Debouncer {
	return &Debouncer{
		recorder:  recorder,
		prefs:     prefs,
		broadcast: broadcast,
		sink:      sink,
		logger:    logger,
		userID:    userID,
		cfg:       cfg,
		lastFired: make(map[string]time.Time),
		now:       time.Now,
		stop:      make(chan struct{}),
	}
}

func pairKey(remoteUserID, groupID string) string {
	return remoteUserID + "|" + groupID
}

// Submit прогоняет кандидата через цепочку подавления и при проходе
// всех проверок фиксирует AlertRecord и отдает событие в sink
func (d *Debouncer) Submit(ctx context.Context, candidate models.ProximityCandidate) {
	log := d.logger.WithFields(logrus.Fields{
		"component":      "debouncer",
		"remote_user_id": candidate.RemoteUserID,
		"group_id":       candidate.GroupID,
	})

	if d.cfg.OnlyWhenBroadcasting && !d.broadcast.IsBroadcasting(candidate.GroupID) {
		log.Debug("Suppressed: local user is not broadcasting to this group")
		return
	}

	prefs, err := d.prefs.GetNotificationPreferences(ctx, d.userID)
	if err != nil {
		log.WithError(err).Warn("Failed to load notification preferences, suppressing alert")
		return
	}
	if prefs == nil || !prefs.EnableProximityAlerts {
		log.Debug("Suppressed: proximity alerts disabled")
		return
	}

	now := d.now()
	if InQuietHours(now, prefs.QuietHoursStart, prefs.QuietHoursEnd) {
		log.Debug("Suppressed: quiet hours")
		return
	}

	key := pairKey(candidate.RemoteUserID, candidate.GroupID)
	d.mu.Lock()
	if firedAt, ok := d.lastFired[key]; ok && now.Sub(firedAt) <= d.cfg.Window {
		d.mu.Unlock()
		log.Debug("Suppressed: within debounce window")
		return
	}
	d.lastFired[key] = now
	d.mu.Unlock()

	record := &models.AlertRecord{
		ID:           uuid.New(),
		RemoteUserID: candidate.RemoteUserID,
		GroupID:      candidate.GroupID,
		FiredAt:      now,
		Acknowledged: false,
	}
	if err := d.recorder.AppendAlertRecord(ctx, record); err != nil {
		log.WithError(err).Error("Failed to append alert record")
	}

	event := Event{
		RemoteUserID:   candidate.RemoteUserID,
		GroupID:        candidate.GroupID,
		DistanceMeters: candidate.DistanceMeters,
		Intensity:      IntensityForDistance(candidate.DistanceMeters),
		Style:          prefs.AlertStyle,
		FiredAt:        now,
	}
	if err := d.sink.Fire(ctx, event); err != nil {
		log.WithError(err).Warn("Alert sink failed")
		return
	}

	log.WithField("distance_m", fmt.Sprintf("%.1f", candidate.DistanceMeters)).Info("Proximity alert fired")
}

// RunHousekeeping периодически чистит окно дебаунса, ограничивая рост памяти
func (d *Debouncer) RunHousekeeping(ctx context.Context) {
	ticker := time.NewTicker(d.cfg.PruneInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			return
		case <-ticker.C:
			d.Prune()
		}
	}
}

// Shutdown останавливает фоновую чистку
func (d *Debouncer) Shutdown() {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
}

// Prune удаляет из окна записи старше окна дебаунса.
// Персистентные копии AlertRecord не трогаются.
func (d *Debouncer) Prune() {
	cutoff := d.now().Add(-d.cfg.Window)
	d.mu.Lock()
	defer d.mu.Unlock()
	for key, firedAt := range d.lastFired {
		if firedAt.Before(cutoff) {
			delete(d.lastFired, key)
		}
	}
}

// IntensityForDistance подбирает интенсивность сигнала по дистанционной полосе
func IntensityForDistance(distanceMeters float64) string {
	switch {
	case distanceMeters < urgentBandMeters:
		return models.IntensityUrgent
	case distanceMeters < standardBandMeters:
		return models.IntensityStandard
	default:
		return models.IntensityGentle
	}
}

// InQuietHours проверяет попадание локального времени в интервал
// [start, end) формата "HH:MM". Интервал с start > end переходит
// через полночь (например, 22:00-08:00).
func InQuietHours(now time.Time, start, end string) bool {
	startMin, ok := parseClock(start)
	if !ok {
		return false
	}
	endMin, ok := parseClock(end)
	if !ok {
		return false
	}
	if startMin == endMin {
		return false
	}

	cur := now.Hour()*60 + now.Minute()
	if startMin < endMin {
		return cur >= startMin && cur < endMin
	}
	return cur >= startMin || cur < endMin
}

// parseClock разбирает "HH:MM" в минуты от полуночи
func parseClock(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, false
	}
	return hours*60 + minutes, true
}
