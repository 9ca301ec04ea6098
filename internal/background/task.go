package background

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/proximity_alert_system/internal/alert"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/shenikar/proximity_alert_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// FixProvider выдает одно свежее показание местоположения
type FixProvider interface {
	CurrentFix(ctx context.Context) (*models.Fix, error)
}

// Publisher определяет контракт записи местоположений в общий стор
type Publisher interface {
	PublishLocation(ctx context.Context, userID, groupID string, fix models.Fix) error
}

// Locations читает текущий набор местоположений группы (pull, без подписки)
type Locations interface {
	GroupLocations(ctx context.Context, groupID string) ([]models.PublishedLocation, error)
}

// Memberships определяет контракт чтения групп и настроек пользователя
type Memberships interface {
	ListActiveBroadcastGroups(ctx context.Context, userID string) ([]string, error)
	GetNotificationPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error)
}

// State - долговременное состояние задачи, переживающее перезапуск
type State interface {
	GetLastKnownFix(ctx context.Context, userID string) (*models.Fix, error)
	SaveLastKnownFix(ctx context.Context, userID string, fix models.Fix) error
	ListLastNotified(ctx context.Context, userID string) ([]models.LastNotified, error)
	SetLastNotified(ctx context.Context, userID, remoteUserID, groupID string, notifiedAt time.Time) error
	EvictLastNotified(ctx context.Context, userID string, olderThan time.Time) error
}

// Config - параметры фоновой задачи
type Config struct {
	RadiusMeters float64
	// Собственное окно дебаунса задачи, грубее окна переднего плана:
	// фоновые пробуждения дороже для пользователя
	DebounceWindow time.Duration
	EvictAfter     time.Duration
}

// Task - один «пробуждаемый» проход синхронизации и детекции для фонового
// режима: свежий фикс, best-effort публикация, проверка близости по
// долговременной карте последних оповещений
type Task struct {
	fixes       FixProvider
	publisher   Publisher
	locations   Locations
	memberships Memberships
	state       State
	sink        alert.Sink
	logger      *logrus.Logger
	userID      string
	cfg         Config

	// Сериализация вызовов: ОС гарантирует не более одного запуска,
	// страхуемся и в коде
	mu sync.Mutex

	// Подменяется в тестах для детерминированного времени
	now func() time.Time
}

// New создает фоновую задачу
func New(fixes FixProvider, publisher Publisher, locations Locations, memberships Memberships, state State, sink alert.Sink, logger *logrus.Logger, userID string, cfg Config) *Task {
	return &Task{
		fixes:       fixes,
		publisher:   publisher,
		locations:   locations,
		memberships: memberships,
		state:       state,
		sink:        sink,
		logger:      logger,
		userID:      userID,
		cfg:         cfg,
		now:         time.Now,
	}
}

func pairKey(remoteUserID, groupID string) string {
	return remoteUserID + "|" + groupID
}

// RunOnce выполняет один полный проход фонового цикла
func (t *Task) RunOnce(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	log := t.logger.WithFields(logrus.Fields{
		"component": "background",
		"user_id":   t.userID,
	})
	log.Debug("Background duty cycle started")

	fix, err := t.acquireFix(ctx, log)
	if err != nil {
		return err
	}

	groups, err := t.memberships.ListActiveBroadcastGroups(ctx, t.userID)
	if err != nil {
		return fmt.Errorf("background: failed to list broadcast groups: %w", err)
	}
	if len(groups) == 0 {
		log.Debug("No active broadcast groups, background cycle is a no-op")
		return nil
	}

	// Best-effort публикация без ретраев: следующий цикл повторит сам
	for _, groupID := range groups {
		if err := t.publisher.PublishLocation(ctx, t.userID, groupID, *fix); err != nil {
			log.WithError(err).WithField("group_id", groupID).Warn("Background publish failed")
		}
	}

	if err := t.checkProximity(ctx, log, *fix, groups); err != nil {
		return err
	}

	cutoff := t.now().Add(-t.cfg.EvictAfter)
	if err := t.state.EvictLastNotified(ctx, t.userID, cutoff); err != nil {
		log.WithError(err).Warn("Failed to evict stale last-notified entries")
	}

	log.Debug("Background duty cycle finished")
	return nil
}

// acquireFix получает свежий фикс, откатываясь на сохраненный при сбое
func (t *Task) acquireFix(ctx context.Context, log *logrus.Entry) (*models.Fix, error) {
	fix, err := t.fixes.CurrentFix(ctx)
	if err == nil {
		if saveErr := t.state.SaveLastKnownFix(ctx, t.userID, *fix); saveErr != nil {
			log.WithError(saveErr).Warn("Failed to persist last known fix")
		}
		return fix, nil
	}

	log.WithError(err).Warn("Fresh fix unavailable, falling back to last known fix")
	fix, stateErr := t.state.GetLastKnownFix(ctx, t.userID)
	if stateErr != nil {
		return nil, fmt.Errorf("background: failed to load last known fix: %w", stateErr)
	}
	if fix == nil {
		return nil, fmt.Errorf("background: no location available: %w", err)
	}
	return fix, nil
}

// checkProximity выполняет проверку близости по всем группам с
// собственным 15-минутным окном оповещений
func (t *Task) checkProximity(ctx context.Context, log *logrus.Entry, fix models.Fix, groups []string) error {
	prefs, err := t.memberships.GetNotificationPreferences(ctx, t.userID)
	if err != nil {
		return fmt.Errorf("background: failed to load preferences: %w", err)
	}
	if !prefs.EnableProximityAlerts {
		log.Debug("Proximity alerts disabled, skipping background check")
		return nil
	}

	now := t.now()
	if alert.InQuietHours(now, prefs.QuietHoursStart, prefs.QuietHoursEnd) {
		log.Debug("Quiet hours, skipping background check")
		return nil
	}

	radius := t.cfg.RadiusMeters
	if prefs.ProximityRadiusMeters > 0 {
		radius = prefs.ProximityRadiusMeters
	}

	entries, err := t.state.ListLastNotified(ctx, t.userID)
	if err != nil {
		return fmt.Errorf("background: failed to load last-notified map: %w", err)
	}
	notified := make(map[string]time.Time, len(entries))
	for _, e := range entries {
		notified[pairKey(e.RemoteUserID, e.GroupID)] = e.NotifiedAt
	}

	local := geo.Coordinate{Latitude: fix.Latitude, Longitude: fix.Longitude}
	for _, groupID := range groups {
		locations, err := t.locations.GroupLocations(ctx, groupID)
		if err != nil {
			log.WithError(err).WithField("group_id", groupID).Warn("Failed to fetch group locations")
			continue
		}

		for _, loc := range locations {
			if loc.UserID == t.userID || !loc.IsActive {
				continue
			}
			distance := geo.DistanceMeters(local, geo.Coordinate{
				Latitude:  loc.Fix.Latitude,
				Longitude: loc.Fix.Longitude,
			})
			if distance > radius {
				continue
			}

			key := pairKey(loc.UserID, groupID)
			if last, ok := notified[key]; ok && now.Sub(last) < t.cfg.DebounceWindow {
				continue
			}

			event := alert.Event{
				RemoteUserID:   loc.UserID,
				GroupID:        groupID,
				DistanceMeters: distance,
				Intensity:      alert.IntensityForDistance(distance),
				Style:          prefs.AlertStyle,
				FiredAt:        now,
			}
			if err := t.sink.Fire(ctx, event); err != nil {
				log.WithError(err).WithField("remote_user_id", loc.UserID).Warn("Background alert sink failed")
				continue
			}

			notified[key] = now
			if err := t.state.SetLastNotified(ctx, t.userID, loc.UserID, groupID, now); err != nil {
				log.WithError(err).Warn("Failed to persist last-notified entry")
			}
		}
	}
	return nil
}
