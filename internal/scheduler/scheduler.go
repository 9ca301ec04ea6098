package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/proximity_alert_system/internal/location"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/shenikar/proximity_alert_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// Publisher определяет контракт записи местоположений в общий стор
type Publisher interface {
	PublishLocation(ctx context.Context, userID, groupID string, fix models.Fix) error
	DeactivateLocation(ctx context.Context, userID, groupID string) error
}

// Memberships определяет контракт чтения активных трансляций пользователя
type Memberships interface {
	ListActiveBroadcastGroups(ctx context.Context, userID string) ([]string, error)
}

// Status - срез состояния синхронизации для UI
type Status struct {
	IsSyncing        bool      `json:"is_syncing"`
	LastSyncTime     time.Time `json:"last_sync_time"`
	ActiveGroupCount int       `json:"active_group_count"`
	Error            string    `json:"error,omitempty"`
}

// Config - параметры планировщика синхронизации
type Config struct {
	ThrottleInterval   time.Duration
	MinDistanceMeters  float64
	RetryDelay         time.Duration
	StalenessThreshold time.Duration
	RefreshInterval    time.Duration
}

// Scheduler решает, когда и куда публиковать входящие фиксы:
// тайм-троттлинг, дистанционный фильтр, один отложенный ретрай на
// неудавшуюся публикацию и принудительная републикация по устареванию.
type Scheduler struct {
	publisher   Publisher
	memberships Memberships
	source      location.Source
	logger      *logrus.Logger
	userID      string
	cfg         Config

	mu               sync.Mutex
	currentFix       *models.Fix
	lastPublishedFix *models.Fix
	lastPublishedAt  time.Time
	activeGroups     []string
	isSyncing        bool
	lastErr          error
	retryTimer       *time.Timer
	retryFix         *models.Fix

	// Подменяется в тестах для детерминированного времени
	now func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New создает планировщик синхронизации местоположения
func New(publisher Publisher, memberships Memberships, source location.Source, logger *logrus.Logger, userID string, cfg Config) *Scheduler {
	return &Scheduler{
		publisher:   publisher,
		memberships: memberships,
		source:      source,
		logger:      logger,
		userID:      userID,
		cfg:         cfg,
		now:         time.Now,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Run запускает цикл обработки событий: поток фиксов, обновление членства
// и проверка устаревания. Работает до отмены контекста или Shutdown.
func (s *Scheduler) Run(ctx context.Context) {
	defer close(s.done)

	sub := s.source.Watch()
	defer sub.Stop()

	s.RefreshMemberships(ctx)

	refreshTicker := time.NewTicker(s.cfg.RefreshInterval)
	defer refreshTicker.Stop()

	stalenessTicker := time.NewTicker(stalenessCheckInterval(s.cfg.StalenessThreshold))
	defer stalenessTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.cancelRetry()
			return
		case <-s.stop:
			s.cancelRetry()
			return
		case fix, ok := <-sub.Fixes():
			if !ok {
				return
			}
			s.HandleFix(ctx, fix, false)
		case <-refreshTicker.C:
			s.RefreshMemberships(ctx)
		case <-stalenessTicker.C:
			s.CheckStaleness(ctx)
		}
	}
}

// Shutdown останавливает цикл и отменяет отложенные таймеры
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler shutdown timed out: %w", ctx.Err())
	}
}

// stalenessCheckInterval выбирает шаг проверки устаревания: достаточно
// четверти порога, но не чаще раза в секунду
func stalenessCheckInterval(threshold time.Duration) time.Duration {
	interval := threshold / 4
	if interval < time.Second {
		interval = time.Second
	}
	return interval
}

// HandleFix применяет алгоритм публикации к одному фиксу.
// forced обходит троттлинг и дистанционный фильтр.
func (s *Scheduler) HandleFix(ctx context.Context, fix models.Fix, forced bool) error {
	s.mu.Lock()
	fixCopy := fix
	s.currentFix = &fixCopy

	groups := make([]string, len(s.activeGroups))
	copy(groups, s.activeGroups)

	if len(groups) == 0 {
		s.mu.Unlock()
		return nil
	}

	now := s.now()
	if !forced {
		if !s.lastPublishedAt.IsZero() && now.Sub(s.lastPublishedAt) < s.cfg.ThrottleInterval {
			s.mu.Unlock()
			return nil
		}
		if s.lastPublishedFix != nil {
			moved := geo.DistanceMeters(
				geo.Coordinate{Latitude: s.lastPublishedFix.Latitude, Longitude: s.lastPublishedFix.Longitude},
				geo.Coordinate{Latitude: fix.Latitude, Longitude: fix.Longitude},
			)
			if moved < s.cfg.MinDistanceMeters {
				s.mu.Unlock()
				return nil
			}
		}
	}
	s.isSyncing = true
	s.mu.Unlock()

	err := s.publishToGroups(ctx, fix, groups)

	s.mu.Lock()
	s.isSyncing = false
	if err == nil {
		s.lastErr = nil
	}
	s.mu.Unlock()

	return err
}

// publishToGroups пишет фикс во все группы параллельно. Успешные записи
// не откатываются при сбое соседних; при любом сбое планируется ровно
// один ретрай этого же фикса.
func (s *Scheduler) publishToGroups(ctx context.Context, fix models.Fix, groups []string) error {
	log := s.logger.WithFields(logrus.Fields{
		"component": "scheduler",
		"user_id":   s.userID,
		"groups":    len(groups),
	})

	var wg sync.WaitGroup
	errs := make([]error, len(groups))
	for i, groupID := range groups {
		wg.Add(1)
		go func(i int, groupID string) {
			defer wg.Done()
			if err := s.publisher.PublishLocation(ctx, s.userID, groupID, fix); err != nil {
				errs[i] = fmt.Errorf("publish to group %s failed: %w", groupID, err)
			}
		}(i, groupID)
	}
	wg.Wait()

	var firstErr error
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if firstErr == nil {
			firstErr = err
		}
	}

	s.mu.Lock()
	if succeeded > 0 {
		fixCopy := fix
		s.lastPublishedFix = &fixCopy
		s.lastPublishedAt = s.now()
		// Успешный фикс вытесняет ожидающий ретрай устаревшего
		s.cancelRetryLocked()
	}
	if firstErr != nil {
		s.lastErr = firstErr
		s.scheduleRetryLocked(fix)
	}
	s.mu.Unlock()

	if firstErr != nil {
		log.WithError(firstErr).Warn("Location publish failed for at least one group")
		return firstErr
	}

	log.Debug("Location published")
	return nil
}

// scheduleRetryLocked взводит единственный отложенный ретрай для фикса.
// Вызывается под мьютексом.
func (s *Scheduler) scheduleRetryLocked(fix models.Fix) {
	if s.retryTimer != nil {
		s.retryTimer.Stop()
	}
	fixCopy := fix
	s.retryFix = &fixCopy
	s.retryTimer = time.AfterFunc(s.cfg.RetryDelay, func() {
		s.mu.Lock()
		pending := s.retryFix
		s.retryFix = nil
		s.retryTimer = nil
		groups := make([]string, len(s.activeGroups))
		copy(groups, s.activeGroups)
		s.mu.Unlock()

		if pending == nil || len(groups) == 0 {
			return
		}
		s.logger.WithField("component", "scheduler").Info("Retrying stale location publish")
		// Ретрай тоже может упасть и перевзвести себя - это уже новый сбой
		_ = s.publishToGroups(context.Background(), *pending, groups)
	})
}

func (s *Scheduler) cancelRetryLocked() {
	if s.retryTimer != nil {
		s.retryTimer.Stop()
		s.retryTimer = nil
	}
	s.retryFix = nil
}

func (s *Scheduler) cancelRetry() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelRetryLocked()
}

// CheckStaleness принудительно републикует текущий фикс, если публикаций
// не было дольше порога, а группы еще активны. Защита от неподвижного
// пользователя, у которого дистанционный фильтр задавил бы все публикации.
func (s *Scheduler) CheckStaleness(ctx context.Context) {
	s.mu.Lock()
	stale := len(s.activeGroups) > 0 &&
		s.currentFix != nil &&
		!s.lastPublishedAt.IsZero() &&
		s.now().Sub(s.lastPublishedAt) >= s.cfg.StalenessThreshold
	var fix models.Fix
	if stale {
		fix = *s.currentFix
	}
	s.mu.Unlock()

	if !stale {
		return
	}

	s.logger.WithField("component", "scheduler").Info("No successful publish within staleness threshold, force republishing")
	_ = s.HandleFix(ctx, fix, true)
}

// SyncNow выполняет принудительную публикацию в обход троттлинга и
// дистанционного фильтра. Требует наличия текущего фикса.
func (s *Scheduler) SyncNow(ctx context.Context) error {
	s.mu.Lock()
	fix := s.currentFix
	s.mu.Unlock()

	if fix == nil {
		return location.ErrNoLocationAvailable
	}
	return s.HandleFix(ctx, *fix, true)
}

// RefreshMemberships перечитывает список групп с активной трансляцией.
// Для групп, где трансляция выключена, местоположение помечается неактивным.
func (s *Scheduler) RefreshMemberships(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "scheduler",
		"user_id":   s.userID,
	})

	groups, err := s.memberships.ListActiveBroadcastGroups(ctx, s.userID)
	if err != nil {
		log.WithError(err).Error("Failed to refresh broadcast groups")
		return
	}

	s.mu.Lock()
	previous := s.activeGroups
	s.activeGroups = groups
	s.mu.Unlock()

	active := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		active[g] = struct{}{}
	}
	for _, g := range previous {
		if _, ok := active[g]; !ok {
			if err := s.publisher.DeactivateLocation(ctx, s.userID, g); err != nil {
				log.WithError(err).WithField("group_id", g).Warn("Failed to deactivate published location")
			}
		}
	}
}

// ActiveGroups возвращает срез списка групп с активной трансляцией
func (s *Scheduler) ActiveGroups() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := make([]string, len(s.activeGroups))
	copy(groups, s.activeGroups)
	return groups
}

// CurrentFix возвращает последний известный планировщику фикс
func (s *Scheduler) CurrentFix() *models.Fix {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentFix == nil {
		return nil
	}
	fix := *s.currentFix
	return &fix
}

// ClearError сбрасывает залипшую ошибку публикации
func (s *Scheduler) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
}

// Status возвращает срез состояния синхронизации
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := Status{
		IsSyncing:        s.isSyncing,
		LastSyncTime:     s.lastPublishedAt,
		ActiveGroupCount: len(s.activeGroups),
	}
	if s.lastErr != nil {
		st.Error = s.lastErr.Error()
	}
	return st
}
