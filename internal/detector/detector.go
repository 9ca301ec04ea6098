package detector

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shenikar/proximity_alert_system/internal/location"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/shenikar/proximity_alert_system/pkg/geo"
	"github.com/sirupsen/logrus"
)

// Feed определяет контракт push-подписки на опубликованные местоположения группы.
// Каждая эмиссия - полный текущий набор, не дельты.
type Feed interface {
	SubscribeGroup(ctx context.Context, groupID string) (<-chan []models.PublishedLocation, func(), error)
}

// Memberships определяет контракт чтения групп пользователя
type Memberships interface {
	ListActiveBroadcastGroups(ctx context.Context, userID string) ([]string, error)
}

// Preferences определяет контракт чтения настроек оповещений
type Preferences interface {
	GetNotificationPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error)
}

// Candidates принимает кандидатов на алерт; дебаунс - его забота, не детектора
type Candidates interface {
	Submit(ctx context.Context, candidate models.ProximityCandidate)
}

// Status - срез состояния детектора для UI
type Status struct {
	IsDetecting bool   `json:"is_detecting"`
	Error       string `json:"error,omitempty"`
}

// Config - параметры детектора близости
type Config struct {
	// Явный радиус; 0 - брать из настроек пользователя
	RadiusOverrideMeters float64
	// Радиус по умолчанию, если настройки недоступны
	DefaultRadiusMeters float64
	RefreshInterval     time.Duration
}

type feedUpdate struct {
	groupID string
	set     []models.PublishedLocation
}

type groupSub struct {
	cancel func()
	done   chan struct{}
}

// Detector превращает (локальный фикс, наборы удаленных фиксов) в решения
// о «ближних» участниках. Оба представления - nearby и byDistance -
// пересчитываются целиком на каждом проходе.
type Detector struct {
	feed        Feed
	memberships Memberships
	prefs       Preferences
	candidates  Candidates
	source      location.Source
	logger      *logrus.Logger
	userID      string
	cfg         Config

	updates chan feedUpdate

	mu          sync.Mutex
	localFix    *models.Fix
	remote      map[string]map[string]models.PublishedLocation
	subs        map[string]*groupSub
	nearby      []models.ProximityCandidate
	byDistance  []models.ProximityCandidate
	isDetecting bool
	lastErr     error

	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// New создает детектор близости
func New(feed Feed, memberships Memberships, prefs Preferences, candidates Candidates, source location.Source, logger *logrus.Logger, userID string, cfg Config) *Detector {
	return &Detector{
		feed:        feed,
		memberships: memberships,
		prefs:       prefs,
		candidates:  candidates,
		source:      source,
		logger:      logger,
		userID:      userID,
		cfg:         cfg,
		updates:     make(chan feedUpdate, 16),
		remote:      make(map[string]map[string]models.PublishedLocation),
		subs:        make(map[string]*groupSub),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Run запускает цикл детекции: собственная подписка на поток фиксов,
// эмиссии фидов групп и периодическое обновление списка групп
func (d *Detector) Run(ctx context.Context) {
	defer close(d.done)

	sub := d.source.Watch()
	defer sub.Stop()

	d.refreshGroups(ctx)

	refreshTicker := time.NewTicker(d.cfg.RefreshInterval)
	defer refreshTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.teardown()
			return
		case <-d.stop:
			d.teardown()
			return
		case fix, ok := <-sub.Fixes():
			if !ok {
				d.teardown()
				return
			}
			d.HandleFix(ctx, fix)
		case upd := <-d.updates:
			d.handleFeedUpdate(ctx, upd)
		case <-refreshTicker.C:
			d.refreshGroups(ctx)
		}
	}
}

// Shutdown останавливает цикл детекции и все подписки фидов
func (d *Detector) Shutdown(ctx context.Context) error {
	d.stopOnce.Do(func() {
		close(d.stop)
	})
	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("detector shutdown timed out: %w", ctx.Err())
	}
}

func (d *Detector) teardown() {
	d.mu.Lock()
	subs := d.subs
	d.subs = make(map[string]*groupSub)
	d.mu.Unlock()
	for _, s := range subs {
		s.cancel()
	}
}

// refreshGroups пересматривает подписки фидов: подписка заводится только
// при изменении набора групп, никогда при смене локального фикса
func (d *Detector) refreshGroups(ctx context.Context) {
	log := d.logger.WithFields(logrus.Fields{
		"component": "detector",
		"user_id":   d.userID,
	})

	groups, err := d.memberships.ListActiveBroadcastGroups(ctx, d.userID)
	if err != nil {
		log.WithError(err).Error("Failed to list groups for detection")
		return
	}

	wanted := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		wanted[g] = struct{}{}
	}

	d.mu.Lock()
	var removed []*groupSub
	for g, s := range d.subs {
		if _, ok := wanted[g]; !ok {
			removed = append(removed, s)
			delete(d.subs, g)
			delete(d.remote, g)
		}
	}
	missing := make([]string, 0)
	for g := range wanted {
		if _, ok := d.subs[g]; !ok {
			missing = append(missing, g)
		}
	}
	d.mu.Unlock()

	for _, s := range removed {
		s.cancel()
	}

	for _, g := range missing {
		d.subscribeGroup(ctx, g)
	}
}

// subscribeGroup заводит подписку на фид одной группы. Сбой подписки
// деградирует до пустого набора, а не валит детектор.
func (d *Detector) subscribeGroup(ctx context.Context, groupID string) {
	log := d.logger.WithFields(logrus.Fields{
		"component": "detector",
		"group_id":  groupID,
	})

	ch, cancel, err := d.feed.SubscribeGroup(ctx, groupID)
	if err != nil {
		log.WithError(err).Warn("Feed subscription failed, group degrades to empty set")
		d.mu.Lock()
		d.lastErr = fmt.Errorf("feed subscription for group %s failed: %w", groupID, err)
		d.mu.Unlock()
		select {
		case d.updates <- feedUpdate{groupID: groupID, set: nil}:
		default:
		}
		return
	}

	s := &groupSub{cancel: cancel, done: make(chan struct{})}
	d.mu.Lock()
	d.subs[groupID] = s
	d.mu.Unlock()

	go func() {
		defer close(s.done)
		for set := range ch {
			select {
			case d.updates <- feedUpdate{groupID: groupID, set: set}:
			case <-d.stop:
				return
			}
		}
	}()
}

func (d *Detector) handleFeedUpdate(ctx context.Context, upd feedUpdate) {
	d.mu.Lock()
	byUser := make(map[string]models.PublishedLocation, len(upd.set))
	for _, loc := range upd.set {
		if !loc.IsActive {
			continue
		}
		byUser[loc.UserID] = loc
	}
	d.remote[upd.groupID] = byUser
	d.mu.Unlock()

	d.Recompute(ctx)
}

// HandleFix обновляет локальный фикс и запускает проход детекции,
// если известен хотя бы один удаленный фикс
func (d *Detector) HandleFix(ctx context.Context, fix models.Fix) {
	d.mu.Lock()
	fixCopy := fix
	d.localFix = &fixCopy
	hasRemote := false
	for _, byUser := range d.remote {
		if len(byUser) > 0 {
			hasRemote = true
			break
		}
	}
	d.mu.Unlock()

	if hasRemote {
		d.Recompute(ctx)
	}
}

// effectiveRadius возвращает рабочий радиус: явный override, иначе
// радиус из настроек, иначе значение по умолчанию
func (d *Detector) effectiveRadius(ctx context.Context) float64 {
	if d.cfg.RadiusOverrideMeters > 0 {
		return d.cfg.RadiusOverrideMeters
	}
	prefs, err := d.prefs.GetNotificationPreferences(ctx, d.userID)
	if err != nil || prefs == nil || prefs.ProximityRadiusMeters <= 0 {
		return d.cfg.DefaultRadiusMeters
	}
	return prefs.ProximityRadiusMeters
}

// Recompute - один проход детекции: дистанции до всех удаленных участников,
// сортировка, разбиение на nearby/byDistance и передача кандидатов дебаунсеру.
// Кандидаты отправляются на каждом проходе, пока участник в радиусе.
func (d *Detector) Recompute(ctx context.Context) {
	d.mu.Lock()
	if d.localFix == nil {
		d.mu.Unlock()
		return
	}
	local := *d.localFix
	d.isDetecting = true

	all := make([]models.ProximityCandidate, 0)
	for groupID, byUser := range d.remote {
		for userID, loc := range byUser {
			if userID == d.userID {
				continue
			}
			distance := geo.DistanceMeters(
				geo.Coordinate{Latitude: local.Latitude, Longitude: local.Longitude},
				geo.Coordinate{Latitude: loc.Fix.Latitude, Longitude: loc.Fix.Longitude},
			)
			all = append(all, models.ProximityCandidate{
				RemoteUserID:   userID,
				GroupID:        groupID,
				DistanceMeters: distance,
				Fix:            loc.Fix,
			})
		}
	}
	d.mu.Unlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].DistanceMeters < all[j].DistanceMeters
	})

	radius := d.effectiveRadius(ctx)
	nearby := make([]models.ProximityCandidate, 0)
	for _, c := range all {
		if c.DistanceMeters <= radius {
			nearby = append(nearby, c)
		}
	}

	d.mu.Lock()
	d.nearby = nearby
	d.byDistance = all
	d.isDetecting = false
	d.mu.Unlock()

	for _, c := range nearby {
		d.candidates.Submit(ctx, c)
	}
}

// CheckNow принудительно запускает проход детекции на последнем
// известном фиксе и состоянии фидов
func (d *Detector) CheckNow(ctx context.Context) {
	d.Recompute(ctx)
}

// Nearby возвращает участников в пределах рабочего радиуса
func (d *Detector) Nearby() []models.ProximityCandidate {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.ProximityCandidate, len(d.nearby))
	copy(out, d.nearby)
	return out
}

// ByDistance возвращает всех участников, отсортированных по дистанции
func (d *Detector) ByDistance() []models.ProximityCandidate {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.ProximityCandidate, len(d.byDistance))
	copy(out, d.byDistance)
	return out
}

// ClearError сбрасывает последнюю ошибку фида
func (d *Detector) ClearError() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lastErr = nil
}

// Status возвращает срез состояния детектора
func (d *Detector) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := Status{IsDetecting: d.isDetecting}
	if d.lastErr != nil {
		st.Error = d.lastErr.Error()
	}
	return st
}
