package location

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/shenikar/proximity_alert_system/pkg/geo"
)

// Mode - режим работы источника местоположения
type Mode int

const (
	// ModeForeground - приложение на переднем плане, частая выдача фиксов
	ModeForeground Mode = iota
	// ModeBackground - фоновый режим, редкая выдача
	ModeBackground
)

// Source - абстракция над API позиционирования устройства
type Source interface {
	// CurrentFix возвращает одно свежее показание, блокируясь до таймаута
	CurrentFix(ctx context.Context) (*models.Fix, error)
	// Watch открывает длительную подписку на поток фиксов
	Watch() *Subscription
}

// Subscription - подписка на поток фиксов. Stop идемпотентен.
type Subscription struct {
	fixes    chan models.Fix
	stopOnce sync.Once
	unsub    func(*Subscription)
}

// Fixes возвращает канал показаний подписки
func (s *Subscription) Fixes() <-chan models.Fix {
	return s.fixes
}

// Stop освобождает подписку. Повторный вызов - no-op, не ошибка.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		s.unsub(s)
	})
}

// PushSourceConfig - параметры фильтрации выдачи фиксов
type PushSourceConfig struct {
	// Таймаут однократного запроса фикса
	FixTimeout time.Duration
	// Целевая частота выдачи на переднем плане: интервал ИЛИ смещение, что раньше
	ForegroundMinInterval time.Duration
	ForegroundMinDistance float64
	// Минимальный интервал выдачи в фоне
	BackgroundMinInterval time.Duration
}

// PushSource - источник, питаемый показаниями, которые устройство
// пушит через HTTP. Применяет фильтр каденции/смещения перед выдачей
// подписчикам и обслуживает однократные запросы CurrentFix.
type PushSource struct {
	cfg PushSourceConfig

	mu           sync.Mutex
	mode         Mode
	permission   bool
	enabled      bool
	lastFix      *models.Fix
	lastEmitted  *models.Fix
	lastEmitTime time.Time
	subs         map[*Subscription]struct{}
	waiters      []chan models.Fix

	now func() time.Time
}

// NewPushSource создает источник с заданными параметрами фильтрации
func NewPushSource(cfg PushSourceConfig) *PushSource {
	return &PushSource{
		cfg:        cfg,
		mode:       ModeForeground,
		permission: true,
		enabled:    true,
		subs:       make(map[*Subscription]struct{}),
		now:        time.Now,
	}
}

// SetMode переключает режим каденции источника
func (p *PushSource) SetMode(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// SetAvailability обновляет состояние разрешений/доступности позиционирования,
// которое устройство сообщает вместе со статусом
func (p *PushSource) SetAvailability(permissionGranted, positioningEnabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permission = permissionGranted
	p.enabled = positioningEnabled
}

// Offer принимает очередное показание от устройства
func (p *PushSource) Offer(fix models.Fix) {
	p.mu.Lock()

	fixCopy := fix
	p.lastFix = &fixCopy

	// Будим однократные запросы вне зависимости от фильтра каденции
	for _, w := range p.waiters {
		w <- fix
	}
	p.waiters = nil

	if !p.passesFilter(fix) {
		p.mu.Unlock()
		return
	}

	p.lastEmitted = &fixCopy
	p.lastEmitTime = p.now()

	targets := make([]*Subscription, 0, len(p.subs))
	for s := range p.subs {
		targets = append(targets, s)
	}
	p.mu.Unlock()

	// Отправка вне мьютекса; медленный подписчик теряет фикс, а не блокирует источник
	for _, s := range targets {
		select {
		case s.fixes <- fix:
		default:
		}
	}
}

// passesFilter решает, выдавать ли фикс подписчикам.
// Вызывается под мьютексом.
func (p *PushSource) passesFilter(fix models.Fix) bool {
	if p.lastEmitted == nil {
		return true
	}

	elapsed := p.now().Sub(p.lastEmitTime)

	if p.mode == ModeBackground {
		return elapsed >= p.cfg.BackgroundMinInterval
	}

	if elapsed >= p.cfg.ForegroundMinInterval {
		return true
	}

	moved := geo.DistanceMeters(
		geo.Coordinate{Latitude: p.lastEmitted.Latitude, Longitude: p.lastEmitted.Longitude},
		geo.Coordinate{Latitude: fix.Latitude, Longitude: fix.Longitude},
	)
	return moved >= p.cfg.ForegroundMinDistance
}

// CurrentFix возвращает последнее показание, если оно есть, либо ждет
// следующего в пределах таймаута (15s по умолчанию)
func (p *PushSource) CurrentFix(ctx context.Context) (*models.Fix, error) {
	p.mu.Lock()
	if !p.permission {
		p.mu.Unlock()
		return nil, ErrPermissionDenied
	}
	if !p.enabled {
		p.mu.Unlock()
		return nil, ErrUnavailable
	}
	if p.lastFix != nil {
		fix := *p.lastFix
		p.mu.Unlock()
		return &fix, nil
	}

	waiter := make(chan models.Fix, 1)
	p.waiters = append(p.waiters, waiter)
	p.mu.Unlock()

	timer := time.NewTimer(p.cfg.FixTimeout)
	defer timer.Stop()

	select {
	case fix := <-waiter:
		return &fix, nil
	case <-timer.C:
		p.removeWaiter(waiter)
		return nil, ErrTimeout
	case <-ctx.Done():
		p.removeWaiter(waiter)
		return nil, ctx.Err()
	}
}

func (p *PushSource) removeWaiter(waiter chan models.Fix) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, w := range p.waiters {
		if w == waiter {
			p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
			return
		}
	}
}

// Watch открывает подписку на отфильтрованный поток фиксов
func (p *PushSource) Watch() *Subscription {
	sub := &Subscription{
		fixes: make(chan models.Fix, 16),
		unsub: p.removeSub,
	}
	p.mu.Lock()
	p.subs[sub] = struct{}{}
	p.mu.Unlock()
	return sub
}

func (p *PushSource) removeSub(sub *Subscription) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.subs, sub)
	close(sub.fixes)
}
