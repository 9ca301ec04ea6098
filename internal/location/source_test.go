package location

import (
	"context"
	"testing"
	"time"

	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() PushSourceConfig {
	return PushSourceConfig{
		FixTimeout:            50 * time.Millisecond,
		ForegroundMinInterval: 10 * time.Second,
		ForegroundMinDistance: 10,
		BackgroundMinInterval: 60 * time.Second,
	}
}

func fixAt(lat, lon float64) models.Fix {
	return models.Fix{
		Latitude:   lat,
		Longitude:  lon,
		CapturedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestCurrentFix_ReturnsLastKnownImmediately(t *testing.T) {
	p := NewPushSource(testConfig())

	p.Offer(fixAt(55.0, 37.0))

	fix, err := p.CurrentFix(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 55.0, fix.Latitude)
}

func TestCurrentFix_WaitsForNextOffer(t *testing.T) {
	p := NewPushSource(testConfig())

	go func() {
		time.Sleep(10 * time.Millisecond)
		p.Offer(fixAt(55.0, 37.0))
	}()

	fix, err := p.CurrentFix(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 55.0, fix.Latitude)
}

func TestCurrentFix_TimesOutWithoutFix(t *testing.T) {
	p := NewPushSource(testConfig())

	_, err := p.CurrentFix(context.Background())

	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCurrentFix_ContextCancellation(t *testing.T) {
	p := NewPushSource(PushSourceConfig{FixTimeout: time.Minute})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := p.CurrentFix(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCurrentFix_PermissionDenied(t *testing.T) {
	p := NewPushSource(testConfig())
	p.Offer(fixAt(55.0, 37.0))

	p.SetAvailability(false, true)

	_, err := p.CurrentFix(context.Background())
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestCurrentFix_PositioningDisabled(t *testing.T) {
	p := NewPushSource(testConfig())
	p.Offer(fixAt(55.0, 37.0))

	p.SetAvailability(true, false)

	_, err := p.CurrentFix(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestWatch_FirstFixAlwaysEmitted(t *testing.T) {
	p := NewPushSource(testConfig())

	sub := p.Watch()
	defer sub.Stop()

	p.Offer(fixAt(55.0, 37.0))

	select {
	case fix := <-sub.Fixes():
		assert.Equal(t, 55.0, fix.Latitude)
	default:
		t.Fatal("expected first fix to be emitted")
	}
}

func TestWatch_ForegroundFiltersSmallQuickMoves(t *testing.T) {
	p := NewPushSource(testConfig())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	p.now = func() time.Time { return current }

	sub := p.Watch()
	defer sub.Stop()

	p.Offer(fixAt(55.0, 37.0))
	<-sub.Fixes()

	// Через 2 секунды и ~1 метр - и интервал, и смещение ниже порогов
	current = base.Add(2 * time.Second)
	p.Offer(fixAt(55.00001, 37.0))

	select {
	case <-sub.Fixes():
		t.Fatal("fix below cadence thresholds must be filtered")
	default:
	}
}

func TestWatch_ForegroundEmitsOnDistance(t *testing.T) {
	p := NewPushSource(testConfig())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	p.now = func() time.Time { return current }

	sub := p.Watch()
	defer sub.Stop()

	p.Offer(fixAt(55.0, 37.0))
	<-sub.Fixes()

	// Интервал не вышел, но смещение ~110 метров проходит фильтр
	current = base.Add(2 * time.Second)
	p.Offer(fixAt(55.001, 37.0))

	select {
	case fix := <-sub.Fixes():
		assert.Equal(t, 55.001, fix.Latitude)
	default:
		t.Fatal("expected fix after significant move")
	}
}

func TestWatch_ForegroundEmitsOnInterval(t *testing.T) {
	p := NewPushSource(testConfig())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	p.now = func() time.Time { return current }

	sub := p.Watch()
	defer sub.Stop()

	p.Offer(fixAt(55.0, 37.0))
	<-sub.Fixes()

	// Смещения нет, но целевой интервал переднего плана вышел
	current = base.Add(11 * time.Second)
	p.Offer(fixAt(55.0, 37.0))

	select {
	case <-sub.Fixes():
	default:
		t.Fatal("expected fix after foreground interval elapsed")
	}
}

func TestWatch_BackgroundIgnoresDistance(t *testing.T) {
	p := NewPushSource(testConfig())
	p.SetMode(ModeBackground)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	current := base
	p.now = func() time.Time { return current }

	sub := p.Watch()
	defer sub.Stop()

	p.Offer(fixAt(55.0, 37.0))
	<-sub.Fixes()

	// В фоне решает только интервал: большое смещение через 30 секунд глушится
	current = base.Add(30 * time.Second)
	p.Offer(fixAt(55.01, 37.0))

	select {
	case <-sub.Fixes():
		t.Fatal("background fix before min interval must be filtered")
	default:
	}

	current = base.Add(61 * time.Second)
	p.Offer(fixAt(55.01, 37.0))

	select {
	case <-sub.Fixes():
	default:
		t.Fatal("expected fix after background interval elapsed")
	}
}

func TestWatch_CadenceFilterDoesNotStarveCurrentFix(t *testing.T) {
	p := NewPushSource(testConfig())

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return base }

	p.Offer(fixAt(55.0, 37.0))
	// Второй фикс глушится для подписчиков, но остается последним известным
	p.Offer(fixAt(55.00001, 37.0))

	fix, err := p.CurrentFix(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 55.00001, fix.Latitude)
}

func TestSubscription_StopIsIdempotent(t *testing.T) {
	p := NewPushSource(testConfig())

	sub := p.Watch()
	sub.Stop()
	sub.Stop() // Повторный Stop - no-op

	// Канал закрыт, новые фиксы не приходят
	_, ok := <-sub.Fixes()
	assert.False(t, ok)

	// Источник продолжает обслуживать остальных
	p.Offer(fixAt(55.0, 37.0))
	fix, err := p.CurrentFix(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 55.0, fix.Latitude)
}
