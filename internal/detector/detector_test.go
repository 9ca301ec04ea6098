package detector

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/proximity_alert_system/internal/detector/mocks"
	"github.com/shenikar/proximity_alert_system/internal/location"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID = "user-1"

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

type detectorMocks struct {
	feed        *mocks.MockFeed
	memberships *mocks.MockMemberships
	prefs       *mocks.MockPreferences
	candidates  *mocks.MockCandidates
}

func newTestDetector(t *testing.T, cfg Config) (*Detector, *detectorMocks) {
	ctrl := gomock.NewController(t)
	m := &detectorMocks{
		feed:        mocks.NewMockFeed(ctrl),
		memberships: mocks.NewMockMemberships(ctrl),
		prefs:       mocks.NewMockPreferences(ctrl),
		candidates:  mocks.NewMockCandidates(ctrl),
	}
	source := location.NewPushSource(location.PushSourceConfig{FixTimeout: time.Second})
	d := New(m.feed, m.memberships, m.prefs, m.candidates, source, newTestLogger(), testUserID, cfg)
	return d, m
}

func localFix() models.Fix {
	return models.Fix{
		Latitude:   55.0,
		Longitude:  37.0,
		CapturedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// publishedAt строит активное опубликованное местоположение со смещением
// по широте: 0.001 градуса - примерно 111 метров
func publishedAt(userID, groupID string, latOffset float64) models.PublishedLocation {
	return models.PublishedLocation{
		UserID:  userID,
		GroupID: groupID,
		Fix: models.Fix{
			Latitude:  55.0 + latOffset,
			Longitude: 37.0,
		},
		IsActive: true,
	}
}

func TestRecompute_NoLocalFix_NoOp(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	d.handleFeedUpdate(context.Background(), feedUpdate{
		groupID: "g1",
		set:     []models.PublishedLocation{publishedAt("remote-1", "g1", 0.0002)},
	})

	assert.Empty(t, d.Nearby())
	assert.Empty(t, d.ByDistance())
}

func TestRecompute_ExcludesSelfAndInactive(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	inactive := publishedAt("remote-2", "g1", 0.0002)
	inactive.IsActive = false

	m.prefs.EXPECT().GetNotificationPreferences(gomock.Any(), testUserID).Return(nil, errors.New("no prefs")).AnyTimes()
	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(1)

	d.HandleFix(context.Background(), localFix())
	d.handleFeedUpdate(context.Background(), feedUpdate{
		groupID: "g1",
		set: []models.PublishedLocation{
			publishedAt(testUserID, "g1", 0),       // собственная запись исключается
			publishedAt("remote-1", "g1", 0.0002),  // ~22 метра
			inactive,                               // неактивная запись отфильтровывается
		},
	})

	byDistance := d.ByDistance()
	require.Len(t, byDistance, 1)
	assert.Equal(t, "remote-1", byDistance[0].RemoteUserID)
}

func TestRecompute_SortsAndPartitionsByRadius(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	m.prefs.EXPECT().GetNotificationPreferences(gomock.Any(), testUserID).Return(nil, errors.New("no prefs")).AnyTimes()
	// В радиусе только два ближних
	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(2)

	d.HandleFix(context.Background(), localFix())
	d.handleFeedUpdate(context.Background(), feedUpdate{
		groupID: "g1",
		set: []models.PublishedLocation{
			publishedAt("far", "g1", 0.01),      // ~1.1 км
			publishedAt("near", "g1", 0.0002),   // ~22 м
			publishedAt("middle", "g1", 0.0007), // ~78 м
		},
	})

	byDistance := d.ByDistance()
	require.Len(t, byDistance, 3)
	assert.Equal(t, "near", byDistance[0].RemoteUserID)
	assert.Equal(t, "middle", byDistance[1].RemoteUserID)
	assert.Equal(t, "far", byDistance[2].RemoteUserID)

	nearby := d.Nearby()
	require.Len(t, nearby, 2)
	assert.Equal(t, "near", nearby[0].RemoteUserID)
	assert.Equal(t, "middle", nearby[1].RemoteUserID)
}

func TestRecompute_EmptyWhenEveryoneOutOfRadius(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	m.prefs.EXPECT().GetNotificationPreferences(gomock.Any(), testUserID).Return(nil, errors.New("no prefs")).AnyTimes()
	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	d.HandleFix(context.Background(), localFix())
	d.handleFeedUpdate(context.Background(), feedUpdate{
		groupID: "g1",
		// ~222 метра при радиусе 100
		set: []models.PublishedLocation{publishedAt("remote-1", "g1", 0.002)},
	})

	assert.Empty(t, d.Nearby())
	assert.Len(t, d.ByDistance(), 1)
}

func TestRecompute_RadiusOverrideWinsOverPreferences(t *testing.T) {
	d, m := newTestDetector(t, Config{
		RadiusOverrideMeters: 30,
		DefaultRadiusMeters:  100,
	})

	// Настройки не опрашиваются при явном override
	m.prefs.EXPECT().GetNotificationPreferences(gomock.Any(), gomock.Any()).Times(0)
	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(1)

	d.HandleFix(context.Background(), localFix())
	d.handleFeedUpdate(context.Background(), feedUpdate{
		groupID: "g1",
		set: []models.PublishedLocation{
			publishedAt("near", "g1", 0.0002),   // ~22 м, в радиусе 30
			publishedAt("middle", "g1", 0.0007), // ~78 м, вне радиуса 30
		},
	})

	nearby := d.Nearby()
	require.Len(t, nearby, 1)
	assert.Equal(t, "near", nearby[0].RemoteUserID)
}

func TestRecompute_PreferenceRadiusUsedWhenNoOverride(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 1000})

	m.prefs.EXPECT().
		GetNotificationPreferences(gomock.Any(), testUserID).
		Return(&models.NotificationPreferences{EnableProximityAlerts: true, ProximityRadiusMeters: 30}, nil).
		AnyTimes()
	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(1)

	d.HandleFix(context.Background(), localFix())
	d.handleFeedUpdate(context.Background(), feedUpdate{
		groupID: "g1",
		set: []models.PublishedLocation{
			publishedAt("near", "g1", 0.0002),
			publishedAt("middle", "g1", 0.0007),
		},
	})

	assert.Len(t, d.Nearby(), 1)
}

func TestRecompute_SubmitsCandidatesEveryPass(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	m.prefs.EXPECT().GetNotificationPreferences(gomock.Any(), testUserID).Return(nil, errors.New("no prefs")).AnyTimes()
	// Кандидат в радиусе отправляется на каждом проходе - подавление
	// повторов остается за дебаунсером
	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(3)

	d.HandleFix(context.Background(), localFix())
	d.handleFeedUpdate(context.Background(), feedUpdate{
		groupID: "g1",
		set:     []models.PublishedLocation{publishedAt("remote-1", "g1", 0.0002)},
	})

	d.CheckNow(context.Background())
	d.CheckNow(context.Background())
}

func TestRefreshGroups_SubscribesOncePerGroup(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	ch := make(chan []models.PublishedLocation)
	m.memberships.EXPECT().ListActiveBroadcastGroups(gomock.Any(), testUserID).Return([]string{"g1"}, nil).Times(2)
	// Повторный refresh с тем же набором групп не переподписывает фид
	m.feed.EXPECT().
		SubscribeGroup(gomock.Any(), "g1").
		Return((<-chan []models.PublishedLocation)(ch), func() {}, nil).
		Times(1)

	d.refreshGroups(context.Background())
	d.refreshGroups(context.Background())
}

func TestRefreshGroups_CancelsRemovedGroupSubscription(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	canceled := false
	ch := make(chan []models.PublishedLocation)
	m.memberships.EXPECT().ListActiveBroadcastGroups(gomock.Any(), testUserID).Return([]string{"g1"}, nil)
	m.feed.EXPECT().
		SubscribeGroup(gomock.Any(), "g1").
		Return((<-chan []models.PublishedLocation)(ch), func() { canceled = true }, nil)

	d.refreshGroups(context.Background())

	m.memberships.EXPECT().ListActiveBroadcastGroups(gomock.Any(), testUserID).Return([]string{}, nil)
	d.refreshGroups(context.Background())

	assert.True(t, canceled)
}

func TestRefreshGroups_SubscriptionFailureDegradesToEmptySet(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	m.memberships.EXPECT().ListActiveBroadcastGroups(gomock.Any(), testUserID).Return([]string{"g1"}, nil)
	m.feed.EXPECT().
		SubscribeGroup(gomock.Any(), "g1").
		Return(nil, nil, errors.New("redis down"))

	d.refreshGroups(context.Background())

	st := d.Status()
	assert.Contains(t, st.Error, "feed subscription for group g1 failed")

	// Сбой подписки - пустой набор для группы, детектор продолжает работать
	assert.Empty(t, d.Nearby())

	d.ClearError()
	assert.Empty(t, d.Status().Error)
}

func TestHandleFix_NoRecomputeWithoutRemoteFixes(t *testing.T) {
	d, m := newTestDetector(t, Config{DefaultRadiusMeters: 100})

	// Без известных удаленных фиксов проход детекции не запускается
	m.prefs.EXPECT().GetNotificationPreferences(gomock.Any(), gomock.Any()).Times(0)
	m.candidates.EXPECT().Submit(gomock.Any(), gomock.Any()).Times(0)

	d.HandleFix(context.Background(), localFix())
}
