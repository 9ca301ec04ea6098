package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/proximity_alert_system/internal/alert"
	"github.com/shenikar/proximity_alert_system/internal/detector"
	"github.com/shenikar/proximity_alert_system/internal/location"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/shenikar/proximity_alert_system/internal/scheduler"
	"github.com/sirupsen/logrus"
)

// Broadcasts определяет контракт управления трансляцией пользователя
type Broadcasts interface {
	SetBroadcasting(ctx context.Context, userID, groupID string, broadcasting bool) error
}

// Alerts определяет контракт подтверждения алертов
type Alerts interface {
	AcknowledgeAlert(ctx context.Context, id uuid.UUID) error
}

// DetectionView - представление результатов детекции для UI
type DetectionView struct {
	Nearby      []models.ProximityCandidate `json:"nearby"`
	ByDistance  []models.ProximityCandidate `json:"by_distance"`
	IsDetecting bool                        `json:"is_detecting"`
	Error       string                      `json:"error,omitempty"`
}

// ProximityService определяет контракт ядра синхронизации и детекции
// близости для HTTP-слоя и хоста процесса
type ProximityService interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	OfferFix(fix models.Fix)
	SetDeviceState(permissionGranted, positioningEnabled, backgroundMode bool)
	SyncNow(ctx context.Context) error
	CheckNow(ctx context.Context)
	SyncStatus() scheduler.Status
	DetectStatus() DetectionView
	ClearError()
	SetBroadcasting(ctx context.Context, groupID string, broadcasting bool) error
	AcknowledgeAlert(ctx context.Context, id uuid.UUID) error
}

type proximityService struct {
	source     *location.PushSource
	scheduler  *scheduler.Scheduler
	detector   *detector.Detector
	debouncer  *alert.Debouncer
	broadcasts Broadcasts
	alerts     Alerts
	publisher  scheduler.Publisher
	logger     *logrus.Logger
	userID     string
}

// NewProximityService собирает сервис из конвейера синхронизации и детекции
func NewProximityService(
	source *location.PushSource,
	sched *scheduler.Scheduler,
	det *detector.Detector,
	deb *alert.Debouncer,
	broadcasts Broadcasts,
	alerts Alerts,
	publisher scheduler.Publisher,
	logger *logrus.Logger,
	userID string,
) ProximityService {
	return &proximityService{
		source:     source,
		scheduler:  sched,
		detector:   det,
		debouncer:  deb,
		broadcasts: broadcasts,
		alerts:     alerts,
		publisher:  publisher,
		logger:     logger,
		userID:     userID,
	}
}

// Start запускает циклы планировщика, детектора и чистку дебаунсера
func (s *proximityService) Start(ctx context.Context) {
	go s.scheduler.Run(ctx)
	go s.detector.Run(ctx)
	go s.debouncer.RunHousekeeping(ctx)
	s.logger.Info("Proximity service pipelines started")
}

// Stop синхронно останавливает конвейер: подписка на фиксы и все
// отложенные таймеры планировщика снимаются до возврата
func (s *proximityService) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.scheduler.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	if err := s.detector.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("service: %w", err)
	}
	s.debouncer.Shutdown()
	s.logger.Info("Proximity service pipelines stopped")
	return nil
}

// OfferFix передает показание устройства источнику местоположений
func (s *proximityService) OfferFix(fix models.Fix) {
	s.source.Offer(fix)
}

// SetDeviceState обновляет доступность позиционирования и режим каденции
func (s *proximityService) SetDeviceState(permissionGranted, positioningEnabled, backgroundMode bool) {
	s.source.SetAvailability(permissionGranted, positioningEnabled)
	if backgroundMode {
		s.source.SetMode(location.ModeBackground)
	} else {
		s.source.SetMode(location.ModeForeground)
	}
}

// SyncNow выполняет немедленную публикацию в обход троттлинга и фильтра
func (s *proximityService) SyncNow(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "proximity",
		"method":  "SyncNow",
		"user_id": s.userID,
	})
	if err := s.scheduler.SyncNow(ctx); err != nil {
		log.WithError(err).Warn("Forced sync failed")
		return fmt.Errorf("service: forced sync failed: %w", err)
	}
	log.Info("Forced sync completed")
	return nil
}

// CheckNow выполняет немедленный проход детекции
func (s *proximityService) CheckNow(ctx context.Context) {
	s.detector.CheckNow(ctx)
}

// SyncStatus возвращает срез состояния синхронизации
func (s *proximityService) SyncStatus() scheduler.Status {
	return s.scheduler.Status()
}

// DetectStatus возвращает представление результатов детекции
func (s *proximityService) DetectStatus() DetectionView {
	st := s.detector.Status()
	return DetectionView{
		Nearby:      s.detector.Nearby(),
		ByDistance:  s.detector.ByDistance(),
		IsDetecting: st.IsDetecting,
		Error:       st.Error,
	}
}

// ClearError сбрасывает залипшие ошибки синхронизации и детекции
func (s *proximityService) ClearError() {
	s.scheduler.ClearError()
	s.detector.ClearError()
}

// SetBroadcasting переключает трансляцию в группе. При выключении
// опубликованное местоположение помечается неактивным - запись для
// (пользователь, группа) существует только пока трансляция включена.
func (s *proximityService) SetBroadcasting(ctx context.Context, groupID string, broadcasting bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "proximity",
		"method":   "SetBroadcasting",
		"user_id":  s.userID,
		"group_id": groupID,
	})

	if err := s.broadcasts.SetBroadcasting(ctx, s.userID, groupID, broadcasting); err != nil {
		log.WithError(err).Error("Failed to set broadcasting state")
		return fmt.Errorf("service: could not set broadcasting: %w", err)
	}

	if !broadcasting {
		if err := s.publisher.DeactivateLocation(ctx, s.userID, groupID); err != nil {
			log.WithError(err).Warn("Failed to deactivate published location")
		}
	}

	s.scheduler.RefreshMemberships(ctx)
	log.WithField("broadcasting", broadcasting).Info("Broadcasting state updated")
	return nil
}

// AcknowledgeAlert помечает алерт подтвержденным со стороны UI
func (s *proximityService) AcknowledgeAlert(ctx context.Context, id uuid.UUID) error {
	if err := s.alerts.AcknowledgeAlert(ctx, id); err != nil {
		return fmt.Errorf("service: could not acknowledge alert: %w", err)
	}
	return nil
}

// SchedulerBroadcastState адаптирует активные группы планировщика под
// прекондицию дебаунсера «алерты только при собственной трансляции»
type SchedulerBroadcastState struct {
	scheduler *scheduler.Scheduler
}

// NewSchedulerBroadcastState создает адаптер состояния трансляции
func NewSchedulerBroadcastState(s *scheduler.Scheduler) *SchedulerBroadcastState {
	return &SchedulerBroadcastState{scheduler: s}
}

// IsBroadcasting сообщает, транслирует ли пользователь в группу
func (b *SchedulerBroadcastState) IsBroadcasting(groupID string) bool {
	for _, g := range b.scheduler.ActiveGroups() {
		if g == groupID {
			return true
		}
	}
	return false
}
