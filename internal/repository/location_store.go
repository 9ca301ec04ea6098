package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/proximity_alert_system/internal/models"
	"github.com/sirupsen/logrus"
)

// LocationStore хранит PublishedLocation в Redis: хэш на группу,
// последняя запись побеждает, история не хранится. Уведомления об
// изменениях идут через pub/sub канал группы.
type LocationStore struct {
	redisClient *redis.Client
	logger      *logrus.Logger
}

// NewLocationStore создает Redis-хранилище опубликованных местоположений
func NewLocationStore(redisClient *redis.Client, logger *logrus.Logger) *LocationStore {
	return &LocationStore{
		redisClient: redisClient,
		logger:      logger,
	}
}

func groupKey(groupID string) string {
	return fmt.Sprintf("group_locations:%s", groupID)
}

func feedChannel(groupID string) string {
	return fmt.Sprintf("locfeed:%s", groupID)
}

// PublishLocation записывает фикс пользователя в группу и оповещает подписчиков фида
func (s *LocationStore) PublishLocation(ctx context.Context, userID, groupID string, fix models.Fix) error {
	loc := models.PublishedLocation{
		UserID:      userID,
		GroupID:     groupID,
		Fix:         fix,
		LastUpdated: time.Now().UTC(),
		IsActive:    true,
	}
	return s.writeLocation(ctx, loc)
}

// DeactivateLocation помечает местоположение пользователя в группе неактивным.
// Отсутствующая запись - no-op.
func (s *LocationStore) DeactivateLocation(ctx context.Context, userID, groupID string) error {
	val, err := s.redisClient.HGet(ctx, groupKey(groupID), userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to read published location: %w", err)
	}

	loc := models.PublishedLocation{}
	if err := json.Unmarshal(val, &loc); err != nil {
		return fmt.Errorf("failed to unmarshal published location: %w", err)
	}

	loc.IsActive = false
	loc.LastUpdated = time.Now().UTC()
	return s.writeLocation(ctx, loc)
}

func (s *LocationStore) writeLocation(ctx context.Context, loc models.PublishedLocation) error {
	payload, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal published location: %w", err)
	}

	if err := s.redisClient.HSet(ctx, groupKey(loc.GroupID), loc.UserID, payload).Err(); err != nil {
		return fmt.Errorf("failed to write published location: %w", err)
	}

	// Подписчики перечитывают полный набор сами, полезная нагрузка не нужна
	if err := s.redisClient.Publish(ctx, feedChannel(loc.GroupID), loc.UserID).Err(); err != nil {
		return fmt.Errorf("failed to notify group feed: %w", err)
	}
	return nil
}

// GroupLocations возвращает полный текущий набор опубликованных
// местоположений группы
func (s *LocationStore) GroupLocations(ctx context.Context, groupID string) ([]models.PublishedLocation, error) {
	entries, err := s.redisClient.HGetAll(ctx, groupKey(groupID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read group locations: %w", err)
	}

	locations := make([]models.PublishedLocation, 0, len(entries))
	for userID, raw := range entries {
		loc := models.PublishedLocation{}
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			s.logger.WithError(err).WithFields(logrus.Fields{
				"group_id": groupID,
				"user_id":  userID,
			}).Warn("Skipping malformed published location")
			continue
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// SubscribeGroup открывает push-подписку на местоположения группы.
// На каждое изменение эмитится полный текущий набор. cancel идемпотентен.
func (s *LocationStore) SubscribeGroup(ctx context.Context, groupID string) (<-chan []models.PublishedLocation, func(), error) {
	pubsub := s.redisClient.Subscribe(ctx, feedChannel(groupID))
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, nil, fmt.Errorf("failed to subscribe to group feed: %w", err)
	}

	out := make(chan []models.PublishedLocation, 4)
	done := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			close(done)
			_ = pubsub.Close()
		})
	}

	go func() {
		defer close(out)

		// Первая эмиссия - текущее состояние, чтобы подписчик не ждал изменения
		s.emitSet(ctx, groupID, out, done)

		msgs := pubsub.Channel()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				s.emitSet(ctx, groupID, out, done)
			}
		}
	}()

	return out, cancel, nil
}

// emitSet читает и отправляет полный набор группы. Сбой чтения
// деградирует до пустого набора, подписка не рвется.
func (s *LocationStore) emitSet(ctx context.Context, groupID string, out chan<- []models.PublishedLocation, done <-chan struct{}) {
	set, err := s.GroupLocations(ctx, groupID)
	if err != nil {
		s.logger.WithError(err).WithField("group_id", groupID).Warn("Feed read failed, emitting empty set")
		set = []models.PublishedLocation{}
	}

	select {
	case out <- set:
	case <-done:
	case <-ctx.Done():
	}
}
