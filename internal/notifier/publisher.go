package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/proximity_alert_system/internal/alert"
)

const (
	alertQueueKey = "proximity_alert_events"
)

// RedisAlertSink - реализация alert.Sink, складывающая события алертов
// в очередь Redis для асинхронной доставки воркером
type RedisAlertSink struct {
	redisClient *redis.Client
}

// NewRedisAlertSink создает новый RedisAlertSink
func NewRedisAlertSink(client *redis.Client) *RedisAlertSink {
	return &RedisAlertSink{
		redisClient: client,
	}
}

// Fire публикует событие алерта в очередь Redis
func (p *RedisAlertSink) Fire(ctx context.Context, event alert.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
