package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	broadcastQueueKey = "broadcast_events"
)

// Топики realtime-канала
const (
	TopicIncidents = "incidents"
	TopicZones     = "zones"
	TopicAlerts    = "alerts"
)

// Event - конверт события realtime-канала
type Event struct {
	Topic     string    `json:"topic"`
	Event     string    `json:"event"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload,omitempty"`
}

// EventPublisher - интерфейс публикации событий в realtime-канал
type EventPublisher interface {
	Publish(ctx context.Context, topic, event string, payload any) error
}

// RedisEventPublisher - реализация EventPublisher поверх очереди в Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish сериализует событие и кладет его в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, topic, event string, payload any) error {
	envelope := Event{
		Topic:     topic,
		Event:     event,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	raw, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to marshal broadcast event: %w", err)
	}

	// LPUSH добавляет событие в левую часть списка, воркер читает справа
	if err := p.redisClient.LPush(ctx, broadcastQueueKey, raw).Err(); err != nil {
		return fmt.Errorf("failed to publish broadcast event to Redis: %w", err)
	}
	return nil
}
