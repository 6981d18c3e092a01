package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	auditQueueKey = "audit_events"
)

// Действия рабочего процесса, попадающие в журнал аудита
const (
	ActionSubmitted = "submitted"
	ActionAssigned  = "assigned"
	ActionResponded = "responded"
	ActionFeedback  = "feedback"
	ActionReviewed  = "reviewed"
	ActionClosed    = "closed"
)

// Event - событие аудита рабочего процесса
type Event struct {
	IncidentID uuid.UUID `json:"incident_id"`
	Action     string    `json:"action"`
	ActorID    int64     `json:"actor_id"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// EventPublisher - интерфейс для публикации событий аудита
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisEventPublisher - реализация EventPublisher, использующая очередь Redis
type RedisEventPublisher struct {
	redisClient *redis.Client
}

// NewRedisEventPublisher создает новый RedisEventPublisher
func NewRedisEventPublisher(client *redis.Client) *RedisEventPublisher {
	return &RedisEventPublisher{
		redisClient: client,
	}
}

// Publish публикует событие аудита в очередь Redis
func (p *RedisEventPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal audit event: %w", err)
	}

	// Используем LPUSH для добавления события в левую часть списка (очереди)
	if err := p.redisClient.LPush(ctx, auditQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish audit event to Redis: %w", err)
	}
	return nil
}
