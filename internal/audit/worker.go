package audit

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/alnas-hms/ovr-system/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Worker - фоновый обработчик очереди аудита: забирает события из Redis
// и сохраняет их в таблицу audit_log
type Worker struct {
	redisClient *redis.Client
	db          *pgxpool.Pool
	logger      *logrus.Logger
	cfg         *config.Config
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, db *pgxpool.Pool, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		db:          db,
		logger:      logger,
		cfg:         cfg,
	}
}

// Start запускает горутину для обработки очереди аудита
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting audit worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping audit worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части списка (очереди)
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, auditQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue // Контекст отменен, но не ошибка Redis
					}
					w.logger.WithError(err).Error("Failed to pop audit event from Redis")
					time.Sleep(w.cfg.AuditRetryDelay) // Ждем перед повторной попыткой
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var event Event
				if err := json.Unmarshal([]byte(payload), &event); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal audit event from Redis")
					continue
				}

				w.persistEvent(ctx, event, payload)
			}
		}
	}()
}

func (w *Worker) persistEvent(ctx context.Context, event Event, rawPayload string) {
	log := w.logger.WithField("incident_id", event.IncidentID).WithField("action", event.Action)
	log.Debug("Persisting audit event...")

	query := `
		INSERT INTO audit_log (incident_id, action, actor_id, detail, payload, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := w.db.Exec(ctx, query,
		event.IncidentID,
		event.Action,
		event.ActorID,
		event.Detail,
		rawPayload,
		event.Timestamp,
	)
	if err != nil {
		// Событие возвращается в очередь, чтобы не потерять запись аудита
		log.WithError(err).Error("Failed to persist audit event, requeueing")
		if pushErr := w.redisClient.LPush(ctx, auditQueueKey, rawPayload).Err(); pushErr != nil {
			log.WithError(pushErr).Error("Failed to requeue audit event")
		}
		time.Sleep(w.cfg.AuditRetryDelay)
		return
	}
	log.Debug("Audit event persisted")
}
