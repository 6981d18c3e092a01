package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Роли, которые движок различает. Закрывающий авторитет - это роль reviewer,
// а не зарезервированный идентификатор пользователя.
const (
	RoleQuality  = "quality"
	RoleReviewer = "reviewer"
)

// ErrSessionNotFound - токен неизвестен или сессия истекла
var ErrSessionNotFound = errors.New("session not found")

// Session - удостоверение действующего пользователя: его id, домашний отдел
// и роли. Разрешается из токена аутентифицированной сессии.
type Session struct {
	Token        string   `json:"-"`
	UserID       int64    `json:"user_id"`
	Username     string   `json:"username"`
	FullName     string   `json:"full_name"`
	DepartmentID int64    `json:"department_id"`
	Roles        []string `json:"roles"`
}

// HasRole проверяет наличие роли у сессии
func (s *Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsQuality - предикат "это отдел качества?"
func (s *Session) IsQuality() bool {
	return s.HasRole(RoleQuality)
}

// CanReview - предикат "это назначенный ревьюер обратной связи?"
func (s *Session) CanReview() bool {
	return s.HasRole(RoleReviewer)
}

// Store - контракт хранилища сессий
type Store interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// RedisStore - хранилище сессий в Redis с TTL
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает новое хранилище сессий
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// Create сохраняет сессию под ее токеном
func (s *RedisStore) Create(ctx context.Context, session *Session) error {
	val, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.Token), val, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Get возвращает сессию по токену
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(val, session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	session.Token = token
	return session, nil
}

// Delete удаляет сессию (logout)
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
