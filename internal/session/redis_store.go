package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client      *redis.Client
	prefix      string
	flashPrefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client:      client,
		prefix:      "session:",
		flashPrefix: "flash:",
	}
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisStore) flashKey(sessionID string) string {
	return r.flashPrefix + sessionID
}

func (r *RedisStore) Create(ctx context.Context, s Session) error {
	if s.SessionID == "" {
		return fmt.Errorf("session: missing session_id")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(s.SessionID), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	return &s, nil
}

func (r *RedisStore) Update(ctx context.Context, s Session) error {
	if s.SessionID == "" {
		return fmt.Errorf("session: missing session_id")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		// If expired, delete session instead of extending
		return r.Delete(ctx, s.SessionID)
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(s.SessionID), data, ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID), r.flashKey(sessionID)).Err()
}

// PushFlash appends a flash to the session's queue. The queue inherits
// the session TTL so orphaned flashes don't outlive the session.
func (r *RedisStore) PushFlash(ctx context.Context, sessionID string, f Flash) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("session: failed to marshal flash: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.RPush(ctx, r.flashKey(sessionID), data)
	pipe.Expire(ctx, r.flashKey(sessionID), TTL)
	_, err = pipe.Exec(ctx)
	return err
}

// DrainFlashes returns pending flashes in push order and empties the
// queue. Read and delete run in one transaction so a message is never
// delivered twice.
func (r *RedisStore) DrainFlashes(ctx context.Context, sessionID string) ([]Flash, error) {
	pipe := r.client.TxPipeline()
	items := pipe.LRange(ctx, r.flashKey(sessionID), 0, -1)
	pipe.Del(ctx, r.flashKey(sessionID))
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	raw := items.Val()
	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			return nil, fmt.Errorf("session: failed to unmarshal flash: %w", err)
		}
		flashes = append(flashes, f)
	}

	return flashes, nil
}
