package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/srs-portal/internal/models"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Store persists sessions and their flash queues.
type Store interface {
	Save(ctx context.Context, sess *models.Session, ttl time.Duration) error
	Find(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	PushFlash(ctx context.Context, id string, flash models.Flash) error
	PopFlashes(ctx context.Context, id string) ([]models.Flash, error)
}

// RedisStore keeps sessions server-side in Redis. The browser only ever holds
// an opaque signed reference, so logout and expiry are authoritative.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a RedisStore.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id string) string { return "session:" + id }
func flashKey(id string) string   { return "session:" + id + ":flash" }

// Save stores the session payload under its ID with the given TTL.
func (s *RedisStore) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(sess.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Find loads a session by ID.
func (s *RedisStore) Find(ctx context.Context, id string) (*models.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	var sess models.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

// Delete removes the session and any pending flashes.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id), flashKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PushFlash appends a one-shot notice to the session's flash queue.
func (s *RedisStore) PushFlash(ctx context.Context, id string, flash models.Flash) error {
	payload, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, flashKey(id), payload)
	pipe.Expire(ctx, flashKey(id), 10*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push flash: %w", err)
	}
	return nil
}

// PopFlashes drains and returns the session's flash queue.
func (s *RedisStore) PopFlashes(ctx context.Context, id string) ([]models.Flash, error) {
	pipe := s.client.TxPipeline()
	entries := pipe.LRange(ctx, flashKey(id), 0, -1)
	pipe.Del(ctx, flashKey(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("pop flashes: %w", err)
	}

	raw, err := entries.Result()
	if err != nil {
		return nil, fmt.Errorf("read flashes: %w", err)
	}
	flashes := make([]models.Flash, 0, len(raw))
	for _, entry := range raw {
		var flash models.Flash
		if err := json.Unmarshal([]byte(entry), &flash); err != nil {
			continue
		}
		flashes = append(flashes, flash)
	}
	return flashes, nil
}
