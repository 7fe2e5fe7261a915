package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"pharmacy-admin-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// NewRedisClient creates a Redis client from the configuration
func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

// PingRedis checks the client can reach the server
func PingRedis(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}

// RedisSessionStore keeps sessions as expiring keys session:<id> holding the user id.
type RedisSessionStore struct {
	Client *redis.Client
}

// NewRedisSessionStore creates a Redis backed session store
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &RedisSessionStore{Client: client}
}

// 1 Save stores the session with its TTL
func (s *RedisSessionStore) Save(ctx context.Context, id string, userID uint, ttl time.Duration) error {
	if err := s.Client.Set(ctx, sessionKeyPrefix+id, strconv.FormatUint(uint64(userID), 10), ttl).Err(); err != nil {
		return storageError("save session", err)
	}
	return nil
}

// 2 Find returns the user id of a live session
func (s *RedisSessionStore) Find(ctx context.Context, id string) (uint, error) {
	val, err := s.Client.Get(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, storageError("find session", err)
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrSessionNotFound
	}
	return uint(userID), nil
}

// 3 Delete removes the session key
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.Client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
		return storageError("delete session", err)
	}
	return nil
}

// 4 PurgeExpired is a no-op, Redis expires keys itself
func (s *RedisSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	return 0, nil
}
