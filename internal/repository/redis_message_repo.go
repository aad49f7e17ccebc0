// internal/repository/redis_message_repo.go
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vitalis-server/internal/common/database"
	"vitalis-server/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisMessageRepository stores the message log as a single JSON-encoded
// value under one key, newest first.
type RedisMessageRepository struct {
	client *database.RedisClient
	key    string
}

func NewRedisMessageRepository(client *database.RedisClient, key string) *RedisMessageRepository {
	return &RedisMessageRepository{client: client, key: key}
}

func (r *RedisMessageRepository) Load(ctx context.Context) ([]models.Message, error) {
	raw, err := r.client.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Message{}, nil
		}
		return nil, fmt.Errorf("load messages: %w", err)
	}

	var messages []models.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return messages, nil
}

func (r *RedisMessageRepository) Store(ctx context.Context, messages []models.Message) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encode messages: %w", err)
	}
	// No expiration: the log lives until the store is cleared.
	if err := r.client.Set(ctx, r.key, raw, 0); err != nil {
		return fmt.Errorf("store messages: %w", err)
	}
	return nil
}
