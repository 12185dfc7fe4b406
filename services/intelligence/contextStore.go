// File: services/intelligence/contextStore.go
package ai

import (
	"context"
	"encoding/json"
	"time"

	"realtor/models"
	"realtor/utils"

	"github.com/go-redis/redis/v8"
)

// ConversationStore keeps the per-user booking flow context in Redis with a
// sliding TTL. A missing entry reads as a fresh conversation.
type ConversationStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewConversationStore(client *redis.Client, ttl time.Duration) *ConversationStore {
	return &ConversationStore{client: client, ttl: ttl}
}

func (s *ConversationStore) Get(ctx context.Context, userID string) (*models.ConversationContext, error) {
	key := utils.ConversationKeyPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.ConversationContext{}, nil
	}
	if err != nil {
		return nil, err
	}
	var convCtx models.ConversationContext
	if err := json.Unmarshal([]byte(data), &convCtx); err != nil {
		return nil, err
	}
	return &convCtx, nil
}

func (s *ConversationStore) Set(ctx context.Context, userID string, convCtx *models.ConversationContext) error {
	key := utils.ConversationKeyPrefix + userID
	b, err := json.Marshal(convCtx)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, b, s.ttl).Err()
}

func (s *ConversationStore) Clear(ctx context.Context, userID string) error {
	key := utils.ConversationKeyPrefix + userID
	return s.client.Del(ctx, key).Err()
}
