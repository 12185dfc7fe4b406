// File: services/intelligence/profileStore.go
package ai

import (
	"context"
	"encoding/json"

	"realtor/models"
	"realtor/utils"

	"github.com/go-redis/redis/v8"
)

// ProfileStore persists user profiles across conversations. Unlike the
// conversation context, profiles never expire.
type ProfileStore struct {
	client *redis.Client
}

func NewProfileStore(client *redis.Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	key := utils.ProfileKeyPrefix + userID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return &models.UserProfile{}, nil
	}
	if err != nil {
		return nil, err
	}
	var profile models.UserProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update merges the learned details into the stored profile so new facts
// never erase old ones, then writes the result back.
func (s *ProfileStore) Update(ctx context.Context, userID string, learned models.UserProfile) (*models.UserProfile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Merge(learned)

	b, err := json.Marshal(profile)
	if err != nil {
		return nil, err
	}
	key := utils.ProfileKeyPrefix + userID
	if err := s.client.Set(ctx, key, b, 0).Err(); err != nil {
		return nil, err
	}
	return profile, nil
}
