package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const draftTTL = 24 * time.Hour

// DraftStore keeps generated recipe drafts in Redis with a 24h TTL
type DraftStore struct {
	redis *redis.Client
}

func NewDraftStore(client *redis.Client) *DraftStore {
	return &DraftStore{redis: client}
}

func draftKey(id string) string {
	return fmt.Sprintf("recipe:draft:%s", id)
}

// Save assigns the draft an ID and stores it
func (s *DraftStore) Save(ctx context.Context, draft *GeneratedRecipe) error {
	draft.ID = uuid.New().String()

	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal draft: %w", err)
	}

	if err := s.redis.Set(ctx, draftKey(draft.ID), data, draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save draft to Redis: %w", err)
	}
	return nil
}

// Get retrieves a draft by ID
func (s *DraftStore) Get(ctx context.Context, id string) (*GeneratedRecipe, error) {
	data, err := s.redis.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get draft from Redis: %w", err)
	}

	var draft GeneratedRecipe
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

// Delete removes a draft by ID
func (s *DraftStore) Delete(ctx context.Context, id string) error {
	if err := s.redis.Del(ctx, draftKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft from Redis: %w", err)
	}
	return nil
}
