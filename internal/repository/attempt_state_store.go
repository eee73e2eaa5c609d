package repository

import (
	"context"
	"encoding/json"
	"git_quiz_backend/internal/model"
	"git_quiz_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

const attemptStateKeyPrefix = "quiz:attempt:state:"

// AttemptStateStore 以 attempt_id 为键在 Redis 中暂存答题进度，
// 进度是带 TTL 的检查点快照，过期即视为答题中断
type AttemptStateStore struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewAttemptStateStore(rdb *redis.Client, ttl time.Duration) *AttemptStateStore {
	return &AttemptStateStore{Redis: rdb, TTL: ttl}
}

func (s *AttemptStateStore) Save(state *model.AttemptState) error {
	state.SavedAt = time.Now()
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	ctx := context.Background()
	return s.Redis.Set(ctx, attemptStateKeyPrefix+state.AttemptID, data, s.TTL).Err()
}

func (s *AttemptStateStore) Load(attemptID string) (*model.AttemptState, error) {
	ctx := context.Background()
	val, err := s.Redis.Get(ctx, attemptStateKeyPrefix+attemptID).Result()
	if err == redis.Nil {
		return nil, util.ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}

	var state model.AttemptState
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *AttemptStateStore) Delete(attemptID string) error {
	ctx := context.Background()
	return s.Redis.Del(ctx, attemptStateKeyPrefix+attemptID).Err()
}
