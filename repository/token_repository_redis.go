// file: repository/token_repository_redis.go

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"go-auth-api/model"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisTokenRepository implements ITokenRepository on Redis. Records are
// stored as JSON under "refresh_record:<user_id>", so the single-key-per-user
// layout gives the at-most-one-record invariant for free. The TTL matches the
// refresh token lifespan: a record that outlives every token signed against
// it is unreachable anyway.
type RedisTokenRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTokenRepository(client *redis.Client, ttl time.Duration) *RedisTokenRepository {
	return &RedisTokenRepository{client: client, ttl: ttl}
}

func (r *RedisTokenRepository) key(userID int) string {
	return fmt.Sprintf("refresh_record:%d", userID)
}

func (r *RedisTokenRepository) Create(userID int) (*model.RefreshRecord, error) {
	record := &model.RefreshRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if err := r.client.Set(ctx, r.key(userID), data, r.ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store refresh record: %w", err)
	}
	return record, nil
}

func (r *RedisTokenRepository) DeleteByUserID(userID int) (int64, error) {
	ctx := context.Background()
	deleted, err := r.client.Del(ctx, r.key(userID)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to delete refresh record: %w", err)
	}
	return deleted, nil
}

func (r *RedisTokenRepository) GetByUserID(userID int) (*model.RefreshRecord, error) {
	ctx := context.Background()
	data, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh record: %w", err)
	}

	record := &model.RefreshRecord{}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, fmt.Errorf("failed to decode refresh record: %w", err)
	}
	return record, nil
}
