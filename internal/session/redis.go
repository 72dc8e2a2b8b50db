package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgredis "github.com/enrique0rtiz/software-pagos/pkg/redis"
)

const redisKeyPrefix = "session:"

// RedisStore Redis 会话存储
// 会话状态 JSON 序列化后按 TTL 写入，过期由 Redis 负责
type RedisStore struct {
	rdb *pkgredis.Client
}

// NewRedisStore 创建 Redis 会话存储
func NewRedisStore(rdb *pkgredis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Data, error) {
	raw, err := s.rdb.Get(ctx, redisKeyPrefix+id)
	if err != nil {
		if errors.Is(err, pkgredis.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *RedisStore) Save(ctx context.Context, id string, data *Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.rdb.SetWithTTL(ctx, redisKeyPrefix+id, raw, ttl)
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, redisKeyPrefix+id)
}
