// Package redissvc caches serialized dashboard and report view-models in
// redis with a short TTL. Analytics endpoints are recomputed on every request
// otherwise; the figures tolerate a minute of staleness and mutations flush
// the cache anyway.
package redissvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cachePrefix = "backoffice:view:"
	cacheTTL    = 60 * time.Second
)

type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

// GetView loads a cached view-model into dest. Returns false on miss or any
// redis/decoding problem; callers fall through to recomputing.
func (s *RedisService) GetView(key string, dest any) bool {
	data, err := s.rdb.Get(s.ctx, cachePrefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetView caches a view-model. Failures are ignored: the cache is advisory.
func (s *RedisService) SetView(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.rdb.Set(s.ctx, cachePrefix+key, data, cacheTTL)
}

// InvalidateViews drops every cached view-model, called after any mutation
// that could change an aggregate.
func (s *RedisService) InvalidateViews() {
	iter := s.rdb.Scan(s.ctx, 0, cachePrefix+"*", 0).Iterator()
	for iter.Next(s.ctx) {
		s.rdb.Del(s.ctx, iter.Val())
	}
}
