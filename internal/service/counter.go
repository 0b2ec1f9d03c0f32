package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/fablestream/fablestream/internal/domain"
)

// CounterService keeps hot engagement counters in redis so list pages don't
// hit the relational store per item. Counters are advisory; the rows in
// postgres remain the source of truth.
type CounterService struct {
	rdb *redis.Client
}

func NewCounterService(redisClient *redis.Client) *CounterService {
	return &CounterService{
		rdb: redisClient,
	}
}

func likeKey(target domain.TargetRef) string {
	if target.StoryID != nil {
		return fmt.Sprintf("likes:story:%s", target.StoryID)
	}
	return fmt.Sprintf("likes:episode:%s", target.EpisodeID)
}

func (s *CounterService) IncrementLikes(ctx context.Context, target domain.TargetRef) error {
	return s.rdb.Incr(ctx, likeKey(target)).Err()
}

func (s *CounterService) DecrementLikes(ctx context.Context, target domain.TargetRef) error {
	return s.rdb.Decr(ctx, likeKey(target)).Err()
}

func (s *CounterService) Likes(ctx context.Context, target domain.TargetRef) (int64, error) {
	n, err := s.rdb.Get(ctx, likeKey(target)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return n, err
}

func (s *CounterService) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
