package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evergrid/contract-timeline-backend/internal/pkg/logger"
)

// TimelineCache is an optional redis cache for timeline responses. It only
// ever caches the serialized response; state is still derived from the
// event log, and the accept path deletes the key before returning, so reads
// after a write always refold. A nil cache is a no-op.
type TimelineCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *logger.Logger
}

func NewTimelineCache(addr string, ttl time.Duration, baseLog *logger.Logger) *TimelineCache {
	if addr == "" {
		return nil
	}
	return &TimelineCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
		log: baseLog.With("service", "TimelineCache"),
	}
}

func timelineKey(contractNumber string) string {
	return "timeline:" + contractNumber
}

func (c *TimelineCache) Get(ctx context.Context, contractNumber string) (*ContractTimeline, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, timelineKey(contractNumber)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("Timeline cache read failed", "contract_number", contractNumber, "error", err)
		}
		return nil, false
	}
	var tl ContractTimeline
	if err := json.Unmarshal(raw, &tl); err != nil {
		c.log.Warn("Timeline cache entry corrupt, dropping", "contract_number", contractNumber, "error", err)
		_ = c.rdb.Del(ctx, timelineKey(contractNumber)).Err()
		return nil, false
	}
	return &tl, true
}

func (c *TimelineCache) Set(ctx context.Context, tl *ContractTimeline) {
	if c == nil || tl == nil {
		return
	}
	raw, err := json.Marshal(tl)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, timelineKey(tl.ContractNumber), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Timeline cache write failed", "contract_number", tl.ContractNumber, "error", err)
	}
}

func (c *TimelineCache) Invalidate(ctx context.Context, contractNumber string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, timelineKey(contractNumber)).Err(); err != nil {
		c.log.Warn("Timeline cache invalidation failed", "contract_number", contractNumber, "error", err)
	}
}
