package authz

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
)

// Checker answers role membership questions. Lookups hit the role tables and
// are cached in Redis for a short TTL; a cache outage degrades to direct
// store lookups.
type Checker struct {
	roles  repository.RoleRepository
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewChecker constructs a checker. The cache client may be nil.
func NewChecker(roles repository.RoleRepository, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Checker {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Checker{roles: roles, cache: cache, ttl: ttl, logger: logger}
}

// HasRole reports whether the user holds the given role.
func (c *Checker) HasRole(ctx context.Context, userID string, role domain.Role) (bool, error) {
	key := cacheKey(userID, role)
	if c.cache != nil {
		cached, err := c.cache.Get(ctx, key).Result()
		if err == nil {
			return cached == "1", nil
		}
		if err != redis.Nil && c.logger != nil {
			c.logger.Warn("role cache read failed", zap.Error(err))
		}
	}

	has, err := c.roles.HasRole(ctx, userID, role)
	if err != nil {
		return false, err
	}

	if c.cache != nil {
		val := "0"
		if has {
			val = "1"
		}
		if err := c.cache.Set(ctx, key, val, c.ttl).Err(); err != nil && c.logger != nil {
			c.logger.Warn("role cache write failed", zap.Error(err))
		}
	}
	return has, nil
}

// Invalidate drops the cached membership for a user/role pair. Called after
// a grant so the new role is visible immediately.
func (c *Checker) Invalidate(ctx context.Context, userID string, role domain.Role) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Del(ctx, cacheKey(userID, role)).Err(); err != nil && c.logger != nil {
		c.logger.Warn("role cache invalidate failed", zap.Error(err))
	}
}

func cacheKey(userID string, role domain.Role) string {
	return fmt.Sprintf("authz:role:%s:%s", userID, role)
}
