// internal/gateway/ratelimit_test.go
package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-services/internal/common/config"
	"resume-services/internal/common/logger"
)

func setupLimiter(t *testing.T, limit, windowSeconds int, allowed []string) (*RateLimiter, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cfg := config.RateLimitConfig{
		RequestsPerWindow: limit,
		WindowSeconds:     windowSeconds,
	}
	return NewRateLimiter(rdb, cfg, allowed, logger.NewNoOpLogger()), mr
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	rl, _ := setupLimiter(t, 3, 300, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		decision, err := rl.Allow(ctx, "user-1", "jane@example.com")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	}
}

func TestRateLimiter_DeniesOverLimit(t *testing.T) {
	rl, _ := setupLimiter(t, 2, 300, nil)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := rl.Allow(ctx, "user-1", "jane@example.com")
		require.NoError(t, err)
	}

	decision, err := rl.Allow(ctx, "user-1", "jane@example.com")
	require.NoError(t, err)
	assert.False(t, decision.Allowed)
	assert.Greater(t, decision.RetryAfter, 0)
}

func TestRateLimiter_IsolatesUsers(t *testing.T) {
	rl, _ := setupLimiter(t, 1, 300, nil)
	ctx := context.Background()

	_, err := rl.Allow(ctx, "user-1", "jane@example.com")
	require.NoError(t, err)

	decision, err := rl.Allow(ctx, "user-2", "john@example.com")
	require.NoError(t, err)
	assert.True(t, decision.Allowed, "limit is per user")
}

func TestRateLimiter_AdminBypass(t *testing.T) {
	rl, _ := setupLimiter(t, 1, 300, []string{"Admin@Example.com"})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		decision, err := rl.Allow(ctx, "admin-1", "admin@example.com")
		require.NoError(t, err)
		assert.True(t, decision.Allowed)
	}
}

func TestRateLimiter_WindowExpiry(t *testing.T) {
	// Window membership is judged by wall-clock scores, so a real 1s window
	// can be waited out.
	rl, _ := setupLimiter(t, 1, 1, nil)
	ctx := context.Background()

	_, err := rl.Allow(ctx, "user-1", "jane@example.com")
	require.NoError(t, err)

	denied, err := rl.Allow(ctx, "user-1", "jane@example.com")
	require.NoError(t, err)
	require.False(t, denied.Allowed)

	time.Sleep(1100 * time.Millisecond)

	allowed, err := rl.Allow(ctx, "user-1", "jane@example.com")
	require.NoError(t, err)
	assert.True(t, allowed.Allowed)
}
