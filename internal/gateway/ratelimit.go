// internal/gateway/ratelimit.go
package gateway

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"resume-services/internal/common/config"
	apierrors "resume-services/internal/common/errors"
	"resume-services/internal/common/logger"
	"resume-services/internal/common/metrics"
)

// RateLimiter enforces a per-user sliding window over Redis sorted sets.
// Admin e-mails bypass the limit. Redis outages fail open so the pipeline
// never hard-depends on the limiter.
type RateLimiter struct {
	redis         *redis.Client
	limit         int
	window        time.Duration
	allowedEmails map[string]struct{}
	logger        logger.Logger
}

// Decision is the outcome of one rate limit check.
type Decision struct {
	Allowed    bool
	Remaining  int
	RetryAfter int // seconds
}

func NewRateLimiter(rdb *redis.Client, cfg config.RateLimitConfig, allowedEmails []string, log logger.Logger) *RateLimiter {
	allowed := make(map[string]struct{}, len(allowedEmails))
	for _, email := range allowedEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}

	return &RateLimiter{
		redis:         rdb,
		limit:         cfg.RequestsPerWindow,
		window:        time.Duration(cfg.WindowSeconds) * time.Second,
		allowedEmails: allowed,
		logger:        log.WithFields(map[string]interface{}{"component": "rate-limiter"}),
	}
}

func (rl *RateLimiter) isAdmin(email string) bool {
	_, ok := rl.allowedEmails[strings.ToLower(email)]
	return ok
}

func (rl *RateLimiter) requestsKey(userID string) string {
	return "rate_limit:" + userID + ":requests"
}

// Allow records the request and reports whether the user is inside the
// window limit.
func (rl *RateLimiter) Allow(ctx context.Context, userID, email string) (*Decision, error) {
	if rl.isAdmin(email) {
		return &Decision{Allowed: true, Remaining: rl.limit}, nil
	}

	key := rl.requestsKey(userID)
	now := time.Now()
	windowStart := now.Add(-rl.window)

	if err := rl.redis.ZRemRangeByScore(ctx, key, "0",
		strconv.FormatInt(windowStart.UnixMilli(), 10)).Err(); err != nil {
		return nil, err
	}

	count, err := rl.redis.ZCard(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	if count >= int64(rl.limit) {
		retryAfter := rl.retryAfter(ctx, key, now)
		return &Decision{Allowed: false, RetryAfter: retryAfter}, nil
	}

	member := redis.Z{
		Score:  float64(now.UnixMilli()),
		Member: strconv.FormatInt(now.UnixNano(), 10) + ":" + uuid.NewString(),
	}
	if err := rl.redis.ZAdd(ctx, key, member).Err(); err != nil {
		return nil, err
	}
	rl.redis.Expire(ctx, key, rl.window)

	return &Decision{Allowed: true, Remaining: rl.limit - int(count) - 1}, nil
}

// retryAfter derives the wait until the oldest entry leaves the window.
func (rl *RateLimiter) retryAfter(ctx context.Context, key string, now time.Time) int {
	oldest, err := rl.redis.ZRangeWithScores(ctx, key, 0, 0).Result()
	if err != nil || len(oldest) == 0 {
		return int(rl.window.Seconds())
	}

	expiresAt := time.UnixMilli(int64(oldest[0].Score)).Add(rl.window)
	wait := int(time.Until(expiresAt).Seconds()) + 1
	if wait < 1 {
		wait = 1
	}
	return wait
}

// RateLimitMiddleware rejects over-limit requests with 429 and Retry-After.
func RateLimitMiddleware(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ctxUserIDKey)
		email := c.GetString(ctxEmailKey)

		decision, err := rl.Allow(c.Request.Context(), userID, email)
		if err != nil {
			// Fail open: a limiter outage must not take the gateway down.
			rl.logger.Warn("rate limit check failed", map[string]interface{}{
				"userId": userID,
				"error":  err,
			})
			c.Next()
			return
		}

		if !decision.Allowed {
			metrics.RateLimitRejectedTotal.WithLabelValues("gateway").Inc()
			apiErr := apierrors.NewRateLimitError(decision.RetryAfter)
			c.Header("Retry-After", strconv.Itoa(decision.RetryAfter))
			c.AbortWithStatusJSON(apiErr.Status(), apiErr)
			return
		}

		c.Next()
	}
}
