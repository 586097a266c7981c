package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/lk2023060901/search-api-backend/internal/pkg/errors"
	"github.com/lk2023060901/search-api-backend/internal/pkg/ratelimit"
	"github.com/lk2023060901/search-api-backend/internal/pkg/response"
)

// RateLimitMiddleware admits or refuses requests against the sliding window
// for the given endpoint key. A refused request is answered with 429 and is
// not recorded in the window.
func RateLimitMiddleware(limiter *ratelimit.Limiter, key string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision, allowed := limiter.Admit(key, time.Now())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", decision.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", decision.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", decision.Reset))

		if !allowed {
			logger.Warn("rate limit exceeded",
				zap.String("endpoint", key),
				zap.String("ip", c.ClientIP()),
				zap.Int("limit", decision.Limit),
			)
			c.Header("Retry-After", fmt.Sprintf("%d", int(limiter.Window().Seconds())))
			response.ErrorWithCode(c, apperrors.ErrSearchRateLimited)
			c.Abort()
			return
		}

		c.Next()
	}
}
