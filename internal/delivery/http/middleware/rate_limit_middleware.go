package middleware

import (
	"math"
	"strconv"
	"time"

	"pagecast/config"
	domainerrors "pagecast/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware throttles a route with one shared token bucket.
type RateLimitMiddleware struct {
	limiter *rate.Limiter
}

// NewRateLimitMiddleware allows cfg.RateLimit.Requests per Interval, bursting
// up to Requests. A zero request count disables the limit.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	limits := cfg.RateLimit
	if limits == nil || limits.Requests <= 0 || limits.Interval <= 0 {
		return &RateLimitMiddleware{}
	}

	every := limits.Interval / time.Duration(limits.Requests)

	return &RateLimitMiddleware{
		limiter: rate.NewLimiter(rate.Every(every), limits.Requests),
	}
}

// Limit rejects requests once the bucket is empty.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.limiter == nil {
			return next(c)
		}

		reservation := m.limiter.Reserve()
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))

			return domainerrors.ErrRateLimited
		}

		return next(c)
	}
}
