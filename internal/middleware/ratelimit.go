package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kenjummy/booking-api/internal/apperr"
)

// RateLimit is a fixed-window per-IP limiter backed by redis. When redis is
// unreachable the request is allowed through so the API stays up.
func RateLimit(rdb *redis.Client, logger zerolog.Logger, max int64, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if rdb == nil {
			return c.Next()
		}

		ctx := c.Context()
		key := "ratelimit:" + c.IP()

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			return c.Next()
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > max {
			logger.Warn().Str("ip", c.IP()).Int64("count", count).Msg("rate limit exceeded")
			return apperr.New(fiber.StatusTooManyRequests, "Too many requests from this IP, please try again in an hour!")
		}

		return c.Next()
	}
}
