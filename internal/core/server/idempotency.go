package server

import (
	"context"
	"encoding/json"
	"time"

	"loadharbour/internal/core/cache"
	"loadharbour/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderIdempotencyKey is the client-generated token that lets a retried
// write be recognized as a duplicate.
const HeaderIdempotencyKey = "Idempotency-Key"

// storedResponse is the cached outcome of a completed write.
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// Idempotency replays the recorded response for a write request that
// repeats a previously seen Idempotency-Key. Requests without the
// header pass through untouched. Only settled responses below 500 are
// recorded: transport-level failures stay retryable.
func Idempotency(store cache.Cache, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete:
		default:
			return c.Next()
		}

		key := c.Get(HeaderIdempotencyKey)
		if key == "" {
			return c.Next()
		}

		cacheKey := "idem:" + c.Method() + ":" + c.Path() + ":" + key

		// The request context is canceled as soon as the client goes
		// away; replay lookup and recording must outlive that.
		ctx := context.WithoutCancel(c.Context())

		if data, err := store.Get(ctx, cacheKey); err == nil {
			var stored storedResponse
			if err := json.Unmarshal(data, &stored); err == nil {
				c.Set("Idempotent-Replayed", "true")
				c.Set(fiber.HeaderContentType, stored.ContentType)
				return c.Status(stored.Status).Send(stored.Body)
			}
		}

		if err := c.Next(); err != nil {
			return err
		}

		status := c.Response().StatusCode()
		if status >= fiber.StatusInternalServerError {
			return nil
		}

		stored := storedResponse{
			Status:      status,
			ContentType: string(c.Response().Header.ContentType()),
			Body:        append([]byte(nil), c.Response().Body()...),
		}
		data, err := json.Marshal(stored)
		if err != nil {
			return nil
		}

		// SetNX keeps the first completed response when retries race.
		if _, err := store.SetNX(ctx, cacheKey, data, ttl); err != nil {
			logger.Get().Warn("Failed to record idempotent response",
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return nil
	}
}
