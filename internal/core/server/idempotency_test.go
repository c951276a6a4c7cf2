package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"loadharbour/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idempotencyApp(t *testing.T, calls *atomic.Int64) *fiber.App {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	app := fiber.New()
	app.Use(Idempotency(store, time.Minute))
	app.Post("/api/loads", func(c *fiber.Ctx) error {
		n := calls.Add(1)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"call": strconv.FormatInt(n, 10)})
	})
	return app
}

func TestIdempotency_ReplaysFirstResponse(t *testing.T) {
	var calls atomic.Int64
	app := idempotencyApp(t, &calls)

	first := httptest.NewRequest("POST", "/api/loads", nil)
	first.Header.Set(HeaderIdempotencyKey, "key-1")
	resp, err := app.Test(first)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	firstBody, _ := io.ReadAll(resp.Body)

	retry := httptest.NewRequest("POST", "/api/loads", nil)
	retry.Header.Set(HeaderIdempotencyKey, "key-1")
	resp, err = app.Test(retry)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "true", resp.Header.Get("Idempotent-Replayed"))

	retryBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, firstBody, retryBody)
	assert.Equal(t, int64(1), calls.Load())
}

func TestIdempotency_DistinctKeysExecuteSeparately(t *testing.T) {
	var calls atomic.Int64
	app := idempotencyApp(t, &calls)

	for _, key := range []string{"key-a", "key-b"} {
		req := httptest.NewRequest("POST", "/api/loads", nil)
		req.Header.Set(HeaderIdempotencyKey, key)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	assert.Equal(t, int64(2), calls.Load())
}

func TestIdempotency_NoHeaderPassesThrough(t *testing.T) {
	var calls atomic.Int64
	app := idempotencyApp(t, &calls)

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/api/loads", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	assert.Equal(t, int64(2), calls.Load())
}
