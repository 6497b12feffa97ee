package observability

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_ContaPorRota(t *testing.T) {
	m := NewMetrics()
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/clients/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", m.Handler())

	for _, id := range []string{"a", "b"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/clients/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/clients/:id", "404")))

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "relampago_http_requests_total")
}

type mapCache map[string]bool

func (c mapCache) Get(_ context.Context, key string, _ any) (bool, error) { return c[key], nil }
func (c mapCache) Set(_ context.Context, key string, _ any, _ time.Duration) error {
	c[key] = true
	return nil
}

func TestInstrumentCache_AcertosEFaltas(t *testing.T) {
	m := NewMetrics()
	c := m.InstrumentCache(mapCache{})
	ctx := context.Background()

	_, _ = c.Get(ctx, "dashboard", nil)
	require.NoError(t, c.Set(ctx, "dashboard", 1, time.Minute))
	_, _ = c.Get(ctx, "dashboard", nil)
	_, _ = c.Get(ctx, "dashboard", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheMisses))
}
