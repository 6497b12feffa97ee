// Package observability métricas Prometheus da API.
package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/relampago/backoffice-api/internal/application/ports"
)

// Metrics registro próprio; NewMetrics pode ser chamado várias vezes (testes) sem colisão.
type Metrics struct {
	Registry *prometheus.Registry

	requests    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "relampago_http_requests_total",
				Help: "Total de requisições HTTP por rota e status.",
			},
			[]string{"method", "route", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "relampago_http_request_duration_seconds",
				Help:    "Duração das requisições HTTP.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "relampago_metrics_cache_hits_total",
			Help: "Leituras de métricas servidas pelo cache.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "relampago_metrics_cache_misses_total",
			Help: "Leituras de métricas que precisaram ser calculadas.",
		}),
	}
}

// Middleware registra contagem e latência usando o padrão da rota (não o path cru).
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else if status < fiber.StatusBadRequest {
				status = fiber.StatusInternalServerError
			}
		}
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}
		m.requests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler expõe o registro no formato de exposição do Prometheus.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
}

// InstrumentCache conta acertos e faltas do cache de métricas.
func (m *Metrics) InstrumentCache(next ports.MetricsCache) ports.MetricsCache {
	return &instrumentedCache{next: next, m: m}
}

type instrumentedCache struct {
	next ports.MetricsCache
	m    *Metrics
}

func (c *instrumentedCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	ok, err := c.next.Get(ctx, key, dst)
	if ok {
		c.m.cacheHits.Inc()
	} else {
		c.m.cacheMisses.Inc()
	}
	return ok, err
}

func (c *instrumentedCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	return c.next.Set(ctx, key, v, ttl)
}
