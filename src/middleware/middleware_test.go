package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/royhasan/StudyMate-Server/src/metrics"
	"github.com/royhasan/StudyMate-Server/src/middleware"
)

func TestRequestIDGeneratedWhenAbsent(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if resp.Header.Get(fiber.HeaderXRequestID) == "" {
		t.Error("X-Request-ID not set")
	}
}

func TestRequestIDHonorsClientValue(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "client-id-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	if got := resp.Header.Get(fiber.HeaderXRequestID); got != "client-id-1" {
		t.Errorf("X-Request-ID = %q, want client-id-1", got)
	}
}

func TestHTTPMetricsCountsRequests(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	app := fiber.New()
	app.Use(middleware.HTTPMetrics(m))
	app.Get("/partners", func(c *fiber.Ctx) error { return c.SendString("[]") })

	for i := 0; i < 3; i++ {
		if _, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/partners", nil)); err != nil {
			t.Fatalf("request failed: %v", err)
		}
	}

	got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(fiber.MethodGet, "/partners", "200"))
	if got != 3 {
		t.Errorf("requests_total = %v, want 3", got)
	}
}

func TestRequestLoggerPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(zap.NewNop()))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
