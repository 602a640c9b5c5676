package metrics_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"shop/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareAndHandler(t *testing.T) {
	app := fiber.New()
	app.Use(metrics.Middleware())
	app.Get("/items/:id", func(c *fiber.Ctx) error { return c.SendString(c.Params("id")) })
	app.Get("/metrics", metrics.Handler())

	before := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("GET", "/items/:id", "200"))

	resp, err := app.Test(httptest.NewRequest("GET", "/items/42", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	after := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("GET", "/items/:id", "200"))
	assert.Equal(t, before+1, after)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shop_http_requests_total")
}

func TestRecordCommitAndQuery(t *testing.T) {
	okBefore := testutil.ToFloat64(metrics.CommitsTotal.WithLabelValues("test", "ok"))
	failedBefore := testutil.ToFloat64(metrics.CommitsTotal.WithLabelValues("test", "failed"))

	metrics.RecordCommit("test", nil)
	metrics.RecordCommit("test", errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.CommitsTotal.WithLabelValues("test", "ok")))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(metrics.CommitsTotal.WithLabelValues("test", "failed")))

	errBefore := testutil.ToFloat64(metrics.DbErrors.WithLabelValues("insert", "products"))
	metrics.RecordDBQuery("insert", "products", time.Millisecond, errors.New("constraint"))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.DbErrors.WithLabelValues("insert", "products")))
}
