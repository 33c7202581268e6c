package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	app := fiber.New()
	app.Use(Metrics())
	app.Get("/api/forms/:id", func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/forms/:id", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"CVM240001", "CVM240002"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/forms/"+id, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(httpInFlight))
}

func TestRecordRateLimited(t *testing.T) {
	counter := httpRateLimited.WithLabelValues("form-submit")
	before := testutil.ToFloat64(counter)

	RecordRateLimited("form-submit")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
