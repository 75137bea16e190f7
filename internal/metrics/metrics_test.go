package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	c := New()

	c.ConnectionOpened()
	c.ConnectionOpened()
	c.ConnectionClosed()
	c.GameStarted()
	c.FoodEaten(3)
	c.FoodEaten(0)
	c.GameOver("wall collision", 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.connections))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.gamesStarted))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.foodEaten))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.gamesOver.WithLabelValues("wall collision")))
	assert.Equal(t, 1, testutil.CollectAndCount(c.finalScore))
}

func TestNilCollectorIsNoop(t *testing.T) {
	var c *Collector

	assert.NotPanics(t, func() {
		c.ConnectionOpened()
		c.ConnectionClosed()
		c.GameStarted()
		c.FoodEaten(1)
		c.GameOver("self collision", 1)
	})
}

func TestHandlerServesMetrics(t *testing.T) {
	c := New()
	c.GameStarted()

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "snek_games_started_total 1")
}
