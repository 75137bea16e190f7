// Package metrics exposes Prometheus collectors for snek sessions.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records session lifecycle events. A nil *Collector is valid and
// records nothing, so local play can run without metrics.
type Collector struct {
	registry     *prometheus.Registry
	connections  prometheus.Gauge
	gamesStarted prometheus.Counter
	gamesOver    *prometheus.CounterVec
	foodEaten    prometheus.Counter
	finalScore   prometheus.Histogram
}

// New creates a Collector backed by its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		connections: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "snek",
			Name:      "ssh_connections",
			Help:      "Number of open SSH sessions.",
		}),
		gamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snek",
			Name:      "games_started_total",
			Help:      "Number of game sessions created.",
		}),
		gamesOver: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "snek",
			Name:      "games_over_total",
			Help:      "Number of game sessions that ended, by cause (collisions, arena full, resize, abandoned).",
		}, []string{"cause"}),
		foodEaten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "snek",
			Name:      "food_eaten_total",
			Help:      "Number of food items eaten across all sessions.",
		}),
		finalScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "snek",
			Name:      "final_score",
			Help:      "Score at the end of a game.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
	}
	c.registry.MustRegister(c.connections, c.gamesStarted, c.gamesOver, c.foodEaten, c.finalScore)
	return c
}

// ConnectionOpened tracks a new SSH session.
func (c *Collector) ConnectionOpened() {
	if c == nil {
		return
	}
	c.connections.Inc()
}

// ConnectionClosed tracks an SSH session going away.
func (c *Collector) ConnectionClosed() {
	if c == nil {
		return
	}
	c.connections.Dec()
}

// GameStarted counts a new game session.
func (c *Collector) GameStarted() {
	if c == nil {
		return
	}
	c.gamesStarted.Inc()
}

// FoodEaten adds n eaten food items.
func (c *Collector) FoodEaten(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.foodEaten.Add(float64(n))
}

// GameOver counts a finished game with its cause and final score.
func (c *Collector) GameOver(cause string, score int) {
	if c == nil {
		return
	}
	c.gamesOver.WithLabelValues(cause).Inc()
	c.finalScore.Observe(float64(score))
}

// Handler serves the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
