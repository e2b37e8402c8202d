package engine

import "github.com/prometheus/client_golang/prometheus"

var (
	sessionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "sessions_total",
			Help:      "Game sessions started.",
		},
	)
	foodEaten = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "food_eaten_total",
			Help:      "Food picked up by kind.",
		},
		[]string{"kind"},
	)
	gameOvers = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "game_over_total",
			Help:      "Finished sessions by cause.",
		},
		[]string{"cause"},
	)
	currentScore = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "score",
			Help:      "Score of the running session.",
		},
	)
	tickInterval = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "snake",
			Subsystem: "engine",
			Name:      "tick_interval_ms",
			Help:      "Current pause between ticks.",
		},
	)
)

func init() {
	prometheus.MustRegister(sessionsStarted, foodEaten, gameOvers, currentScore, tickInterval)
}
