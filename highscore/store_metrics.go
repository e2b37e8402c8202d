package highscore

import "github.com/prometheus/client_golang/prometheus"

// Instrument wraps a keeper so its calls are timed and its updates counted.
func Instrument(k Keeper) Keeper { return &metrics{k} }

var (
	keeperCalls = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "calls",
			Help:      "Calls processed by the high score keeper.",
		},
		[]string{"method"},
	)
	keeperUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "highscore",
			Name:      "updates_total",
			Help:      "High score update attempts by outcome.",
		},
		[]string{"result"},
	)
)

func instrument(method string) func() {
	t := prometheus.NewTimer(keeperCalls.WithLabelValues(method))
	return t.ObserveDuration
}

func init() {
	prometheus.MustRegister(keeperCalls, keeperUpdates)
}

type metrics struct{ k Keeper }

func (m *metrics) Load() int {
	defer instrument("Load")()
	return m.k.Load()
}

func (m *metrics) UpdateIfHigher(score int) bool {
	defer instrument("UpdateIfHigher")()
	updated := m.k.UpdateIfHigher(score)
	if updated {
		keeperUpdates.WithLabelValues("saved").Inc()
	} else {
		keeperUpdates.WithLabelValues("skipped").Inc()
	}
	return updated
}
