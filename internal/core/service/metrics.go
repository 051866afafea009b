package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK     = "ok"
	resultFailed = "failed"
	resultError  = "error"
)

// Metrics records command outcomes and engine call latency. A nil *Metrics records nothing.
type Metrics struct {
	commands       *prometheus.CounterVec
	engineDuration *prometheus.HistogramVec
}

// NewMetrics registers the bot collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		commands: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "craftbot",
			Name:      "commands_total",
			Help:      "Slash commands handled, by command and result (ok, failed, error).",
		}, []string{"command", "result"}),
		engineDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "craftbot",
			Name:      "engine_call_duration_seconds",
			Help:      "Latency of container engine calls.",
			Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}, []string{"operation"}),
	}
}

func (m *Metrics) command(command, result string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, result).Inc()
}

func (m *Metrics) engineCall(operation string, started time.Time) {
	if m == nil {
		return
	}
	m.engineDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
