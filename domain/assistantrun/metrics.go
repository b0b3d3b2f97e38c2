package assistantrun

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_runs_total",
		Help: "Assistant runs by outcome (completed, failed, timeout, cancelled, panic)",
	}, []string{"outcome"})

	toolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "assistant_tool_calls_total",
		Help: "Tool executions requested by the assistant, by tool name",
	}, []string{"tool"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "assistant_run_duration_seconds",
		Help:    "Wall-clock duration of assistant runs",
		Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80, 120},
	})
)
