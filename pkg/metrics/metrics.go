// Package metrics exposes Prometheus metrics for the algorithm
// service: task outcomes, store writer activity, and worker usage.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Task metrics
	TasksSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algo_tasks_submitted_total",
			Help: "Total number of tasks accepted by the dispatcher",
		},
	)

	TasksFinished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "algo_tasks_finished_total",
			Help: "Total number of tasks by terminal status",
		},
		[]string{"status"},
	)

	// Store writer metrics
	StoreWritesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algo_store_writes_total",
			Help: "Total number of task store writes applied by the DB writer",
		},
	)

	StoreWriteFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algo_store_write_failures_total",
			Help: "Total number of task store events dropped after retries",
		},
	)

	// Worker metrics
	WorkersRunning = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "algo_cpu_workers_running",
			Help: "Number of CPU worker subprocesses currently running",
		},
	)

	WorkersKilled = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "algo_cpu_workers_killed_total",
			Help: "Total number of CPU worker subprocesses force-killed",
		},
	)
)

func init() {
	prometheus.MustRegister(
		TasksSubmitted,
		TasksFinished,
		StoreWritesTotal,
		StoreWriteFailures,
		WorkersRunning,
		WorkersKilled,
	)
}

// Handler returns the HTTP handler for the /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
