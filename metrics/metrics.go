package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP метрики
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "calculator_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Метрики вычислителя
	Evaluations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculator_evaluations_total",
			Help: "Total number of evaluated expressions by outcome",
		},
		[]string{"outcome"}, // success или вид ошибки
	)

	EvaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calculator_evaluation_duration_seconds",
			Help:    "Expression evaluation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		},
	)

	CalculatorMemoryValue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calculator_memory_value",
			Help: "Current value of the memory register",
		},
	)

	CalculatorHistorySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calculator_history_size",
			Help: "Current size of evaluation history",
		},
	)

	ActiveWebSocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "calculator_websocket_active_connections",
			Help: "Number of active websocket evaluation sessions",
		},
	)
)

// ObserveEvaluation - учет одного вычисления; пустой kind означает успех
func ObserveEvaluation(kind string, seconds float64) {
	if kind == "" {
		kind = "success"
	}
	Evaluations.WithLabelValues(kind).Inc()
	EvaluationDuration.Observe(seconds)
}

// UpdateCalculatorMetrics - обновление метрик калькулятора
func UpdateCalculatorMetrics(memory float64, historySize int) {
	CalculatorMemoryValue.Set(memory)
	CalculatorHistorySize.Set(float64(historySize))
}
