package expenses

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramGatewayCall = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "expense_tracker",
		Subsystem: "sync",
		Name:      "histogram_gateway_call_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"op", "status"},
)

func observeCall(op string, elapsed time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	histogramGatewayCall.
		WithLabelValues(op, status).
		Observe(elapsed.Seconds())
}
