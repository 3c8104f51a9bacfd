package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Login attempts by outcome",
		},
		[]string{"status"},
	)

	EventMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "event_mutations_total",
			Help: "Event create/update/delete operations by outcome",
		},
		[]string{"action", "status"},
	)

	ExportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "event_exports_generated_total",
			Help: "PDF exports generated",
		},
	)
)

// Handler exposes the default prometheus registry for the /metrics route.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
