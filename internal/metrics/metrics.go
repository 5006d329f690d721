package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wxwriter_login_attempts_total",
		Help: "Number of login attempts grouped by status.",
	}, []string{"status"})

	generationAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wxwriter_generation_attempts_total",
		Help: "Number of article generation attempts grouped by status.",
	}, []string{"status"})

	syncAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wxwriter_wechat_sync_attempts_total",
		Help: "Number of WeChat sync attempts grouped by status.",
	}, []string{"status"})

	rateLimitHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wxwriter_rate_limit_hits_total",
		Help: "Rate limiter activations grouped by limiter name.",
	}, []string{"limiter"})
)

// IncLogin increments the login counter.
func IncLogin(status string) {
	loginAttempts.WithLabelValues(status).Inc()
}

// IncGeneration increments the generation counter.
func IncGeneration(status string) {
	generationAttempts.WithLabelValues(status).Inc()
}

// IncSync increments the WeChat sync counter.
func IncSync(status string) {
	syncAttempts.WithLabelValues(status).Inc()
}

// IncRateLimit increments the rate-limit hit counter.
func IncRateLimit(name string) {
	rateLimitHits.WithLabelValues(name).Inc()
}
