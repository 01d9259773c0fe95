package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RegistrationsTotal counts successful user registrations.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sponsvisa_registrations_total",
		Help: "Number of successful user registrations.",
	})

	// LoginsTotal counts successful logins.
	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sponsvisa_logins_total",
		Help: "Number of successful logins.",
	})

	// VerificationCodesSentTotal counts issued verification codes.
	VerificationCodesSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sponsvisa_verification_codes_sent_total",
		Help: "Number of verification codes issued.",
	})
)

// Register attaches the Prometheus metrics endpoint to the router.
func Register(router *gin.Engine, path string) {
	router.GET(path, gin.WrapH(promhttp.Handler()))
}
