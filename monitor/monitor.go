package monitor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	limit "github.com/bu/gin-access-limit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

// Config for the monitoring listener
type Config struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

var (
	// RelayRequests counts relay calls by operation and outcome (success, api_error, parse_error, backend_error)
	RelayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_requests_total",
			Help: "Total number of relay requests separated by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	// UpstreamDuration of the calls made to the payment provider
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_upstream_duration_seconds",
			Help:    "Duration of the calls made to the payment provider API.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"operation"},
	)

	// UpstreamUp is 1 when the last health probe against the provider succeeded
	UpstreamUp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "relay_upstream_up",
		Help: "Whether the last health probe against the payment provider succeeded.",
	})
)

func init() {
	prometheus.MustRegister(RelayRequests, UpstreamDuration, UpstreamUp)
}

// ObserveUpstream records the duration of a provider call started at the given time
func ObserveUpstream(operation string, start time.Time) {
	UpstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// NewServer builds the metrics and profiling listener, restricted to the allowed IPs
func NewServer(cfg Config, allowedIPs string) *http.Server {
	r := gin.New()
	r.Use(gin.Recovery())

	limit.TrustedHeaderField = "X-Forwarded-For"
	r.Use(limit.CIDR(allowedIPs))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/debug/pprof/:name", func(c *gin.Context) {
		pprof.Handler(c.Param("name")).ServeHTTP(c.Writer, c.Request)
	})

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
}

// ListenAndServe runs the monitoring server until the context is cancelled
func ListenAndServe(ctx context.Context, srv *http.Server) error {
	log.Info().Str("section", "monitor").Str("addr", srv.Addr).Msg("Monitoring server - started")
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Str("section", "monitor").Msg("Unable to shutdown monitoring server")
		}
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	log.Info().Str("section", "monitor").Msg("Monitoring server - stopped")
	return nil
}
