package crons

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"gitlab.com/paramountdax-exchange/psp_dashboard/monitor"
)

const healthTimeout = 10 * time.Second

// HealthChecker probes the payment provider
type HealthChecker interface {
	CheckHealth(ctx context.Context) (bool, error)
}

// CronUpstreamHealth sets the upstream gauge from a single probe
func CronUpstreamHealth(probe HealthChecker) {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	ok, err := probe.CheckHealth(ctx)
	if err != nil {
		log.Warn().Err(err).Str("section", "cron:upstream_health").Msg("Provider unreachable")
	}
	if ok {
		monitor.UpstreamUp.Set(1)
		return
	}
	monitor.UpstreamUp.Set(0)
}
