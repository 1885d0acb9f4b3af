package crons

import (
	"github.com/pkg/errors"
	"github.com/robfig/cron"
	"github.com/rs/zerolog/log"
	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
)

var cronService *cron.Cron

// Start Initiate the crons based on the given configuration
func Start(crons config.Crons, probe HealthChecker) error {
	cronService = cron.New()
	for id, schedule := range crons {
		callback, ok := GetCronByID(id, probe)
		if !ok {
			log.Warn().Str("section", "crons").Str("cron", id).Msg("Unknown cron id, skipping")
			continue
		}
		if err := cronService.AddFunc(schedule, callback); err != nil {
			return errors.Wrapf(err, "invalid schedule %q for cron %s", schedule, id)
		}
		// call every job once at startup so caches and gauges are populated
		callback()
		log.Debug().Str("section", "crons").Str("cron", id).Str("schedule", schedule).Msg("Cron registered")
	}
	cronService.Start()
	return nil
}

// GetCronByID get a function to execute based on the id
func GetCronByID(id string, probe HealthChecker) (func(), bool) {
	switch id {
	case "update_auth_cache":
		return CronUpdateAuthCache, true
	case "upstream_health":
		return func() {
			CronUpstreamHealth(probe)
		}, true
	}
	return nil, false
}

// Close godoc
func Close() {
	if cronService != nil {
		cronService.Stop()
	}
}
