package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"gitlab.com/paramountdax-exchange/psp_dashboard/actions"
	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
	"gitlab.com/paramountdax-exchange/psp_dashboard/crons"
	"gitlab.com/paramountdax-exchange/psp_dashboard/monitor"
	"gitlab.com/paramountdax-exchange/psp_dashboard/service/chapa"
)

// Server interface
type Server interface {
	Listen() error
}

type server struct {
	config    config.Config
	actions   *actions.Actions
	processor *chapa.Processor
	HTTP      *http.Server
}

// NewServer constructor
func NewServer(cfg config.Config) Server {
	processor := chapa.Init(cfg.Chapa.BaseURL, cfg.Chapa.SecretKey.Reveal(), &http.Client{Timeout: cfg.Chapa.Timeout})
	return &server{
		config:    cfg,
		processor: processor,
		actions:   actions.NewActions(cfg, processor),
	}
}

// Listen starts the crons, the API and the monitoring listener and blocks until a
// termination signal arrives or one of the listeners fails
func (srv *server) Listen() error {
	if err := crons.Start(srv.config.Crons, srv.processor); err != nil {
		return errors.Wrap(err, "unable to start crons")
	}
	defer crons.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenToRequests(ctx)
	})
	if srv.config.Server.Monitoring.Enabled {
		g.Go(func() error {
			return monitor.ListenAndServe(ctx, monitor.NewServer(srv.config.Server.Monitoring, srv.config.Server.Debug.AllowedIPs))
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		log.Info().Str("section", "server").Str("app_event", "terminate").Msg("Shutting down services")
		return nil
	})

	err := g.Wait()
	log.Info().Str("section", "server").Str("app_event", "terminate").Str("state", "complete").Msg("All workers terminated")
	return err
}
