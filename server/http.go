package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gitlab.com/paramountdax-exchange/psp_dashboard/actions"
	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
	"gitlab.com/paramountdax-exchange/psp_dashboard/logger"
	"gitlab.com/paramountdax-exchange/psp_dashboard/model"
)

// NewRouter sets up the relay, auth and dashboard routes
func NewRouter(cfg config.Config, a *actions.Actions) *gin.Engine {
	r := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	if len(cfg.Server.Cors.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.Cors.AllowedOrigins
	} else {
		// same origin only: no browser origin is allowed cross site
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "HEAD", "POST", "DELETE", "OPTIONS"}

	r.Use(cors.New(corsConfig))
	r.Use(gin.Recovery()) // Recovery middleware recovers from any panics and writes a 500 if there was one.
	r.Use(logger.SetLogger(logger.Config{SkipPath: []string{"/ping"}}))

	r.GET("/ping", actions.Ping)

	relay := r.Group(cfg.Relay.Prefix)
	{
		relay.GET("/banks", a.RelayPerm(model.PermBanksView), a.ListBanks)
		relay.HEAD("/banks", a.RelayPerm(model.PermBanksView), a.BanksHealth)
		relay.POST("/initialize", a.RelayPerm(model.PermPaymentCreate), a.InitializePayment)
		relay.GET("/verify/:reference", a.RelayPerm(model.PermTransactionVerify), a.VerifyTransaction)
		relay.POST("/transfer", a.RelayPerm(model.PermTransferCreate), a.InitializeTransfer)
		relay.GET("/transfer/verify/:reference", a.RelayPerm(model.PermTransferCreate), a.VerifyTransfer)
	}

	auth := r.Group("/auth")
	{
		auth.POST("/login", a.Login)
		auth.DELETE("/logout", a.Logout)
		auth.GET("/me", a.Restrict(), a.Me)
	}

	r.GET("/dashboard", a.Restrict(), a.GetDashboard)
	r.GET("/payment-result", a.GetPaymentResult)

	return r
}

// ListenToRequests serves the API until the context is cancelled
func (srv *server) ListenToRequests(ctx context.Context) error {
	log.Info().Str("worker", "http_listen_to_requests").Str("action", "start").Int("port", srv.config.Server.API.Port).Msg("HTTP Listen to requests - started")
	defer log.Info().Str("worker", "http_listen_to_requests").Str("action", "stop").Msg("HTTP Listen to requests - stopped")

	srv.HTTP = &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.config.Server.API.Port),
		Handler:           NewRouter(srv.config, srv.actions),
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.HTTP.SetKeepAlivesEnabled(srv.config.Server.API.KeepAlive)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.HTTP.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Str("section", "server").Str("action", "terminate").Msg("Unable to shutdown HTTP server")
		}
	}()

	if err := srv.HTTP.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
