package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
	"gitlab.com/paramountdax-exchange/psp_dashboard/server"
)

func init() {
	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the dashboard API and the payment relay",
	Long:  `Serve the relay routes, the mock auth and dashboard routes and, when enabled, the metrics listener`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Debug().Msg("Loading server configuration")
		if viper.ConfigFileUsed() != "" {
			log.Debug().Str("section", "init").Str("path", viper.ConfigFileUsed()).Msg("Configuration file loaded")
		}
		cfg := config.LoadConfig(viper.GetViper())
		if err := cfg.Validate(); err != nil {
			return err
		}

		log.Debug().Str("section", "init").Msg("Starting new server instance")
		srv := server.NewServer(cfg)
		log.Info().Str("section", "init").
			Str("relay_prefix", cfg.Relay.Prefix).
			Str("upstream", cfg.Chapa.BaseURL).
			Bool("auth_enabled", cfg.Auth.Enabled).
			Msg("Listening for incoming requests")
		return srv.Listen()
	},
}
