package cmd

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
)

// LogLevel Flag, LOG_LEVEL when unset
var LogLevel = envOr("LOG_LEVEL", "info")

// LogFormat Flag, LOG_FORMAT when unset
var LogFormat = envOr("LOG_FORMAT", "json")

var cfgFile string

var logLevels = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
	"fatal": zerolog.FatalLevel,
	"panic": zerolog.PanicLevel,
}

var rootCmd = &cobra.Command{
	Use:   "psp_dashboard",
	Short: "Payment dashboard backend and relay to the payment provider API",
	Long: `Serves the role based dashboards and relays payment initialization, verification and
	bank listing calls to the payment provider while keeping the provider credential on the server.`,
	SilenceUsage: true,
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./.config.yaml)")
	flags.StringVar(&LogLevel, "log-level", LogLevel, "logging level (debug|info|warn|error|fatal|panic)")
	flags.StringVar(&LogFormat, "log-format", LogFormat, "log format (json|pretty)")
}

func initConfig() {
	customizeLogger()
	config.OpenConfig(cfgFile)
}

// Execute the commands
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// customizeLogger applies the format and level flags. The CLI commands
// write their results to stdout so logs always go to stderr.
func customizeLogger() {
	if LogFormat == "pretty" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		log.Logger = log.Output(os.Stderr)
	}

	level, ok := logLevels[strings.ToLower(LogLevel)]
	if !ok {
		level = zerolog.InfoLevel
		log.Warn().Str("section", "cmd").Str("log_level", LogLevel).Msg("Unknown log level, using info")
	}
	zerolog.SetGlobalLevel(level)

	if level == zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}
