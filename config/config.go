package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"gitlab.com/paramountdax-exchange/psp_dashboard/monitor"
)

// DefaultChapaURL is the production base URL of the payment provider API
const DefaultChapaURL = "https://api.chapa.co/v1"

// Config structure
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Chapa   ChapaConfig   `mapstructure:"chapa"`
	Relay   RelayConfig   `mapstructure:"relay"`
	Client  ClientConfig  `mapstructure:"client"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Session SessionConfig `mapstructure:"session"`
	Crons   Crons         `mapstructure:"crons"`
}

// ServerConfig structure
type ServerConfig struct {
	Monitoring monitor.Config `mapstructure:"monitoring"`
	API        APIConfig      `mapstructure:"api"`
	Debug      DebugConfig    `mapstructure:"debug"`
	Cors       CorsConfig     `mapstructure:"cors"`
}

// APIConfig structure
type APIConfig struct {
	Port      int
	KeepAlive bool `mapstructure:"keep_alive"`
}

type DebugConfig struct {
	AllowedIPs string `mapstructure:"allowed_ips"`
}

type CorsConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ChapaConfig holds the credential used by the relay for every upstream call.
// SecretKey must come from the config file or CFG_CHAPA_SECRET_KEY.
type ChapaConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	SecretKey Secret        `mapstructure:"secret_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// RelayConfig structure
type RelayConfig struct {
	Prefix string `mapstructure:"prefix"`
}

// ClientConfig is used by the CLI commands that talk to a running relay
type ClientConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// AuthConfig structure
type AuthConfig struct {
	// Enabled gates the relay routes behind the role permissions
	Enabled        bool   `mapstructure:"enabled"`
	JWTTokenSecret Secret `mapstructure:"jwt_token_secret"`
	TokenTTLHours  int    `mapstructure:"token_ttl_hours"`
}

type SessionConfig struct {
	Name   string `mapstructure:"name"`
	Secret Secret `mapstructure:"secret"`
}

// Crons - mapping of ids to execution frequency
type Crons map[string]string

// Validate the loaded configuration
func (cfg Config) Validate() error {
	if cfg.Chapa.SecretKey.IsEmpty() {
		return errors.New("chapa.secret_key is required")
	}
	if cfg.Chapa.BaseURL == "" {
		return errors.New("chapa.base_url is required")
	}
	if !strings.HasPrefix(cfg.Relay.Prefix, "/") {
		return errors.Errorf("relay.prefix must start with '/', got %q", cfg.Relay.Prefix)
	}
	for _, origin := range cfg.Server.Cors.AllowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return errors.Errorf("server.cors.allowed_origins: bad origin %q", origin)
		}
	}
	return nil
}

// Decode the viper state into a Config structure
func Decode(viperConf *viper.Viper) (Config, error) {
	var config Config
	if err := viperConf.Unmarshal(&config); err != nil {
		return config, errors.Wrap(err, "unable to decode config into struct")
	}
	config.Chapa.BaseURL = strings.TrimRight(config.Chapa.BaseURL, "/")
	config.Client.BaseURL = strings.TrimRight(config.Client.BaseURL, "/")
	return config, nil
}

// LoadConfig Load server configuration from the yaml file
func LoadConfig(viperConf *viper.Viper) Config {
	config, err := Decode(viperConf)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to decode config into struct")
	}
	return config
}

// OpenConfig godoc
func OpenConfig(file string) {
	if file != "" {
		// Use config file from the flag.
		viper.SetConfigFile(file)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName(".config")
	viper.AddConfigPath(".")                   // First try to load the config from the current directory
	viper.AddConfigPath("$HOME")               // Then try to load it from the HOME directory
	viper.AddConfigPath("/etc/psp_dashboard/") // As a last resort try to load it from /etc/
	SetDefaultVariables(viper.GetViper())

	err := viper.ReadInConfig()
	if err != nil {
		// the relay can be configured from the environment alone
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && file == "" {
			log.Debug().Str("section", "config").Msg("No configuration file found, using defaults and environment")
			return
		}
		log.Fatal().Err(err).Msg("Unable to read configuration file")
	}
}

// SetDefaultVariables registers every known key so env overrides are picked up by Unmarshal
func SetDefaultVariables(v *viper.Viper) {
	v.SetEnvPrefix("CFG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.api.port", 3000)
	v.SetDefault("server.api.keep_alive", true)
	v.SetDefault("server.monitoring.enabled", false)
	v.SetDefault("server.monitoring.port", 9090)
	v.SetDefault("server.debug.allowed_ips", "127.0.0.1/32")
	v.SetDefault("server.cors.allowed_origins", []string{})

	v.SetDefault("chapa.base_url", DefaultChapaURL)
	v.SetDefault("chapa.secret_key", "")
	v.SetDefault("chapa.timeout", "30s")

	v.SetDefault("relay.prefix", "/relay")

	v.SetDefault("client.base_url", "http://localhost:3000")
	v.SetDefault("client.timeout", "30s")

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_token_secret", "")
	v.SetDefault("auth.token_ttl_hours", 12)

	v.SetDefault("session.name", "psp_dashboard")
	v.SetDefault("session.secret", "")

	v.SetDefault("crons", map[string]string{
		"update_auth_cache": "@every 10m",
		"upstream_health":   "@every 1m",
	})
}
