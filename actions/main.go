package actions

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/gorilla/sessions"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"gitlab.com/paramountdax-exchange/psp_dashboard/config"
	"gitlab.com/paramountdax-exchange/psp_dashboard/service/chapa"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Provider is the upstream payment API used by the relay handlers
type Provider interface {
	ListBanks(ctx context.Context) (*chapa.Response, error)
	InitializePayment(ctx context.Context, payload chapa.InitializePayload) (*chapa.Response, error)
	VerifyTransaction(ctx context.Context, reference string) (*chapa.Response, error)
}

// Actions structure
type Actions struct {
	cfg            config.Config
	provider       Provider
	jwtTokenSecret string
	store          sessions.Store
}

// NewActions constructor
func NewActions(cfg config.Config, provider Provider) *Actions {
	jwtSecret := secretOrRandom(cfg.Auth.JWTTokenSecret, "auth.jwt_token_secret")
	sessionSecret := secretOrRandom(cfg.Session.Secret, "session.secret")

	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
	}

	return &Actions{
		cfg:            cfg,
		provider:       provider,
		jwtTokenSecret: jwtSecret,
		store:          store,
	}
}

// secretOrRandom returns the configured secret or a random one that lives as long as the process
func secretOrRandom(secret config.Secret, key string) string {
	if !secret.IsEmpty() {
		return secret.Reveal()
	}
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal().Err(err).Str("section", "actions").Msg("Unable to generate secret")
	}
	log.Warn().Str("section", "actions").Str("key", key).Msg("No secret configured, generated a random one for this process")
	return hex.EncodeToString(buf)
}
