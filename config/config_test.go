package config

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestConfig(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		v := viper.New()
		SetDefaultVariables(v)
		cfg, err := Decode(v)
		So(err, ShouldBeNil)

		Convey("Defaults are applied", func() {
			So(cfg.Server.API.Port, ShouldEqual, 3000)
			So(cfg.Chapa.BaseURL, ShouldEqual, DefaultChapaURL)
			So(cfg.Chapa.Timeout, ShouldEqual, 30*time.Second)
			So(cfg.Relay.Prefix, ShouldEqual, "/relay")
			So(cfg.Client.Timeout, ShouldEqual, 30*time.Second)
			So(cfg.Auth.Enabled, ShouldBeFalse)
			So(cfg.Crons["upstream_health"], ShouldEqual, "@every 1m")
		})

		Convey("A missing secret key fails validation", func() {
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})

	Convey("Given the secret in the environment", t, func() {
		t.Setenv("CFG_CHAPA_SECRET_KEY", "CHASECK_TEST-from-env")
		t.Setenv("CFG_CHAPA_BASE_URL", "https://sandbox.example.com/v1/")
		v := viper.New()
		SetDefaultVariables(v)
		cfg, err := Decode(v)
		So(err, ShouldBeNil)

		Convey("It is loaded and the config is valid", func() {
			So(cfg.Chapa.SecretKey.Reveal(), ShouldEqual, "CHASECK_TEST-from-env")
			So(cfg.Chapa.BaseURL, ShouldEqual, "https://sandbox.example.com/v1")
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("It never shows up when the config is printed or serialized", func() {
			So(fmt.Sprintf("%v %+v %#v %s", cfg, cfg, cfg, cfg.Chapa.SecretKey), ShouldNotContainSubstring, "from-env")
			data, err := json.Marshal(cfg)
			So(err, ShouldBeNil)
			So(string(data), ShouldNotContainSubstring, "from-env")
			So(string(data), ShouldContainSubstring, "[redacted]")
		})
	})

	Convey("Invalid values fail validation", t, func() {
		cfg := Config{
			Chapa: ChapaConfig{BaseURL: DefaultChapaURL, SecretKey: "sk"},
			Relay: RelayConfig{Prefix: "relay"},
		}
		So(cfg.Validate(), ShouldNotBeNil)

		cfg.Relay.Prefix = "/relay"
		So(cfg.Validate(), ShouldBeNil)

		cfg.Server.Cors.AllowedOrigins = []string{"dashboard.example.com"}
		So(cfg.Validate(), ShouldNotBeNil)
	})
}

func TestSecret(t *testing.T) {
	Convey("An empty secret prints as empty", t, func() {
		So(Secret("").String(), ShouldEqual, "")
		So(Secret("").IsEmpty(), ShouldBeTrue)
		So(Secret("x").String(), ShouldEqual, redacted)
	})
}
