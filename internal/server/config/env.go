package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// parseEnv overlays Config fields from environment variables using the
// struct's envconfig tags. Unset variables leave the current values alone.
//
// PORT accepts either a bare port number ("8000") or a full bind address
// (":8000", "0.0.0.0:8000"); a bare number is normalized to ":<port>".
func parseEnv(config *Config) {
	overlay := *config
	if err := envconfig.Process("", &overlay); err != nil {
		panic(err)
	}

	if overlay.Addr != "" && !strings.Contains(overlay.Addr, ":") {
		overlay.Addr = ":" + overlay.Addr
	}

	*config = overlay
}
