package config

import "github.com/kelseyhightower/envconfig"

// parseEnv overlays Config fields from environment variables using the
// struct's envconfig tags. Unset variables leave the current values alone.
func parseEnv(config *Config) {
	overlay := *config
	if err := envconfig.Process("", &overlay); err != nil {
		panic(err)
	}
	*config = overlay
}
