package infrastructure

import (
	"fmt"

	"github.com/spf13/viper"
)

const DefaultPort = 3000

// LoadConfig reads the configuration from the environment. Empty variables
// count as unset.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.variant", VariantAll)
	v.SetDefault("logging.level", "info")

	bindings := map[string]string{
		"server.port":    "PORT",
		"server.variant": "ROUTE_VARIANT",
		"logging.level":  "LOG_LEVEL",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("unable to bind %s to %s: %w", key, env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Server.Port)
	}
	switch c.Server.Variant {
	case VariantAll, VariantAPI, VariantTest:
	default:
		return fmt.Errorf("invalid route variant: %s", c.Server.Variant)
	}
	return nil
}
