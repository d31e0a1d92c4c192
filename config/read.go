package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigName   = "medvault"
	ConfigFormat = "yaml"
)

var GlobalConf *Config

func ReadConfig(configPath string) (*Config, error) {
	viper.SetConfigName(ConfigName)
	viper.SetConfigType(ConfigFormat)
	viper.AddConfigPath(configPath)

	// Allow env vars to override config values.
	// e.g. MEDVAULT_API_BASE_URL overrides api.base_url
	viper.SetEnvPrefix("MEDVAULT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	// The config file is optional: every setting has a default or an env
	// override, and the CLI should work against a local backend untouched.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if os.Getenv("MEDVAULT_API_BASE_URL") == "" {
				return nil, fmt.Errorf("error reading config file: %v", err)
			}
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

func MustReadConfig(path string) *Config {
	config, err := ReadConfig(path)
	if err != nil {
		panic(err)
	}

	GlobalConf = config

	return config
}

func setDefaults() {
	viper.SetDefault("api.base_url", "http://localhost:8080/api")
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("refresh.appointment_interval_seconds", 30)
	viper.SetDefault("refresh.emergency_interval_seconds", 30)
	viper.SetDefault("refresh.permission_interval_seconds", 30)
	viper.SetDefault("observability.service_name", "medvault_cli")
	viper.SetDefault("observability.service_version", "dev")
	viper.SetDefault("observability.metrics.listen", ":9464")
	viper.SetDefault("observability.metrics.path", "/metrics")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("environment", "development")
	viper.SetDefault("locale.default_region", "US")
}
