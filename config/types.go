package config

import "fmt"

type Config struct {
	API           APIConfig           `mapstructure:"api"`
	Session       SessionConfig       `mapstructure:"session"`
	Refresh       RefreshConfig       `mapstructure:"refresh"`
	Authorization AuthorizationConfig `mapstructure:"authorization"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Locale        LocaleConfig        `mapstructure:"locale"`
	Environment   string              `mapstructure:"environment"`
}

type APIConfig struct {
	// BaseURL is the MedVault backend root, e.g. "http://localhost:8080/api".
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SessionConfig struct {
	// Path to the persisted session identity file. Defaults to
	// $HOME/.medvault/session.json when empty.
	Path string `mapstructure:"path"`
	// EncryptionKey is a 32-byte hex string. When set, the session file is
	// stored AES-256-GCM encrypted at rest.
	EncryptionKey string `mapstructure:"encryption_key"`
}

type RefreshConfig struct {
	// AppointmentIntervalSeconds controls the appointment poller. The backend
	// treats these GETs as idempotent, so short intervals are safe.
	AppointmentIntervalSeconds int `mapstructure:"appointment_interval_seconds"`
	EmergencyIntervalSeconds   int `mapstructure:"emergency_interval_seconds"`
	PermissionIntervalSeconds  int `mapstructure:"permission_interval_seconds"`
}

type AuthorizationConfig struct {
	EnableAudit bool `mapstructure:"enable_audit"`
}

type ObservabilityConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"service_name"`
	ServiceVersion string        `mapstructure:"service_version"`
	Tracing        TracingConfig `mapstructure:"tracing"`
	Metrics        MetricsConfig `mapstructure:"metrics"`
}

type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SamplingRate float64 `mapstructure:"sampling_rate"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Listen is the scrape endpoint address the watch daemon binds,
	// e.g. ":9464".
	Listen string `mapstructure:"listen"`
	Path   string `mapstructure:"path"`
}

type LoggingConfig struct {
	Level  string       `mapstructure:"level"`  // debug, info, warn, error
	Format string       `mapstructure:"format"` // text, json
	Output OutputConfig `mapstructure:"output"`
}

type OutputConfig struct {
	Stdout bool          `mapstructure:"stdout"`
	File   FileLogConfig `mapstructure:"file"`
	Loki   LokiConfig    `mapstructure:"loki"`
}

type FileLogConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`        // e.g. "logs/medvault.log"
	MaxSizeMB  int    `mapstructure:"max_size_mb"` // rotate after N MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

type LokiConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"` // e.g. "http://localhost:3100"
	Username string `mapstructure:"username"` // for Grafana Cloud basic auth
	Password string `mapstructure:"password"`
}

type LocaleConfig struct {
	// Timezone is the IANA zone name sent with slot-generation requests so
	// the backend localizes generated slot boundaries. Defaults to the host
	// zone when empty.
	Timezone string `mapstructure:"timezone"`
	// DefaultRegion is the ISO 3166-1 region used when parsing national
	// phone numbers, e.g. "US".
	DefaultRegion string `mapstructure:"default_region"`
}

// Validate rejects settings the runtime cannot operate with. Refresh
// intervals feed time.NewTicker, which panics on non-positive durations, so
// they are checked here instead of deep inside the watch workers.
func (c *Config) Validate() error {
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive, got %d", c.API.TimeoutSeconds)
	}
	intervals := map[string]int{
		"refresh.appointment_interval_seconds": c.Refresh.AppointmentIntervalSeconds,
		"refresh.emergency_interval_seconds":   c.Refresh.EmergencyIntervalSeconds,
		"refresh.permission_interval_seconds":  c.Refresh.PermissionIntervalSeconds,
	}
	for key, v := range intervals {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", key, v)
		}
	}
	return nil
}
