package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	AvatarStoreDisk = "disk"
	AvatarStoreGCS  = "gcs"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresUser   string `toml:"postgres_user"`
	PostgresDBName string `toml:"postgres_db_name"`
	RunMigrations  bool   `toml:"run_migrations"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// auth
	SessionTTLHours             int      `toml:"session_ttl_hours"`
	LoginRateLimitAllowedPerMin int      `toml:"login_rate_limit_allowed_per_min"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	GoogleClientID              string   `toml:"google_client_id"`

	// avatars
	AvatarStore         string `toml:"avatar_store"`
	AvatarsDiskPath     string `toml:"avatars_disk_path"`
	AvatarsGCSBucket    string `toml:"avatars_gcs_bucket"`
	AvatarsGCSPublicURL string `toml:"avatars_gcs_public_url"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML file at path and returns the section for env.
// Secrets and a few deployment specific values can be overridden by env vars.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s missing", env)
	}

	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if clientID := os.Getenv("HWG_GOOGLE_CLIENT_ID"); clientID != "" {
		cfg.GoogleClientID = clientID
	}
	if bucket := os.Getenv("HWG_AVATARS_GCS_BUCKET"); bucket != "" {
		cfg.AvatarsGCSBucket = bucket
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 {
		return errors.New("port not set")
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		return errors.New("postgres host, port and db name must be set")
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		return errors.New("redis host and port must be set")
	}
	switch c.AvatarStore {
	case "", AvatarStoreDisk:
		if c.AvatarsDiskPath == "" {
			return errors.New("avatars disk path not set")
		}
	case AvatarStoreGCS:
		if c.AvatarsGCSBucket == "" {
			return errors.New("avatars gcs bucket not set")
		}
	default:
		return fmt.Errorf("unknown avatar store: %s", c.AvatarStore)
	}
	return nil
}
