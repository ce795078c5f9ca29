// Package config loads the application settings.
//
// Precedence, highest first: TUTORTRACK_* environment variables (including
// those from a .env file), the config file, then defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/mmynk/tutortrack/pkg/logging"
)

// EnvPrefix prefixes every environment override, e.g. TUTORTRACK_SERVER_PORT.
const EnvPrefix = "TUTORTRACK"

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Config is the root configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
	Jobs    JobsConfig    `mapstructure:"jobs"`
	Report  ReportConfig  `mapstructure:"report"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Port       int    `mapstructure:"port"`
	StaticPath string `mapstructure:"static_path"`
}

// StorageConfig selects where the snapshot lives.
type StorageConfig struct {
	Driver string      `mapstructure:"driver"`
	Path   string      `mapstructure:"path"`
	Key    string      `mapstructure:"key"`
	Redis  RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the redis driver.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// AuthConfig configures the passcode lock. An empty PasscodeHash leaves the
// app unlocked.
type AuthConfig struct {
	PasscodeHash string        `mapstructure:"passcode_hash"`
	JWTSecret    string        `mapstructure:"jwt_secret"`
	TokenTTL     time.Duration `mapstructure:"token_ttl"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// JobsConfig holds cron specs. An empty spec disables the job.
type JobsConfig struct {
	FlushSpec    string `mapstructure:"flush_spec"`
	RolloverSpec string `mapstructure:"rollover_spec"`
}

// ReportConfig sets report defaults.
type ReportConfig struct {
	// Breakdown adds day and week sub-totals to every report.
	Breakdown bool `mapstructure:"breakdown"`

	// Language is a BCP 47 tag used to order student names. Empty uses the
	// root collation.
	Language string `mapstructure:"language"`
}

// Load reads .env, the config file and the environment. When path is empty
// tutortrack.yaml is looked up in the working directory and ./config; a
// missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("tutortrack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_path", "./static")

	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "./data/tutortrack.db")
	v.SetDefault("storage.key", "tutorTrackerData")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "tutortrack:")

	v.SetDefault("auth.passcode_hash", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", "24h")

	v.SetDefault("log.level", "info")

	v.SetDefault("jobs.flush_spec", "@every 1m")
	v.SetDefault("jobs.rollover_spec", "0 0 * * *")

	v.SetDefault("report.breakdown", false)
	v.SetDefault("report.language", "")
}

// Validate checks the settings that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid config: server.port must be between 1 and 65535")
	}

	switch c.Storage.Driver {
	case DriverSQLite, DriverBolt:
		if c.Storage.Path == "" {
			return fmt.Errorf("invalid config: storage.path is required for the %s driver", c.Storage.Driver)
		}
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("invalid config: storage.redis.addr is required for the redis driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("invalid config: unknown storage.driver %q", c.Storage.Driver)
	}
	if c.Storage.Key == "" {
		return fmt.Errorf("invalid config: storage.key must not be empty")
	}

	if c.Auth.PasscodeHash != "" {
		if len(c.Auth.JWTSecret) < 16 {
			return fmt.Errorf("invalid config: auth.jwt_secret must be at least 16 characters when a passcode is set")
		}
		if c.Auth.TokenTTL <= 0 {
			return fmt.Errorf("invalid config: auth.token_ttl must be positive")
		}
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid config: log.level: %w", err)
	}

	for key, spec := range map[string]string{
		"jobs.flush_spec":    c.Jobs.FlushSpec,
		"jobs.rollover_spec": c.Jobs.RolloverSpec,
	} {
		if spec == "" {
			continue
		}
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("invalid config: %s: %w", key, err)
		}
	}

	if _, err := c.ReportLanguage(); err != nil {
		return fmt.Errorf("invalid config: report.language: %w", err)
	}
	return nil
}

// ReportLanguage parses Report.Language. Empty yields language.Und.
func (c *Config) ReportLanguage() (language.Tag, error) {
	if c.Report.Language == "" {
		return language.Und, nil
	}
	return language.Parse(c.Report.Language)
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
