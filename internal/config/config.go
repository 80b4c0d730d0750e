package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"checkout-domains/internal/env"
	"checkout-domains/internal/location"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Env         string       `yaml:"env"`
	StageHost   string       `yaml:"stage_host"`
	StageDomain string       `yaml:"stage_domain"`
	Location    string       `yaml:"location"`
	LogLevel    string       `yaml:"log_level"`
	Health      HealthConfig `yaml:"health"`
	Auth        AuthConfig   `yaml:"auth"`
}

type HealthConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

type AuthConfig struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
}

func DefaultConfig() Config {
	return Config{
		Env:      string(env.Production),
		LogLevel: "info",
		Health:   HealthConfig{Enabled: true, Addr: ":8080"},
	}
}

const defaultPath = "config.yaml"

// Load reads $CONFIG_PATH, which must exist when set, or ./config.yaml, which
// may be absent.
func Load() (Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}
	return load(defaultPath, false)
}

// LoadFile reads defaults, then the YAML file at path, then environment
// overrides. The file must be readable.
func LoadFile(path string) (Config, error) {
	return load(path, true)
}

func load(path string, required bool) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case !required && errors.Is(err, fs.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)

	parsed, err := env.Parse(cfg.Env)
	if err != nil {
		return Config{}, err
	}
	cfg.Env = string(parsed)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envString("PAYPAL_ENV", cfg.Env)
	cfg.StageHost = envString("STAGE_HOST", cfg.StageHost)
	cfg.StageDomain = envString("STAGE_DOMAIN", cfg.StageDomain)
	cfg.Location = envString("LOCATION", cfg.Location)
	cfg.LogLevel = envString("LOG_LEVEL", cfg.LogLevel)
	cfg.Health.Enabled = envBool("HEALTH_ENABLED", cfg.Health.Enabled)
	cfg.Health.Addr = envString("HEALTH_ADDR", cfg.Health.Addr)
	cfg.Auth.ClientID = envString("PAYPAL_CLIENT_ID", cfg.Auth.ClientID)
	cfg.Auth.ClientSecret = envString("PAYPAL_CLIENT_SECRET", cfg.Auth.ClientSecret)
}

// Context builds the resolver context for this configuration.
func (c Config) Context() (env.Context, error) {
	environment, err := env.Parse(c.Env)
	if err != nil {
		return env.Context{}, err
	}
	loc, err := location.Parse(c.Location)
	if err != nil {
		return env.Context{}, err
	}
	return env.Context{
		Env:         environment,
		StageHost:   c.StageHost,
		StageDomain: c.StageDomain,
		Location:    loc,
	}, nil
}

func BuildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(strings.ToLower(level)))

	return cfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(strings.ToLower(value))
		if err == nil {
			return parsed
		}
		return strings.ToLower(value) == "yes"
	}
	return fallback
}
