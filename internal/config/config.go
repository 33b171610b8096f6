package config

import (
	"errors"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DiscordToken  string         `yaml:"discord_token" env:"DISCORD_TOKEN"`
	StorePath     string         `yaml:"store_path" env:"STORE_PATH"`
	LogLevel      string         `yaml:"log_level" env:"LOG_LEVEL"`
	DefaultPrefix string         `yaml:"default_prefix" env:"DEFAULT_PREFIX"`
	EmbedFooter   string         `yaml:"embed_footer" env:"EMBED_FOOTER"`
	Health        HealthConfig   `yaml:"health"`
	Presence      PresenceConfig `yaml:"presence"`
	EmbedColors   EmbedColors    `yaml:"embed_colors"`
}

type HealthConfig struct {
	Enabled bool   `yaml:"enabled" env:"HEALTH_ENABLED"`
	Addr    string `yaml:"addr" env:"HEALTH_ADDR"`
}

type PresenceConfig struct {
	IntervalSeconds int      `yaml:"interval_seconds" env:"PRESENCE_INTERVAL_SECONDS"`
	Statuses        []string `yaml:"statuses"`
}

type EmbedColors struct {
	Success int `yaml:"success" env:"EMBED_COLOR_SUCCESS"`
	Danger  int `yaml:"danger" env:"EMBED_COLOR_DANGER"`
	Warning int `yaml:"warning" env:"EMBED_COLOR_WARNING"`
	Info    int `yaml:"info" env:"EMBED_COLOR_INFO"`
}

func DefaultConfig() Config {
	return Config{
		StorePath:     "config.json",
		LogLevel:      "info",
		DefaultPrefix: "C!",
		EmbedFooter:   "© SolarVox 2025",
		Health:        HealthConfig{Enabled: false, Addr: ":8080"},
		Presence: PresenceConfig{
			IntervalSeconds: 20,
			Statuses: []string{
				"/trivia test ur brain!",
				"Gary oversees {guild_count} guilds",
				"C!8ball Test your luck!",
				"Do /help for cmds",
				"30 Commands C! and /",
			},
		},
		EmbedColors: EmbedColors{
			Success: 0x00FF00,
			Danger:  0xFF0000,
			Warning: 0xFF4500,
			Info:    0x3498DB,
		},
	}
}

// Load builds the process configuration: defaults, then config.yaml if
// present, then .env / environment overrides. Only the token is mandatory.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DiscordToken == "" {
		return Config{}, errors.New("DISCORD_TOKEN is required")
	}
	if cfg.Presence.IntervalSeconds <= 0 {
		cfg.Presence.IntervalSeconds = 20
	}

	return cfg, nil
}

func BuildLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json"
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl := strings.ToLower(level)
	switch lvl {
	case "debug", "info", "warn", "error":
		cfg.Level = zap.NewAtomicLevelAt(parseLevel(lvl))
	default:
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

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
