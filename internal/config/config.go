// Package config defines the top-level configuration for the bot and provides
// validation helpers.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the root configuration structure. Fields are populated from a TOML
// file and then optionally overridden by ORDIS_* environment variables.
type Config struct {
	Worldstate WorldstateConfig `toml:"worldstate"`
	Market     MarketConfig     `toml:"market"`
	Redis      RedisConfig      `toml:"redis"`
	Monitor    MonitorConfig    `toml:"monitor"`
	Notify     NotifyConfig     `toml:"notify"`
	Server     ServerConfig     `toml:"server"`
	Mode       string           `toml:"mode"`
	LogLevel   string           `toml:"log_level"`
}

// WorldstateConfig holds the game-state API parameters.
type WorldstateConfig struct {
	Host     string `toml:"host"`
	Language string `toml:"language"`
}

// MarketConfig holds the marketplace API parameters.
type MarketConfig struct {
	Host     string `toml:"host"`
	Platform string `toml:"platform"`
	Language string `toml:"language"`
	Region   string `toml:"region"`
}

// RedisConfig holds Redis connection parameters for the name index.
type RedisConfig struct {
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	PoolSize   int    `toml:"pool_size"`
	MaxRetries int    `toml:"max_retries"`
}

// MonitorConfig holds the polling watcher parameters.
type MonitorConfig struct {
	PollInterval   duration `toml:"poll_interval"`
	CycleThreshold duration `toml:"cycle_threshold"`
}

// NotifyConfig holds notification channel credentials and the per-feed target
// lists. The mission and cycle feeds alert independent sets of chats.
type NotifyConfig struct {
	TelegramToken          string   `toml:"telegram_token"`
	MissionTelegramChats   []string `toml:"mission_telegram_chats"`
	CycleTelegramChats     []string `toml:"cycle_telegram_chats"`
	MissionDiscordWebhooks []string `toml:"mission_discord_webhooks"`
	CycleDiscordWebhooks   []string `toml:"cycle_discord_webhooks"`
}

// ServerConfig holds HTTP server parameters.
type ServerConfig struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

// duration is a wrapper around time.Duration that supports TOML string
// decoding (e.g. "30s", "700s").
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler so the TOML decoder can
// parse duration strings like "30s".
func (d *duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler for round-trip encoding.
func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Defaults returns a Config populated with reasonable default values.
func Defaults() Config {
	return Config{
		Worldstate: WorldstateConfig{
			Host:     "https://api.warframestat.us/pc",
			Language: "zh",
		},
		Market: MarketConfig{
			Host:     "https://api.warframe.market/v1",
			Platform: "pc",
			Language: "zh-hans",
			Region:   "en",
		},
		Redis: RedisConfig{
			Addr:       "localhost:6379",
			DB:         0,
			PoolSize:   10,
			MaxRetries: 3,
		},
		Monitor: MonitorConfig{
			PollInterval:   duration{30 * time.Second},
			CycleThreshold: duration{700 * time.Second},
		},
		Server: ServerConfig{
			Enabled: true,
			Port:    8000,
		},
		Mode:     "full",
		LogLevel: "info",
	}
}

// validModes enumerates the accepted values for Config.Mode.
var validModes = map[string]bool{
	"monitor": true,
	"server":  true,
	"full":    true,
}

// validLogLevels enumerates the accepted values for Config.LogLevel.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks Config for obviously invalid or missing values and returns a
// combined error describing every problem found.
func (c *Config) Validate() error {
	var errs []string

	if !validModes[strings.ToLower(c.Mode)] {
		errs = append(errs, fmt.Sprintf("unknown mode %q (valid: monitor, server, full)", c.Mode))
	}

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, fmt.Sprintf("unknown log_level %q (valid: debug, info, warn, error)", c.LogLevel))
	}

	if c.Worldstate.Host == "" {
		errs = append(errs, "worldstate: host must not be empty")
	}
	if c.Market.Host == "" {
		errs = append(errs, "market: host must not be empty")
	}
	if c.Market.Platform == "" {
		errs = append(errs, "market: platform must not be empty")
	}
	if c.Market.Region == "" {
		errs = append(errs, "market: region must not be empty")
	}

	if c.Redis.Addr == "" {
		errs = append(errs, "redis: addr must not be empty")
	}
	if c.Redis.PoolSize < 1 {
		errs = append(errs, "redis: pool_size must be >= 1")
	}

	if c.Monitor.PollInterval.Duration <= 0 {
		errs = append(errs, "monitor: poll_interval must be positive")
	}
	if c.Monitor.CycleThreshold.Duration <= 0 {
		errs = append(errs, "monitor: cycle_threshold must be positive")
	}

	// Telegram chats without a token can never deliver.
	hasTelegramTargets := len(c.Notify.MissionTelegramChats) > 0 || len(c.Notify.CycleTelegramChats) > 0
	if hasTelegramTargets && c.Notify.TelegramToken == "" {
		errs = append(errs, "notify: telegram_token is required when telegram chats are configured")
	}

	if c.Server.Enabled {
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, fmt.Sprintf("server: port must be 1-65535, got %d", c.Server.Port))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
