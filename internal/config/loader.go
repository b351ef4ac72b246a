package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads a TOML configuration file at path, merges it on top of the
// built-in defaults, applies ORDIS_* environment variable overrides, and
// returns the final Config. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known ORDIS_* environment variables and
// overwrites the corresponding Config fields when a variable is set. This lets
// operators inject secrets at deploy time without touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Worldstate.Host, "ORDIS_WORLDSTATE_HOST")
	setStr(&cfg.Worldstate.Language, "ORDIS_WORLDSTATE_LANGUAGE")

	setStr(&cfg.Market.Host, "ORDIS_MARKET_HOST")
	setStr(&cfg.Market.Platform, "ORDIS_MARKET_PLATFORM")
	setStr(&cfg.Market.Language, "ORDIS_MARKET_LANGUAGE")
	setStr(&cfg.Market.Region, "ORDIS_MARKET_REGION")

	setStr(&cfg.Redis.Addr, "ORDIS_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "ORDIS_REDIS_PASSWORD")
	setInt(&cfg.Redis.DB, "ORDIS_REDIS_DB")
	setInt(&cfg.Redis.PoolSize, "ORDIS_REDIS_POOL_SIZE")
	setInt(&cfg.Redis.MaxRetries, "ORDIS_REDIS_MAX_RETRIES")

	setDuration(&cfg.Monitor.PollInterval, "ORDIS_MONITOR_POLL_INTERVAL")
	setDuration(&cfg.Monitor.CycleThreshold, "ORDIS_MONITOR_CYCLE_THRESHOLD")

	setStr(&cfg.Notify.TelegramToken, "ORDIS_NOTIFY_TELEGRAM_TOKEN")
	setStringSlice(&cfg.Notify.MissionTelegramChats, "ORDIS_NOTIFY_MISSION_TELEGRAM_CHATS")
	setStringSlice(&cfg.Notify.CycleTelegramChats, "ORDIS_NOTIFY_CYCLE_TELEGRAM_CHATS")
	setStringSlice(&cfg.Notify.MissionDiscordWebhooks, "ORDIS_NOTIFY_MISSION_DISCORD_WEBHOOKS")
	setStringSlice(&cfg.Notify.CycleDiscordWebhooks, "ORDIS_NOTIFY_CYCLE_DISCORD_WEBHOOKS")

	setBool(&cfg.Server.Enabled, "ORDIS_SERVER_ENABLED")
	setInt(&cfg.Server.Port, "ORDIS_SERVER_PORT")

	setStr(&cfg.Mode, "ORDIS_MODE")
	setStr(&cfg.LogLevel, "ORDIS_LOG_LEVEL")
}

// ---------------------------------------------------------------------------
// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.
// ---------------------------------------------------------------------------

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			*dst = cleaned
		}
	}
}
