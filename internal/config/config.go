package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/funfight/challenge-tracker/internal/constants"
)

type Config struct {
	RiotAPIKey    string
	Region        string // platform routing, e.g. kr, na1
	AccountRegion string // regional routing for account/match endpoints, e.g. asia
	DBPath        string
	ServerPort    string
	LogLevel      string
	CacheTTL      time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:    getEnv("RIOT_API_KEY", ""),
		Region:        getEnv("RIOT_API_REGION", "kr"),
		AccountRegion: getEnv("RIOT_ACCOUNT_REGION", "asia"),
		DBPath:        getEnv("DB_PATH", "challenge.db"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		CacheTTL:      getDurationEnv("CACHE_TTL", constants.DefaultCacheTTL),
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("region", cfg.Region).
		Str("account_region", cfg.AccountRegion).
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
