package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Локальный пользователь, от имени которого работает сервис
	LocalUserID string `env:"LOCAL_USER_ID"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Location Source Config
	FixTimeout            time.Duration `env:"FIX_TIMEOUT" envDefault:"15s"`
	ForegroundMinInterval time.Duration `env:"FOREGROUND_MIN_INTERVAL" envDefault:"10s"`
	ForegroundMinDistance float64       `env:"FOREGROUND_MIN_DISTANCE_METERS" envDefault:"10"`
	BackgroundMinInterval time.Duration `env:"BACKGROUND_MIN_INTERVAL" envDefault:"60s"`

	// Sync Scheduler Config
	SyncThrottleInterval      time.Duration `env:"SYNC_THROTTLE_INTERVAL" envDefault:"10s"`
	SyncMinDistanceMeters     float64       `env:"SYNC_MIN_DISTANCE_METERS" envDefault:"10"`
	SyncRetryDelay            time.Duration `env:"SYNC_RETRY_DELAY" envDefault:"5s"`
	SyncStalenessThreshold    time.Duration `env:"SYNC_STALENESS_THRESHOLD" envDefault:"60s"`
	MembershipRefreshInterval time.Duration `env:"MEMBERSHIP_REFRESH_INTERVAL" envDefault:"30s"`

	// Proximity Detector / Debouncer Config
	DefaultRadiusMeters           float64       `env:"DEFAULT_RADIUS_METERS" envDefault:"100"`
	DebounceWindow                time.Duration `env:"DEBOUNCE_WINDOW" envDefault:"5m"`
	DebouncePruneInterval         time.Duration `env:"DEBOUNCE_PRUNE_INTERVAL" envDefault:"60s"`
	TriggerAlertsOnlyBroadcasting bool          `env:"TRIGGER_ALERTS_ONLY_WHEN_BROADCASTING" envDefault:"true"`

	// Background Task Config
	BackgroundInterval       time.Duration `env:"BACKGROUND_INTERVAL" envDefault:"5m"`
	BackgroundDebounceWindow time.Duration `env:"BACKGROUND_DEBOUNCE_WINDOW" envDefault:"15m"`
	BackgroundEvictAfter     time.Duration `env:"BACKGROUND_EVICT_AFTER" envDefault:"60m"`

	// Webhook (alert sink) Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LocalUserID: os.Getenv("LOCAL_USER_ID"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		FixTimeout:            getEnvAsDuration("FIX_TIMEOUT", 15*time.Second),
		ForegroundMinInterval: getEnvAsDuration("FOREGROUND_MIN_INTERVAL", 10*time.Second),
		ForegroundMinDistance: getEnvAsFloat("FOREGROUND_MIN_DISTANCE_METERS", 10),
		BackgroundMinInterval: getEnvAsDuration("BACKGROUND_MIN_INTERVAL", 60*time.Second),

		SyncThrottleInterval:      getEnvAsDuration("SYNC_THROTTLE_INTERVAL", 10*time.Second),
		SyncMinDistanceMeters:     getEnvAsFloat("SYNC_MIN_DISTANCE_METERS", 10),
		SyncRetryDelay:            getEnvAsDuration("SYNC_RETRY_DELAY", 5*time.Second),
		SyncStalenessThreshold:    getEnvAsDuration("SYNC_STALENESS_THRESHOLD", 60*time.Second),
		MembershipRefreshInterval: getEnvAsDuration("MEMBERSHIP_REFRESH_INTERVAL", 30*time.Second),

		DefaultRadiusMeters:           getEnvAsFloat("DEFAULT_RADIUS_METERS", 100),
		DebounceWindow:                getEnvAsDuration("DEBOUNCE_WINDOW", 5*time.Minute),
		DebouncePruneInterval:         getEnvAsDuration("DEBOUNCE_PRUNE_INTERVAL", 60*time.Second),
		TriggerAlertsOnlyBroadcasting: getEnvAsBool("TRIGGER_ALERTS_ONLY_WHEN_BROADCASTING", true),

		BackgroundInterval:       getEnvAsDuration("BACKGROUND_INTERVAL", 5*time.Minute),
		BackgroundDebounceWindow: getEnvAsDuration("BACKGROUND_DEBOUNCE_WINDOW", 15*time.Minute),
		BackgroundEvictAfter:     getEnvAsDuration("BACKGROUND_EVICT_AFTER", 60*time.Minute),

		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if cfg.LocalUserID == "" {
		return nil, fmt.Errorf("LOCAL_USER_ID environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBool возвращает значение переменной окружения как bool или значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
