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
	DBMaxConns  int32  `env:"DB_MAX_CONNS" envDefault:"0"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Incident Store
	IncidentTTL      time.Duration `env:"INCIDENT_TTL" envDefault:"48h"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
	AutoVerifyVotes  int           `env:"AUTO_VERIFY_VOTES" envDefault:"3"`
	AutoVerifyWindow time.Duration `env:"AUTO_VERIFY_WINDOW" envDefault:"2h"`

	// Clustering & Zone Lifecycle
	ClusterInterval   time.Duration `env:"CLUSTER_INTERVAL" envDefault:"10m"`
	ClusterEpsMeters  float64       `env:"CLUSTER_EPS_METERS" envDefault:"1100"`
	ClusterMinPoints  int           `env:"CLUSTER_MIN_POINTS" envDefault:"5"`
	ClusterWindowDays int           `env:"CLUSTER_WINDOW_DAYS" envDefault:"7"`
	ClusterLockTTL    time.Duration `env:"CLUSTER_LOCK_TTL" envDefault:"5m"`
	ZoneMatchMeters   float64       `env:"ZONE_MATCH_METERS" envDefault:"500"`
	ZoneRadiusMeters  int           `env:"ZONE_RADIUS_METERS" envDefault:"1000"`
	ZoneMinIncidents  int           `env:"ZONE_MIN_INCIDENTS" envDefault:"3"`

	// Proximity Alerts
	ApproachBandMeters       float64       `env:"APPROACH_BAND_METERS" envDefault:"500"`
	DefaultAlertRadiusMeters int           `env:"DEFAULT_ALERT_RADIUS_METERS" envDefault:"5000"`
	PushGatewayURL           string        `env:"PUSH_GATEWAY_URL"`
	PushGatewaySecret        string        `env:"PUSH_GATEWAY_SECRET"`
	PushTimeout              time.Duration `env:"PUSH_TIMEOUT" envDefault:"5s"`
	PushConcurrency          int           `env:"PUSH_CONCURRENCY" envDefault:"16"`

	// Route Scorer
	RouteCorridorMeters int           `env:"ROUTE_CORRIDOR_METERS" envDefault:"1000"`
	RouteWindow         time.Duration `env:"ROUTE_WINDOW" envDefault:"48h"`

	// Broadcast (realtime) Config
	BroadcastURL        string        `env:"BROADCAST_URL"`
	BroadcastSecret     string        `env:"BROADCAST_SECRET"`
	BroadcastTimeout    time.Duration `env:"BROADCAST_TIMEOUT" envDefault:"5s"`
	BroadcastMaxRetries int           `env:"BROADCAST_MAX_RETRIES" envDefault:"3"`
	BroadcastBaseDelay  time.Duration `env:"BROADCAST_BASE_DELAY" envDefault:"1s"`

	// Stats Config
	StatsTimeWindowMinutes int `env:"STATS_TIME_WINDOW_MINUTES" envDefault:"60"`

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
		DBMaxConns:  int32(getEnvAsInt("DB_MAX_CONNS", 0)),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     getEnvAsInt("REDIS_DB", 0),

		IncidentTTL:      getEnvAsDuration("INCIDENT_TTL", 48*time.Hour),
		SweepInterval:    getEnvAsDuration("SWEEP_INTERVAL", time.Hour),
		AutoVerifyVotes:  getEnvAsInt("AUTO_VERIFY_VOTES", 3),
		AutoVerifyWindow: getEnvAsDuration("AUTO_VERIFY_WINDOW", 2*time.Hour),

		ClusterInterval:   getEnvAsDuration("CLUSTER_INTERVAL", 10*time.Minute),
		ClusterEpsMeters:  getEnvAsFloat("CLUSTER_EPS_METERS", 1100),
		ClusterMinPoints:  getEnvAsInt("CLUSTER_MIN_POINTS", 5),
		ClusterWindowDays: getEnvAsInt("CLUSTER_WINDOW_DAYS", 7),
		ClusterLockTTL:    getEnvAsDuration("CLUSTER_LOCK_TTL", 5*time.Minute),
		ZoneMatchMeters:   getEnvAsFloat("ZONE_MATCH_METERS", 500),
		ZoneRadiusMeters:  getEnvAsInt("ZONE_RADIUS_METERS", 1000),
		ZoneMinIncidents:  getEnvAsInt("ZONE_MIN_INCIDENTS", 3),

		ApproachBandMeters:       getEnvAsFloat("APPROACH_BAND_METERS", 500),
		DefaultAlertRadiusMeters: getEnvAsInt("DEFAULT_ALERT_RADIUS_METERS", 5000),
		PushGatewayURL:           os.Getenv("PUSH_GATEWAY_URL"),
		PushGatewaySecret:        os.Getenv("PUSH_GATEWAY_SECRET"),
		PushTimeout:              getEnvAsDuration("PUSH_TIMEOUT", 5*time.Second),
		PushConcurrency:          getEnvAsInt("PUSH_CONCURRENCY", 16),

		RouteCorridorMeters: getEnvAsInt("ROUTE_CORRIDOR_METERS", 1000),
		RouteWindow:         getEnvAsDuration("ROUTE_WINDOW", 48*time.Hour),

		BroadcastURL:        os.Getenv("BROADCAST_URL"),
		BroadcastSecret:     os.Getenv("BROADCAST_SECRET"),
		BroadcastTimeout:    getEnvAsDuration("BROADCAST_TIMEOUT", 5*time.Second),
		BroadcastMaxRetries: getEnvAsInt("BROADCAST_MAX_RETRIES", 3),
		BroadcastBaseDelay:  getEnvAsDuration("BROADCAST_BASE_DELAY", time.Second),

		StatsTimeWindowMinutes: getEnvAsInt("STATS_TIME_WINDOW_MINUTES", 60),
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

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
