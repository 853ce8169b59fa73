package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMongo    = "mongo"
	StoreDriverPostgres = "postgres"
)

type Config struct {
	App            AppConfig
	Server         ServerConfig
	Store          StoreConfig
	Mongo          MongoConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	Recommendation RecommendationConfig
	Breaker        BreakerConfig
	Discord        DiscordConfig
	HealthCheck    HealthCheckConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	Driver  string
	Timeout time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Enabled       bool
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
}

type RecommendationConfig struct {
	Algorithm  string
	ConfigFile string
}

type BreakerConfig struct {
	Failures uint32
	Cooldown time.Duration
}

type DiscordConfig struct {
	Token         string
	CommandPrefix string
}

type HealthCheckConfig struct {
	URL string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	storeTimeout, err := getEnvInt("STORE_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	cacheTTL, err := getEnvInt("CACHE_TTL_MINUTES", 30)
	if err != nil {
		return nil, err
	}
	redisEnabled, err := getEnvBool("REDIS_ENABLED", false)
	if err != nil {
		return nil, err
	}
	failures, err := getEnvInt("BREAKER_FAILURES", 3)
	if err != nil {
		return nil, err
	}
	cooldown, err := getEnvInt("BREAKER_COOLDOWN_SECONDS", 30)
	if err != nil {
		return nil, err
	}

	port := getEnv("ML_SERVICE_PORT", getEnv("PORT", "5002"))

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "ml_recommendation_engine"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: port,
		},
		Store: StoreConfig{
			Driver:  getEnv("STORE_DRIVER", StoreDriverMongo),
			Timeout: time.Duration(storeTimeout) * time.Second,
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017/smartcampus"),
			Database: getEnv("MONGO_DATABASE", "smartcampus"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "smartcampus"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:       redisEnabled,
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			CacheTTL:      time.Duration(cacheTTL) * time.Minute,
		},
		Recommendation: RecommendationConfig{
			Algorithm:  getEnv("RECO_ALGORITHM", "rule_based"),
			ConfigFile: getEnv("RECO_CONFIG_FILE", ""),
		},
		Breaker: BreakerConfig{
			Failures: uint32(failures),
			Cooldown: time.Duration(cooldown) * time.Second,
		},
		Discord: DiscordConfig{
			Token:         getEnv("DISCORD_TOKEN", ""),
			CommandPrefix: getEnv("COMMAND_PREFIX", "!"),
		},
		HealthCheck: HealthCheckConfig{
			URL: getEnv("HEALTHCHECK_URL", "http://localhost:"+port),
		},
	}

	switch cfg.Store.Driver {
	case StoreDriverMongo, StoreDriverPostgres:
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	switch cfg.Recommendation.Algorithm {
	case "rule_based", "ml_adaptive_hybrid":
	default:
		return nil, fmt.Errorf("unknown recommendation algorithm %q", cfg.Recommendation.Algorithm)
	}

	if storeTimeout <= 0 {
		return nil, errors.New("store timeout must be positive")
	}

	if failures <= 0 {
		return nil, errors.New("breaker failures must be positive")
	}

	return cfg, nil
}

// PostgresDSN builds the gorm postgres connection string.
func (d DatabaseConfig) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}

	return n, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}

	return b, nil
}
