package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/cricsim/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env         string `env:"APP_ENV" envDefault:"development"`
		Port        string `env:"PORT"    envDefault:"8088"`
		FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
		LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
	}
	DB struct {
		Host     string `env:"DB_HOST"     envDefault:"localhost"`
		Port     string `env:"DB_PORT"     envDefault:"5432"`
		User     string `env:"DB_USER"     envDefault:"postgres"`
		Password string `env:"DB_PASSWORD" envDefault:"password"`
		Name     string `env:"DB_NAME"     envDefault:"cricsim_db"`
		SSLMode  string `env:"DB_SSLMODE"  envDefault:"disable"`
	}
	Redis struct {
		URL string `env:"REDIS_URL"` // empty disables cross-instance rating locks
	}
	JWT struct {
		AccessTokenSecret        string `env:"JWT_ACCESS_TOKEN_SECRET"  envDefault:"supersecret"`
		AccessTokenExpiryMinutes int    `env:"JWT_ACCESS_TOKEN_EXPIRY_MINUTES" envDefault:"15"`
	}
	Sim struct {
		DefaultMaxOvers int `env:"SIM_DEFAULT_MAX_OVERS" envDefault:"20"`
	}
	Rating struct {
		LockTTL time.Duration `env:"RATING_LOCK_TTL" envDefault:"10s"`
	}
}

// Global DB instance, accessible after ConnectDB() is called via Initialize.
var DB *gorm.DB

// Global Redis client; nil when REDIS_URL is unset.
var Redis *redis.Client

var appConfig *Config
var once sync.Once

const defaultAccessSecret = "your-very-strong-access-secret"

// LoadConfig reads the environment (and .env when present) into a Config.
func LoadConfig() (*Config, error) {
	// A missing .env is fine; production sets the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")
	cfg.App.LogLevel = getEnv("LOG_LEVEL", "info")

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "cricsim_db")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.URL = getEnv("REDIS_URL", "")

	cfg.JWT.AccessTokenSecret = getEnv("JWT_ACCESS_TOKEN_SECRET", defaultAccessSecret)

	var err error
	cfg.JWT.AccessTokenExpiryMinutes, err = getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY_MINUTES", 15)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_ACCESS_TOKEN_EXPIRY_MINUTES: %w", err)
	}
	cfg.Sim.DefaultMaxOvers, err = getEnvAsInt("SIM_DEFAULT_MAX_OVERS", 20)
	if err != nil {
		return nil, fmt.Errorf("invalid SIM_DEFAULT_MAX_OVERS: %w", err)
	}
	if cfg.Sim.DefaultMaxOvers < 1 {
		return nil, fmt.Errorf("invalid SIM_DEFAULT_MAX_OVERS: must be at least 1, got %d", cfg.Sim.DefaultMaxOvers)
	}
	cfg.Rating.LockTTL, err = getEnvAsDuration("RATING_LOCK_TTL", 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("invalid RATING_LOCK_TTL: %w", err)
	}

	appConfig = cfg
	return cfg, nil
}

// warnDefaults flags settings that are fine locally but not in production.
func warnDefaults(cfg *Config) {
	if cfg.JWT.AccessTokenSecret == defaultAccessSecret {
		logger.Warn("using default JWT secret, set JWT_ACCESS_TOKEN_SECRET for production")
	}
	if cfg.DB.Password == "password" && cfg.App.Env == "production" {
		logger.Warn("using default DB password in production, set DB_PASSWORD")
	}
	if cfg.Redis.URL == "" {
		logger.Info("REDIS_URL not set, rating updates rely on database row locks only")
	}
}

// ConnectDB opens the postgres connection and sets the global DB.
func ConnectDB(dbCfg Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		dbCfg.DB.Host,
		dbCfg.DB.User,
		dbCfg.DB.Password,
		dbCfg.DB.Name,
		dbCfg.DB.Port,
		dbCfg.DB.SSLMode,
	)

	gormConfig := &gorm.Config{}
	if dbCfg.App.Env == "development" {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	gormDB, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = gormDB
	logger.Info("connected to database", "host", dbCfg.DB.Host, "name", dbCfg.DB.Name)
	return gormDB, nil
}

// NewRedisClient connects to REDIS_URL. It returns (nil, nil) when Redis is
// not configured.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.Redis.URL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis: %w", err)
	}
	logger.Info("connected to redis", "addr", opts.Addr)
	return client, nil
}

// Initialize loads configuration, starts the logger and connects to the
// database and, when configured, Redis. Call once from main.
func Initialize() error {
	var loadErr error
	once.Do(func() {
		loadedCfg, err := LoadConfig()
		if err != nil {
			loadErr = fmt.Errorf("failed to load configuration: %w", err)
			return
		}
		appConfig = loadedCfg

		logger.Init(appConfig.App.Env, appConfig.App.LogLevel)
		warnDefaults(appConfig)

		if _, err = ConnectDB(*appConfig); err != nil {
			loadErr = fmt.Errorf("failed to connect to database during initialization: %w", err)
			return
		}

		Redis, err = NewRedisClient(context.Background(), *appConfig)
		if err != nil {
			loadErr = fmt.Errorf("failed to connect to redis during initialization: %w", err)
			return
		}
	})
	return loadErr
}

// GetConfig returns the loaded configuration. It exits if Initialize has not run.
func GetConfig() *Config {
	if appConfig == nil {
		logger.Fatal("configuration not loaded, call config.Initialize() first")
	}
	return appConfig
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected duration, got '%s'", key, valueStr)
	}
	return value, nil
}
