package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App       AppConfig       `yaml:"app"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Database  DatabaseConfig  `yaml:"database"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Redis     RedisConfig     `yaml:"redis"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Breaker   BreakerConfig   `yaml:"breaker"`
}

type AppConfig struct {
	Name        string        `yaml:"name"`
	Environment string        `yaml:"environment"`
	Debug       bool          `yaml:"debug"`
	Timeout     time.Duration `yaml:"timeout"`
	Port        string        `yaml:"port"`
	LogsPath    string        `yaml:"logs_path"`
	LogLevel    string        `yaml:"log_level"`
}

// DatasetConfig selects where the person collection comes from.
type DatasetConfig struct {
	Source  string        `yaml:"source"`
	Seed    int64         `yaml:"seed"`
	Size    int           `yaml:"size"`
	Latency time.Duration `yaml:"latency"`
}

type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Name            string        `yaml:"name"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"sslmode"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Password     string        `yaml:"password"`
	Database     int           `yaml:"database"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	PoolTimeout  time.Duration `yaml:"pool_timeout"`
	TTL          time.Duration `yaml:"ttl"`
}

type RateLimitConfig struct {
	Request  int `yaml:"request"`
	Duration int `yaml:"duration"`
}

// BreakerConfig tunes the circuit breaker guarding the record store.
type BreakerConfig struct {
	MaxFailures  int           `yaml:"max_failures"`
	ResetTimeout time.Duration `yaml:"reset_timeout"`
	HalfOpenMax  int           `yaml:"half_open_max"`
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
}

// Default returns the configuration used when neither a file nor the
// environment say otherwise.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "roster",
			Environment: "development",
			Port:        "8080",
			Debug:       true,
			Timeout:     30 * time.Second,
			LogsPath:    "logs",
			LogLevel:    "info",
		},
		Dataset: DatasetConfig{
			Source: "memory",
			Seed:   123,
			Size:   100,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			Name:            "roster_db",
			User:            "postgres",
			Password:        "postgres",
			SSLMode:         "disable",
			MaxIdleConns:    10,
			MaxOpenConns:    50,
			ConnMaxLifetime: time.Hour,
			ConnMaxIdleTime: 10 * time.Minute,
		},
		SQLite: SQLiteConfig{
			Path: "roster.db",
		},
		Redis: RedisConfig{
			Enabled:      false,
			Host:         "localhost",
			Port:         6379,
			PoolSize:     10,
			MinIdleConns: 5,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolTimeout:  4 * time.Second,
			TTL:          5 * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Request:  120,
			Duration: 60,
		},
		Breaker: BreakerConfig{
			MaxFailures:  5,
			ResetTimeout: 30 * time.Second,
			HalfOpenMax:  1,
			FetchTimeout: 5 * time.Second,
		},
	}
}

// LoadConfig layers .env, an optional YAML file named by CONFIG_PATH and the
// process environment over Default, in that order of precedence (env wins).
func LoadConfig() (*Config, error) {
	// Missing .env is fine, the environment may be set another way
	_ = godotenv.Load()

	config := Default()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, config); err != nil {
			return nil, err
		}
	}

	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.App.Name = getEnv("APP_NAME", c.App.Name)
	c.App.Environment = getEnv("APP_ENV", c.App.Environment)
	c.App.Port = getEnv("APP_PORT", c.App.Port)
	c.App.Debug = getEnvAsBool("APP_DEBUG", c.App.Debug)
	c.App.Timeout = getEnvAsDuration("APP_TIMEOUT", c.App.Timeout)
	c.App.LogsPath = getEnv("LOGS_PATH", c.App.LogsPath)
	c.App.LogLevel = getEnv("LOG_LEVEL", c.App.LogLevel)

	c.Dataset.Source = getEnv("DATASET_SOURCE", c.Dataset.Source)
	c.Dataset.Seed = getEnvAsInt64("DATASET_SEED", c.Dataset.Seed)
	c.Dataset.Size = getEnvAsInt("DATASET_SIZE", c.Dataset.Size)
	c.Dataset.Latency = getEnvAsDuration("DATASET_LATENCY", c.Dataset.Latency)

	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.Port = getEnvAsInt("DB_PORT", c.Database.Port)
	c.Database.Name = getEnv("DB_NAME", c.Database.Name)
	c.Database.User = getEnv("DB_USER", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.SSLMode = getEnv("DB_SSL_MODE", c.Database.SSLMode)
	c.Database.MaxIdleConns = getEnvAsInt("DB_MAX_IDLE_CONNS", c.Database.MaxIdleConns)
	c.Database.MaxOpenConns = getEnvAsInt("DB_MAX_OPEN_CONNS", c.Database.MaxOpenConns)
	c.Database.ConnMaxLifetime = getEnvAsDuration("DB_CONN_MAX_LIFETIME", c.Database.ConnMaxLifetime)
	c.Database.ConnMaxIdleTime = getEnvAsDuration("DB_CONN_MAX_IDLE_TIME", c.Database.ConnMaxIdleTime)

	c.SQLite.Path = getEnv("SQLITE_PATH", c.SQLite.Path)

	c.Redis.Enabled = getEnvAsBool("REDIS_ENABLED", c.Redis.Enabled)
	c.Redis.Host = getEnv("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = getEnvAsInt("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.Database = getEnvAsInt("REDIS_DB", c.Redis.Database)
	c.Redis.PoolSize = getEnvAsInt("REDIS_POOL_SIZE", c.Redis.PoolSize)
	c.Redis.MinIdleConns = getEnvAsInt("REDIS_MIN_IDLE_CONNS", c.Redis.MinIdleConns)
	c.Redis.DialTimeout = getEnvAsDuration("REDIS_DIAL_TIMEOUT", c.Redis.DialTimeout)
	c.Redis.ReadTimeout = getEnvAsDuration("REDIS_READ_TIMEOUT", c.Redis.ReadTimeout)
	c.Redis.WriteTimeout = getEnvAsDuration("REDIS_WRITE_TIMEOUT", c.Redis.WriteTimeout)
	c.Redis.PoolTimeout = getEnvAsDuration("REDIS_POOL_TIMEOUT", c.Redis.PoolTimeout)
	c.Redis.TTL = getEnvAsDuration("REDIS_TTL", c.Redis.TTL)

	c.RateLimit.Request = getEnvAsInt("RATE_LIMIT_MAX_REQUEST", c.RateLimit.Request)
	c.RateLimit.Duration = getEnvAsInt("RATE_LIMIT_DURATION", c.RateLimit.Duration)

	c.Breaker.MaxFailures = getEnvAsInt("BREAKER_MAX_FAILURES", c.Breaker.MaxFailures)
	c.Breaker.ResetTimeout = getEnvAsDuration("BREAKER_RESET_TIMEOUT", c.Breaker.ResetTimeout)
	c.Breaker.HalfOpenMax = getEnvAsInt("BREAKER_HALF_OPEN_MAX", c.Breaker.HalfOpenMax)
	c.Breaker.FetchTimeout = getEnvAsDuration("BREAKER_FETCH_TIMEOUT", c.Breaker.FetchTimeout)
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case "memory", "postgres", "sqlite":
	default:
		return fmt.Errorf("invalid DATASET_SOURCE %q: want memory, postgres or sqlite", c.Dataset.Source)
	}
	if c.Dataset.Size < 0 {
		return fmt.Errorf("invalid DATASET_SIZE %d: must not be negative", c.Dataset.Size)
	}
	if c.Dataset.Latency < 0 {
		return fmt.Errorf("invalid DATASET_LATENCY %s: must not be negative", c.Dataset.Latency)
	}
	return nil
}

func (c *Config) DatabaseConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func (c *Config) RedisAddress() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		boolValue, err := strconv.ParseBool(value)
		if err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
