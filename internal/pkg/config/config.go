package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB/Redis connection)
// - default: Values common across all environments (timeouts, TTLs, key names)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
	Cache  CacheConfig
	Worker WorkerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-User-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// CacheConfig controls the cache-aside read path. Strategy selects how hot
// entities are rebuilt after a miss or expiry: "passthrough" (null-caching),
// "mutex" (rebuild lock) or "logical" (logical expiration, pre-warmed keys).
type CacheConfig struct {
	Strategy       string        `envconfig:"CACHE_STRATEGY" default:"logical"`
	EntityTTL      time.Duration `envconfig:"CACHE_ENTITY_TTL" default:"30m"`
	NullTTL        time.Duration `envconfig:"CACHE_NULL_TTL" default:"2m"`
	RebuildLockTTL time.Duration `envconfig:"CACHE_REBUILD_LOCK_TTL" default:"10s"`
	RetryDelay     time.Duration `envconfig:"CACHE_RETRY_DELAY" default:"50ms"`
	MaxRetries     int           `envconfig:"CACHE_MAX_RETRIES" default:"20"`
	RebuildWorkers int64         `envconfig:"CACHE_REBUILD_WORKERS" default:"10"`
}

// WorkerConfig controls the fulfillment dispatcher and its queue cursor.
// Consumer must be unique per dispatcher instance when several instances
// share one group.
type WorkerConfig struct {
	Stream       string        `envconfig:"WORKER_STREAM" default:"stream.orders"`
	Group        string        `envconfig:"WORKER_GROUP" default:"g1"`
	Consumer     string        `envconfig:"WORKER_CONSUMER" default:"c1"`
	BlockTimeout time.Duration `envconfig:"WORKER_BLOCK_TIMEOUT" default:"2s"`
	OrderLockTTL time.Duration `envconfig:"WORKER_ORDER_LOCK_TTL" default:"30s"`
	AckRetries   int           `envconfig:"WORKER_ACK_RETRIES" default:"3"`
	RetryDelay   time.Duration `envconfig:"WORKER_RETRY_DELAY" default:"20ms"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Redis: RedisConfig{
			Addr: "localhost:16379", // Test Redis port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Cache: CacheConfig{
			Strategy:       "logical",
			EntityTTL:      30 * time.Minute,
			NullTTL:        2 * time.Minute,
			RebuildLockTTL: 10 * time.Second,
			RetryDelay:     50 * time.Millisecond,
			MaxRetries:     20,
			RebuildWorkers: 10,
		},
		Worker: WorkerConfig{
			Stream:       "stream.orders",
			Group:        "g1",
			Consumer:     "c1",
			BlockTimeout: 2 * time.Second,
			OrderLockTTL: 30 * time.Second,
			AckRetries:   3,
			RetryDelay:   20 * time.Millisecond,
		},
	}
}
