package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageSQLite   = "sqlite"
	StorageRedis    = "redis"
	StorageMongo    = "mongo"
	StorageMemory   = "memory"
)

// Config is the process configuration, read from the environment (and from an
// optional CONFIG_FILE) once at startup.
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	AWS      AWSConfig
	SQLite   SQLiteConfig
	Redis    RedisConfig
	Mongo    MongoConfig
	Auth     AuthConfig
	Payments PaymentsConfig
}

type AppConfig struct {
	Port     int
	GinMode  string
	LogLevel string
	Timezone string
}

type StorageConfig struct {
	Driver string
	// Key identifies the dataset document inside the selected backend.
	Key string
}

type AWSConfig struct {
	Region           string
	AccessKeyID      string
	SecretAccessKey  string
	DynamoDBEndpoint string
	DatasetTable     string
}

type SQLiteConfig struct {
	Path string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MongoConfig struct {
	URI        string
	Database   string
	Collection string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	Mock                   bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TIMEZONE", "America/Sao_Paulo")

	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("STORAGE_KEY", "oficina_pro_db_v1")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("DATASET_TABLE", "oficina_datasets")

	v.SetDefault("SQLITE_PATH", "oficina.db")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "oficina")
	v.SetDefault("MONGO_COLLECTION", "datasets")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")

	v.SetDefault("MERCADOPAGO_ACCESS_TOKEN", "")
	v.SetDefault("PAYMENT_GATEWAY_MOCK", false)
}

// Load reads the configuration. Environment variables always win over the
// optional file pointed to by CONFIG_FILE.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path := v.GetString("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Port:     v.GetInt("PORT"),
			GinMode:  v.GetString("GIN_MODE"),
			LogLevel: v.GetString("LOG_LEVEL"),
			Timezone: v.GetString("TIMEZONE"),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
			Key:    v.GetString("STORAGE_KEY"),
		},
		AWS: AWSConfig{
			Region:           v.GetString("AWS_REGION"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			DynamoDBEndpoint: v.GetString("DYNAMODB_ENDPOINT"),
			DatasetTable:     v.GetString("DATASET_TABLE"),
		},
		SQLite: SQLiteConfig{Path: v.GetString("SQLITE_PATH")},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Mongo: MongoConfig{
			URI:        v.GetString("MONGO_URI"),
			Database:   v.GetString("MONGO_DATABASE"),
			Collection: v.GetString("MONGO_COLLECTION"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("JWT_SECRET"),
			TokenTTL:  v.GetDuration("JWT_TTL"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:                   v.GetBool("PAYMENT_GATEWAY_MOCK") || v.GetBool("MERCADOPAGO_MOCK"),
		},
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageSQLite, StorageRedis, StorageMongo, StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("STORAGE_KEY is required")
	}
	switch c.App.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("GIN_MODE must be debug, release or test")
	}
	if c.App.Port <= 0 {
		return fmt.Errorf("PORT must be positive")
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.App.Timezone, err)
	}
	return nil
}

// Location returns the shop's local time zone used for calendar math.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
