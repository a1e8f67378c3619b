package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// Config is the full application configuration surface.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Device    DeviceConfig    `mapstructure:"device"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Dosing    DosingConfig    `mapstructure:"dosing"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	MongoURI   string `mapstructure:"mongo_uri"`
	MongoDB    string `mapstructure:"mongo_db"`
}

// DeviceConfig points at the ESP32 controller. An empty BaseURL disables polling.
type DeviceConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// SchedulerConfig holds cron expressions for background jobs.
type SchedulerConfig struct {
	RecommendationCron string `mapstructure:"recommendation_cron"`
	StockCron          string `mapstructure:"stock_cron"`
}

type DosingConfig struct {
	DefaultSubstrate string  `mapstructure:"default_substrate"`
	MaxLiters        float64 `mapstructure:"max_liters"`
}

const envPrefix = "GROW"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "growroom.db")
	v.SetDefault("storage.mongo_uri", "mongodb://localhost:27017")
	v.SetDefault("storage.mongo_db", "growroom")
	v.SetDefault("device.base_url", "")
	v.SetDefault("device.poll_interval", 5*time.Second)
	v.SetDefault("device.timeout", 3*time.Second)
	v.SetDefault("scheduler.recommendation_cron", "*/15 * * * *")
	v.SetDefault("scheduler.stock_cron", "0 9 * * *")
	v.SetDefault("dosing.default_substrate", "lightMix")
	v.SetDefault("dosing.max_liters", 100.0)
}

// Load reads .env (if present), then configs/config.yml (or the file at path),
// then GROW_* environment overrides such as GROW_STORAGE_DRIVER.
func Load(path string) (*Config, error) {
	// a missing .env is fine, configuration may come from the environment directly
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures that required configuration fields are usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Server.Port == "" {
		return errors.New("server.port must be provided")
	}

	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path must be provided for the sqlite driver")
		}
	case DriverMongo:
		if c.Storage.MongoURI == "" || c.Storage.MongoDB == "" {
			return errors.New("storage.mongo_uri and storage.mongo_db must be provided for the mongo driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q: use %s or %s", c.Storage.Driver, DriverSQLite, DriverMongo)
	}

	if c.Device.BaseURL != "" && c.Device.PollInterval <= 0 {
		return errors.New("device.poll_interval must be positive when device.base_url is set")
	}
	if c.Scheduler.RecommendationCron == "" || c.Scheduler.StockCron == "" {
		return errors.New("scheduler cron expressions must not be empty")
	}
	if c.Dosing.MaxLiters <= 0 {
		return errors.New("dosing.max_liters must be positive")
	}
	return nil
}
