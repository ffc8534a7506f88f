package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
	Geocoder GeocoderConfig
	Routing  RoutingConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	RadiusCacheTTL time.Duration
	SearchCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// GeocoderConfig configures the external geocoder. BaseURLs is an optional
// comma/semicolon-delimited override list tried before the built-in
// fallbacks.
type GeocoderConfig struct {
	BaseURLs string
	Timeout  time.Duration
	Lang     string
}

// RoutingConfig configures the external routing backend, same override
// semantics as GeocoderConfig.
type RoutingConfig struct {
	BaseURLs string
	Timeout  time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			RadiusCacheTTL: time.Duration(viper.GetInt("RADIUS_CACHE_TTL")) * time.Second,
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Geocoder: GeocoderConfig{
			BaseURLs: viper.GetString("GEOCODER_BASE_URLS"),
			Timeout:  time.Duration(viper.GetInt("GEOCODER_TIMEOUT")) * time.Second,
			Lang:     viper.GetString("GEOCODER_LANG"),
		},
		Routing: RoutingConfig{
			BaseURLs: viper.GetString("ROUTING_BASE_URLS"),
			Timeout:  time.Duration(viper.GetInt("ROUTING_TIMEOUT")) * time.Second,
		},
	}

	// Defaults
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}
	if cfg.Database.ConnMaxIdleTime == 0 {
		cfg.Database.ConnMaxIdleTime = 10 * time.Second
	}
	if cfg.Cache.RadiusCacheTTL == 0 {
		cfg.Cache.RadiusCacheTTL = 5 * time.Minute
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = time.Minute
	}
	// Geocoders may be slow on cold cache; routing should answer fast once
	// reachable.
	if cfg.Geocoder.Timeout == 0 {
		cfg.Geocoder.Timeout = 30 * time.Second
	}
	if cfg.Geocoder.Lang == "" {
		cfg.Geocoder.Lang = "de"
	}
	if cfg.Routing.Timeout == 0 {
		cfg.Routing.Timeout = 8 * time.Second
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
