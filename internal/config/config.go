package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Драйверы хранилища записей
const (
	StorageMemory   = "memory"
	StorageBadger   = "badger"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

var (
	// ErrLoad возвращается, если файл конфигурации не удалось прочитать
	ErrLoad = errors.New("config: failed to load")

	// ErrInvalid возвращается при некорректных значениях конфигурации
	ErrInvalid = errors.New("config: invalid value")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Logs          LogsConfig          `toml:"logs"`
	Storage       StorageConfig       `toml:"storage"`
	Database      DatabaseConfig      `toml:"database"`
	Redis         RedisConfig         `toml:"redis"`
	Identity      IdentityConfig      `toml:"identity"`
	Notifications NotificationsConfig `toml:"notifications"`
	Statistics    StatisticsConfig    `toml:"statistics"`
	Metrics       MetricsConfig       `toml:"metrics"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// StorageConfig выбор backend хранилища записей
type StorageConfig struct {
	Driver         string `toml:"driver"`      // memory | badger | postgres | redis
	BadgerPath     string `toml:"badger_path"` // пустой путь - badger в памяти
	SeedFile       string `toml:"seed_file"`   // JSON снимок для пустого хранилища
	RedisKeyPrefix string `toml:"redis_key_prefix"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// IdentityConfig клиент сервиса пользователей
type IdentityConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type NotificationsConfig struct {
	WebSocketEnabled bool   `toml:"websocket_enabled"`
	WebSocketPath    string `toml:"websocket_path"`
	RedisEnabled     bool   `toml:"redis_enabled"`
	RedisChannel     string `toml:"redis_channel"`
}

type StatisticsConfig struct {
	Timezone string `toml:"timezone"` // IANA имя, например Europe/Moscow
}

// Location возвращает часовой пояс для расчёта интервалов статистики
func (s StatisticsConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load читает конфигурацию из TOML файла, применяет значения по умолчанию и валидирует
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoad, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Storage: StorageConfig{
			Driver:         StorageBadger,
			RedisKeyPrefix: "parking:",
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Identity: IdentityConfig{
			Timeout: 5,
		},
		Notifications: NotificationsConfig{
			WebSocketEnabled: true,
			WebSocketPath:    "/ws",
			RedisChannel:     "parking-events",
		},
		Statistics: StatisticsConfig{
			Timezone: "UTC",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "smc-parkingservice",
			Path:        "/metrics",
		},
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalid, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageMemory, StorageBadger:
	case StoragePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalid)
		}
	case StorageRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis.addr is required for redis storage", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: storage.driver=%q", ErrInvalid, c.Storage.Driver)
	}

	if c.Notifications.RedisEnabled && c.Redis.Addr == "" {
		return fmt.Errorf("%w: redis.addr is required for redis notifications", ErrInvalid)
	}

	if c.Identity.Timeout <= 0 {
		return fmt.Errorf("%w: identity.timeout=%d", ErrInvalid, c.Identity.Timeout)
	}

	if _, err := c.Statistics.Location(); err != nil {
		return fmt.Errorf("%w: statistics.timezone=%q: %v", ErrInvalid, c.Statistics.Timezone, err)
	}

	return nil
}
