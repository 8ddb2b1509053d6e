package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherdash.app/pkg/errors"
)

const (
	maxRedisDB        = 15
	maxPortNumber     = 65535
	maxTimeoutSeconds = 300
)

// Config is the proxy service configuration
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Upstream UpstreamConfig `split_words:"true"`
	Logging  LoggingConfig  `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"5000"`
	// AllowedOrigin is the CORS origin the browser frontend is served from.
	AllowedOrigin string `envconfig:"FRONTEND_URL" default:"*"`
	// TrustedProxies lists the addresses or CIDRs allowed to set X-Forwarded-For.
	// Empty trusts no proxy and the peer address is the client.
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`
}

type UpstreamConfig struct {
	OpenWeatherMapKey     string `envconfig:"WEATHER_API_KEY"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	GeoBaseURL            string `envconfig:"OPENWEATHERMAP_GEO_BASE_URL" default:"https://api.openweathermap.org/geo/1.0"`
	Units                 string `envconfig:"WEATHER_UNITS" default:"metric"`
	IPDataKey             string `envconfig:"IPDATA_API_KEY"`
	IPDataBaseURL         string `envconfig:"IPDATA_BASE_URL" default:"https://api.ipdata.co"`
	TimeoutSeconds        int    `envconfig:"UPSTREAM_TIMEOUT_SECONDS" default:"10"`
}

type LoggingConfig struct {
	EnableLogging bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath   string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/upstream.log"`
}

// DashboardConfig is the terminal client configuration
type DashboardConfig struct {
	APIBaseURL     string      `envconfig:"DASHBOARD_API_BASE_URL" default:"http://localhost:5000"`
	TimeoutSeconds int         `envconfig:"DASHBOARD_TIMEOUT_SECONDS" default:"15"`
	AutoLocate     bool        `envconfig:"DASHBOARD_AUTO_LOCATE" default:"true"`
	Store          StoreConfig `split_words:"true"`
}

// StoreType represents the backend used to persist client state
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeFile
	StoreTypeRedis
	StoreTypeSQLite
	StoreTypePostgres
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeFile:
		return "file"
	case StoreTypeRedis:
		return "redis"
	case StoreTypeSQLite:
		return "sqlite"
	case StoreTypePostgres:
		return "postgres"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s != StoreTypeUnknown && s.String() != "unknown"
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "memory":
		return StoreTypeMemory
	case "file":
		return StoreTypeFile
	case "redis":
		return StoreTypeRedis
	case "sqlite":
		return StoreTypeSQLite
	case "postgres":
		return StoreTypePostgres
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StoreConfig struct {
	Type       StoreType      `envconfig:"STORE_TYPE" default:"file"`
	FileDir    string         `envconfig:"STORE_FILE_DIR" default:".weatherdash"`
	SQLitePath string         `envconfig:"STORE_SQLITE_PATH" default:".weatherdash/state.db"`
	Database   DatabaseConfig `split_words:"true"`
	Redis      RedisConfig    `split_words:"true"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherdash"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix    string `envconfig:"STORE_REDIS_PREFIX" default:"weatherdash:"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// LoadConfig reads the proxy configuration from the environment.
// PORT is honoured when SERVER_PORT is unset, for hosts that inject it.
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if _, set := os.LookupEnv("SERVER_PORT"); !set {
		if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			config.Server.Port = port
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadDashboardConfig reads the terminal client configuration from the environment
func LoadDashboardConfig() (*DashboardConfig, error) {
	var config DashboardConfig
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing dashboard config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Upstream.Validate(); err != nil {
		return err
	}
	if c.Logging.EnableLogging && c.Logging.LogFilePath == "" {
		return errors.NewConfigurationError("WEATHER_LOG_FILE_PATH cannot be empty when logging is enabled", nil)
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	if strings.TrimSpace(s.AllowedOrigin) == "" {
		return errors.NewConfigurationError("FRONTEND_URL cannot be empty", nil)
	}
	if s.AllowedOrigin != "*" {
		if err := validateURL("FRONTEND_URL", s.AllowedOrigin); err != nil {
			return err
		}
	}
	for _, proxy := range s.TrustedProxies {
		if !validProxy(proxy) {
			return errors.NewConfigurationError("TRUSTED_PROXIES entry is not an IP or CIDR: "+proxy, nil)
		}
	}
	return nil
}

func validProxy(entry string) bool {
	if _, err := netip.ParseAddr(entry); err == nil {
		return true
	}
	_, err := netip.ParsePrefix(entry)
	return err == nil
}

func (u *UpstreamConfig) Validate() error {
	if u.OpenWeatherMapKey == "" {
		return errors.NewConfigurationError("WEATHER_API_KEY must be configured", nil)
	}
	if err := validateURL("OPENWEATHERMAP_API_BASE_URL", u.OpenWeatherMapBaseURL); err != nil {
		return err
	}
	if err := validateURL("OPENWEATHERMAP_GEO_BASE_URL", u.GeoBaseURL); err != nil {
		return err
	}
	if err := validateURL("IPDATA_BASE_URL", u.IPDataBaseURL); err != nil {
		return err
	}
	if u.TimeoutSeconds < 1 || u.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("UPSTREAM_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	return nil
}

func (d *DashboardConfig) Validate() error {
	if err := validateURL("DASHBOARD_API_BASE_URL", d.APIBaseURL); err != nil {
		return err
	}
	if d.TimeoutSeconds < 1 || d.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("DASHBOARD_TIMEOUT_SECONDS must be between 1 and 300", nil)
	}
	return d.Store.Validate()
}

func (s *StoreConfig) Validate() error {
	switch s.Type {
	case StoreTypeMemory:
		return nil
	case StoreTypeFile:
		if s.FileDir == "" {
			return errors.NewConfigurationError("STORE_FILE_DIR cannot be empty when using file store", nil)
		}
		return nil
	case StoreTypeSQLite:
		if s.SQLitePath == "" {
			return errors.NewConfigurationError("STORE_SQLITE_PATH cannot be empty when using sqlite store", nil)
		}
		return nil
	case StoreTypePostgres:
		return s.Database.Validate()
	case StoreTypeRedis:
		return s.Redis.Validate()
	default:
		return errors.NewConfigurationError("STORE_TYPE must be one of: memory, file, redis, sqlite, postgres", nil)
	}
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func validateURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
