// Package config provides configuration management for CargoTrack.
//
// Configuration is loaded in the following order (later sources override
// earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./config.yaml, ./configs/config.yaml,
//     ~/.cargotrack/config.yaml, /etc/cargotrack/config.yaml)
//  3. .env files
//  4. Environment variables (CT_ prefix)
//
// Environment variables use the CT_ prefix and underscores for nested keys:
//   - CT_SERVER_PORT=8080
//   - CT_STORAGE_DSN=postgres://...
//   - CT_UPLOAD_DIR=/var/lib/cargotrack/uploads
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure for CargoTrack.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Storage contains database connection settings
	Storage StorageConfig `mapstructure:"storage"`

	// Upload contains evidence file upload settings
	Upload UploadConfig `mapstructure:"upload"`

	// Security contains authentication and rate limiting settings
	Security SecurityConfig `mapstructure:"security"`

	// Defaults contains fallback references used when order requests omit them
	Defaults DefaultsConfig `mapstructure:"defaults"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address (default: 0.0.0.0)
	Host string `mapstructure:"host"`

	// Port is the server listen port (default: 8080)
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading requests
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration for writing responses
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// ShutdownTimeout is the maximum duration for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Debug enables debug logging and verbose error details
	Debug bool `mapstructure:"debug"`

	// TLSEnabled enables HTTPS
	TLSEnabled bool `mapstructure:"tls_enabled"`

	// TLSCert is the path to the TLS certificate file
	TLSCert string `mapstructure:"tls_cert"`

	// TLSKey is the path to the TLS private key file
	TLSKey string `mapstructure:"tls_key"`
}

// StorageConfig contains relational database settings.
type StorageConfig struct {
	// Driver selects the database backend: "postgres" or "sqlite"
	Driver string `mapstructure:"driver"`

	// DSN is the connection string (postgres URL or sqlite file path)
	DSN string `mapstructure:"dsn"`

	// MaxOpenConns is the connection pool size
	MaxOpenConns int `mapstructure:"max_open_conns"`

	// MaxIdleConns is the number of idle connections kept in the pool
	MaxIdleConns int `mapstructure:"max_idle_conns"`

	// ConnMaxLifetime is how long a pooled connection may be reused
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// UploadConfig contains evidence upload settings.
type UploadConfig struct {
	// Dir is the root directory for stored evidence files
	Dir string `mapstructure:"dir"`

	// MaxSize is the maximum accepted file size in bytes (default 16 MiB)
	MaxSize int64 `mapstructure:"max_size"`
}

// SecurityConfig contains authentication and rate limiting settings.
type SecurityConfig struct {
	// RateLimit is the maximum requests per second per client
	RateLimit int `mapstructure:"rate_limit"`

	// AllowedOrigins are the CORS allowed origins
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// AuthEnabled requires a valid token on mutating endpoints
	AuthEnabled bool `mapstructure:"auth_enabled"`

	// JWTSecret is the secret key for signing JWT tokens
	JWTSecret string `mapstructure:"jwt_secret"`

	// JWTExpiration is the JWT token expiration duration (default: 24h)
	JWTExpiration time.Duration `mapstructure:"jwt_expiration"`

	// AdminUsername is the single configured login name
	AdminUsername string `mapstructure:"admin_username"`

	// AdminPasswordHash is the bcrypt hash of the configured password.
	// When empty, AdminPassword is compared directly (development only).
	AdminPasswordHash string `mapstructure:"admin_password_hash"`

	// AdminPassword is the plaintext fallback for local development
	AdminPassword string `mapstructure:"admin_password"`
}

// DefaultsConfig contains fallback references for order creation.
type DefaultsConfig struct {
	// ProductID is used when an order request names no product
	ProductID uint `mapstructure:"product_id"`

	// ClientID is used when an order request names no client
	ClientID uint `mapstructure:"client_id"`
}

var cfg *Config

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for config.yaml in standard locations.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.cargotrack")
		v.AddConfigPath("/etc/cargotrack")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ignore error if .env file doesn't exist

	v.SetEnvPrefix("CT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.debug", false)
	v.SetDefault("server.tls_enabled", false)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.dsn", "cargotrack.db")
	v.SetDefault("storage.max_open_conns", 10)
	v.SetDefault("storage.max_idle_conns", 5)
	v.SetDefault("storage.conn_max_lifetime", "1h")

	v.SetDefault("upload.dir", "./uploads")
	v.SetDefault("upload.max_size", 16<<20) // 16 MiB

	v.SetDefault("security.rate_limit", 100)
	v.SetDefault("security.allowed_origins", []string{"*"})
	v.SetDefault("security.auth_enabled", false)
	v.SetDefault("security.jwt_secret", "change-me-in-production")
	v.SetDefault("security.jwt_expiration", "24h")
	v.SetDefault("security.admin_username", "admin")
	v.SetDefault("security.admin_password", "admin")

	v.SetDefault("defaults.product_id", 1)
	v.SetDefault("defaults.client_id", 1)
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	switch cfg.Storage.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported storage driver: %q", cfg.Storage.Driver)
	}

	if cfg.Storage.DSN == "" {
		return fmt.Errorf("storage dsn is required")
	}

	if cfg.Upload.MaxSize <= 0 {
		return fmt.Errorf("upload max_size must be positive, got %d", cfg.Upload.MaxSize)
	}

	if cfg.Security.AdminUsername == "" {
		return fmt.Errorf("security admin_username is required")
	}

	return nil
}

// Get returns the last configuration loaded by Load.
func Get() *Config {
	return cfg
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
