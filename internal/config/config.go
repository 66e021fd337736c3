// Package config loads the wordbook configuration from YAML files and the environment.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/at-ishikawa/wordbook/internal/validation"
)

// placeholderSecret is the value shipped in example configs; it must never sign real tokens.
const placeholderSecret = "change-me-to-a-long-random-secret-value"

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port                     int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS                     CORSConfig `mapstructure:"cors"`
	ShutdownTimeoutSeconds   int        `mapstructure:"shutdown_timeout_seconds" validate:"min=0"`
	ReadHeaderTimeoutSeconds int        `mapstructure:"read_header_timeout_seconds" validate:"min=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c ServerConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutSeconds) * time.Second
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql postgres sqlite3"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"min=0,max=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	URL             string            `mapstructure:"url"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"min=0"`
	ConnectRetries  uint              `mapstructure:"connect_retries"`
	AutoMigrate     bool              `mapstructure:"auto_migrate"`
}

type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt_secret" validate:"secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes" validate:"min=1"`
	Issuer          string `mapstructure:"issuer"`
	BcryptCost      int    `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
}

// NewConfigLoader creates a loader reading configFile. An empty configFile searches
// for a config file in the working directory and $HOME/.config/wordbook.
func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/wordbook")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("server.read_header_timeout_seconds", 5)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "wordbook")
	v.SetDefault("database.username", "wordbook")
	v.SetDefault("database.connect_retries", 5)
	v.SetDefault("auth.token_ttl_minutes", 30)
	v.SetDefault("auth.issuer", "wordbook")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Secrets are bound to environment variables so config files can stay in version control
	if err := v.BindEnv("auth.jwt_secret", "WORDBOOK_JWT_SECRET"); err != nil {
		return nil, fmt.Errorf("failed to bind WORDBOOK_JWT_SECRET environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("database.url", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind DATABASE_URL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func newValidator() (*validation.Validator, error) {
	validate, err := validation.New("mapstructure")
	if err != nil {
		return nil, err
	}
	if err := validate.RegisterRule("secret", isStrongSecret,
		"{0} must be set to a random value of at least 32 characters"); err != nil {
		return nil, err
	}
	return validate, nil
}

func isStrongSecret(fl validator.FieldLevel) bool {
	secret := fl.Field().String()
	return len(secret) >= 32 && secret != placeholderSecret
}
