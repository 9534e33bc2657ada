package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/nvamotors/dealership-api/internal/types"
)

type Configuration struct {
	Deployment   DeploymentConfig   `validate:"required"`
	Server       ServerConfig       `validate:"required"`
	Logging      LoggingConfig      `validate:"required"`
	Mongo        MongoConfig        `validate:"required"`
	Auth         AuthConfig         `validate:"required"`
	Email        EmailConfig        ``
	SMS          SMSConfig          ``
	Notification NotificationConfig ``
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// MongoConfig points at the document store. One collection per resource
// lives inside the configured database.
type MongoConfig struct {
	URL            string        `validate:"required"`
	Database       string        `validate:"required"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// AuthConfig carries the admin capability check. Requests presenting
// one of the configured keys in the APIKeyHeader act as admin.
type AuthConfig struct {
	APIKeyHeader string   `mapstructure:"api_key_header" validate:"required"`
	AdminAPIKeys []string `mapstructure:"admin_api_keys"`
}

// EmailConfig configures the rich-text notification channel. The
// channel is considered configured as a unit: Enabled plus an API key.
type EmailConfig struct {
	Enabled     bool
	APIKey      string `mapstructure:"api_key"`
	FromAddress string `mapstructure:"from_address"`
	ToAddress   string `mapstructure:"to_address"`
}

// SMSConfig configures the short-text notification channel.
type SMSConfig struct {
	Enabled    bool
	AccountSID string `mapstructure:"account_sid"`
	AuthToken  string `mapstructure:"auth_token"`
	FromNumber string `mapstructure:"from_number"`
	ToNumber   string `mapstructure:"to_number"`
}

type NotificationConfig struct {
	DispatchTimeout time.Duration `mapstructure:"dispatch_timeout"`
}

func (c NotificationConfig) GetDispatchTimeout() time.Duration {
	if c.DispatchTimeout <= 0 {
		return 10 * time.Second
	}
	return c.DispatchTimeout
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/nvamotors")

	v.SetEnvPrefix("NVAMOTORS")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("deployment.mode", types.ModeAPI)
	v.SetDefault("server.address", ":8001")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("mongo.connect_timeout", 10*time.Second)
	v.SetDefault("auth.api_key_header", "x-api-key")
	v.SetDefault("notification.dispatch_timeout", 10*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8001"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Mongo: MongoConfig{
			URL:            "mongodb://localhost:27017",
			Database:       "nvamotors",
			ConnectTimeout: 10 * time.Second,
		},
		Auth: AuthConfig{APIKeyHeader: "x-api-key"},
	}
}
