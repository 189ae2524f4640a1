package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the SDK and its sample wiring.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`

	// RiskAPI holds the remote fraud-analysis service configuration.
	RiskAPI RiskAPIConfig `mapstructure:",squash"`

	// Listener holds the webhook listener configuration.
	Listener ListenerConfig `mapstructure:",squash"`

	// RedisURL is the connection URL for the notification dedup store.
	// Empty disables replay protection.
	RedisURL string `mapstructure:"REDIS_URL"`
}

// RiskAPIConfig holds the credentials and endpoint of the risk API.
type RiskAPIConfig struct {
	// URL is the base URL of the risk API.
	URL string `mapstructure:"RISK_API_URL" required:"true"`
	// ShopDomain identifies the merchant account on every request.
	ShopDomain string `mapstructure:"RISK_API_SHOP_DOMAIN" required:"true"`
	// AuthToken is the shared secret used to sign and verify message bodies.
	AuthToken string `mapstructure:"RISK_API_AUTH_TOKEN" required:"true"`
	// TimeoutSeconds bounds each submission request.
	TimeoutSeconds int `mapstructure:"RISK_API_TIMEOUT_SECONDS" default:"30"`
}

// Timeout returns the submission request timeout as a duration.
func (c RiskAPIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ListenerConfig holds the bind settings for the webhook listener.
type ListenerConfig struct {
	// Host is the address the listener binds to.
	Host string `mapstructure:"LISTENER_HOST" default:"0.0.0.0"`
	// Port is the port the listener binds to.
	Port int `mapstructure:"LISTENER_PORT" default:"8085"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags walks the struct fields and binds env keys and defaults in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key != "" {
			v.BindEnv(key)
		}

		if key != "" && defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks that fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
