// Package config loads glacierinv settings from defaults, an optional YAML
// file, a .env file and environment variables, in increasing precedence.
//
// Environment keys are prefixed with GLACIERINV_ and use underscores for
// nesting, e.g. GLACIERINV_LOG_LEVEL or GLACIERINV_BUCKETS_PROVIDER.
// AWS_REGION and AWS_DEFAULT_REGION are honoured for the region.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/koustreak/glacier-inventory/internal/archive"
	"github.com/koustreak/glacier-inventory/internal/bucket"
	"github.com/koustreak/glacier-inventory/internal/logger"
)

const envPrefix = "GLACIERINV"

// Config is the full process configuration.
type Config struct {
	Log     logger.Config
	Archive archive.Config
	Buckets bucket.Config

	// Timeout bounds each command. 0 means no deadline.
	Timeout time.Duration
}

// Load resolves configuration. When path is empty, glacierinv.yaml is looked
// up in the working directory and $HOME/.config/glacierinv, and a missing
// file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("aws.region", envPrefix+"_AWS_REGION", "AWS_REGION", "AWS_DEFAULT_REGION"); err != nil {
		return nil, fmt.Errorf("bind region env: %w", err)
	}

	if err := readFile(v, path); err != nil {
		return nil, err
	}

	cfg := &Config{
		Log: logger.Config{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			TimeFormat: v.GetString("log.time_format"),
		},
		Archive: archive.Config{
			Region:      v.GetString("aws.region"),
			Profile:     v.GetString("aws.profile"),
			AccessKey:   v.GetString("aws.access_key_id"),
			SecretKey:   v.GetString("aws.secret_access_key"),
			AccountID:   v.GetString("glacier.account_id"),
			Endpoint:    v.GetString("glacier.endpoint"),
			MaxAttempts: v.GetInt("glacier.max_attempts"),
		},
		Buckets: bucket.Config{
			Provider:     bucket.Provider(strings.ToLower(v.GetString("buckets.provider"))),
			Region:       v.GetString("aws.region"),
			Endpoint:     v.GetString("buckets.endpoint"),
			AccessKey:    firstNonEmpty(v.GetString("buckets.access_key_id"), v.GetString("aws.access_key_id")),
			SecretKey:    firstNonEmpty(v.GetString("buckets.secret_access_key"), v.GetString("aws.secret_access_key")),
			UseSSL:       v.GetBool("buckets.use_ssl"),
			UsePathStyle: v.GetBool("buckets.path_style"),
		},
		Timeout: v.GetDuration("timeout"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.time_format", "rfc3339")
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.profile", "")
	v.SetDefault("aws.access_key_id", "")
	v.SetDefault("aws.secret_access_key", "")
	v.SetDefault("glacier.account_id", "-")
	v.SetDefault("glacier.endpoint", "")
	v.SetDefault("glacier.max_attempts", 0)
	v.SetDefault("buckets.provider", string(bucket.ProviderS3))
	v.SetDefault("buckets.endpoint", "")
	v.SetDefault("buckets.access_key_id", "")
	v.SetDefault("buckets.secret_access_key", "")
	v.SetDefault("buckets.use_ssl", true)
	v.SetDefault("buckets.path_style", false)
	v.SetDefault("timeout", "0s")
}

func readFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("glacierinv")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/glacierinv")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Validate checks the settings that would otherwise fail late.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", c.Log.Format)
	}

	switch c.Buckets.Provider {
	case bucket.ProviderS3:
	case bucket.ProviderMinIO:
		if c.Buckets.Endpoint == "" {
			return fmt.Errorf("buckets.endpoint is required for provider %q", c.Buckets.Provider)
		}
	default:
		return fmt.Errorf("unsupported bucket provider %q", c.Buckets.Provider)
	}

	if (c.Archive.AccessKey == "") != (c.Archive.SecretKey == "") {
		return fmt.Errorf("aws.access_key_id and aws.secret_access_key must be set together")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}
