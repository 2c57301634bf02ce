// Package config loads the credential and settings for please from the
// process environment and an optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

const (
	// EnvFile is read from the working directory when present.
	EnvFile = ".env"

	envKeyAPIKey  = "OPENAI_API_KEY"
	envKeyModel   = "PLEASE_MODEL"
	envKeyAPIURL  = "PLEASE_API_URL"
	envKeyTimeout = "PLEASE_TIMEOUT"

	defaultModel  = "gpt-3.5-turbo"
	defaultAPIURL = "https://api.openai.com/v1/chat/completions"
)

// ErrMissingAPIKey is returned when no credential is configured.
var ErrMissingAPIKey = errors.New(envKeyAPIKey + " not found in environment variables")

// Config holds the resolved settings for one run.
type Config struct {
	APIKey string
	Model  string
	APIURL string
	// Timeout bounds the completion request. Zero means no deadline.
	Timeout time.Duration
}

// Load reads the configuration from the environment and ./.env.
func Load() (*Config, error) {
	return LoadFrom(EnvFile)
}

// LoadFrom reads the configuration from the environment and the env file
// at path. Values already present in the environment win over the file.
// A missing file is ignored; an empty path skips the file entirely.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(envKeyModel, defaultModel)
	v.SetDefault(envKeyAPIURL, defaultAPIURL)
	v.SetDefault(envKeyTimeout, time.Duration(0))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}

	cfg := &Config{
		APIKey:  v.GetString(envKeyAPIKey),
		Model:   v.GetString(envKeyModel),
		APIURL:  v.GetString(envKeyAPIURL),
		Timeout: v.GetDuration(envKeyTimeout),
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.APIURL == "" {
		cfg.APIURL = defaultAPIURL
	}
	if cfg.Timeout < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %s", envKeyTimeout, cfg.Timeout)
	}

	return cfg, nil
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
}
