package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

// Built-in defaults. The model id matches the original deployment target;
// the generation defaults mirror what the invocation contract promises.
const (
	DefaultModelID     = "meta.llama3-8b-instruct-v1:0"
	DefaultRegion      = "us-east-1"
	DefaultMaxTokens   = 512
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

// The global, read-only config variable.
var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads the config file (optional), applies environment
// overrides, and initializes the global cfg variable. It ensures that the
// configuration is set only once.
func LoadConfig(configFile string) (*Config, error) {
	var err error
	once.Do(func() {
		cfg, err = loadConfig(configFile)
	})

	if err != nil {
		return nil, err
	}

	if cfg == nil {
		return nil, errors.New("configuration was not set")
	}

	return cfg, nil
}

// loadConfig does the actual work; split out so tests can call it without
// tripping over the sync.Once.
func loadConfig(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("model_id", DefaultModelID)
	v.SetDefault("region", DefaultRegion)
	v.SetDefault("listen_address", "127.0.0.1:8080")
	v.SetDefault("defaults.max_tokens", DefaultMaxTokens)
	v.SetDefault("defaults.temperature", DefaultTemperature)
	v.SetDefault("defaults.top_p", DefaultTopP)

	// The model id and region come from ambient process configuration in
	// the original deployment; keep honoring those variables.
	v.BindEnv("model_id", "MODEL_ID")
	v.BindEnv("region", "AWS_REGION")
	v.BindEnv("aws_access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws_secret_access_key", "AWS_SECRET_ACCESS_KEY")

	// The config file is optional: env vars plus defaults are enough to run.
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var configuration Config
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validation
	if configuration.ModelID == "" {
		return nil, errors.New("model_id is required")
	}
	if configuration.Region == "" {
		return nil, errors.New("region is required")
	}
	if configuration.Defaults.MaxTokens <= 0 {
		return nil, fmt.Errorf("defaults.max_tokens must be positive, got %d", configuration.Defaults.MaxTokens)
	}

	return &configuration, nil
}

// GetConfig returns the loaded configuration.
// It panics if the configuration has not been set.
func GetConfig() *Config {
	if cfg == nil {
		panic("Config has not been set! Call LoadConfig first.")
	}
	return cfg
}
