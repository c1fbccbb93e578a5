package config

// GenerationDefaults are the generation parameters applied when an
// invocation payload leaves them out.
type GenerationDefaults struct {
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	TopP        float64 `mapstructure:"top_p"`
}

// Config holds the application configuration.
type Config struct {
	ModelID       string             `mapstructure:"model_id"`
	Region        string             `mapstructure:"region"`
	ListenAddress string             `mapstructure:"listen_address"`
	AWSAccessKey  string             `mapstructure:"aws_access_key_id"`
	AWSSecretKey  string             `mapstructure:"aws_secret_access_key"`
	Defaults      GenerationDefaults `mapstructure:"defaults"`
}
