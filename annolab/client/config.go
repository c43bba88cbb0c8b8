package client

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultEndpoint is the production GraphQL endpoint.
	DefaultEndpoint = "https://api.annolab.dev/graphql"
	// DefaultTimeout bounds a single request round-trip.
	DefaultTimeout = 60 * time.Second

	envAPIKey   = "ANNOLAB_API_KEY"
	envEndpoint = "ANNOLAB_ENDPOINT"
)

// ErrMissingAPIKey is returned when no API key was configured through
// the config file, the environment or code.
var ErrMissingAPIKey = errors.New("api key is not configured")

// Config holds the settings needed to reach the service.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	APIKey   string        `yaml:"api_key"`
	Timeout  time.Duration `yaml:"timeout"`
}

// FromEnv builds a Config from the environment alone.
func FromEnv() Config {
	cfg := Config{}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg
}

// LoadConfig reads a YAML config file and applies environment
// overrides on top of it.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config file")
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config file %s", path)
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if key := os.Getenv(envAPIKey); key != "" {
		c.APIKey = key
	}
	if endpoint := os.Getenv(envEndpoint); endpoint != "" {
		c.Endpoint = endpoint
	}
}

func (c *Config) applyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
}

// Validate reports configuration that cannot produce a working client.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Endpoint == "" {
		return errors.New("endpoint is not configured")
	}
	return nil
}
