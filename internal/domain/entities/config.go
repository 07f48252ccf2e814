package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultProvider is the backend used when the config file names none.
	DefaultProvider = "github"
	// DefaultMaxRetries is how often the HTTP transport retries a failed request.
	DefaultMaxRetries = 3
	// DefaultTimeout bounds a single HTTP round trip.
	DefaultTimeout = 30 * time.Second

	tokenEnvVar = "GITHUB_TOKEN"
)

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Config is the on-disk configuration of githubfs.
type Config struct {
	Provider      string        `yaml:"provider"`
	Repository    string        `yaml:"repository"`
	Branch        string        `yaml:"branch"`
	Reference     string        `yaml:"reference"`
	BaseURL       string        `yaml:"base_url"`
	MaxRetries    *int          `yaml:"max_retries"`
	Timeout       time.Duration `yaml:"timeout"`
	CommitMessage string        `yaml:"commit_message"`
	Committer     Committer     `yaml:"committer"`
	Credentials   Credentials   `yaml:"credentials"`
}

// LoadConfig reads and parses a configuration file, expanding environment
// variables and resolving secret file paths in the credentials.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	cfg.Credentials.Login = resolveSecret(cfg.Credentials.Login)
	cfg.Credentials.Secret = resolveSecret(cfg.Credentials.Secret)
	cfg.applyDefaults()

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".githubfs.yaml",
		".githubfs.yml",
		"githubfs.yaml",
		"githubfs.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks for required configuration values.
func (c *Config) Validate() error {
	if c.Repository == "" {
		return fmt.Errorf("%w: repository is required", ErrInvalidArgument)
	}
	if c.MaxRetries != nil && *c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must not be negative", ErrInvalidArgument)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidArgument)
	}
	return c.Credentials.Validate()
}

// OverrideToken replaces the configured credentials with token credentials.
// An empty token leaves the configuration untouched.
func (c *Config) OverrideToken(token string) {
	if token == "" {
		return
	}
	c.Credentials = TokenCredentials(token)
}

// Settings converts the configuration into validated Settings.
func (c *Config) Settings() (*Settings, error) {
	settings, err := NewSettings(c.Repository, c.Credentials, c.Branch, c.Reference)
	if err != nil {
		return nil, err
	}
	if !c.Committer.IsEmpty() {
		settings = settings.WithCommitter(c.Committer)
	}
	if c.CommitMessage != "" {
		settings = settings.WithCommitMessage(c.CommitMessage)
	}
	return settings, nil
}

// Retries returns the configured retry count or the default.
func (c *Config) Retries() int {
	if c.MaxRetries == nil {
		return DefaultMaxRetries
	}
	return *c.MaxRetries
}

func (c *Config) applyDefaults() {
	if c.Provider == "" {
		c.Provider = DefaultProvider
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Credentials.IsEmpty() {
		if token := os.Getenv(tokenEnvVar); token != "" {
			logger.Debugf("Using token from %s", tokenEnvVar)
			c.Credentials = TokenCredentials(token)
		}
	}
}

// resolveSecret expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the secret from the file.
func resolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read secret from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
