package jira

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fulcrumops/jira-mcp/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrBaseURLRequired     = errors.New("JIRA base URL is required (set JIRA_URL)")
	ErrBaseURLScheme       = errors.New("JIRA base URL must start with http:// or https://")
	ErrCredentialsRequired = errors.New("either username+api_token or personal_access_token must be set")
	ErrTimeoutOutOfRange   = errors.New("timeout must be between 5s and 300s")
	ErrRetriesOutOfRange   = errors.New("max_retries must be between 0 and 10")
)

// CloudMode controls how the client decides between the Atlassian Cloud
// and Server/Data Center API generations.
type CloudMode string

const (
	// CloudModeAuto detects Cloud from the base URL host.
	CloudModeAuto CloudMode = "auto"

	// CloudModeCloud forces Cloud behavior (next-gen search endpoint,
	// explicit field lists).
	CloudModeCloud CloudMode = "cloud"

	// CloudModeServer forces Server/Data Center behavior.
	CloudModeServer CloudMode = "server"
)

// Config holds all settings for the Jira MCP server. It is resolved once
// at startup and never mutated afterwards; the client and every tool
// share it by reference.
type Config struct {
	// BaseURL is the Jira instance URL, e.g. https://acme.atlassian.net.
	// Stored without a trailing slash.
	BaseURL string `mapstructure:"url" yaml:"url"`

	// Username and APIToken form the Basic-auth credential pair used for
	// Atlassian Cloud.
	Username string `mapstructure:"username" yaml:"username"`
	APIToken string `mapstructure:"api_token" yaml:"-"`

	// PersonalAccessToken, when set, takes precedence over the
	// username/token pair and is sent as a Bearer token
	// (Jira Server / Data Center).
	PersonalAccessToken string `mapstructure:"personal_access_token" yaml:"-"`

	// ReadOnly disables every write tool before any request is made.
	ReadOnly bool `mapstructure:"read_only" yaml:"read_only"`

	// EnabledTools is an allow-list of tool names. Empty means all tools
	// are enabled.
	EnabledTools []string `mapstructure:"enabled_tools" yaml:"enabled_tools"`

	LogLevel   string        `mapstructure:"log_level" yaml:"log_level"`
	Timeout    time.Duration `mapstructure:"timeout" yaml:"timeout"`
	VerifySSL  bool          `mapstructure:"verify_ssl" yaml:"verify_ssl"`
	MaxRetries int           `mapstructure:"max_retries" yaml:"max_retries"`

	// CloudMode overrides Cloud detection. The default auto mode keys off
	// the atlassian.net host suffix, which is an external constraint of
	// the hosted product; self-hosted deployments that need next-gen
	// behavior can force it here.
	CloudMode CloudMode `mapstructure:"cloud_mode" yaml:"cloud_mode"`
}

// LoadConfig resolves the configuration from the ambient viper instance
// (environment variables with the JIRA_ prefix, plus any config file the
// CLI wired in) and validates it.
func LoadConfig() (*Config, error) {
	v := viper.GetViper()

	return loadConfigFrom(v)
}

func loadConfigFrom(v *viper.Viper) (*Config, error) {
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)
	v.SetDefault("verify_ssl", true)
	v.SetDefault("max_retries", constants.DefaultRetryMax)
	v.SetDefault("cloud_mode", string(CloudModeAuto))

	cfg := &Config{
		BaseURL:             strings.TrimSuffix(v.GetString("url"), "/"),
		Username:            v.GetString("username"),
		APIToken:            v.GetString("api_token"),
		PersonalAccessToken: v.GetString("personal_access_token"),
		ReadOnly:            v.GetBool("read_only"),
		EnabledTools:        splitTools(v.GetString("enabled_tools")),
		LogLevel:            v.GetString("log_level"),
		Timeout:             v.GetDuration("timeout"),
		VerifySSL:           v.GetBool("verify_ssl"),
		MaxRetries:          v.GetInt("max_retries"),
		CloudMode:           CloudMode(v.GetString("cloud_mode")),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for completeness.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrBaseURLRequired
	}

	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return ErrBaseURLScheme
	}

	if c.PersonalAccessToken == "" && (c.Username == "" || c.APIToken == "") {
		return ErrCredentialsRequired
	}

	if c.Timeout < constants.MinHTTPTimeout || c.Timeout > constants.MaxHTTPTimeout {
		return fmt.Errorf("%w: got %s", ErrTimeoutOutOfRange, c.Timeout)
	}

	if c.MaxRetries < 0 || c.MaxRetries > constants.MaxRetryMax {
		return fmt.Errorf("%w: got %d", ErrRetriesOutOfRange, c.MaxRetries)
	}

	return nil
}

// UsePAT reports whether Bearer authentication with a personal access
// token is in effect.
func (c *Config) UsePAT() bool {
	return c.PersonalAccessToken != ""
}

// IsCloud reports whether the target instance speaks the Atlassian Cloud
// API generation.
func (c *Config) IsCloud() bool {
	switch c.CloudMode {
	case CloudModeCloud:
		return true
	case CloudModeServer:
		return false
	default:
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return false
	}

	return strings.HasSuffix(u.Hostname(), "atlassian.net")
}

// IsToolEnabled reports whether the named tool passes the allow-list. An
// empty list enables everything.
func (c *Config) IsToolEnabled(name string) bool {
	if len(c.EnabledTools) == 0 {
		return true
	}

	for _, t := range c.EnabledTools {
		if t == name {
			return true
		}
	}

	return false
}

func splitTools(s string) []string {
	if s == "" {
		return nil
	}

	var tools []string

	for _, t := range strings.Split(s, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tools = append(tools, t)
		}
	}

	return tools
}
