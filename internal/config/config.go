// Package config loads and validates the process-wide gateway configuration.
package config

import (
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/roamkit/roam-mcp/internal/roamerr"
)

const (
	// DefaultBaseURL is the fixed Roam Research API host.
	DefaultBaseURL = "https://api.roamresearch.com"
	// DefaultRequestTimeout bounds a single HTTP round trip. The API
	// specifies no timeout; this is a conservative default.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultReferencePageSize caps reference results per call.
	DefaultReferencePageSize = 10
	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Config holds the immutable process configuration. It is resolved once at
// startup and injected into the gateway; nothing mutates it afterwards.
type Config struct {
	// Token is the Roam API token, sent as a bearer credential. Required.
	Token string
	// Graph is the graph name all operations are scoped to. Required.
	Graph string
	// BaseURL is the API endpoint. Overridable for tests only.
	BaseURL string
	// RequestTimeout bounds each HTTP round trip.
	RequestTimeout time.Duration
	// ReferencePageSize is the default result limit for reference queries.
	ReferencePageSize int
	// CreateMissingPages makes write_to_page create absent pages instead
	// of failing with a not-found error.
	CreateMissingPages bool
	// LogLevel controls the slog handler level.
	LogLevel string
}

// Load resolves configuration from the environment (ROAM_ prefix) and the
// given command-line flags, flags taking precedence. A nil flag set reads
// the environment only.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ROAM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("base-url", DefaultBaseURL)
	v.SetDefault("request-timeout", DefaultRequestTimeout)
	v.SetDefault("reference-limit", DefaultReferencePageSize)
	v.SetDefault("create-missing-pages", false)
	v.SetDefault("log-level", DefaultLogLevel)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, roamerr.Configurationf("binding flags")
		}
	}

	cfg := &Config{
		Token:              strings.TrimSpace(v.GetString("token")),
		Graph:              strings.TrimSpace(v.GetString("graph-name")),
		BaseURL:            strings.TrimRight(strings.TrimSpace(v.GetString("base-url")), "/"),
		RequestTimeout:     v.GetDuration("request-timeout"),
		ReferencePageSize:  v.GetInt("reference-limit"),
		CreateMissingPages: v.GetBool("create-missing-pages"),
		LogLevel:           v.GetString("log-level"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports a configuration error for any value that would make the
// gateway unable to issue a valid remote call.
func (c *Config) Validate() error {
	if c.Token == "" {
		return roamerr.Configurationf("ROAM_TOKEN is required")
	}
	if c.Graph == "" {
		return roamerr.Configurationf("ROAM_GRAPH_NAME is required")
	}
	if c.BaseURL == "" {
		return roamerr.Configurationf("base URL cannot be empty")
	}
	if c.RequestTimeout <= 0 {
		return roamerr.Configurationf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.ReferencePageSize <= 0 {
		return roamerr.Configurationf("reference limit must be positive, got %d", c.ReferencePageSize)
	}
	return nil
}
