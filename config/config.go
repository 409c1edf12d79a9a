package config

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/viant/afs"
	mcp "github.com/viant/mcp"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by Init.
const (
	EnvConfig   = "SHAMIR_CONFIG"
	EnvCDNURL   = "SHAMIR_CDN_URL"
	EnvCDNKey   = "SHAMIR_CDN_KEY"
	EnvLogLevel = "SHAMIR_LOG_LEVEL"
)

const (
	defaultRadioURL     = "https://l1gfir5yi7.execute-api.us-east-1.amazonaws.com/prod/"
	defaultRadioTimeout = 30
	defaultValidityDays = 7
	defaultServeAddress = ":5000"
)

// Config is the multitool configuration, loaded from YAML.
type Config struct {
	CDN    *CDN               `yaml:"cdn,omitempty" json:"cdn,omitempty"`
	Radio  *Radio             `yaml:"radio,omitempty" json:"radio,omitempty"`
	Server *mcp.ServerOptions `yaml:"server,omitempty" json:"server,omitempty"`
	Serve  *Serve             `yaml:"serve,omitempty" json:"serve,omitempty"`
	Log    *Log               `yaml:"log,omitempty" json:"log,omitempty"`
}

// CDN configures the object storage behind the cdn commands.  URL is any
// afs location (file://, mem://, ...) whose first-level folders are the
// containers.
type CDN struct {
	URL              string   `yaml:"url,omitempty" json:"url,omitempty"`
	Host             string   `yaml:"host,omitempty" json:"host,omitempty"`
	Account          string   `yaml:"account,omitempty" json:"account,omitempty"`
	AccountKey       string   `yaml:"accountKey,omitempty" json:"accountKey,omitempty"`
	PublicContainers []string `yaml:"publicContainers,omitempty" json:"publicContainers,omitempty"`
	ValidityDays     int      `yaml:"validityDays,omitempty" json:"validityDays,omitempty"`
}

// IsPublic reports whether container is served without a signature.
func (c *CDN) IsPublic(container string) bool {
	for _, candidate := range c.PublicContainers {
		if candidate == container {
			return true
		}
	}
	return false
}

// Key returns the decoded account key.
func (c *CDN) Key() ([]byte, error) {
	if c.AccountKey == "" {
		return nil, fmt.Errorf("cdn account key is not configured (set %s)", EnvCDNKey)
	}
	key, err := base64.StdEncoding.DecodeString(c.AccountKey)
	if err != nil {
		return nil, fmt.Errorf("invalid cdn account key: %w", err)
	}
	return key, nil
}

// Radio configures the callsign lookup endpoint.
type Radio struct {
	URL        string `yaml:"url,omitempty" json:"url,omitempty"`
	TimeoutSec int    `yaml:"timeoutSec,omitempty" json:"timeoutSec,omitempty"`
}

// Serve configures the MCP exposure of leaf commands.
type Serve struct {
	Address string   `yaml:"address,omitempty" json:"address,omitempty"`
	Tools   []string `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// Log configures the process logger.
type Log struct {
	Level string `yaml:"level,omitempty" json:"level,omitempty"`
}

// Load reads a YAML config from any afs supported URL or local path.
func Load(ctx context.Context, location string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", location, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", location, err)
	}
	return &cfg, nil
}

// Init applies defaults and environment overrides.
func (c *Config) Init() {
	if c.CDN == nil {
		c.CDN = &CDN{}
	}
	if v := strings.TrimSpace(os.Getenv(EnvCDNURL)); v != "" {
		c.CDN.URL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCDNKey)); v != "" {
		c.CDN.AccountKey = v
	}
	if c.CDN.ValidityDays == 0 {
		c.CDN.ValidityDays = defaultValidityDays
	}
	if c.Radio == nil {
		c.Radio = &Radio{}
	}
	if c.Radio.URL == "" {
		c.Radio.URL = defaultRadioURL
	}
	if c.Radio.TimeoutSec == 0 {
		c.Radio.TimeoutSec = defaultRadioTimeout
	}
	if c.Serve == nil {
		c.Serve = &Serve{}
	}
	if c.Serve.Address == "" {
		c.Serve.Address = defaultServeAddress
	}
	if c.Log == nil {
		c.Log = &Log{}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	if c.Log.Level == "" {
		c.Log.Level = logrus.WarnLevel.String()
	}
}

// Validate checks values that would otherwise fail late inside commands.
func (c *Config) Validate() error {
	if c.CDN != nil && c.CDN.ValidityDays < 0 {
		return fmt.Errorf("cdn.validityDays must not be negative: %d", c.CDN.ValidityDays)
	}
	if c.Radio != nil && c.Radio.TimeoutSec < 0 {
		return fmt.Errorf("radio.timeoutSec must not be negative: %d", c.Radio.TimeoutSec)
	}
	if c.Log != nil && c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	return nil
}
