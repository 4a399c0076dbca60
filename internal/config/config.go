// internal/config/config.go
package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"pazy-core/fetch"
	"pazy-core/harvest"
)

// Config is the acquisition run profile. The defaults reproduce the source
// service's load profile; a YAML file given with --config overrides fields
// selectively.
type Config struct {
	BaseURL    string `yaml:"base_url"`
	LandingURL string `yaml:"landing_url,omitempty"` // derived from base_url when empty

	TimeoutSeconds int  `yaml:"timeout_seconds"`
	InsecureTLS    bool `yaml:"insecure_tls"` // the wiki serves an incomplete chain; keep overridable

	LandingAttempts int     `yaml:"landing_attempts"`
	PageAttempts    int     `yaml:"page_attempts"`
	FetchAttempts   int     `yaml:"fetch_attempts"`
	BaseDelaySec    float64 `yaml:"base_delay_seconds"`

	RowDelaySec     float64 `yaml:"row_delay_seconds"`
	PolymerDelaySec float64 `yaml:"polymer_delay_seconds"`
	FetchDelaySec   float64 `yaml:"fetch_delay_seconds"`
}

func Default() Config {
	return Config{
		BaseURL:         "https://pazy.eu",
		TimeoutSeconds:  10,
		InsecureTLS:     true,
		LandingAttempts: 5,
		PageAttempts:    3,
		FetchAttempts:   3,
		BaseDelaySec:    1,
		RowDelaySec:     1,
		PolymerDelaySec: 2,
		FetchDelaySec:   1,
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := url.Parse(c.BaseURL); err != nil || c.BaseURL == "" {
		return errors.Errorf("invalid base_url %q", c.BaseURL)
	}
	if c.LandingAttempts < 1 || c.PageAttempts < 1 || c.FetchAttempts < 1 {
		return errors.New("attempt counts must be >= 1")
	}
	if c.BaseDelaySec < 0 || c.RowDelaySec < 0 || c.PolymerDelaySec < 0 || c.FetchDelaySec < 0 {
		return errors.New("delays must be >= 0")
	}
	if c.TimeoutSeconds < 1 {
		return errors.New("timeout_seconds must be >= 1")
	}
	return nil
}

// Landing resolves the landing page URL.
func (c Config) Landing() string {
	if c.LandingURL != "" {
		return c.LandingURL
	}
	return strings.TrimRight(c.BaseURL, "/") + "/doku.php?id=start"
}

func (c Config) Timeout() time.Duration { return time.Duration(c.TimeoutSeconds) * time.Second }

func (c Config) LandingPolicy() fetch.Policy {
	return fetch.Policy{MaxAttempts: c.LandingAttempts, BaseDelay: seconds(c.BaseDelaySec)}
}

func (c Config) PagePolicy() fetch.Policy {
	return fetch.Policy{MaxAttempts: c.PageAttempts, BaseDelay: seconds(c.BaseDelaySec)}
}

func (c Config) FetchPolicy() fetch.Policy {
	return fetch.Policy{MaxAttempts: c.FetchAttempts, BaseDelay: seconds(c.BaseDelaySec)}
}

func (c Config) Delays() harvest.Delays {
	return harvest.Delays{
		Row:     seconds(c.RowDelaySec),
		Polymer: seconds(c.PolymerDelaySec),
		Fetch:   seconds(c.FetchDelaySec),
	}
}

func seconds(f float64) time.Duration { return time.Duration(f * float64(time.Second)) }
