package gamecat

import (
	"net/url"
	"strings"
	"time"
)

// Configuration defaults.
const (
	DefaultFetchTimeout      = 10 * time.Second
	DefaultBatchDelay        = 500 * time.Millisecond
	DefaultRanksPath         = "/ranks"
	DefaultAnnouncementsPath = "/forums/announcements/"
	DefaultMediaDir          = "public/images"
	DefaultMediaURLPrefix    = "/images/"

	// DefaultUserAgent identifies requests as a desktop browser, which
	// upstream sites block less often than library defaults.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Config is the pipeline configuration.
type Config struct {
	Site       SiteConfig     `yaml:"site"`
	Forum      ForumConfig    `yaml:"forum"`
	Media      MediaConfig    `yaml:"media"`
	Fetch      FetchConfig    `yaml:"fetch"`
	Batch      BatchConfig    `yaml:"batch"`
	Sanitize   SanitizePolicy `yaml:"sanitize"`
	BonusTable BonusTable     `yaml:"bonus_table"`
}

// SiteConfig locates the game-information site.
type SiteConfig struct {
	BaseURL   string `yaml:"base_url"`
	RanksPath string `yaml:"ranks_path"`
}

// ForumConfig locates the forum.
type ForumConfig struct {
	BaseURL           string `yaml:"base_url"`
	AnnouncementsPath string `yaml:"announcements_path"`
}

// MediaConfig describes the local media directory used as image fallback.
type MediaConfig struct {
	Dir        string   `yaml:"dir"`
	URLPrefix  string   `yaml:"url_prefix"`
	Extensions []string `yaml:"extensions"`
}

// FetchConfig controls upstream requests.
type FetchConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	UserAgent         string        `yaml:"user_agent"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
}

// BatchConfig controls batch scraping.
type BatchConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// DefaultConfig returns a Config populated with defaults.
// Base URLs have no default and must be configured.
func DefaultConfig() *Config {
	return &Config{
		Site:  SiteConfig{RanksPath: DefaultRanksPath},
		Forum: ForumConfig{AnnouncementsPath: DefaultAnnouncementsPath},
		Media: MediaConfig{
			Dir:        DefaultMediaDir,
			URLPrefix:  DefaultMediaURLPrefix,
			Extensions: append([]string(nil), DefaultImageExtensions...),
		},
		Fetch: FetchConfig{
			Timeout:   DefaultFetchTimeout,
			UserAgent: DefaultUserAgent,
		},
		Batch:      BatchConfig{Delay: DefaultBatchDelay},
		Sanitize:   DefaultSanitizePolicy(),
		BonusTable: DefaultBonusTable(),
	}
}

// Validate returns an error if the configuration contains invalid values.
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return Errorf(EINVALID, "fetch timeout must be positive")
	}
	if c.Batch.Delay < 0 {
		return Errorf(EINVALID, "batch delay must not be negative")
	}
	if c.Fetch.RequestsPerSecond < 0 {
		return Errorf(EINVALID, "requests per second must not be negative")
	}
	if c.Site.BaseURL != "" && !IsAbsoluteURL(c.Site.BaseURL) {
		return Errorf(EINVALID, "site base URL %q is not an absolute http(s) URL", c.Site.BaseURL)
	}
	if c.Forum.BaseURL != "" && !IsAbsoluteURL(c.Forum.BaseURL) {
		return Errorf(EINVALID, "forum base URL %q is not an absolute http(s) URL", c.Forum.BaseURL)
	}
	return nil
}

// RanksURL returns the rank listing URL.
func (c *Config) RanksURL() (string, error) {
	if c.Site.BaseURL == "" {
		return "", Errorf(EINVALID, "site base URL required")
	}
	return joinURL(c.Site.BaseURL, c.Site.RanksPath), nil
}

// AnnouncementsURL returns the forum announcement listing URL.
func (c *Config) AnnouncementsURL() (string, error) {
	if c.Forum.BaseURL == "" {
		return "", Errorf(EINVALID, "forum base URL required")
	}
	return joinURL(c.Forum.BaseURL, c.Forum.AnnouncementsPath), nil
}

// IsAbsoluteURL reports whether raw is an absolute http or https URL.
func IsAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func joinURL(base, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
