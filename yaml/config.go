// Package yaml loads gamecat configuration.
//
// Values are layered, later layers winning:
//
//  1. gamecat.DefaultConfig
//  2. the YAML file, if any
//  3. GAMECAT_* environment variables, including those set by .env files
//
// Example file:
//
//	site:
//	  base_url: https://game.example.com
//	forum:
//	  base_url: https://forum.example.com
//	fetch:
//	  timeout: 15s
//	bonus_table:
//	  Brigadier General 4:
//	    exp: 1,500,000
//	    bonus: AK-47-K-Yellow Fractal 60 days
//
// Entries under bonus_table are merged into the default table. Lists such
// as sanitize.allowed_tags replace the defaults.
package yaml

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/fwojciec/gamecat"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Parse and LoadConfig.
const (
	EnvSiteURL           = "GAMECAT_SITE_URL"
	EnvRanksPath         = "GAMECAT_RANKS_PATH"
	EnvForumURL          = "GAMECAT_FORUM_URL"
	EnvAnnouncementsPath = "GAMECAT_ANNOUNCEMENTS_PATH"
	EnvMediaDir          = "GAMECAT_MEDIA_DIR"
	EnvMediaURLPrefix    = "GAMECAT_MEDIA_URL_PREFIX"
	EnvFetchTimeout      = "GAMECAT_FETCH_TIMEOUT"
	EnvUserAgent         = "GAMECAT_USER_AGENT"
	EnvRequestsPerSecond = "GAMECAT_REQUESTS_PER_SECOND"
	EnvBatchDelay        = "GAMECAT_BATCH_DELAY"
)

// LookupFunc returns the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadEnvFiles loads .env files into the process environment:
// ENV_FILE if set, otherwise .env.local then .env. Variables already set
// are not overwritten. Missing files are ignored.
func LoadEnvFiles() error {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
		return nil
	}

	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env.local: %w", err)
	}

	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	return nil
}

// LoadConfig reads the YAML file at path over the defaults and applies
// environment overrides. An empty path skips the file.
func LoadConfig(path string) (*gamecat.Config, error) {
	var data []byte
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, gamecat.Errorf(gamecat.EINVALID, "read config file %s: %v", path, err)
		}
	}
	return Parse(data, os.LookupEnv)
}

// Parse decodes YAML data over the defaults, applies overrides from lookup
// and validates the result. Empty data yields the defaults.
func Parse(data []byte, lookup LookupFunc) (*gamecat.Config, error) {
	cfg := gamecat.DefaultConfig()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, gamecat.Errorf(gamecat.EINVALID, "parse config: %v", err)
		}
	}

	if lookup != nil {
		if err := applyEnv(cfg, lookup); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as YAML.
func Encode(w io.Writer, cfg *gamecat.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

func applyEnv(cfg *gamecat.Config, lookup LookupFunc) error {
	strs := []struct {
		key string
		dst *string
	}{
		{EnvSiteURL, &cfg.Site.BaseURL},
		{EnvRanksPath, &cfg.Site.RanksPath},
		{EnvForumURL, &cfg.Forum.BaseURL},
		{EnvAnnouncementsPath, &cfg.Forum.AnnouncementsPath},
		{EnvMediaDir, &cfg.Media.Dir},
		{EnvMediaURLPrefix, &cfg.Media.URLPrefix},
		{EnvUserAgent, &cfg.Fetch.UserAgent},
	}
	for _, s := range strs {
		if v, ok := lookup(s.key); ok && v != "" {
			*s.dst = v
		}
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvFetchTimeout, &cfg.Fetch.Timeout},
		{EnvBatchDelay, &cfg.Batch.Delay},
	}
	for _, d := range durations {
		v, ok := lookup(d.key)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return gamecat.Errorf(gamecat.EINVALID, "%s: invalid duration %q", d.key, v)
		}
		*d.dst = parsed
	}

	if v, ok := lookup(EnvRequestsPerSecond); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return gamecat.Errorf(gamecat.EINVALID, "%s: invalid number %q", EnvRequestsPerSecond, v)
		}
		cfg.Fetch.RequestsPerSecond = rps
	}

	return nil
}
