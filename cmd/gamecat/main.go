package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gamecat"
	"github.com/fwojciec/gamecat/bloom"
	"github.com/fwojciec/gamecat/bluemonday"
	"github.com/fwojciec/gamecat/fs"
	"github.com/fwojciec/gamecat/goquery"
	gchttp "github.com/fwojciec/gamecat/http"
	"github.com/fwojciec/gamecat/ingest"
	gslog "github.com/fwojciec/gamecat/slog"
	"github.com/fwojciec/gamecat/sqlite"
	"github.com/fwojciec/gamecat/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when --db is not given. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Config is the effective configuration after Run has parsed flags.
	Config *gamecat.Config
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := yaml.LoadEnvFiles(); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("gamecat"),
		kong.Description("Scrape game ranks, events and forum announcements"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gamecat --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := cli.config()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", gamecat.ErrorMessage(err))
		return err
	}
	m.Config = cfg
	deps.Config = cfg

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cmd == "list" || cmd == "delete" || (cmd == "ingest" && cli.Ingest.Out == "") {
		path := cli.DB
		if path == "" {
			path = m.DBPath
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set GAMECAT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		deps.Ranks = sqlite.NewRankService(m.DB)
		deps.Events = sqlite.NewEventService(m.DB)
		deps.Announcements = sqlite.NewAnnouncementService(m.DB)
	}

	if cmd == "ranks" || cmd == "events" || cmd == "announcements" || cmd == "ingest" {
		deps.Service = newService(cfg, logger, cli.Verbose)
		deps.Service.Progress = func(e ingest.ProgressEvent) {
			if line := ingest.FormatProgress(e); line != "" {
				fmt.Fprintln(stderr, line)
			}
		}
		deps.NewURLSet = func() gamecat.URLSet {
			return bloom.NewFilter(urlSetCapacity, urlSetFalsePositiveRate)
		}
	}

	return kongCtx.Run(deps)
}

// Sizing of the per-run seen-set used to deduplicate event URLs.
const (
	urlSetCapacity          = 10000
	urlSetFalsePositiveRate = 0.0001
)

// newService wires the scraping pipeline. With verbose set, the fetcher,
// asset resolver and extractors are wrapped in logging decorators.
func newService(cfg *gamecat.Config, logger *slog.Logger, verbose bool) *ingest.Service {
	opts := []gchttp.Option{
		gchttp.WithTimeout(cfg.Fetch.Timeout),
		gchttp.WithUserAgent(cfg.Fetch.UserAgent),
	}
	if cfg.Fetch.RequestsPerSecond > 0 {
		opts = append(opts, gchttp.WithLimiter(ingest.NewDomainLimiter(cfg.Fetch.RequestsPerSecond)))
	}

	var fetcher gamecat.Fetcher = gchttp.NewFetcher(opts...)
	var assets gamecat.AssetResolver = fs.NewAssetResolver(cfg.Media.Dir, cfg.Media.URLPrefix, cfg.Media.Extensions)
	if verbose {
		fetcher = gslog.NewLoggingFetcher(fetcher, logger)
		assets = gslog.NewLoggingAssetResolver(assets, logger)
	}

	var ranks gamecat.RankExtractor = goquery.NewRankExtractor(cfg.BonusTable, assets)
	var events gamecat.EventExtractor = goquery.NewEventExtractor(bluemonday.NewSanitizer(), cfg.Sanitize, assets)
	var announcements gamecat.AnnouncementExtractor = goquery.NewAnnouncementExtractor(cfg.Forum.BaseURL)
	if verbose {
		ranks = gslog.NewLoggingRankExtractor(ranks, logger)
		events = gslog.NewLoggingEventExtractor(events, logger)
		announcements = gslog.NewLoggingAnnouncementExtractor(announcements, logger)
	}

	svc := ingest.NewService(cfg, fetcher, ranks, events, announcements)
	svc.Logger = logger
	return svc
}

// config loads the configuration file and applies flag overrides.
func (c *CLI) config() (*gamecat.Config, error) {
	cfg, err := yaml.LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}

	if c.SiteURL != "" {
		cfg.Site.BaseURL = c.SiteURL
	}
	if c.ForumURL != "" {
		cfg.Forum.BaseURL = c.ForumURL
	}
	if c.MediaDir != "" {
		cfg.Media.Dir = c.MediaDir
	}
	if c.Timeout > 0 {
		cfg.Fetch.Timeout = c.Timeout
	}
	if c.Delay != "" {
		d, err := time.ParseDuration(c.Delay)
		if err != nil {
			return nil, gamecat.Errorf(gamecat.EINVALID, "invalid delay %q", c.Delay)
		}
		cfg.Batch.Delay = d
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultDBPath() string {
	if path := os.Getenv("GAMECAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gamecat.db"
	}
	dir := filepath.Join(home, ".gamecat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gamecat.db")
}
