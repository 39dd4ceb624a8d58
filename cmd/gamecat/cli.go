package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/gamecat"
	"github.com/fwojciec/gamecat/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config *gamecat.Config

	Service   *ingest.Service
	NewURLSet func() gamecat.URLSet

	Ranks         gamecat.RankService
	Events        gamecat.EventService
	Announcements gamecat.AnnouncementService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string        `short:"c" env:"GAMECAT_CONFIG" help:"Path to a YAML config file"`
	DB       string        `env:"GAMECAT_DB" help:"SQLite database path"`
	Verbose  bool          `short:"v" help:"Log fetches, extractions and asset lookups"`
	Timeout  time.Duration `help:"Per-request fetch timeout"`
	Delay    string        `placeholder:"DURATION" help:"Pause between event pages (e.g. 500ms, 0)"`
	SiteURL  string        `name:"site-url" help:"Game-information site base URL"`
	ForumURL string        `name:"forum-url" help:"Forum base URL"`
	MediaDir string        `name:"media-dir" help:"Local media directory used as image fallback"`

	Ranks         RanksCmd         `cmd:"" help:"Scrape the rank listing and print it as JSON"`
	Events        EventsCmd        `cmd:"" help:"Scrape event pages and print them as JSON"`
	Announcements AnnouncementsCmd `cmd:"" help:"Scrape forum announcements and print them as JSON"`
	Ingest        IngestCmd        `cmd:"" help:"Scrape everything and store it"`
	List          ListCmd          `cmd:"" help:"List stored ranks, events or announcements"`
	Delete        DeleteCmd        `cmd:"" help:"Delete a stored rank or event"`
	ShowConfig    ShowConfigCmd    `cmd:"" name:"config" help:"Print the effective configuration"`
}

// RanksCmd is the "ranks" subcommand.
type RanksCmd struct{}

// EventsCmd is the "events" subcommand.
type EventsCmd struct {
	URLs []string `arg:"" name:"url" help:"Event page URLs"`
}

// AnnouncementsCmd is the "announcements" subcommand.
type AnnouncementsCmd struct{}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	Out  string   `short:"o" help:"Export JSON files to this directory instead of the database"`
	URLs []string `arg:"" optional:"" name:"url" help:"Additional event page URLs"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Kind  string `arg:"" enum:"ranks,events,announcements" help:"Record kind (ranks, events, announcements)"`
	Limit int    `short:"n" help:"Maximum number of records"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Kind  string `arg:"" enum:"rank,event" help:"Record kind (rank, event)"`
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}

// ShowConfigCmd is the "config" subcommand.
type ShowConfigCmd struct{}
