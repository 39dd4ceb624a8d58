package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/gamecat"
)

// Run executes the ranks command.
func (c *RanksCmd) Run(deps *Dependencies) error {
	ranks, err := deps.Service.ScrapeRanks(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gamecat.ErrorMessage(err))
		return err
	}
	return writeJSON(deps.Stdout, ranks)
}

// Run executes the events command.
func (c *EventsCmd) Run(deps *Dependencies) error {
	result, err := deps.Service.ScrapeMany(deps.Ctx, c.URLs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gamecat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Scraped %d of %d events\n", result.Succeeded, result.Attempted)
	return writeJSON(deps.Stdout, result.Events)
}

// Run executes the announcements command.
func (c *AnnouncementsCmd) Run(deps *Dependencies) error {
	items, err := deps.Service.ScrapeAnnouncements(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gamecat.ErrorMessage(err))
		return err
	}
	return writeJSON(deps.Stdout, items)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
