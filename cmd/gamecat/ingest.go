package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/gamecat"
	"github.com/fwojciec/gamecat/fs"
	"github.com/fwojciec/gamecat/ingest"
)

// Run executes the ingest command. Records go to the database unless --out
// is set, in which case they are exported as JSON files on success.
func (c *IngestCmd) Run(deps *Dependencies) error {
	in := &ingest.Ingester{
		Service:       deps.Service,
		Ranks:         deps.Ranks,
		Events:        deps.Events,
		Announcements: deps.Announcements,
		NewURLSet:     deps.NewURLSet,
		Logger:        deps.Logger,
	}

	var store *fs.JSONStore
	if c.Out != "" {
		out := filepath.Clean(c.Out)
		store = fs.NewJSONStore(filepath.Dir(out), filepath.Base(out))
		in.Ranks = store
		in.Events = store
		in.Announcements = store
	}

	result, err := in.Ingest(deps.Ctx, c.URLs)
	if err != nil {
		if store != nil {
			_ = store.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", gamecat.ErrorMessage(err))
		return err
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing export: %s\n", gamecat.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Ranks:         %d/%d\n", result.Ranks.Succeeded, result.Ranks.Attempted)
	fmt.Fprintf(deps.Stdout, "Announcements: %d/%d\n", result.Announcements.Succeeded, result.Announcements.Attempted)
	fmt.Fprintf(deps.Stdout, "Events:        %d/%d\n", result.Events.Succeeded, result.Events.Attempted)
	if store != nil {
		fmt.Fprintf(deps.Stdout, "Exported to %s\n", filepath.Clean(c.Out))
	}

	return nil
}
