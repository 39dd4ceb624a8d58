package main

import (
	"fmt"

	"github.com/fwojciec/gamecat"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var n int
	var err error
	switch c.Kind {
	case "ranks":
		n, err = c.listRanks(deps)
	case "events":
		n, err = c.listEvents(deps)
	case "announcements":
		n, err = c.listAnnouncements(deps)
	default:
		err = gamecat.Errorf(gamecat.EINVALID, "unknown kind %q", c.Kind)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gamecat.ErrorMessage(err))
		return err
	}

	if n == 0 {
		fmt.Fprintf(deps.Stdout, "No %s found. Use 'gamecat ingest' to scrape some.\n", c.Kind)
	}
	return nil
}

func (c *ListCmd) listRanks(deps *Dependencies) (int, error) {
	ranks, err := deps.Ranks.FindRanks(deps.Ctx, gamecat.RankFilter{Limit: c.Limit})
	if err != nil {
		return 0, err
	}
	for _, r := range ranks {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", r.ID, r.Name, r.Requirements)
	}
	return len(ranks), nil
}

func (c *ListCmd) listEvents(deps *Dependencies) (int, error) {
	events, err := deps.Events.FindEvents(deps.Ctx, gamecat.EventFilter{Limit: c.Limit})
	if err != nil {
		return 0, err
	}
	for _, e := range events {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", e.ID, e.Date, e.Title, e.URL)
	}
	return len(events), nil
}

func (c *ListCmd) listAnnouncements(deps *Dependencies) (int, error) {
	items, err := deps.Announcements.FindAnnouncements(deps.Ctx, gamecat.AnnouncementFilter{Limit: c.Limit})
	if err != nil {
		return 0, err
	}
	for _, a := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", a.Title, a.URL)
	}
	return len(items), nil
}
