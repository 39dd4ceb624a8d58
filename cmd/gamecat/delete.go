package main

import (
	"fmt"

	"github.com/fwojciec/gamecat"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return gamecat.Errorf(gamecat.EINVALID, "use --force to confirm deletion")
	}

	var err error
	switch c.Kind {
	case "rank":
		err = deps.Ranks.DeleteRank(deps.Ctx, c.ID)
	case "event":
		err = deps.Events.DeleteEvent(deps.Ctx, c.ID)
	default:
		err = gamecat.Errorf(gamecat.EINVALID, "unknown kind %q", c.Kind)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gamecat.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %s %q\n", c.Kind, c.ID)
	return nil
}
