package gamecat

import "context"

// Rank is a single entry of a rank table.
type Rank struct {
	// ID is the positional key "rank-<index>" within one scrape run.
	// It is not stable across runs.
	ID           string `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image,omitempty"`
	Requirements string `json:"requirements"`
}

// Validate returns an error if the rank contains invalid fields.
func (r *Rank) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "rank ID required")
	}
	if r.Name == "" {
		return Errorf(EINVALID, "rank name required")
	}
	return nil
}

// RankExtractor converts a rank listing page into rank records.
type RankExtractor interface {
	Extract(page *RawPage) ([]*Rank, error)
}

// RankWriter writes ranks to storage.
type RankWriter interface {
	CreateRank(ctx context.Context, rank *Rank) error
}

// RankService represents a service for managing ranks.
type RankService interface {
	// CreateRank stores a rank, replacing any rank with the same ID.
	CreateRank(ctx context.Context, rank *Rank) error

	// FindRanks retrieves ranks matching the filter.
	FindRanks(ctx context.Context, filter RankFilter) ([]*Rank, error)

	// DeleteRank permanently removes a rank.
	// Returns ENOTFOUND if rank does not exist.
	DeleteRank(ctx context.Context, id string) error
}

// RankFilter represents a filter for FindRanks.
type RankFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
