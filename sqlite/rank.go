package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/gamecat"
)

// Compile-time interface verification.
var _ gamecat.RankService = (*RankService)(nil)

// RankService implements gamecat.RankService using SQLite.
type RankService struct {
	db *DB
}

// NewRankService creates a new RankService.
func NewRankService(db *DB) *RankService {
	return &RankService{db: db}
}

// CreateRank stores a rank, replacing any rank with the same ID.
func (s *RankService) CreateRank(ctx context.Context, rank *gamecat.Rank) error {
	if err := rank.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ranks (id, name, image, requirements, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			image = excluded.image,
			requirements = excluded.requirements,
			updated_at = excluded.updated_at
	`, rank.ID, rank.Name, rank.Image, rank.Requirements, timestamp(time.Now()))

	return err
}

// FindRanks retrieves ranks matching the filter in positional order.
func (s *RankService) FindRanks(ctx context.Context, filter gamecat.RankFilter) ([]*gamecat.Rank, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, image, requirements FROM ranks WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	// "rank-2" sorts before "rank-10".
	query.WriteString(" ORDER BY length(id), id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []*gamecat.Rank
	for rows.Next() {
		var rank gamecat.Rank
		if err := rows.Scan(&rank.ID, &rank.Name, &rank.Image, &rank.Requirements); err != nil {
			return nil, err
		}
		ranks = append(ranks, &rank)
	}

	return ranks, rows.Err()
}

// DeleteRank permanently removes a rank.
func (s *RankService) DeleteRank(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM ranks WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return gamecat.Errorf(gamecat.ENOTFOUND, "rank not found")
	}

	return nil
}
