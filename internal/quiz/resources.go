package quiz

import (
	"context"
	"database/sql"
)

// ResourcesForBlock lists curated material for a block, skipping videos
// (recommendations deliberately favor skimmable resources). Ascending rank
// is higher priority; unranked items sort last, ties break by title.
func (s *SQLStore) ResourcesForBlock(ctx context.Context, blockID string) ([]Resource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, block_id, title, url, resource_type, COALESCE(provider, ''), rank
		FROM block_resources
		WHERE block_id = $1 AND resource_type <> 'video'
		ORDER BY rank ASC NULLS LAST, title ASC`, blockID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resource{}
	for rows.Next() {
		var res Resource
		var rank sql.NullInt64
		if err := rows.Scan(&res.ID, &res.BlockID, &res.Title, &res.URL, &res.Type, &res.Provider, &rank); err != nil {
			return nil, err
		}
		if rank.Valid {
			v := int(rank.Int64)
			res.Rank = &v
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
