package history

import (
	"context"
	"fmt"
	"time"
)

// ListRuns returns the most recent runs, newest first, capped at limit.
// A non-positive limit returns everything. Returns an empty slice (not
// nil) when no records exist.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, created_at, schema_path, instance_path, schema_digest,
		       instance_digest, valid, message, instance_location, schema_location
		FROM runs
		ORDER BY created_at DESC, id ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var run Run
		var createdAt string
		var valid int
		if err := rows.Scan(
			&run.ID,
			&createdAt,
			&run.SchemaPath,
			&run.InstancePath,
			&run.SchemaDigest,
			&run.InstanceDigest,
			&valid,
			&run.Message,
			&run.InstanceLocation,
			&run.SchemaLocation,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		run.CreatedAt = ts
		run.Valid = valid != 0
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}
