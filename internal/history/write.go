package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded validation run.
type Run struct {
	ID               string    `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	SchemaPath       string    `json:"schema_path"`
	InstancePath     string    `json:"instance_path"`
	SchemaDigest     string    `json:"schema_digest"`
	InstanceDigest   string    `json:"instance_digest"`
	Valid            bool      `json:"valid"`
	Message          string    `json:"message,omitempty"`
	InstanceLocation string    `json:"instance_location,omitempty"`
	SchemaLocation   string    `json:"schema_location,omitempty"`
}

// NewRunID returns a fresh RFC 4122 UUID for a run record.
func NewRunID() string {
	return uuid.NewString()
}

// WriteRun inserts a run record. The caller supplies the ID (see NewRunID)
// so the record can be reported to the user before the write happens.
// Duplicate IDs are silently ignored.
func (s *Store) WriteRun(ctx context.Context, run Run) error {
	valid := 0
	if run.Valid {
		valid = 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs
		(id, created_at, schema_path, instance_path, schema_digest, instance_digest,
		 valid, message, instance_location, schema_location)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		run.ID,
		run.CreatedAt.UTC().Format(time.RFC3339Nano),
		run.SchemaPath,
		run.InstancePath,
		run.SchemaDigest,
		run.InstanceDigest,
		valid,
		run.Message,
		run.InstanceLocation,
		run.SchemaLocation,
	)
	if err != nil {
		return fmt.Errorf("write run: %w", err)
	}

	return nil
}
