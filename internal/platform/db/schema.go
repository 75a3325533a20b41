package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// exportSchema holds encrypted assembled bundles. Payloads arrive sealed;
// the database never sees clinical plaintext.
const exportSchema = `
CREATE TABLE IF NOT EXISTS draft_exports (
    id UUID PRIMARY KEY,
    patient_id TEXT NOT NULL,
    kind TEXT NOT NULL,
    review_state TEXT NOT NULL,
    payload BYTEA NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_draft_exports_patient ON draft_exports (patient_id, created_at DESC);
`

// EnsureSchema creates the export tables if they do not already exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, exportSchema); err != nil {
		return fmt.Errorf("ensure export schema: %w", err)
	}
	return nil
}
