package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
)

// ErrNotFound is returned when no record matches the requested identifier.
var ErrNotFound = errors.New("export record not found")

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO draft_exports (id, patient_id, kind, review_state, payload)
		VALUES ($1, $2, $3, $4, $5)`,
		rec.ID, rec.PatientID, string(rec.Kind), string(rec.ReviewState), rec.Payload,
	)
	if err != nil {
		return fmt.Errorf("export create: %w", err)
	}
	return nil
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	rec := &Record{}
	var kind, state string
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_id, kind, review_state, payload, created_at
		FROM draft_exports WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.PatientID, &kind, &state, &rec.Payload, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("export get: %w", err)
	}
	rec.Kind = Kind(kind)
	rec.ReviewState = draft.ReviewState(state)
	return rec, nil
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID string, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, kind, review_state, payload, created_at
		FROM draft_exports WHERE patient_id = $1
		ORDER BY created_at DESC LIMIT $2`, patientID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("export list: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec := &Record{}
		var kind, state string
		if err := rows.Scan(&rec.ID, &rec.PatientID, &kind, &state, &rec.Payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("export scan: %w", err)
		}
		rec.Kind = Kind(kind)
		rec.ReviewState = draft.ReviewState(state)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("export iterate: %w", err)
	}
	return out, nil
}
