package export

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
	"github.com/randsley/MediScribe-sub004/internal/platform/fhir"
	"github.com/randsley/MediScribe-sub004/internal/platform/hipaa"
)

// Service persists assembled bundles encrypted at rest and hands decrypted
// copies back to authorized callers.
type Service struct {
	repo   Repository
	cipher *hipaa.Cipher
}

func NewService(repo Repository, cipher *hipaa.Cipher) *Service {
	return &Service{repo: repo, cipher: cipher}
}

// Store seals the bundle and writes one export record. The returned ID is
// the handle callers use to retrieve the document later.
func (s *Service) Store(ctx context.Context, kind Kind, patientID string, state draft.ReviewState, bundle *fhir.Bundle) (uuid.UUID, error) {
	if !kind.Valid() {
		return uuid.Nil, fmt.Errorf("export store: unknown kind %q", kind)
	}
	if patientID == "" {
		return uuid.Nil, fmt.Errorf("export store: patient id is required")
	}

	plaintext, err := json.Marshal(bundle)
	if err != nil {
		return uuid.Nil, fmt.Errorf("export store: encode bundle: %w", err)
	}
	sealed, err := s.cipher.Seal(plaintext)
	if err != nil {
		return uuid.Nil, fmt.Errorf("export store: %w", err)
	}

	rec := &Record{
		ID:          uuid.New(),
		PatientID:   patientID,
		Kind:        kind,
		ReviewState: state,
		Payload:     sealed,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return uuid.Nil, err
	}
	return rec.ID, nil
}

// Retrieve loads one export record and decrypts its bundle.
func (s *Service) Retrieve(ctx context.Context, id uuid.UUID) (*fhir.Bundle, *Record, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	plaintext, err := s.cipher.Open(rec.Payload)
	if err != nil {
		return nil, nil, fmt.Errorf("export retrieve: %w", err)
	}
	var bundle fhir.Bundle
	if err := json.Unmarshal(plaintext, &bundle); err != nil {
		return nil, nil, fmt.Errorf("export retrieve: decode bundle: %w", err)
	}
	return &bundle, rec, nil
}

// ListByPatient returns export metadata for a patient, payloads included
// but still sealed. Callers that need the documents go through Retrieve.
func (s *Service) ListByPatient(ctx context.Context, patientID string, limit int) ([]*Record, error) {
	return s.repo.ListByPatient(ctx, patientID, limit)
}
