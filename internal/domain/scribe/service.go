package scribe

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
	"github.com/randsley/MediScribe-sub004/internal/domain/export"
	"github.com/randsley/MediScribe-sub004/internal/domain/imaging"
	"github.com/randsley/MediScribe-sub004/internal/domain/lab"
	"github.com/randsley/MediScribe-sub004/internal/domain/soap"
	"github.com/randsley/MediScribe-sub004/internal/platform/fhir"
)

// ErrExportsDisabled reports that no export store is configured. Persisting
// and retrieving bundles both fail with it when DATABASE_URL is unset.
var ErrExportsDisabled = errors.New("export persistence is not configured")

// Service ties the per-kind validators and assemblers together and hands
// finished bundles to the export store when one is configured. Validation
// and assembly themselves are pure; only Store touches shared state.
type Service struct {
	exports     *export.Service // nil when persistence is disabled
	modelName   string
	defaultLang string
	log         zerolog.Logger
}

func NewService(exports *export.Service, modelName, defaultLang string, log zerolog.Logger) *Service {
	return &Service{
		exports:     exports,
		modelName:   modelName,
		defaultLang: defaultLang,
		log:         log,
	}
}

// ExportsEnabled reports whether assembled bundles can be persisted.
func (s *Service) ExportsEnabled() bool {
	return s.exports != nil
}

// Language resolves the effective scan language.
func (s *Service) Language(requested string) string {
	if requested != "" {
		return requested
	}
	return s.defaultLang
}

// Validate runs the draft through the kind's validation gates. A nil return
// means the draft is safe to assemble; the error otherwise carries the full
// failure detail for the handler to translate.
func (s *Service) Validate(kind export.Kind, raw []byte, lang string) error {
	lang = s.Language(lang)
	var err error
	switch kind {
	case export.KindImaging:
		_, err = imaging.Validate(raw, lang)
	case export.KindLab:
		_, err = lab.Validate(raw, lang)
	case export.KindSOAP:
		_, err = soap.Validate(raw, lang)
	default:
		return fmt.Errorf("unknown draft kind %q", kind)
	}
	if err != nil {
		s.log.Debug().Str("kind", string(kind)).Str("language", lang).Msg("draft rejected")
	}
	return err
}

// Assemble validates the draft and, on success, builds its resource graph.
// When persist is true the sealed bundle is also written to the export store
// and the record ID returned alongside the bundle.
func (s *Service) Assemble(ctx context.Context, kind export.Kind, raw []byte, actx draft.AssemblyContext, persist bool) (*fhir.Bundle, uuid.UUID, error) {
	if actx.Language == "" {
		actx.Language = s.defaultLang
	}
	if actx.ModelName == "" {
		actx.ModelName = s.modelName
	}
	if persist && s.exports == nil {
		return nil, uuid.Nil, ErrExportsDisabled
	}

	var (
		bundle *fhir.Bundle
		err    error
	)
	switch kind {
	case export.KindImaging:
		var v *imaging.ValidatedFindings
		if v, err = imaging.Validate(raw, actx.Language); err == nil {
			bundle, err = imaging.Assemble(v, actx)
		}
	case export.KindLab:
		var v *lab.ValidatedResults
		if v, err = lab.Validate(raw, actx.Language); err == nil {
			bundle, err = lab.Assemble(v, actx)
		}
	case export.KindSOAP:
		var v *soap.ValidatedNote
		if v, err = soap.Validate(raw, actx.Language); err == nil {
			bundle, err = soap.Assemble(v, actx)
		}
	default:
		return nil, uuid.Nil, fmt.Errorf("unknown draft kind %q", kind)
	}
	if err != nil {
		return nil, uuid.Nil, err
	}

	if !persist {
		return bundle, uuid.Nil, nil
	}

	id, err := s.exports.Store(ctx, kind, actx.PatientID, actx.ReviewState, bundle)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("persist bundle: %w", err)
	}
	s.log.Info().
		Str("kind", string(kind)).
		Str("export_id", id.String()).
		Str("review_state", string(actx.ReviewState)).
		Int("resources", len(bundle.Entry)).
		Msg("draft assembled and exported")
	return bundle, id, nil
}

// Retrieve loads a previously exported bundle.
func (s *Service) Retrieve(ctx context.Context, id uuid.UUID) (*fhir.Bundle, *export.Record, error) {
	if s.exports == nil {
		return nil, nil, ErrExportsDisabled
	}
	return s.exports.Retrieve(ctx, id)
}
