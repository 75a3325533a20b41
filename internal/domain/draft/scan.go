package draft

import (
	"github.com/randsley/MediScribe-sub004/internal/platform/sanitize"
)

// Field is one text-bearing draft field queued for forbidden-phrase
// scanning. Critical marks clinically decisive sections; a hit there blocks
// unconditionally. The limitations field is never queued here; it
// legitimately contains a deny-listed word.
type Field struct {
	Path     string
	Text     string
	Critical bool
}

func severityFor(f Field) Severity {
	if f.Critical {
		return SeverityCritical
	}
	return SeverityError
}

// ScanFirst runs the matcher over fields in order and short-circuits on the
// first hit. Used by the single-document (imaging, lab) flows.
func ScanFirst(lang string, fields []Field) *ValidationError {
	list := sanitize.DenyList(lang)
	for _, f := range fields {
		if phrase, hit := sanitize.FindForbidden(f.Text, list); hit {
			return NewForbiddenPhraseError(f.Path, phrase, severityFor(f))
		}
	}
	return nil
}

// ScanAll runs the matcher over every field and accumulates hits, so a
// multi-section draft reports every violation at once.
func ScanAll(lang string, fields []Field) ValidationErrors {
	list := sanitize.DenyList(lang)
	var errs ValidationErrors
	for _, f := range fields {
		if phrase, hit := sanitize.FindForbidden(f.Text, list); hit {
			errs = append(errs, NewForbiddenPhraseError(f.Path, phrase, severityFor(f)))
		}
	}
	return errs
}
