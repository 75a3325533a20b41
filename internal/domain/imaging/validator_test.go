package imaging

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
)

func validDraft(t *testing.T, mutate func(map[string]interface{})) []byte {
	t.Helper()
	m := map[string]interface{}{
		"image_type":    "chest x-ray",
		"image_quality": "adequate exposure, no rotation",
		"anatomical_observations": map[string][]string{
			"lungs": {"clear fields bilaterally"},
			"heart": {"normal size and contour"},
		},
		"comparison_with_prior": "none available",
		"areas_highlighted":     "",
		"limitations":           draft.Disclaimer("en"),
	}
	if mutate != nil {
		mutate(m)
	}
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	return raw
}

func TestValidateAccepts(t *testing.T) {
	v, err := Validate(validDraft(t, nil), "en")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if v.ImageType != "chest x-ray" || len(v.AnatomicalObservations) != 2 {
		t.Errorf("unexpected validated draft: %+v", v)
	}
	if v.Limitations != draft.Disclaimer("en") {
		t.Error("limitations not carried through verbatim")
	}
}

func TestValidateForbiddenPhraseInFindings(t *testing.T) {
	raw := validDraft(t, func(m map[string]interface{}) {
		m["anatomical_observations"] = map[string][]string{
			"lungs": {"opacity, pneumonia cannot be excluded"},
		}
	})
	_, err := Validate(raw, "en")
	var verr *draft.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *ValidationError", err)
	}
	if verr.Code != draft.CodeForbiddenPhrase || verr.Severity != draft.SeverityCritical {
		t.Errorf("got code=%q severity=%q, want forbiddenPhraseFound/critical", verr.Code, verr.Severity)
	}
}

func TestValidateObfuscatedPhrase(t *testing.T) {
	raw := validDraft(t, func(m map[string]interface{}) {
		m["comparison_with_prior"] = "appearance c.o.n.s.i.s.t.e.n.t  with prior"
	})
	_, err := Validate(raw, "en")
	var verr *draft.ValidationError
	if !errors.As(err, &verr) || verr.Code != draft.CodeForbiddenPhrase {
		t.Fatalf("obfuscated phrase not caught: %v", err)
	}
	// Outside the findings map the severity is error, not critical.
	if verr.Severity != draft.SeverityError {
		t.Errorf("severity = %q, want error", verr.Severity)
	}
}

func TestValidateLimitationsTrailingSpace(t *testing.T) {
	raw := validDraft(t, func(m map[string]interface{}) {
		m["limitations"] = draft.Disclaimer("en") + " "
	})
	_, err := Validate(raw, "en")
	var verr *draft.ValidationError
	if !errors.As(err, &verr) || verr.Code != draft.CodeLimitationsMismatch {
		t.Fatalf("trailing space accepted: %v", err)
	}
}

func TestValidateExtraTopLevelKey(t *testing.T) {
	raw := validDraft(t, func(m map[string]interface{}) {
		m["clinical_note"] = "free-form commentary that would dodge scanning"
	})
	_, err := Validate(raw, "en")
	var serr *draft.SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("err = %v, want *SchemaError", err)
	}
	if len(serr.Extra) != 1 || serr.Extra[0] != "clinical_note" {
		t.Errorf("Extra = %v", serr.Extra)
	}
	if len(serr.Allowed) != len(allowedKeys) {
		t.Errorf("Allowed = %v", serr.Allowed)
	}
}

func TestValidateInvalidJSON(t *testing.T) {
	_, err := Validate([]byte("{nope"), "en")
	var verr *draft.ValidationError
	if !errors.As(err, &verr) || verr.Code != draft.CodeInvalidJSON {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateDecodingFailed(t *testing.T) {
	raw := validDraft(t, func(m map[string]interface{}) {
		m["anatomical_observations"] = map[string]string{"lungs": "not a list"}
	})
	_, err := Validate(raw, "en")
	var verr *draft.ValidationError
	if !errors.As(err, &verr) || verr.Code != draft.CodeDecodingFailed {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	raw := validDraft(t, func(m map[string]interface{}) {
		m["image_type"] = "  "
	})
	_, err := Validate(raw, "en")
	var verr *draft.ValidationError
	if !errors.As(err, &verr) || verr.Code != draft.CodeMissingField || verr.Field != "image_type" {
		t.Fatalf("err = %v", err)
	}

	raw = validDraft(t, func(m map[string]interface{}) {
		m["anatomical_observations"] = map[string][]string{}
	})
	_, err = Validate(raw, "en")
	if !errors.As(err, &verr) || verr.Field != "anatomical_observations" {
		t.Fatalf("err = %v", err)
	}
}

// The disclaimer itself contains a deny-listed word; excluding it from the
// scan set must keep an otherwise clean draft valid.
func TestValidateDisclaimerExcludedFromScan(t *testing.T) {
	if _, err := Validate(validDraft(t, nil), "en"); err != nil {
		t.Fatalf("clean draft rejected: %v", err)
	}
}

// Validation is deterministic: the same bytes always fail the same way.
func TestValidateDeterministic(t *testing.T) {
	raw := validDraft(t, func(m map[string]interface{}) {
		m["anatomical_observations"] = map[string][]string{
			"heart": {"enlarged silhouette, probable effusion"},
			"lungs": {"pneumonia in left lower lobe"},
		}
	})
	first, ferr := Validate(raw, "en")
	for i := 0; i < 5; i++ {
		v, err := Validate(raw, "en")
		if (v == nil) != (first == nil) || err.Error() != ferr.Error() {
			t.Fatalf("run %d differed: %v vs %v", i, err, ferr)
		}
	}
}
