package draft

import (
	"testing"
	"time"
)

func TestCheckKeys(t *testing.T) {
	obj, verr := ParseObject([]byte(`{"a":1,"b":"x","c":{}}`))
	if verr != nil {
		t.Fatalf("ParseObject: %v", verr)
	}

	if err := CheckKeys("", obj, []string{"a", "b", "c"}); err != nil {
		t.Errorf("exact key set rejected: %v", err)
	}
	if err := CheckKeys("", obj, []string{"a", "b", "c", "d"}); err != nil {
		t.Errorf("subset rejected: %v", err)
	}

	err := CheckKeys("", obj, []string{"a", "b"})
	if err == nil {
		t.Fatal("extra key accepted")
	}
	if len(err.Extra) != 1 || err.Extra[0] != "c" {
		t.Errorf("Extra = %v, want [c]", err.Extra)
	}
	if len(err.Found) != 3 {
		t.Errorf("Found = %v, want all three keys", err.Found)
	}
	if err.AsValidationError().Code != CodeExtraTopLevelKeys {
		t.Errorf("code = %q", err.AsValidationError().Code)
	}
}

func TestParseObjectInvalidJSON(t *testing.T) {
	for _, raw := range []string{"not json", `["array"]`, `"string"`, ""} {
		if _, verr := ParseObject([]byte(raw)); verr == nil || verr.Code != CodeInvalidJSON {
			t.Errorf("ParseObject(%q) did not fail with invalidJSON", raw)
		}
	}
}

func TestDecodeStrictUnknownField(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	if verr := DecodeStrict([]byte(`{"name":"x","extra":true}`), &v); verr == nil || verr.Code != CodeDecodingFailed {
		t.Error("unknown field did not fail decoding")
	}
	if verr := DecodeStrict([]byte(`{"name":7}`), &v); verr == nil {
		t.Error("type mismatch did not fail decoding")
	}
	if verr := DecodeStrict([]byte(`{"name":"x"}`), &v); verr != nil {
		t.Errorf("valid input failed: %v", verr)
	}
}

func TestReviewTransitions(t *testing.T) {
	valid := [][2]ReviewState{
		{StateUnvalidated, StateValidated},
		{StateValidated, StateReviewed},
		{StateReviewed, StateSigned},
		{StateUnvalidated, StateBlocked},
		{StateValidated, StateBlocked},
		{StateReviewed, StateBlocked},
	}
	for _, tr := range valid {
		if err := Transition(tr[0], tr[1]); err != nil {
			t.Errorf("Transition(%s, %s) = %v, want nil", tr[0], tr[1], err)
		}
	}

	invalid := [][2]ReviewState{
		{StateSigned, StateReviewed},
		{StateSigned, StateBlocked},
		{StateSigned, StateSigned},
		{StateBlocked, StateValidated},
		{StateUnvalidated, StateReviewed},
		{StateUnvalidated, StateSigned},
		{StateValidated, StateSigned},
		{"bogus", StateValidated},
	}
	for _, tr := range invalid {
		err := Transition(tr[0], tr[1])
		if err == nil {
			t.Errorf("Transition(%s, %s) allowed", tr[0], tr[1])
			continue
		}
		if _, ok := err.(*StateError); !ok {
			t.Errorf("Transition(%s, %s) returned %T, want *StateError", tr[0], tr[1], err)
		}
	}
}

func TestReviewStateFinal(t *testing.T) {
	if StateValidated.Final() || StateUnvalidated.Final() || StateBlocked.Final() {
		t.Error("non-reviewed state reported final")
	}
	if !StateReviewed.Final() || !StateSigned.Final() {
		t.Error("reviewed/signed not reported final")
	}
}

func TestAssemblyContextValidate(t *testing.T) {
	base := AssemblyContext{
		PatientID:      "p1",
		PractitionerID: "pr1",
		Authored:       time.Now(),
		ReviewState:    StateValidated,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("complete context rejected: %v", err)
	}

	missingPatient := base
	missingPatient.PatientID = ""
	if _, ok := missingPatient.Validate().(*ResourceConsistencyError); !ok {
		t.Error("missing patient id not a ResourceConsistencyError")
	}

	missingTime := base
	missingTime.Authored = time.Time{}
	if missingTime.Validate() == nil {
		t.Error("zero timestamp accepted")
	}

	blocked := base
	blocked.ReviewState = StateBlocked
	if _, ok := blocked.Validate().(*StateError); !ok {
		t.Error("blocked state did not yield a StateError")
	}
}

func TestDisclaimerNeverTriggersScanWhenExcluded(t *testing.T) {
	// Every canonical disclaimer contains a deny-listed word; scanning must
	// only ever run on the other fields.
	for _, lang := range []string{"en", "es", "fr", "de"} {
		if err := ScanFirst(lang, []Field{{Path: "limitations", Text: Disclaimer(lang)}}); err == nil {
			t.Errorf("disclaimer for %q does not contain a deny-listed word; the exclusion is vacuous", lang)
		}
		if err := ScanFirst(lang, []Field{{Path: "comparison_with_prior", Text: "stable compared to prior"}}); err != nil {
			t.Errorf("clean field flagged for %q: %v", lang, err)
		}
	}
}

func TestScanAllAccumulates(t *testing.T) {
	fields := []Field{
		{Path: "assessment.clinical_impression", Text: "likely represents pneumonia", Critical: true},
		{Path: "plan.follow_up", Text: "prescribe antibiotics", Critical: true},
		{Path: "subjective.chief_complaint", Text: "cough for three days"},
	}
	errs := ScanAll("en", fields)
	if len(errs) != 2 {
		t.Fatalf("accumulated %d errors, want 2", len(errs))
	}
	if !errs.HasCritical() {
		t.Error("critical sections not tagged critical")
	}
	for _, e := range errs {
		if e.Code != CodeForbiddenPhrase {
			t.Errorf("code = %q", e.Code)
		}
	}
}

func TestScanFirstShortCircuits(t *testing.T) {
	fields := []Field{
		{Path: "anatomical_observations.lungs", Text: "pneumonia present", Critical: true},
		{Path: "image_quality", Text: "cancer"},
	}
	err := ScanFirst("en", fields)
	if err == nil {
		t.Fatal("no hit")
	}
	if err.Field != "anatomical_observations.lungs" || err.Severity != SeverityCritical {
		t.Errorf("got %v, want first (critical) field reported", err)
	}
}
