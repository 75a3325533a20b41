package soap

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
	"github.com/randsley/MediScribe-sub004/internal/platform/fhir"
	"github.com/randsley/MediScribe-sub004/pkg/fhirmodels"
)

func testContext(state draft.ReviewState) draft.AssemblyContext {
	return draft.AssemblyContext{
		PatientID:           "pat-1",
		PatientDisplay:      "Test Patient",
		PractitionerID:      "prac-1",
		PractitionerDisplay: "Dr Test",
		OrganizationID:      "org-1",
		OrganizationName:    "Test Clinic",
		Authored:            time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC),
		ReviewState:         state,
		Language:            "en",
		ModelName:           "medgemma-4b",
	}
}

func validatedNote(t *testing.T) *ValidatedNote {
	t.Helper()
	v, err := Validate(validNote(t, nil), "en")
	if err != nil {
		t.Fatalf("fixture failed validation: %v", err)
	}
	return v
}

func composition(t *testing.T, b *fhir.Bundle) *fhir.Composition {
	t.Helper()
	comps := b.ResourcesOfType("Composition")
	if len(comps) != 1 {
		t.Fatalf("want exactly one Composition, got %d", len(comps))
	}
	return comps[0].(*fhir.Composition)
}

func sectionByTitle(t *testing.T, c *fhir.Composition, title string) fhir.CompositionSection {
	t.Helper()
	for _, s := range c.Section {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("section %q missing", title)
	return fhir.CompositionSection{}
}

func TestAssembleDraftStatuses(t *testing.T) {
	b, err := Assemble(validatedNote(t), testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	comp := composition(t, b)
	if comp.Status != fhirmodels.CompositionPreliminary {
		t.Errorf("composition status = %q", comp.Status)
	}
	for _, r := range b.ResourcesOfType("Observation") {
		if obs := r.(*fhir.Observation); obs.Status != fhirmodels.ObservationPreliminary {
			t.Errorf("observation status = %q", obs.Status)
		}
	}
	ci := b.ResourcesOfType("ClinicalImpression")[0].(*fhir.ClinicalImpression)
	if ci.Status != fhirmodels.ClinicalImpressionInProgress {
		t.Errorf("impression status = %q", ci.Status)
	}
}

func TestAssembleFinalStatuses(t *testing.T) {
	b, err := Assemble(validatedNote(t), testContext(draft.StateSigned))
	if err != nil {
		t.Fatal(err)
	}
	if comp := composition(t, b); comp.Status != fhirmodels.CompositionFinal {
		t.Errorf("composition status = %q", comp.Status)
	}
	ci := b.ResourcesOfType("ClinicalImpression")[0].(*fhir.ClinicalImpression)
	if ci.Status != fhirmodels.ClinicalImpressionCompleted {
		t.Errorf("impression status = %q", ci.Status)
	}
}

func TestAssembleBlockedRejected(t *testing.T) {
	_, err := Assemble(validatedNote(t), testContext(draft.StateBlocked))
	var serr *draft.StateError
	if !errors.As(err, &serr) {
		t.Fatalf("want StateError, got %T %v", err, err)
	}
}

func TestAssembleMandatedSectionsAlwaysPresent(t *testing.T) {
	b, err := Assemble(validatedNote(t), testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	comp := composition(t, b)
	if len(comp.Section) != 7 {
		t.Fatalf("want 7 sections, got %d", len(comp.Section))
	}
	for _, title := range []string{"Problem list", "Medications", "Allergies"} {
		sectionByTitle(t, comp, title)
	}
	meds := sectionByTitle(t, comp, "Medications")
	if len(meds.Entry) != 1 || meds.EmptyReason != nil {
		t.Errorf("medications section = %+v", meds)
	}
}

func TestAssembleEmptyListsCarryEmptyReason(t *testing.T) {
	v := validatedNote(t)
	v.Medications = nil
	v.Allergies = nil
	b, err := Assemble(v, testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	comp := composition(t, b)
	for _, title := range []string{"Medications", "Allergies"} {
		s := sectionByTitle(t, comp, title)
		if len(s.Entry) != 0 {
			t.Errorf("%s: unexpected entries %v", title, s.Entry)
		}
		if s.EmptyReason == nil || s.EmptyReason.Coding[0].Code != fhirmodels.EmptyReasonUnavailable {
			t.Errorf("%s: emptyReason = %+v", title, s.EmptyReason)
		}
	}
	if got := len(b.ResourcesOfType("MedicationStatement")); got != 0 {
		t.Errorf("medication statements = %d", got)
	}
}

func TestAssembleVitalSignObservations(t *testing.T) {
	b, err := Assemble(validatedNote(t), testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	byCode := map[string]*fhir.Observation{}
	for _, r := range b.ResourcesOfType("Observation") {
		obs := r.(*fhir.Observation)
		if obs.Category[0].Coding[0].Code != fhirmodels.ObsCategoryVitalSigns {
			t.Errorf("category = %+v", obs.Category)
		}
		if obs.EffectiveDateTime != "2026-03-14T09:45:00Z" {
			t.Errorf("effective = %q", obs.EffectiveDateTime)
		}
		byCode[obs.Code.Text] = obs
	}
	hr := byCode["heart rate"]
	if hr == nil || hr.ValueQuantity == nil {
		t.Fatalf("heart rate not parsed as quantity: %+v", hr)
	}
	if hr.ValueQuantity.Value != 82 || hr.ValueQuantity.Code != "/min" {
		t.Errorf("heart rate quantity = %+v", hr.ValueQuantity)
	}
	bp := byCode["blood pressure"]
	if bp == nil || bp.ValueString != "128/82 mmHg" || bp.ValueQuantity != nil {
		t.Errorf("blood pressure should stay a string: %+v", bp)
	}
}

func TestAssembleObjectiveSectionReferencesVitals(t *testing.T) {
	b, err := Assemble(validatedNote(t), testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	comp := composition(t, b)
	objective := sectionByTitle(t, comp, "Objective")
	if len(objective.Entry) != 4 {
		t.Fatalf("objective entries = %d", len(objective.Entry))
	}
	ids := map[string]bool{}
	for _, r := range b.ResourcesOfType("Observation") {
		ids[fhir.FormatReference("Observation", r.(*fhir.Observation).ID)] = true
	}
	for _, e := range objective.Entry {
		if !ids[e.Reference] {
			t.Errorf("dangling reference %q", e.Reference)
		}
	}
}

func TestAssembleNarrativesCarryDisclaimer(t *testing.T) {
	v := validatedNote(t)
	b, err := Assemble(v, testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	comp := composition(t, b)
	if comp.Text == nil || !strings.Contains(comp.Text.Div, v.Limitations) {
		t.Errorf("composition narrative missing disclaimer")
	}
	for _, r := range b.ResourcesOfType("MedicationStatement") {
		ms := r.(*fhir.MedicationStatement)
		if ms.Text == nil || !strings.Contains(ms.Text.Div, v.Limitations) {
			t.Errorf("medication statement narrative missing disclaimer")
		}
	}
}

func TestAssembleProvenanceTargetsComposition(t *testing.T) {
	b, err := Assemble(validatedNote(t), testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	provs := b.ResourcesOfType("Provenance")
	if len(provs) != 1 {
		t.Fatalf("want exactly one Provenance, got %d", len(provs))
	}
	prov := provs[0].(*fhir.Provenance)
	comp := composition(t, b)
	want := fhir.FormatReference("Composition", comp.ID)
	if prov.Target[0].Reference != want {
		t.Errorf("target = %q, want %q", prov.Target[0].Reference, want)
	}
	if len(prov.Agent) != 2 {
		t.Errorf("agents = %d", len(prov.Agent))
	}
	if !strings.Contains(prov.Agent[0].Who.Display, "medgemma-4b") {
		t.Errorf("assembler display = %q", prov.Agent[0].Who.Display)
	}
}

func TestAssembleAllergyClinicalStatus(t *testing.T) {
	b, err := Assemble(validatedNote(t), testContext(draft.StateValidated))
	if err != nil {
		t.Fatal(err)
	}
	allergies := b.ResourcesOfType("AllergyIntolerance")
	if len(allergies) != 1 {
		t.Fatalf("allergies = %d", len(allergies))
	}
	ai := allergies[0].(*fhir.AllergyIntolerance)
	if ai.ClinicalStatus.Coding[0].Code != fhirmodels.AllergyActive {
		t.Errorf("clinical status = %+v", ai.ClinicalStatus)
	}
	if ai.Code.Text != "penicillin" {
		t.Errorf("code = %+v", ai.Code)
	}
}

func TestAssembleIncompleteContext(t *testing.T) {
	ctx := testContext(draft.StateValidated)
	ctx.PatientID = ""
	_, err := Assemble(validatedNote(t), ctx)
	var rerr *draft.ResourceConsistencyError
	if !errors.As(err, &rerr) {
		t.Fatalf("want ResourceConsistencyError, got %T %v", err, err)
	}
}
