package soap

import (
	"sort"
	"strings"
	"time"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
	"github.com/randsley/MediScribe-sub004/internal/platform/fhir"
	"github.com/randsley/MediScribe-sub004/pkg/fhirmodels"
)

// Assemble maps a validated SOAP note plus caller context into the FHIR
// resource graph: a Composition carrying the four narrative sections plus
// the mandated problem-list/medications/allergies trio, a ClinicalImpression
// for the assessment, MedicationStatement and AllergyIntolerance entries,
// vital-sign Observations, and a single Provenance record targeting the
// Composition. The mandated sections are always present; ones without
// qualifying entries carry an explicit empty reason instead of being
// omitted.
func Assemble(v *ValidatedNote, ctx draft.AssemblyContext) (*fhir.Bundle, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	compStatus := fhirmodels.CompositionPreliminary
	obsStatus := fhirmodels.ObservationPreliminary
	impressionStatus := fhirmodels.ClinicalImpressionInProgress
	if ctx.ReviewState.Final() {
		compStatus = fhirmodels.CompositionFinal
		obsStatus = fhirmodels.ObservationFinal
		impressionStatus = fhirmodels.ClinicalImpressionCompleted
	}

	at := ctx.Authored.UTC()
	stamp := at.Format(time.RFC3339)
	bundle := fhir.NewCollectionBundle(at)

	bundle.Add("Patient", ctx.PatientID, fhir.PatientShell(ctx.PatientID, ctx.PatientDisplay))
	bundle.Add("Practitioner", ctx.PractitionerID, fhir.PractitionerShell(ctx.PractitionerID, ctx.PractitionerDisplay))
	if ctx.OrganizationID != "" {
		bundle.Add("Organization", ctx.OrganizationID, fhir.OrganizationShell(ctx.OrganizationID, ctx.OrganizationName))
	}

	subject := fhir.Ref("Patient", ctx.PatientID)
	author := fhir.Ref("Practitioner", ctx.PractitionerID)

	// Vital-sign observations, stable order.
	vitalsStamp := v.VitalsRecordedAt.UTC().Format(time.RFC3339)
	names := make([]string, 0, len(v.VitalSigns))
	for name := range v.VitalSigns {
		names = append(names, name)
	}
	sort.Strings(names)

	var vitalRefs []fhir.Reference
	for _, name := range names {
		obs := &fhir.Observation{
			ResourceType: "Observation",
			ID:           fhir.NewResourceID(),
			Meta:         fhir.NewMeta(fhirmodels.ProfileObservation, at),
			Status:       obsStatus,
			Category: []fhir.CodeableConcept{{
				Coding: []fhir.Coding{{
					System: fhirmodels.SystemObservationCategory,
					Code:   fhirmodels.ObsCategoryVitalSigns,
				}},
			}},
			Code:              fhir.CodeableConcept{Text: name},
			Subject:           &subject,
			Performer:         []fhir.Reference{author},
			EffectiveDateTime: vitalsStamp,
		}
		raw := v.VitalSigns[name]
		if q, ok := fhir.ParseQuantity(raw); ok {
			obs.ValueQuantity = q
		} else {
			obs.ValueString = raw
		}
		obs.Text = fhir.BuildNarrative("Draft vital sign: "+name+" = "+raw+".", v.Limitations)
		bundle.Add("Observation", obs.ID, obs)
		vitalRefs = append(vitalRefs, fhir.Ref("Observation", obs.ID))
	}

	impression := &fhir.ClinicalImpression{
		ResourceType:      "ClinicalImpression",
		ID:                fhir.NewResourceID(),
		Meta:              fhir.NewMeta(fhirmodels.ProfileClinicalImpression, at),
		Status:            impressionStatus,
		Subject:           &subject,
		EffectiveDateTime: stamp,
		Date:              stamp,
		Assessor:          &author,
		Summary:           v.ClinicalImpression,
	}
	for _, n := range v.NotedObservations {
		impression.Note = append(impression.Note, fhir.Annotation{Text: n, Time: stamp})
	}
	impression.Text = fhir.BuildNarrative("Draft clinical impression from a dictated encounter.", v.Limitations)
	bundle.Add("ClinicalImpression", impression.ID, impression)

	var medRefs []fhir.Reference
	for _, med := range v.Medications {
		ms := &fhir.MedicationStatement{
			ResourceType:              "MedicationStatement",
			ID:                        fhir.NewResourceID(),
			Meta:                      fhir.NewMeta(fhirmodels.ProfileMedicationStatement, at),
			Status:                    fhirmodels.MedicationStatementActive,
			MedicationCodeableConcept: fhir.CodeableConcept{Text: med},
			Subject:                   &subject,
			DateAsserted:              stamp,
			InformationSource:         &author,
		}
		ms.Text = fhir.BuildNarrative("Patient-reported medication: "+med+".", v.Limitations)
		bundle.Add("MedicationStatement", ms.ID, ms)
		medRefs = append(medRefs, fhir.Ref("MedicationStatement", ms.ID))
	}

	var allergyRefs []fhir.Reference
	for _, allergy := range v.Allergies {
		ai := &fhir.AllergyIntolerance{
			ResourceType: "AllergyIntolerance",
			ID:           fhir.NewResourceID(),
			Meta:         fhir.NewMeta(fhirmodels.ProfileAllergyIntolerance, at),
			ClinicalStatus: &fhir.CodeableConcept{
				Coding: []fhir.Coding{{
					System: fhirmodels.SystemAllergyClinical,
					Code:   fhirmodels.AllergyActive,
				}},
			},
			Code:         fhir.CodeableConcept{Text: allergy},
			Patient:      &subject,
			RecordedDate: stamp,
			Recorder:     &author,
		}
		ai.Text = fhir.BuildNarrative("Patient-reported allergy: "+allergy+".", v.Limitations)
		bundle.Add("AllergyIntolerance", ai.ID, ai)
		allergyRefs = append(allergyRefs, fhir.Ref("AllergyIntolerance", ai.ID))
	}

	comp := &fhir.Composition{
		ResourceType: "Composition",
		ID:           fhir.NewResourceID(),
		Meta:         fhir.NewMeta(fhirmodels.ProfileComposition, at),
		Status:       compStatus,
		Type: fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System:  fhirmodels.SystemLOINC,
				Code:    fhirmodels.LoincSOAPNote,
				Display: "Note",
			}},
		},
		Subject: &subject,
		Date:    stamp,
		Author:  []fhir.Reference{author},
		Title:   "Clinical encounter note (draft)",
	}
	if ctx.OrganizationID != "" {
		custodian := fhir.Ref("Organization", ctx.OrganizationID)
		comp.Custodian = &custodian
	}

	comp.Section = []fhir.CompositionSection{
		narrativeSection("Subjective", fhirmodels.LoincHistoryOfIllness, subjectiveText(v), v.Limitations),
		{
			Title: "Objective",
			Code:  loincConcept(fhirmodels.LoincVitalSigns),
			Text:  fhir.BuildNarrative(objectiveText(v), v.Limitations),
			Entry: vitalRefs,
		},
		{
			Title: "Assessment",
			Code:  loincConcept(fhirmodels.LoincAssessment),
			Text:  fhir.BuildNarrative(v.ClinicalImpression, v.Limitations),
			Entry: []fhir.Reference{fhir.Ref("ClinicalImpression", impression.ID)},
		},
		narrativeSection("Plan", fhirmodels.LoincPlanOfCare, planText(v), v.Limitations),
		entrySection("Problem list", fhirmodels.LoincProblemList, []fhir.Reference{fhir.Ref("ClinicalImpression", impression.ID)}),
		entrySection("Medications", fhirmodels.LoincMedicationHistory, medRefs),
		entrySection("Allergies", fhirmodels.LoincAllergiesSection, allergyRefs),
	}
	comp.Text = fhir.BuildNarrative("Draft clinical encounter note: "+v.ChiefComplaint+".", v.Limitations)
	bundle.Add("Composition", comp.ID, comp)

	prov := fhir.NewAIProvenance("Composition", comp.ID, ctx.PractitionerID, ctx.ModelName, at)
	bundle.Add("Provenance", prov.ID, prov)

	return bundle, nil
}

func loincConcept(code string) *fhir.CodeableConcept {
	return &fhir.CodeableConcept{
		Coding: []fhir.Coding{{System: fhirmodels.SystemLOINC, Code: code}},
	}
}

func narrativeSection(title, loinc, text, disclaimer string) fhir.CompositionSection {
	return fhir.CompositionSection{
		Title: title,
		Code:  loincConcept(loinc),
		Text:  fhir.BuildNarrative(text, disclaimer),
	}
}

// entrySection builds one of the mandated fixed sections. No qualifying
// entries means an explicit empty reason, never omission; downstream
// consumers expect every mandated section to exist.
func entrySection(title, loinc string, entries []fhir.Reference) fhir.CompositionSection {
	s := fhir.CompositionSection{
		Title: title,
		Code:  loincConcept(loinc),
		Text:  fhir.PlainNarrative(title),
	}
	if len(entries) == 0 {
		s.EmptyReason = &fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System:  fhirmodels.SystemListEmptyReason,
				Code:    fhirmodels.EmptyReasonUnavailable,
				Display: "No information available",
			}},
		}
		return s
	}
	s.Entry = entries
	return s
}

func subjectiveText(v *ValidatedNote) string {
	parts := []string{"Chief complaint: " + v.ChiefComplaint}
	if v.HistoryOfPresentIllness != "" {
		parts = append(parts, "History: "+v.HistoryOfPresentIllness)
	}
	if len(v.ReviewOfSystems) > 0 {
		parts = append(parts, "Review of systems: "+strings.Join(v.ReviewOfSystems, "; "))
	}
	return strings.Join(parts, " ")
}

func objectiveText(v *ValidatedNote) string {
	parts := []string{"Vitals recorded at " + v.VitalsRecordedAt.UTC().Format(time.RFC3339) + "."}
	if len(v.Examination) > 0 {
		parts = append(parts, "Examination: "+strings.Join(v.Examination, "; "))
	}
	return strings.Join(parts, " ")
}

func planText(v *ValidatedNote) string {
	parts := []string{}
	if v.FollowUp != "" {
		parts = append(parts, "Follow-up: "+v.FollowUp)
	}
	if v.PatientInstructions != "" {
		parts = append(parts, "Instructions: "+v.PatientInstructions)
	}
	if len(parts) == 0 {
		return "No plan recorded."
	}
	return strings.Join(parts, " ")
}
