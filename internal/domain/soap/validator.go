package soap

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
)

// Validate runs the SOAP note through the hard-gate sequence. Structural
// failures (parse, schema, decode) short-circuit; the disclaimer check,
// per-section phrase scans and required-field checks accumulate so the
// caller can report every violation at once. Assessment and plan are scanned
// first and tagged critical; the remaining sections report error severity.
func Validate(raw []byte, lang string) (*ValidatedNote, error) {
	obj, verr := draft.ParseObject(raw)
	if verr != nil {
		return nil, verr
	}
	if serr := draft.CheckKeys("", obj, allowedKeys); serr != nil {
		return nil, serr
	}
	if serr := checkSectionKeys(obj); serr != nil {
		return nil, serr
	}

	var d noteDraft
	if verr := draft.DecodeStrict(raw, &d); verr != nil {
		return nil, verr
	}

	var errs draft.ValidationErrors

	if d.Limitations != draft.Disclaimer(lang) {
		errs = append(errs, draft.NewLimitationsMismatchError("limitations"))
	}

	errs = append(errs, draft.ScanAll(lang, scanFields(&d))...)

	vitalsAt, terr := time.Parse(time.RFC3339, d.Objective.VitalsRecordedAt)
	if terr != nil {
		errs = append(errs, &draft.ValidationError{
			Field:    "objective.vitals_recorded_at",
			Code:     draft.CodeMissingField,
			Message:  "vitals timestamp must be a valid RFC 3339 datetime",
			Severity: draft.SeverityError,
		})
	}
	if strings.TrimSpace(d.Subjective.ChiefComplaint) == "" {
		errs = append(errs, &draft.ValidationError{
			Field:    "subjective.chief_complaint",
			Code:     draft.CodeMissingField,
			Message:  "chief complaint must not be empty",
			Severity: draft.SeverityError,
		})
	}
	if strings.TrimSpace(d.Assessment.ClinicalImpression) == "" {
		errs = append(errs, &draft.ValidationError{
			Field:    "assessment.clinical_impression",
			Code:     draft.CodeMissingField,
			Message:  "clinical impression must not be empty",
			Severity: draft.SeverityError,
		})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &ValidatedNote{
		ChiefComplaint:          d.Subjective.ChiefComplaint,
		HistoryOfPresentIllness: d.Subjective.HistoryOfPresentIllness,
		ReviewOfSystems:         d.Subjective.ReviewOfSystems,
		VitalSigns:              d.Objective.VitalSigns,
		VitalsRecordedAt:        vitalsAt,
		Examination:             d.Objective.Examination,
		ClinicalImpression:      d.Assessment.ClinicalImpression,
		NotedObservations:       d.Assessment.NotedObservations,
		FollowUp:                d.Plan.FollowUp,
		PatientInstructions:     d.Plan.PatientInstructions,
		Medications:             d.Medications,
		Allergies:               d.Allergies,
		Limitations:             d.Limitations,
		Language:                lang,
	}, nil
}

// checkSectionKeys applies the fail-closed key check to each fixed section
// object, so commentary fields cannot hide one level down either.
func checkSectionKeys(obj map[string]json.RawMessage) *draft.SchemaError {
	sections := []struct {
		name    string
		allowed []string
	}{
		{"subjective", subjectiveKeys},
		{"objective", objectiveKeys},
		{"assessment", assessmentKeys},
		{"plan", planKeys},
	}
	for _, s := range sections {
		raw, ok := obj[s.name]
		if !ok {
			continue // absence is caught by the required-field checks
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err != nil {
			continue // not an object; strict decode reports the type mismatch
		}
		if serr := draft.CheckKeys(s.name, nested, s.allowed); serr != nil {
			return serr
		}
	}
	return nil
}

// scanFields flattens every text-bearing field except limitations.
// Assessment and plan come first: they are where diagnostic or prescriptive
// language is most likely to surface, and hits there are critical.
func scanFields(d *noteDraft) []draft.Field {
	fields := []draft.Field{
		{Path: "assessment.clinical_impression", Text: d.Assessment.ClinicalImpression, Critical: true},
		{Path: "assessment.noted_observations", Text: strings.Join(d.Assessment.NotedObservations, "\n"), Critical: true},
		{Path: "plan.follow_up", Text: d.Plan.FollowUp, Critical: true},
		{Path: "plan.patient_instructions", Text: d.Plan.PatientInstructions, Critical: true},
		{Path: "subjective.chief_complaint", Text: d.Subjective.ChiefComplaint},
		{Path: "subjective.history_of_present_illness", Text: d.Subjective.HistoryOfPresentIllness},
		{Path: "subjective.review_of_systems", Text: strings.Join(d.Subjective.ReviewOfSystems, "\n")},
		{Path: "objective.examination", Text: strings.Join(d.Objective.Examination, "\n")},
		{Path: "medications", Text: strings.Join(d.Medications, "\n")},
		{Path: "allergies", Text: strings.Join(d.Allergies, "\n")},
	}

	names := make([]string, 0, len(d.Objective.VitalSigns))
	for name := range d.Objective.VitalSigns {
		names = append(names, name)
	}
	// Stable order keeps accumulated error lists deterministic.
	sort.Strings(names)
	for _, name := range names {
		fields = append(fields, draft.Field{
			Path: "objective.vital_signs." + name,
			Text: name + " " + d.Objective.VitalSigns[name],
		})
	}
	return fields
}
