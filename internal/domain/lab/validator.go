package lab

import (
	"sort"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
)

// Validate runs the lab draft through the hard-gate sequence. Single-document
// flow: the first failure short-circuits. Results and interpretation are the
// clinically decisive sections, so phrase hits there are critical.
func Validate(raw []byte, lang string) (*ValidatedResults, error) {
	obj, verr := draft.ParseObject(raw)
	if verr != nil {
		return nil, verr
	}
	if serr := draft.CheckKeys("", obj, allowedKeys); serr != nil {
		return nil, serr
	}

	var d resultsDraft
	if verr := draft.DecodeStrict(raw, &d); verr != nil {
		return nil, verr
	}

	if d.Limitations != draft.Disclaimer(lang) {
		return nil, draft.NewLimitationsMismatchError("limitations")
	}

	if verr := draft.ScanFirst(lang, scanFields(&d)); verr != nil {
		return nil, verr
	}

	if len(d.Results) == 0 {
		return nil, &draft.ValidationError{
			Field:    "results",
			Code:     draft.CodeMissingField,
			Message:  "at least one extracted result is required",
			Severity: draft.SeverityError,
		}
	}

	return &ValidatedResults{
		PanelName:      d.PanelName,
		SpecimenType:   d.SpecimenType,
		Results:        d.Results,
		CollectionNote: d.CollectionNote,
		Interpretation: d.Interpretation,
		Limitations:    d.Limitations,
		Language:       lang,
	}, nil
}

func scanFields(d *resultsDraft) []draft.Field {
	names := make([]string, 0, len(d.Results))
	for name := range d.Results {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := []draft.Field{
		{Path: "interpretation", Text: d.Interpretation, Critical: true},
	}
	for _, name := range names {
		fields = append(fields, draft.Field{
			Path:     "results." + name,
			Text:     name + " " + d.Results[name],
			Critical: true,
		})
	}
	fields = append(fields,
		draft.Field{Path: "panel_name", Text: d.PanelName},
		draft.Field{Path: "specimen_type", Text: d.SpecimenType},
		draft.Field{Path: "collection_note", Text: d.CollectionNote},
	)
	return fields
}
