package imaging

import (
	"sort"
	"strings"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
)

// Validate runs the imaging draft through the hard-gate sequence: parse,
// top-level key check, strict decode, verbatim limitations match, forbidden
// phrase scan, required-field checks. Single-document flow: the first
// failure short-circuits. Deterministic for identical bytes.
func Validate(raw []byte, lang string) (*ValidatedFindings, error) {
	obj, verr := draft.ParseObject(raw)
	if verr != nil {
		return nil, verr
	}
	if serr := draft.CheckKeys("", obj, allowedKeys); serr != nil {
		return nil, serr
	}

	var d findingsDraft
	if verr := draft.DecodeStrict(raw, &d); verr != nil {
		return nil, verr
	}

	if d.Limitations != draft.Disclaimer(lang) {
		return nil, draft.NewLimitationsMismatchError("limitations")
	}

	if verr := draft.ScanFirst(lang, scanFields(&d)); verr != nil {
		return nil, verr
	}

	if strings.TrimSpace(d.ImageType) == "" {
		return nil, &draft.ValidationError{
			Field:    "image_type",
			Code:     draft.CodeMissingField,
			Message:  "image_type must not be empty",
			Severity: draft.SeverityError,
		}
	}
	if len(d.AnatomicalObservations) == 0 {
		return nil, &draft.ValidationError{
			Field:    "anatomical_observations",
			Code:     draft.CodeMissingField,
			Message:  "at least one anatomical region is required",
			Severity: draft.SeverityError,
		}
	}

	return &ValidatedFindings{
		ImageType:              d.ImageType,
		ImageQuality:           d.ImageQuality,
		AnatomicalObservations: d.AnatomicalObservations,
		ComparisonWithPrior:    d.ComparisonWithPrior,
		AreasHighlighted:       d.AreasHighlighted,
		Limitations:            d.Limitations,
		Language:               lang,
	}, nil
}

// scanFields flattens every text-bearing field except limitations. Findings
// are the clinically decisive section for imaging, so observation hits are
// critical; regions are visited in sorted order to keep the first reported
// hit deterministic.
func scanFields(d *findingsDraft) []draft.Field {
	regions := make([]string, 0, len(d.AnatomicalObservations))
	for region := range d.AnatomicalObservations {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	var fields []draft.Field
	for _, region := range regions {
		fields = append(fields, draft.Field{
			Path:     "anatomical_observations." + region,
			Text:     region + "\n" + strings.Join(d.AnatomicalObservations[region], "\n"),
			Critical: true,
		})
	}
	fields = append(fields,
		draft.Field{Path: "image_type", Text: d.ImageType},
		draft.Field{Path: "image_quality", Text: d.ImageQuality},
		draft.Field{Path: "comparison_with_prior", Text: d.ComparisonWithPrior},
		draft.Field{Path: "areas_highlighted", Text: d.AreasHighlighted},
	)
	return fields
}
