package imaging

// allowedKeys is the imaging draft envelope. The upstream schema is still
// evolving, so the allowed set is data rather than a reflection of the
// decode target.
var allowedKeys = []string{
	"image_type",
	"image_quality",
	"anatomical_observations",
	"comparison_with_prior",
	"areas_highlighted",
	"limitations",
}

// findingsDraft is the decode target for a raw imaging draft. The
// anatomical_observations map is free-form: its keys name scanned content,
// not schema shape, and every value is included in the phrase scan.
type findingsDraft struct {
	ImageType              string              `json:"image_type"`
	ImageQuality           string              `json:"image_quality"`
	AnatomicalObservations map[string][]string `json:"anatomical_observations"`
	ComparisonWithPrior    string              `json:"comparison_with_prior"`
	AreasHighlighted       string              `json:"areas_highlighted"`
	Limitations            string              `json:"limitations"`
}

// ValidatedFindings is an imaging draft that has passed every validation
// gate: schema, verbatim limitations statement, forbidden-phrase scan,
// required-field checks. Treated as immutable by construction; only
// Validate produces one.
type ValidatedFindings struct {
	ImageType              string
	ImageQuality           string
	AnatomicalObservations map[string][]string
	ComparisonWithPrior    string
	AreasHighlighted       string
	Limitations            string
	Language               string
}
