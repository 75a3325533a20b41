package lab

// allowedKeys is the lab draft envelope; kept as data because the upstream
// schema is still evolving.
var allowedKeys = []string{
	"panel_name",
	"specimen_type",
	"results",
	"collection_note",
	"interpretation",
	"limitations",
}

// resultsDraft is the decode target for a raw lab-extraction draft. The
// results map is free-form: keys are test names as they appear on the
// scanned report, values are the transcribed value strings.
type resultsDraft struct {
	PanelName      string            `json:"panel_name"`
	SpecimenType   string            `json:"specimen_type"`
	Results        map[string]string `json:"results"`
	CollectionNote string            `json:"collection_note"`
	Interpretation string            `json:"interpretation"`
	Limitations    string            `json:"limitations"`
}

// ValidatedResults is a lab draft that has passed every validation gate.
// Only Validate produces one; treated as immutable.
type ValidatedResults struct {
	PanelName      string
	SpecimenType   string
	Results        map[string]string
	CollectionNote string
	Interpretation string
	Limitations    string
	Language       string
}
