package draft

import "time"

// AssemblyContext supplies everything the resource-graph assemblers need
// beyond the validated draft itself. Party identifiers are minted by the
// caller's identity mapping step and passed through as opaque strings;
// settings (language, model name) are passed explicitly rather than read
// from ambient state so assembly stays pure.
type AssemblyContext struct {
	PatientID           string
	PatientDisplay      string
	PractitionerID      string
	PractitionerDisplay string
	OrganizationID      string
	OrganizationName    string

	Authored    time.Time
	ReviewState ReviewState
	Language    string
	ModelName   string

	// Imaging only: raw image bytes captured alongside the findings. Absent
	// data skips the Media sub-resource without blocking assembly.
	ImageData        []byte
	ImageContentType string
}

// Validate checks the context is complete enough to assemble against.
func (c *AssemblyContext) Validate() error {
	if c.PatientID == "" {
		return &ResourceConsistencyError{Missing: "patient identifier"}
	}
	if c.PractitionerID == "" {
		return &ResourceConsistencyError{Missing: "practitioner identifier"}
	}
	if c.Authored.IsZero() {
		return &ResourceConsistencyError{Missing: "authored timestamp"}
	}
	if !c.ReviewState.Valid() {
		return &StateError{From: c.ReviewState, Op: "assemble"}
	}
	if c.ReviewState == StateBlocked {
		return &StateError{From: c.ReviewState, Op: "assemble"}
	}
	return nil
}
