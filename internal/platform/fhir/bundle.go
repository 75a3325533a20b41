package fhir

import (
	"time"

	"github.com/google/uuid"
)

// Bundle is the assembled resource graph: a FHIR collection bundle whose
// entries cross-reference each other by "Type/id" strings only. A bundle is
// produced once per assembly call and never mutated afterwards.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id"`
	Meta         *Meta         `json:"meta,omitempty"`
	Type         string        `json:"type"`
	Timestamp    string        `json:"timestamp,omitempty"`
	Entry        []BundleEntry `json:"entry"`
}

type BundleEntry struct {
	FullURL  string      `json:"fullUrl,omitempty"`
	Resource interface{} `json:"resource"`
}

// NewCollectionBundle creates an empty collection bundle stamped with a fresh
// identifier and the given assembly timestamp.
func NewCollectionBundle(at time.Time) *Bundle {
	return &Bundle{
		ResourceType: "Bundle",
		ID:           NewResourceID(),
		Type:         "collection",
		Timestamp:    at.UTC().Format(time.RFC3339),
		Entry:        []BundleEntry{},
	}
}

// Add appends a resource entry. The fullUrl mirrors the local reference so
// consumers can resolve same-document references without a server round trip.
func (b *Bundle) Add(resourceType, id string, resource interface{}) {
	b.Entry = append(b.Entry, BundleEntry{
		FullURL:  "urn:mediscribe:" + resourceType + "/" + id,
		Resource: resource,
	})
}

// ResourcesOfType returns every entry resource whose resourceType matches.
// Entries added via Add are typed structs, so callers type-assert the result.
func (b *Bundle) ResourcesOfType(resourceType string) []interface{} {
	prefix := "urn:mediscribe:" + resourceType + "/"
	var out []interface{}
	for _, e := range b.Entry {
		if len(e.FullURL) >= len(prefix) && e.FullURL[:len(prefix)] == prefix {
			out = append(out, e.Resource)
		}
	}
	return out
}

// NewResourceID mints a locally unique resource identifier. uuid v4 gives
// 122 bits of randomness; the residual collision probability is accepted and
// not deduplicated.
func NewResourceID() string {
	return uuid.NewString()
}

// FormatReference creates a FHIR local reference string.
func FormatReference(resourceType, id string) string {
	return resourceType + "/" + id
}

// Ref builds a Reference value pointing at a resource in the same bundle.
func Ref(resourceType, id string) Reference {
	return Reference{Reference: FormatReference(resourceType, id), Type: resourceType}
}

// RefDisplay builds a Reference with a human-readable display.
func RefDisplay(resourceType, id, display string) Reference {
	r := Ref(resourceType, id)
	r.Display = display
	return r
}
