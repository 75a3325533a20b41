package fhir

import (
	"strconv"
	"strings"

	"github.com/randsley/MediScribe-sub004/pkg/fhirmodels"
)

// ParseQuantity turns a raw value string like "13.5 g/dL" or "72 bpm" into a
// UCUM-coded Quantity. It succeeds only when the string is a single cleanly
// parseable number followed by a recognized unit; anything else (ranges,
// ratios like "120/80", free text) is left to the caller to emit as an
// unstructured string. No coercion, no silent drops.
func ParseQuantity(raw string) (*Quantity, bool) {
	fields := strings.Fields(strings.TrimSpace(raw))
	if len(fields) != 2 {
		return nil, false
	}

	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return nil, false
	}

	code, ok := fhirmodels.UCUMUnits[strings.ToLower(fields[1])]
	if !ok {
		return nil, false
	}

	return &Quantity{
		Value:  value,
		Unit:   fields[1],
		System: fhirmodels.SystemUCUM,
		Code:   code,
	}, true
}
