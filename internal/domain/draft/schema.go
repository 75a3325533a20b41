package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// ParseObject decodes raw bytes into a generic key/value view of the draft.
// The first hard gate: unparsable input fails with invalidJSON.
func ParseObject(raw []byte) (map[string]json.RawMessage, *ValidationError) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, &ValidationError{
			Field:    "",
			Code:     CodeInvalidJSON,
			Message:  fmt.Sprintf("draft is not a JSON object: %v", err),
			Severity: SeverityError,
		}
	}
	return obj, nil
}

// CheckKeys fails closed when the object's key set is not a subset of
// allowed. field names the level being checked ("" for top level). The
// allowed set stays a slice so the schema can become configuration without
// changing callers.
func CheckKeys(field string, obj map[string]json.RawMessage, allowed []string) *SchemaError {
	allowedSet := make(map[string]bool, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = true
	}

	var found, extra []string
	for k := range obj {
		found = append(found, k)
		if !allowedSet[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) == 0 {
		return nil
	}
	sort.Strings(found)
	sort.Strings(extra)
	return &SchemaError{Field: field, Found: found, Allowed: allowed, Extra: extra}
}

// DecodeStrict decodes into the typed draft structure, rejecting unknown
// fields and type mismatches.
func DecodeStrict(raw []byte, v interface{}) *ValidationError {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return &ValidationError{
			Field:    "",
			Code:     CodeDecodingFailed,
			Message:  fmt.Sprintf("draft does not match the expected structure: %v", err),
			Severity: SeverityError,
		}
	}
	return nil
}
