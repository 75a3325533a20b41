package draft

import (
	"fmt"
	"strings"
)

// Severity tags a validation failure. critical is reserved for forbidden
// phrases found in a clinically decisive section (assessment/plan,
// findings/interpretation) and always blocks assembly; error and warning are
// caller policy.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Validation failure codes. Same bytes always fail with the same code; none
// of these are retryable without caller intervention.
const (
	CodeInvalidJSON         = "invalidJSON"
	CodeExtraTopLevelKeys   = "extraTopLevelKeys"
	CodeDecodingFailed      = "decodingFailed"
	CodeLimitationsMismatch = "limitationsMismatch"
	CodeForbiddenPhrase     = "forbiddenPhraseFound"
	CodeMissingField        = "missingRequiredField"
)

// ValidationError is a single validation failure tied to a field path.
type ValidationError struct {
	Field    string
	Code     string
	Message  string
	Severity Severity
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s, %s)", e.Field, e.Message, e.Code, e.Severity)
}

// NewForbiddenPhraseError reports a deny-list hit. The message carries the
// matched phrase for development diagnostics; production surfaces must mask
// it (see scribe handler).
func NewForbiddenPhraseError(field, phrase string, sev Severity) *ValidationError {
	return &ValidationError{
		Field:    field,
		Code:     CodeForbiddenPhrase,
		Message:  fmt.Sprintf("forbidden phrase %q", phrase),
		Severity: sev,
	}
}

// NewLimitationsMismatchError reports a disclaimer that is not byte-for-byte
// equal to the canonical sentence. Downstream compliance audits rely on the
// verbatim text, so any deviation, including whitespace, fails.
func NewLimitationsMismatchError(field string) *ValidationError {
	return &ValidationError{
		Field:    field,
		Code:     CodeLimitationsMismatch,
		Message:  "limitations statement does not match the required text exactly",
		Severity: SeverityError,
	}
}

// ValidationErrors accumulates per-section failures for multi-section drafts.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// HasCritical reports whether any accumulated failure is critical.
func (es ValidationErrors) HasCritical() bool {
	for _, e := range es {
		if e.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// SchemaError reports unexpected top-level (or fixed-section) keys. Decoding
// fails closed on any key outside the allowed set so that free-form fields
// cannot bypass phrase scanning.
type SchemaError struct {
	Field   string
	Found   []string
	Allowed []string
	Extra   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: unexpected keys %v (allowed: %v)", e.Field, e.Extra, e.Allowed)
}

// AsValidationError converts a SchemaError into the accumulated form.
func (e *SchemaError) AsValidationError() *ValidationError {
	return &ValidationError{
		Field:    e.Field,
		Code:     CodeExtraTopLevelKeys,
		Message:  e.Error(),
		Severity: SeverityError,
	}
}

// StateError reports an invalid review-state transition or an operation
// attempted in the wrong state. A workflow bug, not a retryable condition.
type StateError struct {
	From ReviewState
	To   ReviewState
	Op   string
}

func (e *StateError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("cannot %s in state %q", e.Op, e.From)
	}
	return fmt.Sprintf("invalid review transition %q -> %q", e.From, e.To)
}

// ResourceConsistencyError reports an assembly context missing data the
// resource graph cannot be built without. Fatal for the call.
type ResourceConsistencyError struct {
	Missing string
}

func (e *ResourceConsistencyError) Error() string {
	return fmt.Sprintf("assembly context missing %s", e.Missing)
}
