package fhir

import (
	"fmt"
	"html"
)

// BuildNarrative renders the mandatory human-readable text for an AI-authored
// resource. The summary states what the resource represents; the disclaimer
// is the exact sentence already verified during draft validation and is
// repeated here verbatim because the narrative is what a downstream reader
// sees first. Both are XHTML-escaped.
func BuildNarrative(summary, disclaimer string) *Narrative {
	div := fmt.Sprintf(
		`<div xmlns="http://www.w3.org/1999/xhtml"><p>%s</p><p>%s</p></div>`,
		html.EscapeString(summary),
		html.EscapeString(disclaimer),
	)
	return &Narrative{Status: "generated", Div: div}
}

// PlainNarrative renders narrative text without a disclaimer, for resources
// whose content did not originate from the model (party shells).
func PlainNarrative(summary string) *Narrative {
	div := fmt.Sprintf(
		`<div xmlns="http://www.w3.org/1999/xhtml"><p>%s</p></div>`,
		html.EscapeString(summary),
	)
	return &Narrative{Status: "generated", Div: div}
}
