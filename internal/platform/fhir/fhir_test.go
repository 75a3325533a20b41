package fhir

import (
	"strings"
	"testing"
	"time"
)

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		raw   string
		value float64
		code  string
		ok    bool
	}{
		{"13.5 g/dL", 13.5, "g/dL", true},
		{"72 bpm", 72, "/min", true},
		{"98.6 F", 98.6, "[degF]", true},
		{"120/80 mmHg", 0, "", false}, // ratio, not cleanly numeric
		{"elevated", 0, "", false},
		{"5 widgets", 0, "", false}, // unrecognized unit
		{"", 0, "", false},
		{"12", 0, "", false}, // no unit
	}
	for _, tt := range tests {
		q, ok := ParseQuantity(tt.raw)
		if ok != tt.ok {
			t.Errorf("ParseQuantity(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if q.Value != tt.value || q.Code != tt.code {
			t.Errorf("ParseQuantity(%q) = %v %q, want %v %q", tt.raw, q.Value, q.Code, tt.value, tt.code)
		}
	}
}

func TestBuildNarrativeEmbedsDisclaimer(t *testing.T) {
	disclaimer := "This draft is not a diagnosis."
	n := BuildNarrative("Imaging findings draft", disclaimer)
	if n.Status != "generated" {
		t.Errorf("status = %q", n.Status)
	}
	if !strings.Contains(n.Div, "This draft is not a diagnosis.") {
		t.Error("narrative does not embed the disclaimer verbatim")
	}
	if !strings.Contains(n.Div, `xmlns="http://www.w3.org/1999/xhtml"`) {
		t.Error("narrative div missing xhtml namespace")
	}
}

func TestBuildNarrativeEscapesMarkup(t *testing.T) {
	n := BuildNarrative(`<script>alert("x")</script>`, "safe & sound")
	if strings.Contains(n.Div, "<script>") {
		t.Error("narrative did not escape markup in the summary")
	}
	if !strings.Contains(n.Div, "safe &amp; sound") {
		t.Error("narrative did not escape the disclaimer")
	}
}

func TestNewAIProvenanceAgents(t *testing.T) {
	p := NewAIProvenance("DiagnosticReport", "r1", "prac-1", "medgemma-4b", time.Now())
	if len(p.Agent) != 2 {
		t.Fatalf("agent count = %d, want 2", len(p.Agent))
	}
	if !strings.Contains(p.Agent[0].Who.Display, "medgemma-4b") {
		t.Error("assembler agent does not carry the model identity")
	}
	if p.Agent[1].Who.Reference != "Practitioner/prac-1" {
		t.Errorf("author agent who = %q", p.Agent[1].Who.Reference)
	}
	if p.Target[0].Reference != "DiagnosticReport/r1" {
		t.Errorf("target = %q", p.Target[0].Reference)
	}
	if p.Reason[0].Coding[0].Code != "ai-generated" {
		t.Errorf("reason = %q", p.Reason[0].Coding[0].Code)
	}
}

func TestBundleAddAndLookup(t *testing.T) {
	b := NewCollectionBundle(time.Now())
	obs := &Observation{ResourceType: "Observation", ID: NewResourceID(), Status: "preliminary"}
	b.Add("Observation", obs.ID, obs)
	b.Add("Patient", "p1", PatientShell("p1", "Test Patient"))

	if got := len(b.ResourcesOfType("Observation")); got != 1 {
		t.Fatalf("observations = %d, want 1", got)
	}
	if got := len(b.ResourcesOfType("Provenance")); got != 0 {
		t.Fatalf("provenance = %d, want 0", got)
	}
	if b.Entry[0].FullURL != "urn:mediscribe:Observation/"+obs.ID {
		t.Errorf("fullUrl = %q", b.Entry[0].FullURL)
	}
}

func TestNewResourceIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewResourceID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
