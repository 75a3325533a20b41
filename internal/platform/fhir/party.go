package fhir

// Party shells carry the already-minted Patient/Practitioner/Organization
// identifiers supplied in the assembly context into the bundle, so that every
// same-document reference resolves without leaving the graph. Their content
// is not model-authored; narratives carry no disclaimer.

func PatientShell(id, display string) *Patient {
	p := &Patient{
		ResourceType: "Patient",
		ID:           id,
		Active:       true,
		Text:         PlainNarrative("Patient record " + id),
	}
	if display != "" {
		p.Name = []HumanName{{Use: "usual", Text: display}}
	}
	return p
}

func PractitionerShell(id, display string) *Practitioner {
	p := &Practitioner{
		ResourceType: "Practitioner",
		ID:           id,
		Active:       true,
		Text:         PlainNarrative("Practitioner record " + id),
	}
	if display != "" {
		p.Name = []HumanName{{Use: "usual", Text: display}}
	}
	return p
}

func OrganizationShell(id, name string) *Organization {
	return &Organization{
		ResourceType: "Organization",
		ID:           id,
		Active:       true,
		Name:         name,
		Text:         PlainNarrative("Organization record " + id),
	}
}
