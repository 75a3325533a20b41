package fhir

// Typed FHIR R4 resources assembled into the document graph. Only the
// elements this application emits are modeled; cross-references between
// resources are plain "Type/id" strings resolved within the bundle.

type Patient struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id"`
	Meta         *Meta        `json:"meta,omitempty"`
	Text         *Narrative   `json:"text,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Active       bool         `json:"active"`
	Name         []HumanName  `json:"name,omitempty"`
}

type Practitioner struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id"`
	Meta         *Meta        `json:"meta,omitempty"`
	Text         *Narrative   `json:"text,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Active       bool         `json:"active"`
	Name         []HumanName  `json:"name,omitempty"`
}

type Organization struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id"`
	Meta         *Meta        `json:"meta,omitempty"`
	Text         *Narrative   `json:"text,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Active       bool         `json:"active"`
	Name         string       `json:"name,omitempty"`
}

type HumanName struct {
	Use  string `json:"use,omitempty"`
	Text string `json:"text,omitempty"`
}

type Observation struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id"`
	Meta              *Meta             `json:"meta,omitempty"`
	Text              *Narrative        `json:"text,omitempty"`
	Status            string            `json:"status"`
	Category          []CodeableConcept `json:"category,omitempty"`
	Code              CodeableConcept   `json:"code"`
	Subject           *Reference        `json:"subject,omitempty"`
	Performer         []Reference       `json:"performer,omitempty"`
	EffectiveDateTime string            `json:"effectiveDateTime,omitempty"`
	Issued            string            `json:"issued,omitempty"`
	ValueQuantity     *Quantity         `json:"valueQuantity,omitempty"`
	ValueString       string            `json:"valueString,omitempty"`
	BodySite          *CodeableConcept  `json:"bodySite,omitempty"`
	Note              []Annotation      `json:"note,omitempty"`
}

type DiagnosticReport struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id"`
	Meta              *Meta             `json:"meta,omitempty"`
	Text              *Narrative        `json:"text,omitempty"`
	BasedOn           []Reference       `json:"basedOn,omitempty"`
	Status            string            `json:"status"`
	Category          []CodeableConcept `json:"category,omitempty"`
	Code              CodeableConcept   `json:"code"`
	Subject           *Reference        `json:"subject,omitempty"`
	EffectiveDateTime string            `json:"effectiveDateTime,omitempty"`
	Issued            string            `json:"issued,omitempty"`
	Performer         []Reference       `json:"performer,omitempty"`
	Result            []Reference       `json:"result,omitempty"`
	ImagingStudy      []Reference       `json:"imagingStudy,omitempty"`
	Media             []DiagnosticMedia `json:"media,omitempty"`
	Conclusion        string            `json:"conclusion,omitempty"`
}

type DiagnosticMedia struct {
	Comment string    `json:"comment,omitempty"`
	Link    Reference `json:"link"`
}

type ImagingStudy struct {
	ResourceType      string       `json:"resourceType"`
	ID                string       `json:"id"`
	Meta              *Meta        `json:"meta,omitempty"`
	Text              *Narrative   `json:"text,omitempty"`
	Status            string       `json:"status"`
	Modality          []Coding     `json:"modality,omitempty"`
	Subject           *Reference   `json:"subject,omitempty"`
	Started           string       `json:"started,omitempty"`
	Referrer          *Reference   `json:"referrer,omitempty"`
	NumberOfSeries    int          `json:"numberOfSeries,omitempty"`
	NumberOfInstances int          `json:"numberOfInstances,omitempty"`
	Description       string       `json:"description,omitempty"`
	Note              []Annotation `json:"note,omitempty"`
}

type Media struct {
	ResourceType    string           `json:"resourceType"`
	ID              string           `json:"id"`
	Meta            *Meta            `json:"meta,omitempty"`
	Text            *Narrative       `json:"text,omitempty"`
	Status          string           `json:"status"`
	Type            *CodeableConcept `json:"type,omitempty"`
	Subject         *Reference       `json:"subject,omitempty"`
	CreatedDateTime string           `json:"createdDateTime,omitempty"`
	Operator        *Reference       `json:"operator,omitempty"`
	Content         Attachment       `json:"content"`
}

type MedicationStatement struct {
	ResourceType              string          `json:"resourceType"`
	ID                        string          `json:"id"`
	Meta                      *Meta           `json:"meta,omitempty"`
	Text                      *Narrative      `json:"text,omitempty"`
	Status                    string          `json:"status"`
	MedicationCodeableConcept CodeableConcept `json:"medicationCodeableConcept"`
	Subject                   *Reference      `json:"subject,omitempty"`
	DateAsserted              string          `json:"dateAsserted,omitempty"`
	InformationSource         *Reference      `json:"informationSource,omitempty"`
	Note                      []Annotation    `json:"note,omitempty"`
}

type AllergyIntolerance struct {
	ResourceType   string           `json:"resourceType"`
	ID             string           `json:"id"`
	Meta           *Meta            `json:"meta,omitempty"`
	Text           *Narrative       `json:"text,omitempty"`
	ClinicalStatus *CodeableConcept `json:"clinicalStatus,omitempty"`
	Code           CodeableConcept  `json:"code"`
	Patient        *Reference       `json:"patient,omitempty"`
	RecordedDate   string           `json:"recordedDate,omitempty"`
	Recorder       *Reference       `json:"recorder,omitempty"`
	Note           []Annotation     `json:"note,omitempty"`
}

type ClinicalImpression struct {
	ResourceType      string       `json:"resourceType"`
	ID                string       `json:"id"`
	Meta              *Meta        `json:"meta,omitempty"`
	Text              *Narrative   `json:"text,omitempty"`
	Status            string       `json:"status"`
	Subject           *Reference   `json:"subject,omitempty"`
	EffectiveDateTime string       `json:"effectiveDateTime,omitempty"`
	Date              string       `json:"date,omitempty"`
	Assessor          *Reference   `json:"assessor,omitempty"`
	Summary           string       `json:"summary,omitempty"`
	Note              []Annotation `json:"note,omitempty"`
}

type ServiceRequest struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id"`
	Meta         *Meta             `json:"meta,omitempty"`
	Text         *Narrative        `json:"text,omitempty"`
	Status       string            `json:"status"`
	Intent       string            `json:"intent"`
	Category     []CodeableConcept `json:"category,omitempty"`
	Code         CodeableConcept   `json:"code"`
	Subject      *Reference        `json:"subject,omitempty"`
	Requester    *Reference        `json:"requester,omitempty"`
	AuthoredOn   string            `json:"authoredOn,omitempty"`
	Note         []Annotation      `json:"note,omitempty"`
}

type Composition struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id"`
	Meta         *Meta                `json:"meta,omitempty"`
	Text         *Narrative           `json:"text,omitempty"`
	Status       string               `json:"status"`
	Type         CodeableConcept      `json:"type"`
	Subject      *Reference           `json:"subject,omitempty"`
	Date         string               `json:"date,omitempty"`
	Author       []Reference          `json:"author,omitempty"`
	Title        string               `json:"title,omitempty"`
	Custodian    *Reference           `json:"custodian,omitempty"`
	Section      []CompositionSection `json:"section,omitempty"`
}

type CompositionSection struct {
	Title       string           `json:"title,omitempty"`
	Code        *CodeableConcept `json:"code,omitempty"`
	Text        *Narrative       `json:"text,omitempty"`
	Entry       []Reference      `json:"entry,omitempty"`
	EmptyReason *CodeableConcept `json:"emptyReason,omitempty"`
}

type Provenance struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id"`
	Meta         *Meta             `json:"meta,omitempty"`
	Target       []Reference       `json:"target"`
	Recorded     string            `json:"recorded"`
	Activity     *CodeableConcept  `json:"activity,omitempty"`
	Agent        []ProvenanceAgent `json:"agent"`
	Reason       []CodeableConcept `json:"reason,omitempty"`
}

type ProvenanceAgent struct {
	Type *CodeableConcept `json:"type,omitempty"`
	Who  Reference        `json:"who"`
}
