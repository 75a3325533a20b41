package soap

import "time"

// Envelope and fixed-section key sets. Free-form maps (vital_signs) are
// unconstrained; their keys name scanned content.
var (
	allowedKeys    = []string{"subjective", "objective", "assessment", "plan", "medications", "allergies", "limitations"}
	subjectiveKeys = []string{"chief_complaint", "history_of_present_illness", "review_of_systems"}
	objectiveKeys  = []string{"vital_signs", "vitals_recorded_at", "examination"}
	assessmentKeys = []string{"clinical_impression", "noted_observations"}
	planKeys       = []string{"follow_up", "patient_instructions"}
)

type noteDraft struct {
	Subjective  subjectiveSection `json:"subjective"`
	Objective   objectiveSection  `json:"objective"`
	Assessment  assessmentSection `json:"assessment"`
	Plan        planSection       `json:"plan"`
	Medications []string          `json:"medications"`
	Allergies   []string          `json:"allergies"`
	Limitations string            `json:"limitations"`
}

type subjectiveSection struct {
	ChiefComplaint          string   `json:"chief_complaint"`
	HistoryOfPresentIllness string   `json:"history_of_present_illness"`
	ReviewOfSystems         []string `json:"review_of_systems"`
}

type objectiveSection struct {
	VitalSigns       map[string]string `json:"vital_signs"`
	VitalsRecordedAt string            `json:"vitals_recorded_at"`
	Examination      []string          `json:"examination"`
}

type assessmentSection struct {
	ClinicalImpression string   `json:"clinical_impression"`
	NotedObservations  []string `json:"noted_observations"`
}

type planSection struct {
	FollowUp            string `json:"follow_up"`
	PatientInstructions string `json:"patient_instructions"`
}

// ValidatedNote is a SOAP note draft that has passed every validation gate.
// Only Validate produces one; treated as immutable.
type ValidatedNote struct {
	ChiefComplaint          string
	HistoryOfPresentIllness string
	ReviewOfSystems         []string

	VitalSigns       map[string]string
	VitalsRecordedAt time.Time
	Examination      []string

	ClinicalImpression string
	NotedObservations  []string

	FollowUp            string
	PatientInstructions string

	Medications []string
	Allergies   []string

	Limitations string
	Language    string
}
