package fhirmodels

// Common FHIR value set constants used across the application.

// DiagnosticReportStatus values per FHIR R4.
const (
	DiagnosticReportPreliminary = "preliminary"
	DiagnosticReportFinal       = "final"
	DiagnosticReportAmended     = "amended"
	DiagnosticReportCancelled   = "cancelled"
)

// ObservationStatus values per FHIR R4.
const (
	ObservationPreliminary = "preliminary"
	ObservationFinal       = "final"
	ObservationAmended     = "amended"
	ObservationCancelled   = "cancelled"
)

// CompositionStatus values per FHIR R4.
const (
	CompositionPreliminary = "preliminary"
	CompositionFinal       = "final"
	CompositionAmended     = "amended"
)

// MediaStatus values (FHIR R4 event-status).
const (
	MediaInProgress = "in-progress"
	MediaCompleted  = "completed"
	MediaNotDone    = "not-done"
)

// ImagingStudyStatus values per FHIR R4.
const (
	ImagingStudyRegistered = "registered"
	ImagingStudyAvailable  = "available"
	ImagingStudyCancelled  = "cancelled"
)

// ClinicalImpressionStatus values per FHIR R4.
const (
	ClinicalImpressionInProgress = "in-progress"
	ClinicalImpressionCompleted  = "completed"
)

// MedicationStatementStatus values per FHIR R4.
const (
	MedicationStatementActive    = "active"
	MedicationStatementCompleted = "completed"
	MedicationStatementUnknown   = "unknown"
)

// ServiceRequestStatus values per FHIR R4.
const (
	ServiceRequestDraft     = "draft"
	ServiceRequestActive    = "active"
	ServiceRequestCompleted = "completed"
	ServiceRequestRevoked   = "revoked"
)

// ServiceRequestIntent values per FHIR R4.
const (
	ServiceRequestIntentOrder    = "order"
	ServiceRequestIntentProposal = "proposal"
)

// AllergyIntolerance clinical status codes.
const (
	AllergyActive   = "active"
	AllergyInactive = "inactive"
	AllergyResolved = "resolved"
)

// ObservationCategory codes.
const (
	ObsCategoryVitalSigns = "vital-signs"
	ObsCategoryLaboratory = "laboratory"
	ObsCategoryImaging    = "imaging"
	ObsCategoryExam       = "exam"
)

// DiagnosticReport service category codes per v2-0074.
const (
	ReportCategoryRadiology  = "RAD"
	ReportCategoryLaboratory = "LAB"
)

// Code system URIs.
const (
	SystemLOINC               = "http://loinc.org"
	SystemUCUM                = "http://unitsofmeasure.org"
	SystemDICOMModality       = "http://dicom.nema.org/resources/ontology/DCM"
	SystemObservationCategory = "http://terminology.hl7.org/CodeSystem/observation-category"
	SystemDiagnosticService   = "http://terminology.hl7.org/CodeSystem/v2-0074"
	SystemListEmptyReason     = "http://terminology.hl7.org/CodeSystem/list-empty-reason"
	SystemProvenanceAgentType = "http://terminology.hl7.org/CodeSystem/provenance-participant-type"
	SystemDataOperation       = "http://terminology.hl7.org/CodeSystem/v3-DataOperation"
	SystemAllergyClinical     = "http://terminology.hl7.org/CodeSystem/allergyintolerance-clinical"
	SystemProvenanceReason    = "https://mediscribe.example/fhir/CodeSystem/provenance-reason"
)

// LOINC document and section codes.
const (
	LoincSOAPNote          = "34109-9" // Note
	LoincImagingReport     = "18748-4" // Diagnostic imaging study
	LoincLaboratoryReport  = "11502-2" // Laboratory report
	LoincChiefComplaint    = "10154-3"
	LoincHistoryOfIllness  = "10164-2"
	LoincReviewOfSystems   = "10187-3"
	LoincVitalSigns        = "8716-3"
	LoincPhysicalExam      = "29545-1"
	LoincAssessment        = "51848-0"
	LoincPlanOfCare        = "18776-5"
	LoincProblemList       = "11450-4"
	LoincMedicationHistory = "10160-0"
	LoincAllergiesSection  = "48765-2"
)

// List empty-reason codes.
const (
	EmptyReasonUnavailable = "unavailable"
	EmptyReasonNilKnown    = "nilknown"
)

// Provenance agent type codes.
const (
	AgentAssembler = "assembler"
	AgentAuthor    = "author"
)

// Provenance activity codes (v3-DataOperation).
const ActivityCreate = "CREATE"

// ReasonAIGenerated marks provenance for model-authored content.
const ReasonAIGenerated = "ai-generated"

// AssemblerAgentDisplay is the fixed display name of the automated agent
// recorded on every provenance entry.
const AssemblerAgentDisplay = "MediScribe Generative Scribe"

// Profile URIs (standards-conformance tags stamped on assembled resources).
const (
	profileBase = "https://mediscribe.example/fhir/StructureDefinition/"

	ProfileDiagnosticReport    = profileBase + "mediscribe-diagnosticreport-1.0.0"
	ProfileImagingStudy        = profileBase + "mediscribe-imagingstudy-1.0.0"
	ProfileObservation         = profileBase + "mediscribe-observation-1.0.0"
	ProfileMedia               = profileBase + "mediscribe-media-1.0.0"
	ProfileComposition         = profileBase + "mediscribe-composition-1.0.0"
	ProfileClinicalImpression  = profileBase + "mediscribe-clinicalimpression-1.0.0"
	ProfileMedicationStatement = profileBase + "mediscribe-medicationstatement-1.0.0"
	ProfileAllergyIntolerance  = profileBase + "mediscribe-allergyintolerance-1.0.0"
	ProfileServiceRequest      = profileBase + "mediscribe-servicerequest-1.0.0"
	ProfileProvenance          = profileBase + "mediscribe-provenance-1.0.0"
)

// UCUMUnits maps unit spellings commonly produced by the model to UCUM codes.
// Lookups are done on the lowercased unit text. A unit missing here means the
// observation is emitted as an unstructured string rather than a quantity.
var UCUMUnits = map[string]string{
	"mg":          "mg",
	"g":           "g",
	"kg":          "kg",
	"lbs":         "[lb_av]",
	"cm":          "cm",
	"m":           "m",
	"mg/dl":       "mg/dL",
	"g/dl":        "g/dL",
	"mmol/l":      "mmol/L",
	"meq/l":       "meq/L",
	"u/l":         "U/L",
	"iu/l":        "[IU]/L",
	"ng/ml":       "ng/mL",
	"pg/ml":       "pg/mL",
	"%":           "%",
	"mmhg":        "mm[Hg]",
	"bpm":         "/min",
	"/min":        "/min",
	"breaths/min": "/min",
	"beats/min":   "/min",
	"c":           "Cel",
	"f":           "[degF]",
	"kg/m2":       "kg/m2",
	"x10^9/l":     "10*9/L",
	"x10^12/l":    "10*12/L",
	"fl":          "fL",
	"pg":          "pg",
}
