package imaging

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
	"github.com/randsley/MediScribe-sub004/internal/platform/fhir"
	"github.com/randsley/MediScribe-sub004/internal/platform/sanitize"
	"github.com/randsley/MediScribe-sub004/pkg/fhirmodels"
)

// modalityCodes maps image-type wording to DICOM modality codes. Matching is
// against normalized tokens so "Chest X-Ray (PA view)" still resolves.
var modalityCodes = []struct {
	keyword string // normalized, token-spaced
	code    string
	display string
}{
	{"x ray", "DX", "Digital Radiography"},
	{"radiograph", "DX", "Digital Radiography"},
	{"ct", "CT", "Computed Tomography"},
	{"mri", "MR", "Magnetic Resonance"},
	{"ultrasound", "US", "Ultrasound"},
	{"mammogram", "MG", "Mammography"},
	{"mammography", "MG", "Mammography"},
}

func modalityFor(imageType string) (fhir.Coding, bool) {
	spaced := " " + sanitize.Normalize(imageType).Spaced + " "
	for _, m := range modalityCodes {
		if strings.Contains(spaced, " "+m.keyword+" ") {
			return fhir.Coding{
				System:  fhirmodels.SystemDICOMModality,
				Code:    m.code,
				Display: m.display,
			}, true
		}
	}
	return fhir.Coding{}, false
}

// Assemble maps a validated imaging draft plus caller context into the FHIR
// resource graph: party shells, one Observation per anatomical region, an
// ImagingStudy, a conditional Media attachment, the DiagnosticReport wiring
// them together, and a single Provenance record. Pure; identifiers are
// freshly minted on every call and never reused.
func Assemble(v *ValidatedFindings, ctx draft.AssemblyContext) (*fhir.Bundle, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	reportStatus := fhirmodels.DiagnosticReportPreliminary
	obsStatus := fhirmodels.ObservationPreliminary
	mediaStatus := fhirmodels.MediaInProgress
	if ctx.ReviewState.Final() {
		reportStatus = fhirmodels.DiagnosticReportFinal
		obsStatus = fhirmodels.ObservationFinal
		mediaStatus = fhirmodels.MediaCompleted
	}

	at := ctx.Authored.UTC()
	stamp := at.Format(time.RFC3339)
	bundle := fhir.NewCollectionBundle(at)

	bundle.Add("Patient", ctx.PatientID, fhir.PatientShell(ctx.PatientID, ctx.PatientDisplay))
	bundle.Add("Practitioner", ctx.PractitionerID, fhir.PractitionerShell(ctx.PractitionerID, ctx.PractitionerDisplay))
	if ctx.OrganizationID != "" {
		bundle.Add("Organization", ctx.OrganizationID, fhir.OrganizationShell(ctx.OrganizationID, ctx.OrganizationName))
	}

	subject := fhir.Ref("Patient", ctx.PatientID)
	performer := fhir.Ref("Practitioner", ctx.PractitionerID)

	var results []fhir.Reference

	regions := make([]string, 0, len(v.AnatomicalObservations))
	for region := range v.AnatomicalObservations {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		obs := &fhir.Observation{
			ResourceType:      "Observation",
			ID:                fhir.NewResourceID(),
			Meta:              fhir.NewMeta(fhirmodels.ProfileObservation, at),
			Status:            obsStatus,
			Category:          []fhir.CodeableConcept{categoryConcept(fhirmodels.ObsCategoryImaging)},
			Code:              fhir.CodeableConcept{Text: "Imaging observation: " + region},
			Subject:           &subject,
			Performer:         []fhir.Reference{performer},
			EffectiveDateTime: stamp,
			ValueString:       strings.Join(v.AnatomicalObservations[region], "; "),
			BodySite:          &fhir.CodeableConcept{Text: region},
		}
		obs.Text = fhir.BuildNarrative("Draft imaging observation for region "+region+".", v.Limitations)
		bundle.Add("Observation", obs.ID, obs)
		results = append(results, fhir.Ref("Observation", obs.ID))
	}

	if v.ImageQuality != "" {
		obs := textObservation("Image quality", v.ImageQuality, obsStatus, subject, performer, stamp, at, v.Limitations)
		bundle.Add("Observation", obs.ID, obs)
		results = append(results, fhir.Ref("Observation", obs.ID))
	}
	if v.ComparisonWithPrior != "" {
		obs := textObservation("Comparison with prior imaging", v.ComparisonWithPrior, obsStatus, subject, performer, stamp, at, v.Limitations)
		bundle.Add("Observation", obs.ID, obs)
		results = append(results, fhir.Ref("Observation", obs.ID))
	}

	study := &fhir.ImagingStudy{
		ResourceType: "ImagingStudy",
		ID:           fhir.NewResourceID(),
		Meta:         fhir.NewMeta(fhirmodels.ProfileImagingStudy, at),
		Status:       fhirmodels.ImagingStudyAvailable,
		Subject:      &subject,
		Started:      stamp,
		Referrer:     &performer,
		Description:  v.ImageType,
	}
	if coding, ok := modalityFor(v.ImageType); ok {
		study.Modality = []fhir.Coding{coding}
	}
	study.Text = fhir.BuildNarrative("Imaging study for a draft report ("+v.ImageType+").", v.Limitations)
	bundle.Add("ImagingStudy", study.ID, study)

	report := &fhir.DiagnosticReport{
		ResourceType: "DiagnosticReport",
		ID:           fhir.NewResourceID(),
		Meta:         fhir.NewMeta(fhirmodels.ProfileDiagnosticReport, at),
		Status:       reportStatus,
		Category: []fhir.CodeableConcept{{
			Coding: []fhir.Coding{{
				System:  fhirmodels.SystemDiagnosticService,
				Code:    fhirmodels.ReportCategoryRadiology,
				Display: "Radiology",
			}},
		}},
		Code: fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System:  fhirmodels.SystemLOINC,
				Code:    fhirmodels.LoincImagingReport,
				Display: "Diagnostic imaging study",
			}},
			Text: v.ImageType,
		},
		Subject:           &subject,
		EffectiveDateTime: stamp,
		Issued:            stamp,
		Performer:         []fhir.Reference{performer},
		Result:            results,
		ImagingStudy:      []fhir.Reference{fhir.Ref("ImagingStudy", study.ID)},
	}

	// The image attachment is optional; its absence never blocks assembly.
	if len(ctx.ImageData) > 0 {
		media := &fhir.Media{
			ResourceType:    "Media",
			ID:              fhir.NewResourceID(),
			Meta:            fhir.NewMeta(fhirmodels.ProfileMedia, at),
			Status:          mediaStatus,
			Type:            &fhir.CodeableConcept{Coding: []fhir.Coding{{Code: "image"}}},
			Subject:         &subject,
			CreatedDateTime: stamp,
			Operator:        &performer,
			Content: fhir.Attachment{
				ContentType: ctx.ImageContentType,
				Data:        base64.StdEncoding.EncodeToString(ctx.ImageData),
				Title:       v.ImageType,
				Creation:    stamp,
			},
		}
		media.Text = fhir.BuildNarrative("Source image for a draft imaging report.", v.Limitations)
		bundle.Add("Media", media.ID, media)
		report.Media = []fhir.DiagnosticMedia{{Comment: v.AreasHighlighted, Link: fhir.Ref("Media", media.ID)}}
	}

	report.Text = fhir.BuildNarrative("Draft imaging report ("+v.ImageType+") covering "+regionSummary(regions)+".", v.Limitations)
	bundle.Add("DiagnosticReport", report.ID, report)

	prov := fhir.NewAIProvenance("DiagnosticReport", report.ID, ctx.PractitionerID, ctx.ModelName, at)
	bundle.Add("Provenance", prov.ID, prov)

	return bundle, nil
}

func textObservation(name, value, status string, subject, performer fhir.Reference, stamp string, at time.Time, disclaimer string) *fhir.Observation {
	obs := &fhir.Observation{
		ResourceType:      "Observation",
		ID:                fhir.NewResourceID(),
		Meta:              fhir.NewMeta(fhirmodels.ProfileObservation, at),
		Status:            status,
		Category:          []fhir.CodeableConcept{categoryConcept(fhirmodels.ObsCategoryImaging)},
		Code:              fhir.CodeableConcept{Text: name},
		Subject:           &subject,
		Performer:         []fhir.Reference{performer},
		EffectiveDateTime: stamp,
		ValueString:       value,
	}
	obs.Text = fhir.BuildNarrative("Draft imaging observation: "+name+".", disclaimer)
	return obs
}

func categoryConcept(code string) fhir.CodeableConcept {
	return fhir.CodeableConcept{
		Coding: []fhir.Coding{{System: fhirmodels.SystemObservationCategory, Code: code}},
	}
}

func regionSummary(regions []string) string {
	if len(regions) == 1 {
		return "1 anatomical region"
	}
	return fmt.Sprintf("%d anatomical regions", len(regions))
}
