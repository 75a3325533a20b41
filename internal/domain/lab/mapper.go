package lab

import (
	"fmt"
	"sort"
	"time"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
	"github.com/randsley/MediScribe-sub004/internal/platform/fhir"
	"github.com/randsley/MediScribe-sub004/pkg/fhirmodels"
)

// Assemble maps a validated lab extraction plus caller context into the FHIR
// resource graph: the ServiceRequest the report fulfills, one Observation per
// extracted result, the DiagnosticReport wiring them together, and a single
// Provenance record. Values parse into UCUM quantities when they are cleanly
// numeric with a recognized unit, otherwise they are carried as strings.
func Assemble(v *ValidatedResults, ctx draft.AssemblyContext) (*fhir.Bundle, error) {
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	reportStatus := fhirmodels.DiagnosticReportPreliminary
	obsStatus := fhirmodels.ObservationPreliminary
	orderStatus := fhirmodels.ServiceRequestActive
	if ctx.ReviewState.Final() {
		reportStatus = fhirmodels.DiagnosticReportFinal
		obsStatus = fhirmodels.ObservationFinal
		orderStatus = fhirmodels.ServiceRequestCompleted
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
	requester := fhir.Ref("Practitioner", ctx.PractitionerID)

	order := &fhir.ServiceRequest{
		ResourceType: "ServiceRequest",
		ID:           fhir.NewResourceID(),
		Meta:         fhir.NewMeta(fhirmodels.ProfileServiceRequest, at),
		Status:       orderStatus,
		Intent:       fhirmodels.ServiceRequestIntentOrder,
		Category: []fhir.CodeableConcept{{
			Coding: []fhir.Coding{{
				System: fhirmodels.SystemObservationCategory,
				Code:   fhirmodels.ObsCategoryLaboratory,
			}},
		}},
		Code:       fhir.CodeableConcept{Text: v.PanelName},
		Subject:    &subject,
		Requester:  &requester,
		AuthoredOn: stamp,
	}
	if v.SpecimenType != "" {
		order.Note = []fhir.Annotation{{Text: "Specimen: " + v.SpecimenType, Time: stamp}}
	}
	order.Text = fhir.BuildNarrative("Laboratory order backing a draft report ("+v.PanelName+").", v.Limitations)
	bundle.Add("ServiceRequest", order.ID, order)

	names := make([]string, 0, len(v.Results))
	for name := range v.Results {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []fhir.Reference
	for _, name := range names {
		obs := &fhir.Observation{
			ResourceType: "Observation",
			ID:           fhir.NewResourceID(),
			Meta:         fhir.NewMeta(fhirmodels.ProfileObservation, at),
			Status:       obsStatus,
			Category: []fhir.CodeableConcept{{
				Coding: []fhir.Coding{{
					System: fhirmodels.SystemObservationCategory,
					Code:   fhirmodels.ObsCategoryLaboratory,
				}},
			}},
			Code:              fhir.CodeableConcept{Text: name},
			Subject:           &subject,
			Performer:         []fhir.Reference{requester},
			EffectiveDateTime: stamp,
		}
		raw := v.Results[name]
		if q, ok := fhir.ParseQuantity(raw); ok {
			obs.ValueQuantity = q
		} else {
			obs.ValueString = raw
		}
		obs.Text = fhir.BuildNarrative("Draft laboratory value: "+name+" = "+raw+".", v.Limitations)
		bundle.Add("Observation", obs.ID, obs)
		results = append(results, fhir.Ref("Observation", obs.ID))
	}

	report := &fhir.DiagnosticReport{
		ResourceType: "DiagnosticReport",
		ID:           fhir.NewResourceID(),
		Meta:         fhir.NewMeta(fhirmodels.ProfileDiagnosticReport, at),
		BasedOn:      []fhir.Reference{fhir.Ref("ServiceRequest", order.ID)},
		Status:       reportStatus,
		Category: []fhir.CodeableConcept{{
			Coding: []fhir.Coding{{
				System:  fhirmodels.SystemDiagnosticService,
				Code:    fhirmodels.ReportCategoryLaboratory,
				Display: "Laboratory",
			}},
		}},
		Code: fhir.CodeableConcept{
			Coding: []fhir.Coding{{
				System:  fhirmodels.SystemLOINC,
				Code:    fhirmodels.LoincLaboratoryReport,
				Display: "Laboratory report",
			}},
			Text: v.PanelName,
		},
		Subject:           &subject,
		EffectiveDateTime: stamp,
		Issued:            stamp,
		Performer:         []fhir.Reference{requester},
		Result:            results,
	}
	report.Text = fhir.BuildNarrative("Draft laboratory report ("+v.PanelName+") with "+countResults(len(results))+".", v.Limitations)
	bundle.Add("DiagnosticReport", report.ID, report)

	prov := fhir.NewAIProvenance("DiagnosticReport", report.ID, ctx.PractitionerID, ctx.ModelName, at)
	bundle.Add("Provenance", prov.ID, prov)

	return bundle, nil
}

func countResults(n int) string {
	if n == 1 {
		return "1 extracted value"
	}
	return fmt.Sprintf("%d extracted values", n)
}
