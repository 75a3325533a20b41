package fhir

import (
	"time"

	"github.com/randsley/MediScribe-sub004/pkg/fhirmodels"
)

// NewAIProvenance builds the single attribution record for an assembled
// document or finding. It names exactly two agents: the fixed automated
// assembler (display name plus model identity) and the human author behind
// the supplied practitioner reference, with the content reason-coded as
// AI-generated. Callers must not create this record for blocked content;
// there is nothing safe to attribute.
func NewAIProvenance(targetType, targetID, practitionerID, modelName string, recorded time.Time) *Provenance {
	return &Provenance{
		ResourceType: "Provenance",
		ID:           NewResourceID(),
		Meta:         NewMeta(fhirmodels.ProfileProvenance, recorded),
		Target:       []Reference{Ref(targetType, targetID)},
		Recorded:     recorded.UTC().Format(time.RFC3339),
		Activity: &CodeableConcept{
			Coding: []Coding{{
				System:  fhirmodels.SystemDataOperation,
				Code:    fhirmodels.ActivityCreate,
				Display: "create",
			}},
		},
		Agent: []ProvenanceAgent{
			{
				Type: &CodeableConcept{
					Coding: []Coding{{
						System:  fhirmodels.SystemProvenanceAgentType,
						Code:    fhirmodels.AgentAssembler,
						Display: fhirmodels.AgentAssembler,
					}},
				},
				Who: Reference{Display: fhirmodels.AssemblerAgentDisplay + " (" + modelName + ")"},
			},
			{
				Type: &CodeableConcept{
					Coding: []Coding{{
						System:  fhirmodels.SystemProvenanceAgentType,
						Code:    fhirmodels.AgentAuthor,
						Display: fhirmodels.AgentAuthor,
					}},
				},
				Who: Ref("Practitioner", practitionerID),
			},
		},
		Reason: []CodeableConcept{{
			Coding: []Coding{{
				System:  fhirmodels.SystemProvenanceReason,
				Code:    fhirmodels.ReasonAIGenerated,
				Display: "AI-generated content pending clinician review",
			}},
		}},
	}
}
