package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/randsley/MediScribe-sub004/internal/domain/draft"
)

// Kind identifies which assembler produced an exported bundle.
type Kind string

const (
	KindImaging Kind = "imaging"
	KindLab     Kind = "lab"
	KindSOAP    Kind = "soap"
)

// Valid reports whether k names a known draft kind.
func (k Kind) Valid() bool {
	switch k {
	case KindImaging, KindLab, KindSOAP:
		return true
	}
	return false
}

// Record is one persisted assembled bundle. Payload is the AES-GCM sealed
// JSON encoding of the bundle; plaintext never touches the store.
type Record struct {
	ID          uuid.UUID
	PatientID   string
	Kind        Kind
	ReviewState draft.ReviewState
	Payload     []byte
	CreatedAt   time.Time
}
