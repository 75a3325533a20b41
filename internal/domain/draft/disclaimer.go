package draft

// Canonical limitations statements. The draft's limitations field must equal
// the sentence for its language byte for byte; downstream consumers audit for
// the exact text. Each sentence deliberately contains a word that sits on the
// matching deny list, which is why the field is excluded from phrase scanning.

var disclaimers = map[string]string{
	"en": "This draft was produced by an AI documentation assistant; it is not a diagnosis and must be reviewed, corrected and approved by a licensed clinician before any use.",
	"es": "Este borrador fue producido por un asistente de documentación de IA; no es un diagnóstico y debe ser revisado, corregido y aprobado por un profesional clínico autorizado antes de cualquier uso.",
	"fr": "Ce brouillon a été produit par un assistant de documentation IA ; il ne constitue pas un diagnostic et doit être relu, corrigé et approuvé par un clinicien agréé avant toute utilisation.",
	"de": "Dieser Entwurf wurde von einem KI-Dokumentationsassistenten erstellt; er ist keine Diagnose und muss vor jeder Verwendung von einer approbierten Klinikerin oder einem approbierten Kliniker geprüft, korrigiert und freigegeben werden.",
}

// Disclaimer returns the canonical limitations sentence for the language.
// Unknown codes fall back to English, mirroring the deny-list selection.
func Disclaimer(lang string) string {
	if d, ok := disclaimers[lang]; ok {
		return d
	}
	return disclaimers["en"]
}
