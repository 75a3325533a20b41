package sanitize

// Deny lists of diagnostic, probabilistic, and prescriptive phrases the
// generative model must never produce. Matching goes through Normalize, so
// entries are written in plain lowercase; diacritics and punctuation in the
// scanned text are folded away before comparison. Lists are read-only after
// initialization.

// SupportedLanguages are the language codes with a dedicated deny list.
var SupportedLanguages = []string{"en", "es", "fr", "de"}

var denyListEN = []string{
	"diagnosis",
	"diagnosed",
	"diagnostic impression",
	"pneumonia",
	"cancer",
	"carcinoma",
	"malignant",
	"tumor",
	"fracture",
	"consistent with",
	"suggestive of",
	"suspicious for",
	"likely represents",
	"probable",
	"probably",
	"rule out",
	"pathognomonic",
	"prescribe",
	"prescription",
	"start treatment",
	"recommend therapy",
	"increase the dose",
	"no evidence of disease",
}

var denyListES = []string{
	"diagnostico",
	"diagnosticado",
	"neumonia",
	"cancer",
	"carcinoma",
	"maligno",
	"tumor",
	"fractura",
	"compatible con",
	"sugestivo de",
	"sospechoso de",
	"probable",
	"probablemente",
	"descartar",
	"recetar",
	"prescripcion",
	"iniciar tratamiento",
	"aumentar la dosis",
}

var denyListFR = []string{
	"diagnostic",
	"diagnostique",
	"pneumonie",
	"cancer",
	"carcinome",
	"malin",
	"maligne",
	"tumeur",
	"fracture",
	"compatible avec",
	"evocateur de",
	"suspect de",
	"probable",
	"probablement",
	"eliminer",
	"prescrire",
	"ordonnance",
	"debuter le traitement",
	"augmenter la dose",
}

var denyListDE = []string{
	"diagnose",
	"diagnostiziert",
	"lungenentzundung",
	"krebs",
	"karzinom",
	"bosartig",
	"tumor",
	"fraktur",
	"vereinbar mit",
	"verdacht auf",
	"hinweis auf",
	"wahrscheinlich",
	"ausschliessen",
	"verschreiben",
	"rezept",
	"therapie beginnen",
	"dosis erhohen",
}

var denyLists = map[string][]string{
	"en": denyListEN,
	"es": denyListES,
	"fr": denyListFR,
	"de": denyListDE,
}

// DenyList returns the forbidden-phrase list for the given language code.
// Unknown codes fall back to English rather than skipping the scan.
func DenyList(lang string) []string {
	if list, ok := denyLists[lang]; ok {
		return list
	}
	return denyListEN
}
