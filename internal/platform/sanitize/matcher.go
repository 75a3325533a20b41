package sanitize

import "strings"

// FindForbidden scans text against an ordered phrase list and returns the
// first phrase that matches, in list order. A phrase matches when its
// collapsed form is a non-empty substring of the text's collapsed form, or
// its spaced form is a substring of the text's spaced form. Detection is
// order-independent; list order only decides which hit is reported first.
func FindForbidden(text string, phrases []string) (string, bool) {
	nt := Normalize(text)
	for _, phrase := range phrases {
		np := Normalize(phrase)
		// An empty deny-list entry must never match vacuously.
		if np.Collapsed == "" {
			continue
		}
		if strings.Contains(nt.Collapsed, np.Collapsed) {
			return phrase, true
		}
		if np.Spaced != "" && strings.Contains(nt.Spaced, np.Spaced) {
			return phrase, true
		}
	}
	return "", false
}
