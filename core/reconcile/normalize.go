package reconcile

import (
	"strings"
	"unicode"

	"surf-atlas/core/utils"
)

// NormalizeName maps a raw break name to its comparison key: letters and
// digits only, lowercased. Punctuation and whitespace carry no signal in
// scraped names, so "St. Clair's Bay" and "ST CLAIRS BAY" normalize to the
// same key. Non-string input is stringified first; the function is total
// and idempotent.
func NormalizeName(raw any) string {
	s := utils.ToString(raw)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
