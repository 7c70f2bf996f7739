// Package textnorm folds accented text to its ASCII base form. The contract
// is a pure function: string in, diacritic-free string out, never an error.
package textnorm

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripper decomposes to NFD, drops combining marks, recomposes.
var stripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes diacritics: "café" becomes "cafe", "Müller"
// becomes "Muller". On a transform failure the input is returned unchanged.
func StripAccents(s string) string {
	out, _, err := transform.String(stripper, s)
	if err != nil {
		return s
	}
	return out
}

// StripAccentsMap returns a copy of a canonical field map with accents
// stripped from every value.
func StripAccentsMap(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		out[k] = StripAccents(v)
	}
	return out
}
