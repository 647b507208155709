// Package tags canonicalizes problem tag names.
package tags

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)
	repeatedDashes  = regexp.MustCompile(`-{2,}`)
)

// Normalizer implements core.TagNormalizer.
type Normalizer struct{}

// NewNormalizer returns the default tag normalizer.
func NewNormalizer() Normalizer {
	return Normalizer{}
}

// NormalizeTag implements core.TagNormalizer.
func (Normalizer) NormalizeTag(raw string) string {
	return Normalize(raw)
}

// Normalize transliterates name to ASCII, lower-cases it, replaces every character
// outside [a-z0-9] with a dash and collapses runs of dashes. "Dynamic Programming"
// becomes "dynamic-programming" and "Árboles" becomes "arboles".
// Normalize(Normalize(s)) == Normalize(s) for every s.
func Normalize(name string) string {
	name = strings.TrimSpace(name)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if ascii, _, err := transform.String(t, name); err == nil {
		name = ascii
	}

	name = nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-")
	return repeatedDashes.ReplaceAllString(name, "-")
}
