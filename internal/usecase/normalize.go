package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes text for comparison: lowercase, accent stripping
// (NFD decomposition, drop combining marks, recompose), surrounding
// whitespace trimmed. Total and idempotent. The transform chain carries
// internal buffers mutated during Transform, so it is built per call rather
// than shared.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, lowered)
	if err != nil {
		// Malformed input passes through un-folded rather than failing.
		folded = lowered
	}
	return strings.TrimSpace(folded)
}
