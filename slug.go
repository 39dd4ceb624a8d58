package gamecat

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts text to its normalized, hyphenated, ASCII-lowercase form.
// Compatibility forms are folded ("Ｆｕｌｌ" → "full", "ﬁne" → "fine"),
// diacritics are stripped ("Générál" → "general"), runs of characters
// outside [a-z0-9] collapse to a single hyphen, and leading/trailing
// hyphens are trimmed. Slugify is idempotent.
func Slugify(s string) string {
	if s == "" {
		return ""
	}

	// Chains keep internal state, so each call builds its own.
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	folded = strings.ToLower(folded)
	return strings.Trim(nonSlugChars.ReplaceAllString(folded, "-"), "-")
}

// SlugTokens splits a slug into its hyphen-delimited tokens.
func SlugTokens(slug string) []string {
	if slug == "" {
		return nil
	}
	return strings.Split(slug, "-")
}
