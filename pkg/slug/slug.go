// Package slug derives URL-safe ASCII identifiers from store display names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// separatorRuns collapses consecutive hyphens left over after mapping.
var separatorRuns = regexp.MustCompile(`-{2,}`)

// From normalizes name into its candidate base slug: accented characters are
// decomposed and stripped of combining marks, the rest is lowercased,
// everything outside [a-z0-9] becomes a hyphen, runs of hyphens collapse into
// one and leading/trailing hyphens are trimmed.
func From(name string) string {
	stripped, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		name,
	)
	if err != nil {
		stripped = name
	}

	mapped := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '-'
	}, strings.ToLower(stripped))

	return strings.Trim(separatorRuns.ReplaceAllString(mapped, "-"), "-")
}

// Pattern returns the regular expression source that matches base itself or
// base followed by a numeric suffix ("base", "base-2", "base-17"). Callers
// apply it case-insensitively when counting slug occupants.
func Pattern(base string) string {
	return "^" + regexp.QuoteMeta(base) + "(-[0-9]+)?$"
}
