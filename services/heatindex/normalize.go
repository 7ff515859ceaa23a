package heatindex

import (
	"regexp"
	"strings"
)

// matches listicle numbering: "12. ", "12) ", "12: ", "12 - "
var ordinalPrefixRegex = regexp.MustCompile(`^\s*(\d+)\s*(?:[.):]|-)\s+`)
var whitespaceRegex = regexp.MustCompile(`\s+`)
var unsafeCharRegex = regexp.MustCompile(`[^a-z0-9 '&-]`)
var curlyApostropheRegex = regexp.MustCompile("[‘’]")

// StripOrdinal removes a leading listicle number from a heading title,
// returning the remainder and whether a number was present.
func StripOrdinal(title string) (string, bool) {
	m := ordinalPrefixRegex.FindStringIndex(title)
	if m == nil {
		return strings.TrimSpace(title), false
	}
	return strings.TrimSpace(title[m[1]:]), true
}

// LeadingOrdinal returns the listicle number of a heading title.
func LeadingOrdinal(title string) (int, bool) {
	m := ordinalPrefixRegex.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n := 0
	for _, c := range m[1] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

// NormalizeName canonicalizes a restaurant name into the dedupe key.
// Two records are the same restaurant iff their normalized names are
// equal. The function is pure and idempotent; it may return "".
func NormalizeName(name string) string {
	name, _ = StripOrdinal(name)
	name = strings.ToLower(name)
	name = curlyApostropheRegex.ReplaceAllString(name, "'")
	// collapse before stripping: tabs and newlines must become spaces,
	// not vanish and glue words together
	name = whitespaceRegex.ReplaceAllString(name, " ")
	name = unsafeCharRegex.ReplaceAllString(name, "")
	name = whitespaceRegex.ReplaceAllString(strings.TrimSpace(name), " ")
	return name
}
