package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func CollapseWhitespace(s string) string {
	s = strings.Trim(s, " \n\t")
	return whitespaceRegex.ReplaceAllString(s, " ")
}

// ContainsAny reports whether s contains any of the keywords,
// case-insensitively.
func ContainsAny(s string, keywords []string) bool {
	s = strings.ToLower(s)
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// EqualsAny reports whether s equals any of the phrases after
// case-folding and whitespace collapse.
func EqualsAny(s string, phrases []string) bool {
	s = strings.ToLower(CollapseWhitespace(s))
	for _, p := range phrases {
		if s == p {
			return true
		}
	}
	return false
}
