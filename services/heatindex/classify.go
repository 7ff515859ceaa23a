package heatindex

import (
	"regexp"
	"strings"

	"heatindex-backend/lib/textutil"
)

// navigation / site chrome headings that show up inside editorial
// containers all the time
var nameRejectExact = []string{
	"about",
	"about us",
	"contact",
	"contact us",
	"careers",
	"privacy policy",
	"terms of use",
	"terms of service",
	"search",
	"menu",
	"comments",
	"share",
	"related",
	"see more",
	"read more",
	"load comments",
	"advertisement",
	"most popular",
	"top stories",
}

// promotional fragments; any occurrence disqualifies a candidate
var nameRejectFragments = []string{
	"subscribe",
	"newsletter",
	"sign up",
	"sign in",
	"log in",
	"gift card",
	"follow us",
	"private dining",
	"sponsored",
	"advertis",
	"cookie",
	"download the app",
}

var monthDayRegex = regexp.MustCompile(`(?i)^(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2}(st|nd|rd|th)?(,\s*\d{4})?$`)
var digitsPunctRegex = regexp.MustCompile(`^[\d\s[:punct:]]+$`)

// LooksLikeRestaurantName decides whether a heading or anchor text is
// plausibly a venue name.
func LooksLikeRestaurantName(candidate string) bool {
	name, _ := StripOrdinal(candidate)
	name = textutil.CollapseWhitespace(name)
	if len(name) < 2 || len(name) > 90 {
		return false
	}

	low := strings.ToLower(name)
	for _, phrase := range nameRejectExact {
		if low == phrase {
			return false
		}
	}
	if textutil.ContainsAny(low, nameRejectFragments) {
		return false
	}
	if monthDayRegex.MatchString(name) {
		return false
	}
	if digitsPunctRegex.MatchString(name) {
		return false
	}
	return true
}
