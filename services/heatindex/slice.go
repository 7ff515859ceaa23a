package heatindex

import (
	"heatindex-backend/lib/htmlutil"

	"golang.org/x/net/html"
)

// entrySlice returns the element nodes belonging to heading i: every
// node in document order after headings[i] up to but not including
// headings[i+1]. The last heading's slice runs to the end of the scope.
// Nesting is ignored on purpose; editorial markup routinely puts the
// next heading at a different depth than the current entry's content.
func entrySlice(scope *html.Node, headings []*html.Node, i int) []*html.Node {
	if i < 0 || i >= len(headings) {
		return nil
	}
	var end *html.Node
	if i+1 < len(headings) {
		end = headings[i+1]
	}
	return htmlutil.CollectBetween(scope, headings[i], end)
}
