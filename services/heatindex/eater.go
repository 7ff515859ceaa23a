package heatindex

import (
	"context"
	"net/url"
	"strings"

	"heatindex-backend/lib/htmlutil"
	"heatindex-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const SourceEater = "Eater"

var eaterBase = &url.URL{Scheme: "https", Host: "ny.eater.com"}

// map-page chrome headings that are not venues
var eaterSkipFragments = []string{
	"the heatmap",
	"where to eat",
	"related",
	"updates",
	"more maps",
	"see more",
}

var eaterImagePolicy = ImagePolicy{
	GoodPrefixes: []string{
		"https://cdn.vox-cdn.com/",
	},
	MaxNodes: 60,
}

// heading extraction can come up short when the map page renders its
// venue cards client-side; below this count the link-scan fallback
// kicks in
const eaterMinHeadingEntries = 5

// ExtractEaterHeatmap pulls restaurant entries out of the Eater
// Heatmap page. Headings are unnumbered, so the classifier does all
// the gating; when heading extraction comes up nearly empty the
// extractor falls back to scanning booking-platform links directly.
func ExtractEaterHeatmap(ctx context.Context, rawHTML string) []Entry {
	ctx, span := tracer.Start(ctx, "ExtractEaterHeatmap")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unparseable heatmap page")
		return nil
	}

	scope := SelectScope(doc)
	if len(scope.Nodes) == 0 {
		return nil
	}
	scopeNode := scope.Nodes[0]
	headings := scope.Find("h2, h3").Nodes

	var entries []Entry
	for i, h := range headings {
		title := htmlutil.Text(h)
		if title == "" {
			continue
		}
		if textutil.ContainsAny(title, eaterSkipFragments) {
			continue
		}
		if !LooksLikeRestaurantName(title) {
			continue
		}
		name, _ := StripOrdinal(title)

		slice := entrySlice(scopeNode, headings, i)
		blurb := pickBlurb(slice)
		canonical, reserve := pickLinks(slice, eaterBase, "eater.com")
		image := pickImage(slice, eaterBase, name, eaterImagePolicy)

		if canonical == "" && reserve == "" {
			canonical = headingAnchor(eaterBase, h)
		}

		entries = append(entries, Entry{
			Name:         name,
			CanonicalURL: canonical,
			ReserveURL:   reserve,
			ImageURL:     image,
			ImageSource:  imageSourceLabel(image, SourceEater),
			Blurb:        blurb,
			ActionText:   detectActionText(blurb, reserve),
			Sources:      []string{SourceEater},
		})
	}

	if len(entries) < eaterMinHeadingEntries {
		fallback := eaterLinkScan(scopeNode)
		span.SetAttributes(attribute.Int("fallback_entries", len(fallback)))
		entries = append(entries, fallback...)
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return Merge(entries)
}

// eaterLinkScan recovers entries from gated booking-platform links when
// headings failed us. The venue name comes from the anchor text itself,
// or failing that from the nearest preceding bold/heading context.
func eaterLinkScan(scope *html.Node) []Entry {
	var flat []*html.Node
	for n := htmlutil.Next(scope); n != nil; n = htmlutil.Next(n) {
		if !htmlutil.Contains(scope, n) {
			break
		}
		if n.Type == html.ElementNode {
			flat = append(flat, n)
		}
	}

	var entries []Entry
	for i, node := range flat {
		if node.DataAtom != atom.A {
			continue
		}
		abs := htmlutil.AbsURL(eaterBase, htmlutil.Attr(node, "href"))
		if abs == "" {
			continue
		}
		u, err := url.Parse(abs)
		if err != nil || !venueLinkGate(u) {
			continue
		}

		name := htmlutil.Text(node)
		if !LooksLikeRestaurantName(name) {
			name = nearbyNameContext(flat, i)
		}
		if name == "" {
			continue
		}
		name, _ = StripOrdinal(name)

		entries = append(entries, Entry{
			Name:       name,
			ReserveURL: u.String(),
			Blurb:      followingBlurb(flat, i),
			Sources:    []string{SourceEater},
		})
	}
	return entries
}

// nearbyNameContext walks backwards a bounded distance looking for a
// bold or heading node whose text passes the name classifier.
func nearbyNameContext(flat []*html.Node, anchorIdx int) string {
	const lookback = 15
	for j := anchorIdx - 1; j >= 0 && j >= anchorIdx-lookback; j-- {
		switch flat[j].DataAtom {
		case atom.B, atom.Strong, atom.H2, atom.H3, atom.H4:
			text := htmlutil.Text(flat[j])
			if LooksLikeRestaurantName(text) {
				return text
			}
		}
	}
	return ""
}

// followingBlurb finds a qualifying paragraph shortly after the anchor.
func followingBlurb(flat []*html.Node, anchorIdx int) string {
	const lookahead = 10
	end := anchorIdx + lookahead
	if end > len(flat) {
		end = len(flat)
	}
	return pickBlurb(flat[anchorIdx:end])
}
