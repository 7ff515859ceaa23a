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
)

const SourceResy = "Resy"

var resyBase = &url.URL{Scheme: "https", Host: "blog.resy.com"}

// utility / promo headings the hit list page mixes into the article
var resySkipFragments = []string{
	"hit list",
	"where to eat",
	"updated",
	"read more",
	"newest restaurant openings",
	"now on resy",
	"resy events",
	"more from resy",
}

// phrases marking the end of the listicle proper
var resyStopFragments = []string{
	"related",
	"see more",
	"you might also like",
	"more to explore",
}

// thumbnails must come from the publisher's own media hosts; anything
// else on the page is ad or social chrome
var resyImagePolicy = ImagePolicy{
	AllowedPrefixes: []string{
		"https://blog.resy.com/wp-content/",
		"https://res.cloudinary.com/resy/",
	},
	GoodPrefixes: []string{
		"https://blog.resy.com/wp-content/uploads/",
	},
	MinScore: 1,
	MaxNodes: 60,
}

// resyHeadingBoundary finds the index past the last usable heading,
// honoring whichever boundary comes first: an explicit end-of-list
// phrase, or the point where the leading listicle numbers stop
// increasing.
func resyHeadingBoundary(headings []*html.Node) int {
	boundary := len(headings)
	for i, h := range headings {
		if textutil.ContainsAny(htmlutil.Text(h), resyStopFragments) {
			boundary = i
			break
		}
	}

	lastNum := 0
	lastNumbered := -1
	for i := 0; i < boundary; i++ {
		text := htmlutil.Text(headings[i])
		n, ok := LeadingOrdinal(text)
		if !ok {
			continue
		}
		if n < lastNum {
			break
		}
		lastNum = n
		lastNumbered = i
	}
	if lastNumbered >= 0 && lastNumbered+1 < boundary {
		boundary = lastNumbered + 1
	}
	return boundary
}

// ExtractResyHitList pulls restaurant entries out of the Resy Hit List
// article. The hit list is an ordinal listicle: only numbered headings
// are entries, and numbering is trusted to find the end of the list.
func ExtractResyHitList(ctx context.Context, rawHTML string) []Entry {
	ctx, span := tracer.Start(ctx, "ExtractResyHitList")
	defer span.End()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unparseable hit list page")
		return nil
	}

	scope := SelectScope(doc)
	if len(scope.Nodes) == 0 {
		return nil
	}
	scopeNode := scope.Nodes[0]
	headings := scope.Find("h2, h3").Nodes
	boundary := resyHeadingBoundary(headings)

	var entries []Entry
	for i := 0; i < boundary; i++ {
		h := headings[i]
		title := htmlutil.Text(h)
		if title == "" {
			continue
		}
		if textutil.ContainsAny(title, resySkipFragments) {
			continue
		}
		if _, numbered := LeadingOrdinal(title); !numbered {
			continue
		}
		if !LooksLikeRestaurantName(title) {
			continue
		}
		name, _ := StripOrdinal(title)

		slice := entrySlice(scopeNode, headings, i)
		blurb := pickBlurb(slice)
		canonical, reserve := pickLinks(slice, resyBase, "resy.com")
		image := pickImage(slice, resyBase, name, resyImagePolicy)

		// require at least a blurb or a link; images are often stripped
		// from the static markup
		if blurb == "" && canonical == "" && reserve == "" {
			continue
		}
		if canonical == "" && reserve == "" {
			canonical = headingAnchor(resyBase, h)
		}

		entries = append(entries, Entry{
			Name:         name,
			CanonicalURL: canonical,
			ReserveURL:   reserve,
			ImageURL:     image,
			ImageSource:  imageSourceLabel(image, SourceResy),
			Blurb:        blurb,
			ActionText:   detectActionText(blurb, reserve),
			Sources:      []string{SourceResy},
		})
	}

	span.SetAttributes(attribute.Int("entries", len(entries)))
	return Merge(entries)
}

// headingAnchor resolves the heading's own link, used as a last-resort
// canonical URL.
func headingAnchor(base *url.URL, h *html.Node) string {
	for n := h.FirstChild; n != nil; n = htmlutil.Next(n) {
		if !htmlutil.Contains(h, n) {
			break
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			return htmlutil.AbsURL(base, htmlutil.Attr(n, "href"))
		}
	}
	return ""
}

func imageSourceLabel(imageURL, label string) string {
	if imageURL == "" {
		return ""
	}
	return label
}
