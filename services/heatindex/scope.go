package heatindex

import (
	"github.com/PuerkitoBio/goquery"
)

// candidate containers, in priority of consideration only; the density
// score decides
var scopeSelectors = []string{
	"article",
	"main",
	"[role=main]",
	"div.c-entry-content",
	"div.entry-content",
	"div.post-content",
	"div.article-body",
	"div.article-content",
	"div.content",
}

func scopeScore(s *goquery.Selection) float64 {
	paragraphs := s.Find("p").Length()
	headings := s.Find("h2, h3").Length()
	bolds := s.Find("b, strong").Length()
	return float64(6*paragraphs) +
		float64(10*headings) +
		float64(3*bolds) +
		float64(len(s.Text()))/1000
}

// SelectScope picks the subtree to treat as the page's main content.
// Editorial sites disagree wildly on markup, so instead of trusting any
// one selector this scores every candidate container by content density
// and takes the best. Ties keep the earlier candidate.
func SelectScope(doc *goquery.Document) *goquery.Selection {
	var best *goquery.Selection
	bestScore := -1.0

	consider := func(s *goquery.Selection) {
		if len(s.Nodes) == 0 {
			return
		}
		score := scopeScore(s)
		if score > bestScore {
			bestScore = score
			best = s
		}
	}

	for _, selector := range scopeSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			consider(s)
		})
	}
	if best == nil {
		// body competes only as a fallback: it strictly contains every
		// other candidate, so scoring it alongside them would always win
		consider(doc.Find("body").First())
	}

	if best == nil {
		return doc.Selection
	}
	return best.First()
}
