package heatindex

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// hosts whose og:image is generic listing art rather than a photo of
// the restaurant; the fallback must never attach those
var ogRejectHosts = []string{
	"eater.com",
	"blog.resy.com",
}

func okForOgImage(pageURL string) bool {
	low := strings.ToLower(pageURL)
	for _, host := range ogRejectHosts {
		if strings.Contains(low, host) {
			return false
		}
	}
	return true
}

// ogImage fetches an entry's canonical page and reads its og:image
// meta tag. Any failure yields "", never an error; this is a fallback,
// not a required field.
func (s Service) ogImage(ctx context.Context, pageURL string) string {
	ctx, span := tracer.Start(ctx, "ogImage")
	defer span.End()
	span.SetAttributes(attribute.String("url", pageURL))

	rawHTML, err := s.fetcher.Html(ctx, pageURL)
	if err != nil {
		span.RecordError(err)
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		span.RecordError(err)
		return ""
	}

	content, ok := doc.Find(`meta[property="og:image"]`).Attr("content")
	if !ok {
		content, _ = doc.Find(`meta[name="og:image"]`).Attr("content")
	}
	return strings.TrimSpace(content)
}
