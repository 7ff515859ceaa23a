package heatindex

import (
	"context"
	"strings"

	"heatindex-backend/lib/textutil"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/heatindex")

// SourceConfig names a publisher page to ingest.
type SourceConfig struct {
	// provenance label stamped onto extracted entries, e.g. "Resy"
	Label string `json:"label"`
	// human-readable publication name for the rendered issue
	Name string `json:"name"`
	Url  string `json:"url"`
}

var walkInPhrases = []string{
	"walk-in only",
	"walk-ins only",
	"walk ins only",
	"no reservations",
}

// detectActionText derives the walk-in annotation shown in place of a
// booking call to action. Meaningless once a reserve link exists.
func detectActionText(blurb, reserveURL string) string {
	if reserveURL != "" {
		return ""
	}
	if textutil.ContainsAny(blurb, walkInPhrases) {
		return "Walk-in only"
	}
	return ""
}

// ExtractSource dispatches raw page HTML to the extractor matching the
// source URL. Unknown sources yield no entries rather than an error;
// a misconfigured source must not sink the rest of the run.
func ExtractSource(ctx context.Context, source SourceConfig, rawHTML string) []Entry {
	ctx, span := tracer.Start(ctx, "ExtractSource")
	defer span.End()

	switch {
	case strings.Contains(source.Url, "resy.com"):
		return ExtractResyHitList(ctx, rawHTML)
	case strings.Contains(source.Url, "eater.com"):
		return ExtractEaterHeatmap(ctx, rawHTML)
	default:
		return nil
	}
}
