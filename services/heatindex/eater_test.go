package heatindex

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

const eaterFixture = `<html><body>
<div class="c-entry-content">
<h2>Penny</h2>
<p>A seafood-forward counter with one of the best raw bar programs going right now.</p>
<p><a href="https://www.opentable.com/r/penny-new-york">Make a reservation</a></p>
<h2>Bridges</h2>
<p>French-leaning cooking that has been packed every single night since opening.</p>
<p><a href="https://bridgesnyc.com/">Website</a></p>
<h2>Corima</h2>
<p>Sonoran-inspired tasting plates in a dining room that hums from open to close.</p>
<p><a href="https://resy.com/cities/ny/corima">Book on Resy</a></p>
<h2>Locanda Verde</h2>
<p>The Tribeca standby, refreshed top to bottom and drawing crowds all over again.</p>
<p><a href="https://www.opentable.com/r/locanda-verde">Make a reservation</a></p>
<h2>Sailor</h2>
<p>A neighborhood bistro whose early energy has not cooled off even slightly.</p>
<p><a href="https://resy.com/cities/ny/sailor">Book on Resy</a></p>
</div>
</body></html>`

func TestExtractEaterHeatmap(t *testing.T) {
	entries := ExtractEaterHeatmap(context.Background(), eaterFixture)
	require.Len(t, entries, 5)

	require.Equal(t, "Penny", entries[0].Name)
	require.Equal(t, "https://www.opentable.com/r/penny-new-york", entries[0].ReserveURL)
	require.Contains(t, entries[0].Blurb, "seafood-forward counter")
	require.Equal(t, []string{SourceEater}, entries[0].Sources)

	// a plain venue site is a canonical link, not a reservation link
	require.Equal(t, "Bridges", entries[1].Name)
	require.Equal(t, "https://bridgesnyc.com/", entries[1].CanonicalURL)
	require.Equal(t, "", entries[1].ReserveURL)
}

func TestExtractEaterHeatmapLinkScanFallback(t *testing.T) {
	// no usable headings at all; entries must come from scanning
	// gated booking-platform links
	fixture := `<html><body>
<div class="c-entry-content">
<div>
<strong>Penny</strong>
<a href="https://www.exploretock.com/penny-nyc"><img src="/icons/calendar.svg"></a>
<p>A seafood-forward counter with one of the best raw bar programs going right now.</p>
</div>
<div>
<a href="https://resy.com/cities/ny/bridges">Bridges</a>
<p>French-leaning cooking that has been packed every single night since opening.</p>
</div>
<div>
<a href="https://www.opentable.com/about">OpenTable</a>
</div>
</div>
</body></html>`

	entries := ExtractEaterHeatmap(context.Background(), fixture)
	require.Len(t, entries, 2)

	require.Equal(t, "Penny", entries[0].Name)
	require.Equal(t, "https://www.exploretock.com/penny-nyc", entries[0].ReserveURL)
	require.Contains(t, entries[0].Blurb, "raw bar programs")

	require.Equal(t, "Bridges", entries[1].Name)
	require.Equal(t, "https://resy.com/cities/ny/bridges", entries[1].ReserveURL)
}

func TestExtractEaterHeatmapSkipsChromeHeadings(t *testing.T) {
	fixture := `<html><body>
<div class="c-entry-content">
<h2>The Heatmap</h2>
<h2>Penny</h2>
<p>A seafood-forward counter with one of the best raw bar programs going right now.</p>
<h2>More Maps</h2>
<h2>Bridges</h2>
<p>French-leaning cooking that has been packed every single night since opening.</p>
<h2>Corima</h2>
<p>Sonoran-inspired tasting plates in a dining room that hums from open to close.</p>
<h2>Locanda Verde</h2>
<p>The Tribeca standby, refreshed top to bottom and drawing crowds all over again.</p>
<h2>Sailor</h2>
<p>A neighborhood bistro whose early energy has not cooled off even slightly.</p>
</div>
</body></html>`

	entries := ExtractEaterHeatmap(context.Background(), fixture)
	require.Len(t, entries, 5)
	for _, e := range entries {
		require.NotContains(t, []string{"The Heatmap", "More Maps"}, e.Name)
	}
}
