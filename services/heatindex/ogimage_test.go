package heatindex

import (
	"context"
	"testing"

	"heatindex-backend/lib/fetch"

	"github.com/stretchr/testify/require"
)

func TestOkForOgImage(t *testing.T) {
	rejected := []string{
		"https://ny.eater.com/maps/best-new-nyc-restaurants-heatmap",
		"https://eater.com/some-listing",
		"https://blog.resy.com/2025/10/the-hit-list/",
	}
	for _, u := range rejected {
		require.False(t, okForOgImage(u), "should reject %s", u)
	}

	accepted := []string{
		"https://bridgesnyc.com/",
		"https://joespizza.com/menu",
		"https://resy.com/cities/ny/penny",
	}
	for _, u := range accepted {
		require.True(t, okForOgImage(u), "should accept %s", u)
	}
}

func TestFillMissingImagesSkipsPublisherHosts(t *testing.T) {
	// the zero-value fetcher cannot make requests; any fetch attempt
	// here fails the test
	service := NewService(nil, fetch.Client{}, Config{})

	entries := []Entry{
		{Name: "Penny", CanonicalURL: "https://ny.eater.com/maps/penny"},
		{Name: "Foo", CanonicalURL: "https://blog.resy.com/2025/10/foo/"},
		{Name: "Bar", CanonicalURL: "https://barnyc.com/", ImageURL: "https://cdn.vox-cdn.com/bar.jpg"},
		{Name: "Baz"},
	}
	service.fillMissingImages(context.Background(), entries)

	// publisher-hosted canonical pages never get generic OG art
	require.Equal(t, "", entries[0].ImageURL)
	require.Equal(t, "", entries[1].ImageURL)
	// already-filled images and entries without a details page are
	// left alone
	require.Equal(t, "https://cdn.vox-cdn.com/bar.jpg", entries[2].ImageURL)
	require.Equal(t, "", entries[3].ImageURL)
}
