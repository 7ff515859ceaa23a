package heatindex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMergeUnifiesByNormalizedName(t *testing.T) {
	resy := Entry{
		Name:        "12. Joe's Pizza",
		ReserveURL:  "https://resy.com/cities/ny/joes-pizza",
		Blurb:       "Slices worth the line.",
		ImageURL:    "https://blog.resy.com/wp-content/uploads/joes.jpg",
		ImageSource: SourceResy,
		Sources:     []string{SourceResy},
	}
	eater := Entry{
		Name:         "Joe's Pizza",
		CanonicalURL: "https://joespizza.com/",
		Neighborhood: "Greenwich Village",
		ImageURL:     "https://cdn.vox-cdn.com/thumbor/joes.jpg",
		ImageSource:  SourceEater,
		Sources:      []string{SourceEater},
	}

	merged := Merge([]Entry{resy, eater})
	require.Len(t, merged, 1)

	got := merged[0]
	require.Equal(t, "12. Joe's Pizza", got.Name)
	require.Equal(t, []string{SourceEater, SourceResy}, got.Sources)
	require.Equal(t, resy.ReserveURL, got.ReserveURL)
	require.Equal(t, eater.CanonicalURL, got.CanonicalURL)
	require.Equal(t, resy.Blurb, got.Blurb)
	require.Equal(t, eater.Neighborhood, got.Neighborhood)
	// Resy outranks Eater for photos
	require.Equal(t, resy.ImageURL, got.ImageURL)
	require.Equal(t, SourceResy, got.ImageSource)
}

func TestMergeImagePrecedence(t *testing.T) {
	eaterFirst := []Entry{
		{
			Name:        "Tatiana",
			ImageURL:    "https://cdn.vox-cdn.com/thumbor/tatiana.jpg",
			ImageSource: SourceEater,
			Sources:     []string{SourceEater},
		},
		{
			Name:        "Tatiana",
			ImageURL:    "https://blog.resy.com/wp-content/uploads/tatiana.jpg",
			ImageSource: SourceResy,
			Sources:     []string{SourceResy},
		},
	}
	merged := Merge(eaterFirst)
	require.Len(t, merged, 1)
	require.Equal(t, SourceResy, merged[0].ImageSource)

	// reversed arrival order keeps the same winner
	reversed := Merge([]Entry{eaterFirst[1], eaterFirst[0]})
	require.Len(t, reversed, 1)
	require.Equal(t, SourceResy, reversed[0].ImageSource)
	require.Equal(t, merged[0].ImageURL, reversed[0].ImageURL)
}

func TestMergeIdempotent(t *testing.T) {
	e := Entry{
		Name:       "Semma",
		ReserveURL: "https://resy.com/cities/ny/semma",
		Blurb:      "South Indian cooking with serious heat.",
		Sources:    []string{SourceResy},
	}
	once := Merge([]Entry{e})
	twice := Merge([]Entry{e, e})
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("merge not idempotent:\n%s", diff)
	}
}

func TestMergeSourcesCommutative(t *testing.T) {
	a := Entry{Name: "Kabawa", Sources: []string{SourceResy}}
	b := Entry{Name: "kabawa", Sources: []string{SourceEater}}

	left := Merge([]Entry{a, b})
	right := Merge([]Entry{b, a})
	require.Len(t, left, 1)
	require.Len(t, right, 1)
	require.Equal(t, left[0].Sources, right[0].Sources)
}

func TestMergeDropsUnusableNames(t *testing.T) {
	merged := Merge([]Entry{
		{Name: "..."},
		{Name: ""},
		{Name: "Carbone", Sources: []string{SourceResy}},
	})
	require.Len(t, merged, 1)
	require.Equal(t, "Carbone", merged[0].Name)
}

func TestMergeClearsActionTextOnReserveLink(t *testing.T) {
	merged := Merge([]Entry{
		{Name: "Corima", ActionText: "Walk-in only", Sources: []string{SourceEater}},
		{Name: "Corima", ReserveURL: "https://resy.com/cities/ny/corima", Sources: []string{SourceResy}},
	})
	require.Len(t, merged, 1)
	require.Equal(t, "", merged[0].ActionText)
	require.NotEmpty(t, merged[0].ReserveURL)
}
