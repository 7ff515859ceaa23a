package heatindex

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"heatindex-backend/lib/fetch"
	"heatindex-backend/lib/testutil"
	"heatindex-backend/lib/timezone"
	"heatindex-backend/services/heatindex/db"

	"github.com/stretchr/testify/require"
)

const resyServicePage = `<html><body><article>
<h2>1. Penny</h2>
<p>A seafood-forward counter with one of the best raw bar programs going right now.</p>
<p><a href="https://resy.com/cities/ny/penny">Book on Resy</a></p>
<h2>2. Foo</h2>
<p>A destination omakase counter that has taken over the neighborhood conversation.</p>
<p><a href="https://resy.com/cities/ny/foo">Book on Resy</a></p>
</article></body></html>`

func eaterServicePage(baseURL string) string {
	return fmt.Sprintf(`<html><body><div class="c-entry-content">
<h2>Penny</h2>
<p>The raw bar of the moment, with lines out the door most evenings.</p>
<p><a href="https://www.opentable.com/r/penny-new-york">Make a reservation</a></p>
<h2>Bridges</h2>
<p>French-leaning cooking that has been packed every single night since opening.</p>
<p><a href="%s/venue/bridges">Website</a></p>
<h2>Corima</h2>
<p>Sonoran-inspired tasting plates in a dining room that hums from open to close.</p>
<h2>Locanda Verde</h2>
<p>The Tribeca standby, refreshed top to bottom and drawing crowds all over again.</p>
<h2>Sailor</h2>
<p>A neighborhood bistro whose early energy has not cooled off even slightly.</p>
</div></body></html>`, baseURL)
}

const bridgesVenuePage = `<html><head>
<meta property="og:image" content="https://img.bridgesnyc.com/hero.jpg">
</head><body>Bridges</body></html>`

func startPublisherServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	var srv *httptest.Server
	mux.HandleFunc("/resy.com/hit-list", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, resyServicePage)
	})
	mux.HandleFunc("/eater.com/heatmap", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, eaterServicePage(srv.URL))
	})
	mux.HandleFunc("/venue/bridges", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, bridgesVenuePage)
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestServiceRunDryRun(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/heatindex",
		DbSchema: db.Schema,
	})
	defer cleanup()

	srv := startPublisherServer(t)

	fetcher, err := fetch.NewClient(fetch.Options{
		Timeout: time.Second * 10,
		Retries: 1,
	})
	require.NoError(t, err)

	config := Config{
		Sources: []SourceConfig{
			{Label: SourceResy, Name: "Resy Hit List (NYC)", Url: srv.URL + "/resy.com/hit-list"},
			{Label: SourceEater, Name: "Eater Heatmap (Manhattan)", Url: srv.URL + "/eater.com/heatmap"},
		},
		OutputDir: t.TempDir(),
	}
	service := NewService(setup.DB, fetcher, config)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	result, err := service.Run(ctx, RunOptions{DryRun: true})
	require.NoError(t, err)

	require.Contains(t, result.Title, "NYC Heat Index")
	require.Len(t, result.Entries, 6)

	// the cross-publisher overlap outranks everything else
	penny := result.Entries[0]
	require.Equal(t, "Penny", penny.Name)
	require.True(t, penny.HasSource(SourceResy))
	require.True(t, penny.HasSource(SourceEater))
	require.Equal(t, "https://resy.com/cities/ny/penny", penny.ReserveURL)

	// og:image fallback filled the entry that only had a details link
	var bridges *Entry
	for i := range result.Entries {
		if result.Entries[i].Name == "Bridges" {
			bridges = &result.Entries[i]
		}
	}
	require.NotNil(t, bridges)
	require.Equal(t, "https://img.bridgesnyc.com/hero.jpg", bridges.ImageURL)

	// rendered output written to disk
	require.NotEmpty(t, result.OutputPath)
	written, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	require.Contains(t, string(written), "Penny")

	// dry runs must not touch issue history
	names, err := db.New(setup.DB).LatestIssueNames(ctx)
	require.NoError(t, err)
	require.Empty(t, names)
}

func TestServiceSourceFailureIsIsolated(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/heatindex",
		DbSchema: db.Schema,
	})
	defer cleanup()

	srv := startPublisherServer(t)

	fetcher, err := fetch.NewClient(fetch.Options{
		Timeout: time.Second * 10,
		Retries: 1,
	})
	require.NoError(t, err)

	config := Config{
		Sources: []SourceConfig{
			{Label: SourceResy, Name: "Resy Hit List (NYC)", Url: srv.URL + "/resy.com/missing"},
			{Label: SourceEater, Name: "Eater Heatmap (Manhattan)", Url: srv.URL + "/eater.com/heatmap"},
		},
	}
	service := NewService(setup.DB, fetcher, config)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	result, err := service.Run(ctx, RunOptions{DryRun: true})
	require.NoError(t, err)

	// the eater entries survive the resy 404
	require.Len(t, result.Entries, 5)
	for _, e := range result.Entries {
		require.Equal(t, []string{SourceEater}, e.Sources)
	}
}

func TestServiceSaveIssueNames(t *testing.T) {
	setup, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/heatindex",
		DbSchema: db.Schema,
	})
	defer cleanup()

	service := NewService(setup.DB, fetch.Client{}, Config{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	err := service.saveIssueNames(ctx, timezone.Now(), []Entry{
		{Name: "Penny"},
		{Name: "Bridges"},
	})
	require.NoError(t, err)

	names, err := db.New(setup.DB).LatestIssueNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Penny", "Bridges"}, names)
}
