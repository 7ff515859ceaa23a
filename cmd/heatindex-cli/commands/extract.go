package commands

import (
	"context"
	"os"
	"strings"
	"time"

	"heatindex-backend/lib/fetch"
	"heatindex-backend/lib/util/serviceutil"
	"heatindex-backend/services/heatindex"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(extractCmd)
}

var extractCmd = &cobra.Command{
	Use:   "extract <source label or url>",
	Short: "Fetches a single publisher page and prints the entries it yields.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source := resolveSource(args[0])

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute*2)
		defer cancel()

		client, err := fetch.NewClient(fetch.Options{})
		if err != nil {
			serviceutil.Fatal("failed to create fetch client", err)
		}
		rawHTML, err := client.Html(ctx, source.Url)
		if err != nil {
			serviceutil.Fatal("failed to fetch page", err)
		}

		entries := heatindex.ExtractSource(ctx, source, rawHTML)
		renderEntries(entries)
	},
}

// resolveSource matches a configured source by label (case-insensitive)
// or falls back to treating the argument as a page URL.
func resolveSource(arg string) heatindex.SourceConfig {
	cfg := readConfig()
	sources := cfg.Sources
	if len(sources) == 0 {
		sources = heatindex.DefaultSources()
	}
	for _, s := range sources {
		if strings.EqualFold(s.Label, arg) {
			return s
		}
	}
	return heatindex.SourceConfig{Label: arg, Name: arg, Url: arg}
}

func renderEntries(entries []heatindex.Entry) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Sources", "Reserve", "Canonical", "Image", "Blurb"})

	for _, e := range entries {
		t.AppendRow(table.Row{
			e.Name,
			strings.Join(e.Sources, ","),
			truncate(e.ReserveURL, 48),
			truncate(e.CanonicalURL, 48),
			truncate(e.ImageURL, 48),
			truncate(e.Blurb, 64),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
