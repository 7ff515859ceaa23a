package commands

import (
	"fmt"
	"os"
	"strings"

	"heatindex-backend/lib/fetch"
	"heatindex-backend/lib/sqliteutil"
	"heatindex-backend/lib/util/serviceutil"
	"heatindex-backend/services/heatindex"
	heatindexdb "heatindex-backend/services/heatindex/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var runDryRun *bool

func init() {
	runDryRun = runCmd.Flags().Bool(
		"dry-run", true,
		"Render the issue without sending email or recording state.",
	)
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--dry-run=false]",
	Short: "Runs the full pipeline and prints the scored entries.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		dbpath := cfg.Database
		if dbpath == "" {
			dbpath = "data/heatindex.db"
		}
		database, err := sqliteutil.OpenDB(heatindexdb.Schema, dbpath)
		if err != nil {
			serviceutil.Fatal("failed to open database", err)
		}
		defer database.Close()

		client, err := fetch.NewClient(fetch.Options{})
		if err != nil {
			serviceutil.Fatal("failed to create fetch client", err)
		}

		service := heatindex.NewService(database, client, cfg)
		result, err := service.Run(cmd.Context(), heatindex.RunOptions{
			DryRun: *runDryRun,
		})
		if err != nil {
			serviceutil.Fatal("failed to run pipeline", err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Name", "Heat", "Difficulty", "Sources", "Tip"})
		for i, e := range result.Entries {
			t.AppendRow(table.Row{
				i + 1,
				e.Name,
				e.HeatScore,
				e.Difficulty,
				strings.Join(e.Sources, ","),
				truncate(e.BookingTip, 56),
			})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		fmt.Println(result.Title)
		if result.OutputPath != "" {
			fmt.Println("written to", result.OutputPath)
		}
	},
}
