package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"heatindex-backend/lib/configutil"
	"heatindex-backend/lib/fetch"
	"heatindex-backend/lib/sqliteutil"
	"heatindex-backend/lib/telemetry"
	"heatindex-backend/lib/util/serviceutil"
	"heatindex-backend/services/heatindex"
	heatindexdb "heatindex-backend/services/heatindex/db"
)

func main() {
	ctx := serviceutil.SignalContext()

	config, err := configutil.ReadConfig[heatindex.Config]("config.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	t, err := telemetry.SetupFromEnv(ctx, "heatindex")
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer t.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)
	telemetry.InitSlog(false)

	dbpath := config.Database
	if dbpath == "" {
		dbpath = "data/heatindex.db"
	}
	database, err := sqliteutil.OpenDB(heatindexdb.Schema, dbpath)
	if err != nil {
		serviceutil.Fatal("failed to open database", err)
	}
	defer database.Close()

	fetcher, err := fetch.NewClient(fetch.Options{})
	if err != nil {
		serviceutil.Fatal("failed to create fetch client", err)
	}

	service := heatindex.NewService(database, fetcher, config)
	result, err := service.Run(ctx, heatindex.RunOptions{})
	if err != nil {
		serviceutil.Fatal("failed to generate issue", err)
	}

	slog.Info(
		"issue generated",
		"title", result.Title,
		"entries", len(result.Entries),
		"output", result.OutputPath,
	)
}
