package main

import (
	"context"

	"heatindex-backend/cmd/heatindex-cli/commands"
	"heatindex-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "heatindex-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
