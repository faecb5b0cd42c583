package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Z3MAX/Expensify/internal/client/cli"
	"github.com/Z3MAX/Expensify/internal/client/config"
	"github.com/Z3MAX/Expensify/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewText(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
