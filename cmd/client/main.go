package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/jobboard/internal/buildinfo"
	"github.com/dmitrijs2005/jobboard/internal/client/cli"
	"github.com/dmitrijs2005/jobboard/internal/client/config"
	"github.com/dmitrijs2005/jobboard/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()

	logger, err := logging.New(cfg.LogBackend, cfg.LogLevel, os.Stderr)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
