package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/rosterkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/rosterkeeper/internal/server"
	"github.com/dmitrijs2005/rosterkeeper/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout, "server")

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
