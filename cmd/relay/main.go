package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/rosterkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/rosterkeeper/internal/relay"
	"github.com/dmitrijs2005/rosterkeeper/internal/relay/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout, "relay")

	cfg := config.LoadConfig()

	app, err := relay.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}
