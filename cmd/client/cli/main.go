package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/rosterkeeper/internal/buildinfo"
	"github.com/dmitrijs2005/rosterkeeper/internal/client/cli"
	"github.com/dmitrijs2005/rosterkeeper/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout, "roster cli")

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
