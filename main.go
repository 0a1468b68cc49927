package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"wellsync/internal/di"
	"wellsync/internal/structures"
)

func parseFlags() *structures.CliFlags {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "./config.ini", "path to the configuration file")
	flag.StringVar(&flags.AuthCode, "auth-code", "", "authorization code for initial authentication")
	flag.StringVar(&flags.StartDate, "start", "", "start date for sync in YYYY-MM-DD format (defaults to yesterday)")
	flag.BoolVar(&flags.ForceResync, "force-resync", false, "force resync of all dates even if already synced")
	flag.BoolVar(&flags.DebugMode, "v", false, "debug logging")
	flag.Parse()
	return flags
}

func main() {
	flags := parseFlags()

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wellsync: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "wellsync: %v\n", err)
		app.Close()
		os.Exit(1)
	}
	app.Close()
}
