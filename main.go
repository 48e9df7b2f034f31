package main

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"scamurl/cmd"
	"scamurl/internal/config"
	"scamurl/internal/logger"

	stdlog "log"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := app().Run(os.Args); err != nil {
		stdlog.Fatalf("error running the app: %v", err)
	}
}

func app() *cli.App {
	helpName := color.YellowString(filepath.Base(os.Args[0]))
	year := strconv.Itoa(time.Now().UTC().Year())

	app := &cli.App{
		Usage:       "URL risk scorer",
		HelpName:    helpName,
		Version:     "v0.0.1",
		Compiled:    time.Now().UTC(),
		Copyright:   "© " + year + " scamurl",
		Description: "This application scores URLs for phishing risk.",
		Commands:    cmd.Commands,
		Before:      before,
	}

	app.Suggest = true
	return app
}

func before(c *cli.Context) error {
	stdlog.Print("Initializing application configuration")
	if err := config.InitConfig(); err != nil {
		stdlog.Fatalf("error loading config: %v", err)
		return err
	}

	logger.InitializeLogger()

	return nil
}
