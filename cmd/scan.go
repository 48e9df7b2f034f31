package cmd

import (
	"fmt"
	"os"

	"scamurl/features/report"
	"scamurl/features/scanner"

	"github.com/urfave/cli/v2"
)

// ScanCommand evaluates one URL and prints its risk report.
var ScanCommand = &cli.Command{
	Name:  "scan",
	Usage: "Score a URL for phishing risk",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "url",
			Aliases:  []string{"u"},
			Usage:    "URL to evaluate.",
			Required: true,
		},
		&cli.BoolFlag{
			Name:    "json",
			Aliases: []string{"j"},
			Usage:   "Output the report in JSON format.",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:  "no-fetch",
			Usage: "Skip the page fetch; score from lexical and list checks only.",
			Value: false,
		},
	},
	Action: scanURL,
}

// scanURL is the action backing the “scan” command.
func scanURL(c *cli.Context) error {
	sc, err := scanner.NewScanner()
	if err != nil {
		return fmt.Errorf("failed to create scanner: %w", err)
	}

	rep, err := sc.Scan(c.Context, c.String("url"), scanner.Options{
		SkipFetch: c.Bool("no-fetch"),
	})
	if err != nil {
		return fmt.Errorf("failed to scan URL: %w", err)
	}

	if c.Bool("json") {
		return report.RenderJSON(os.Stdout, rep)
	}

	report.Render(os.Stdout, rep)
	return nil
}
