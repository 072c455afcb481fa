package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/AnttoSalo/seatfinder/internal/display"
	"github.com/AnttoSalo/seatfinder/internal/seating"
)

var optimiseCommand = &cli.Command{
	Name:      "optimize",
	Usage:     "run the parallel seating optimizer over a request document",
	ArgsUsage: "<request.json>",
	Flags:     flagsSlice("out", "log-file", "quiet"),
	Action:    optimiseAction,
}

func optimiseAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one argument: the request JSON file", 1)
	}

	in, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("opening request file: %w", err)
	}
	defer in.Close()

	req, dir, fixed, cfg, err := seating.DecodeRequest(in)
	if err != nil {
		return err
	}

	var logFile io.Writer
	if path := c.String("log-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}

	var console io.Writer
	if !c.Bool("quiet") {
		console = os.Stderr
	}
	logger := seating.NewLogger(console, logFile)

	initial := req.InitialArrangement
	result, err := seating.Optimize(&initial, fixed, dir, cfg, logger)
	if err != nil {
		return err
	}

	out := os.Stdout
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := seating.EncodeResult(out, result); err != nil {
		return err
	}

	if !c.Bool("quiet") {
		display.RenderArrangement(os.Stderr, result.Arrangement)
		display.RenderWorkerSummary(os.Stderr, result.Workers)
	}
	return nil
}
