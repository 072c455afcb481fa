// Package main provides the CLI entrypoint for the seatfinder tool.
//
// optimize.go implements the "optimize" command: it reads a JSON
// request document (initial arrangement, fixed seats, students, and
// schedule/score parameters), runs the Parallel Coordinator, and
// writes the result as JSON plus a human-readable table summary.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// appFlagsMap centralizes flag definitions the way keycraft's
// cmd/keycraft/main.go does, so commands can select only the flags
// they need via flagsSlice.
var appFlagsMap = map[string]cli.Flag{
	"out": &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "file to write the resulting arrangement JSON to (default: stdout)",
	},
	"log-file": &cli.StringFlag{
		Name:  "log-file",
		Usage: "optional JSONL file to write per-worker optimization events to",
	},
	"quiet": &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "suppress the console progress log and summary table",
	},
}

func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		f, ok := appFlagsMap[k]
		if !ok {
			panic(fmt.Sprintf("unknown flag key %q", k))
		}
		flags = append(flags, f)
	}
	return flags
}

func main() {
	app := &cli.App{
		Name:  "seatfinder",
		Usage: "optimize classroom seating arrangements against student wish lists",
		Commands: []*cli.Command{
			optimiseCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
