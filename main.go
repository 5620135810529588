package main

import (
	"log"
	"os"

	"cursorlist/demo"
	"cursorlist/options"
	"cursorlist/util"

	"github.com/urfave/cli/v2"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   cursorlist - 1.0.0 - Replay scenarios against a singly-linked list with a movable cursor.

USAGE:
   cursorlist [optional flags]

OPTIONS:
   --include value, -i value  patterns of scenario names to run, comma delimited, may contain any glob pattern
   --exclude value, -e value  patterns of scenario names to skip, comma delimited, may contain any glob pattern
   --steps value              inline scenario, comma delimited steps such as insertBeginning:25,advanceCursor,render
   --seed value               seed value of the inline scenario list
   --lua value                path to a lua scenario script
   --stats value              write a json operations report to this path
   --workers value            number of scenarios to run in parallel (default: 4)
   --verbose, --vv            verbose logging (default: false)
   --list                     print the scenario catalog and exit (default: false)
   --help, -h                 show help (default: false)
   --version, -v              print the version (default: false)

EXIT CODES:
  0    Success
  211  Inline step is invalid
  212  No scenario selected
  213  Stats output path is invalid
  214  Lua script failed
  215  Scenario output differs from its expectation
  1    Any other error
`

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
	app := &cli.App{
		Name:    "cursorlist",
		Usage:   "Replay scenarios against a singly-linked list with a movable cursor.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			err = demo.Run(opts, os.Stdout)
			if err == nil && !opts.ListOnly {
				log.Printf("Completed successfully")
			}
			return err
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		os.Exit(util.StatusCodeOf(err, 1))
	}
}
