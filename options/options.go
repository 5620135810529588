package options

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cursorlist/util"

	"github.com/urfave/cli/v2"
)

const DefaultWorkers = 4

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "include",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "patterns of scenario names to run, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "exclude",
		Aliases:  []string{"e"},
		Value:    "",
		Usage:    "patterns of scenario names to skip, comma delimited, may contain any glob pattern",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "steps",
		Value:    "",
		Usage:    "inline scenario, comma delimited steps such as insertBeginning:25,advanceCursor,render",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "seed",
		Usage:    "seed value of the inline scenario list",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "lua",
		Value:    "",
		Usage:    "path to a lua scenario script",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "stats",
		Value:    "",
		Usage:    "write a json operations report to this path, parent directory will be created if does not exist",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    DefaultWorkers,
		Usage:    "number of scenarios to run in parallel",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "list",
		Value:    false,
		Usage:    "print the scenario catalog and exit",
		Required: false,
	},
}

type Options struct {
	IncludePatterns []string
	ExcludePatterns []string
	InlineSteps     string
	Seed            *int
	LuaScriptPath   string
	StatsPath       string
	Workers         int
	VerboseLogging  bool
	ListOnly        bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	parts := strings.Split(flag, ",")
	patterns := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if len(part) > 0 {
			patterns = append(patterns, part)
		}
	}
	return patterns
}

func validateDirectory(dirPath string, createIfNotExist bool) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		if !createIfNotExist {
			return fmt.Errorf("directory does not exist at %v", dirPath)
		}
		err = os.MkdirAll(dirPath, 0777)
		if err != nil {
			return fmt.Errorf("failed to create directory at %v: %w", dirPath, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("directory error at %v: %w", dirPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directory is actually a file at %v", dirPath)
	}
	return nil
}

func validateFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("file error at %v: %w", filePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("file is actually a directory at %v", filePath)
	}
	return nil
}

func ParseOptions(c *cli.Context) (*Options, error) {
	opts := &Options{
		IncludePatterns: splitListFlag(c.String("include")),
		ExcludePatterns: splitListFlag(c.String("exclude")),
		InlineSteps:     strings.TrimSpace(c.String("steps")),
		LuaScriptPath:   c.String("lua"),
		StatsPath:       c.String("stats"),
		Workers:         c.Int("workers"),
		VerboseLogging:  c.Bool("verbose"),
		ListOnly:        c.Bool("list"),
	}
	if c.IsSet("seed") {
		seed := c.Int("seed")
		opts.Seed = &seed
	}

	err := opts.Validate()
	if err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks paths and limits, creating the stats directory when needed.
func (opts *Options) Validate() error {
	if opts.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %v", opts.Workers)
	}

	if opts.Seed != nil && len(opts.InlineSteps) == 0 {
		return &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_STEP,
			InternalError: fmt.Errorf("--seed requires --steps"),
		}
	}

	if len(opts.LuaScriptPath) > 0 {
		err := validateFile(opts.LuaScriptPath)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_SCRIPT_FAILED,
				InternalError: fmt.Errorf("lua script at '%v' is missing or invalid: %v", opts.LuaScriptPath, err),
			}
		}
	}

	if len(opts.StatsPath) > 0 {
		err := validateDirectory(filepath.Dir(opts.StatsPath), true)
		if err != nil {
			return &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_OUTPUT_PATH,
				InternalError: err,
			}
		}
	}

	return nil
}
