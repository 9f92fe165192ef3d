package options

import (
	"fmt"
	"github.com/urfave/cli/v2"
	"llist/input"
	"llist/util"
	"os"
	"strings"
)

var Flags = []cli.Flag{
	&cli.StringFlag{
		Name:     "items",
		Aliases:  []string{"i"},
		Value:    "",
		Usage:    "items to load, comma delimited; integers, then floats, then strings",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "input",
		Aliases:  []string{"f"},
		Value:    "",
		Usage:    "input files, comma delimited; .json arrays, .csv/.tsv with a header row, anything else one item per line",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "key",
		Aliases:  []string{"k"},
		Value:    "",
		Usage:    "field to order structured items by",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "reverse",
		Aliases:  []string{"r"},
		Value:    false,
		Usage:    "order descending",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "unordered",
		Aliases:  []string{"u"},
		Value:    false,
		Usage:    "keep items in insertion order",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "delete",
		Aliases:  []string{"d"},
		Value:    "",
		Usage:    "values to delete after loading, comma delimited",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "find",
		Value:    "",
		Usage:    "values to look up after deleting, comma delimited",
		Required: false,
	},
	&cli.StringFlag{
		Name:     "match",
		Aliases:  []string{"m"},
		Value:    "",
		Usage:    "glob patterns checked against each printed value, comma delimited",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "ignore-case",
		Value:    false,
		Usage:    "ignore case when checking values against match patterns",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "stats",
		Value:    false,
		Usage:    "print a JSON summary of the list instead of its items",
		Required: false,
	},
	&cli.IntFlag{
		Name:     "workers",
		Value:    4,
		Usage:    "number of input files read concurrently",
		Required: false,
	},
	&cli.BoolFlag{
		Name:     "verbose",
		Aliases:  []string{"vv"},
		Value:    false,
		Usage:    "verbose logging",
		Required: false,
	},
}

type Options struct {
	Items              []any
	InputPaths         []string
	Key                string
	Reverse            bool
	Unordered          bool
	DeleteValues       []any
	FindValues         []any
	MatchPatterns      []string
	IgnoreCasePatterns bool
	StatsOnly          bool
	Workers            int
	VerboseLogging     bool
}

func splitListFlag(flag string) []string {
	if len(flag) == 0 {
		return []string{}
	}
	return strings.Split(flag, ",")
}

func parseLiterals(flag string) []any {
	tokens := splitListFlag(flag)
	values := make([]any, len(tokens))
	for i, token := range tokens {
		values[i] = input.ParseLiteral(token)
	}
	return values
}

func validateFile(filePath string) error {
	info, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file does not exist at %v", filePath)
	}
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
		Items:              parseLiterals(c.String("items")),
		InputPaths:         splitListFlag(c.String("input")),
		Key:                strings.TrimSpace(c.String("key")),
		Reverse:            c.Bool("reverse"),
		Unordered:          c.Bool("unordered"),
		DeleteValues:       parseLiterals(c.String("delete")),
		FindValues:         parseLiterals(c.String("find")),
		MatchPatterns:      splitListFlag(c.String("match")),
		IgnoreCasePatterns: c.Bool("ignore-case"),
		StatsOnly:          c.Bool("stats"),
		Workers:            c.Int("workers"),
		VerboseLogging:     c.Bool("verbose"),
	}

	if opts.Unordered && (opts.Reverse || len(opts.Key) > 0) {
		return nil, fmt.Errorf("--unordered cannot be combined with --reverse or --key")
	}
	if opts.Workers < 1 {
		return nil, fmt.Errorf("--workers must be at least 1, got %v", opts.Workers)
	}

	for i, inputPath := range opts.InputPaths {
		inputPath = strings.TrimSpace(inputPath)
		opts.InputPaths[i] = inputPath
		err := validateFile(inputPath)
		if err != nil {
			return nil, &util.ErrorWithCode{
				StatusCode:    util.ERROR_BAD_INPUT_PATH,
				InternalError: fmt.Errorf("input at '%v' is missing or invalid: %v", inputPath, err),
			}
		}
	}

	return opts, nil
}
