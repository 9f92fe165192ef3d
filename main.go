package main

import (
	"github.com/urfave/cli/v2"
	"llist/options"
	"llist/runner"
	"llist/util"
	"log"
	"os"
)

const VERSION = "1.0.0"

func main() {
	cli.AppHelpTemplate =
		`NAME:
   llist - 1.0.0 - Build a singly linked list from literals or input files, then delete, find, match and print its items.

USAGE:
   llist [--items value] [--input value]        [optional flags]

OPTIONS:
   --items value, -i value   items to load, comma delimited; integers, then floats, then strings
   --input value, -f value   input files, comma delimited; .json arrays, .csv/.tsv with a header row, anything else one item per line
   --key value, -k value     field to order structured items by
   --reverse, -r             order descending (default: false)
   --unordered, -u           keep items in insertion order (default: false)
   --delete value, -d value  values to delete after loading, comma delimited
   --find value              values to look up after deleting, comma delimited
   --match value, -m value   glob patterns checked against each printed value, comma delimited
   --ignore-case             ignore case when checking values against match patterns (default: false)
   --stats                   print a JSON summary of the list instead of its items (default: false)
   --workers value           number of input files read concurrently (default: 4)
   --verbose, --vv           verbose logging (default: false)
   --help, -h                show help (default: false)
   --version, -v             print the version (default: false)

EXIT CODES:
  0    Success
  201  Input path is invalid
  202  Input content could not be decoded
  301  Delete on an empty list
  302  Items mix incompatible kinds
  303  Structured items given without --key
  304  --key does not name a field of the items
  305  Items are not a proper sequence
  306  Item kind does not match the list
  307  Key conflicts with the list's key
  308  Key values cannot be compared
  1    Any other error
`

	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
	app := &cli.App{
		Name:    "llist",
		Usage:   "Build a singly linked list from literals or input files, then delete, find, match and print its items.",
		Flags:   options.Flags,
		Version: VERSION,
		Action: func(ctx *cli.Context) error {
			opts, err := options.ParseOptions(ctx)
			if err != nil {
				return err
			}
			return runner.Run(opts, os.Stdout)
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Printf("failed: %v", err)
		os.Exit(util.CodeFor(err))
	}
}
