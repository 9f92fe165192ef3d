package runner

import (
	"encoding/json"
	"fmt"
	"io"
	"llist/filter"
	"llist/input"
	"llist/linkedlist"
	"llist/options"
	"llist/stats"
	"llist/util"
	"log"
)

type listRunner struct {
	opts    *options.Options
	out     io.Writer
	list    linkedlist.List[any]
	ordered *linkedlist.OrderedSinglyLinkedList
}

// Run builds the list described by opts, applies the requested deletions and
// lookups and writes the result to out.
func Run(opts *options.Options, out io.Writer) (err error) {
	runner := &listRunner{
		opts: opts,
		out:  out,
	}

	items := append([]any{}, opts.Items...)
	loaded, err := input.Load(opts.InputPaths, opts.Workers)
	if err != nil {
		return err
	}
	items = append(items, loaded...)
	runner.verboseLog("loaded %v items from %v input files", len(items), len(opts.InputPaths))

	err = runner.build(items)
	if err != nil {
		return util.WithCode(err)
	}

	for _, value := range opts.DeleteValues {
		before := runner.list.Length()
		err = runner.list.Delete(value)
		if err != nil {
			return util.WithCode(fmt.Errorf("failed to delete '%v': %w", value, err))
		}
		runner.verboseLog("deleted %v nodes holding '%v'", before-runner.list.Length(), value)
	}

	if opts.StatsOnly {
		return runner.writeStats()
	}

	for _, value := range opts.FindValues {
		found := runner.list.Find(value)
		if len(found) == 0 {
			fmt.Fprintf(out, "'%v' not found\n", value)
			continue
		}
		for _, match := range found {
			fmt.Fprintf(out, "found '%v' at index %d: %v\n", value, match.Index, match.Node.Value)
		}
	}

	if len(opts.MatchPatterns) > 0 {
		err = runner.writeMatches()
		if err != nil {
			return err
		}
	}

	return runner.list.Fprint(out)
}

func (runner *listRunner) build(items []any) error {
	if runner.opts.Unordered {
		runner.list = linkedlist.NewSingly(items...)
		runner.verboseLog("built unordered list of %v items", runner.list.Length())
		return nil
	}

	var key linkedlist.Key
	if len(runner.opts.Key) > 0 {
		key = linkedlist.FieldKey(runner.opts.Key)
	}
	var batch []any
	if len(items) > 0 {
		batch = items
	}
	ordered, err := linkedlist.NewOrdered(batch, key, runner.opts.Reverse)
	if err != nil {
		return fmt.Errorf("failed to build ordered list: %w", err)
	}
	runner.list = ordered
	runner.ordered = ordered
	runner.verboseLog("built %v ordered list of %v items, ascending: %v", ordered.Kind(), ordered.Length(), ordered.Ascending())
	return nil
}

func (runner *listRunner) writeMatches() error {
	matcher, err := filter.Compile(runner.opts.MatchPatterns, runner.opts.IgnoreCasePatterns)
	if err != nil {
		return fmt.Errorf("failed to compile match patterns '%v': %v", runner.opts.MatchPatterns, err)
	}
	hits := filter.Select(matcher, runner.list.All())
	runner.verboseLog("%v of %v items match %v", len(hits), runner.list.Length(), runner.opts.MatchPatterns)
	for _, hit := range hits {
		fmt.Fprintf(runner.out, "matched at index %d: %v\n", hit.Index, hit.Value)
	}
	return nil
}

func (runner *listRunner) writeStats() error {
	kind := "unordered"
	ascending := false
	if runner.ordered != nil {
		kind = runner.ordered.Kind().String()
		ascending = runner.ordered.Ascending()
	}
	listStats := stats.NewListStats(kind, runner.ordered != nil, ascending)
	for _, item := range runner.list.All() {
		value := item
		if runner.ordered != nil {
			keyValue, err := runner.ordered.ValueOf(item)
			if err != nil {
				return util.WithCode(err)
			}
			value = keyValue
		}
		listStats.AddItem(item, value)
	}
	listStats.Finalize()

	encoder := json.NewEncoder(runner.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(listStats)
}

func (runner *listRunner) verboseLog(format string, v ...interface{}) {
	if runner.opts.VerboseLogging {
		log.Printf(format, v...)
	}
}
