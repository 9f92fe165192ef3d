package options

import (
	"llist/util"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parse(args ...string) (*Options, error) {
	var opts *Options
	var parseErr error
	app := &cli.App{
		Name:  "llist",
		Flags: Flags,
		Action: func(c *cli.Context) error {
			opts, parseErr = ParseOptions(c)
			return nil
		},
	}
	if err := app.Run(append([]string{"llist"}, args...)); err != nil {
		return nil, err
	}
	return opts, parseErr
}

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parse()
	require.NoError(t, err)
	assert.Empty(t, opts.Items)
	assert.Empty(t, opts.InputPaths)
	assert.False(t, opts.Reverse)
	assert.False(t, opts.Unordered)
	assert.Equal(t, 4, opts.Workers)
}

func TestParseOptionsLiterals(t *testing.T) {
	opts, err := parse("-i", "6,2.5,pear", "-d", "2.5", "--find", "6,x", "-r", "-k", " age ")
	require.NoError(t, err)
	assert.Equal(t, []any{6, 2.5, "pear"}, opts.Items)
	assert.Equal(t, []any{2.5}, opts.DeleteValues)
	assert.Equal(t, []any{6, "x"}, opts.FindValues)
	assert.True(t, opts.Reverse)
	assert.Equal(t, "age", opts.Key)
}

func TestParseOptionsInputPaths(t *testing.T) {
	dirPath := t.TempDir()
	first := filepath.Join(dirPath, "a.txt")
	second := filepath.Join(dirPath, "b.json")
	require.NoError(t, os.WriteFile(first, []byte("1\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("[2]"), 0644))

	opts, err := parse("-f", first+", "+second)
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, opts.InputPaths)
}

func TestParseOptionsMissingInput(t *testing.T) {
	_, err := parse("-f", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.Equal(t, util.ERROR_BAD_INPUT_PATH, util.CodeFor(err))
}

func TestParseOptionsDirectoryInput(t *testing.T) {
	_, err := parse("-f", t.TempDir())
	require.Error(t, err)
	assert.Equal(t, util.ERROR_BAD_INPUT_PATH, util.CodeFor(err))
}

func TestParseOptionsConflicts(t *testing.T) {
	_, err := parse("-u", "-r")
	assert.Error(t, err)

	_, err = parse("-u", "-k", "age")
	assert.Error(t, err)

	_, err = parse("--workers", "0")
	assert.Error(t, err)
}
