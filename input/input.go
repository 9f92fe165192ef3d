package input

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"github.com/avast/retry-go"
	"golang.org/x/net/html/charset"
	"io"
	"llist/linkedlist"
	"llist/parallel"
	"llist/util"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ParseLiteral turns a command line or text token into an int, a float64 or,
// failing both, the trimmed string.
func ParseLiteral(token string) any {
	token = strings.TrimSpace(token)
	if i, err := strconv.Atoi(token); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	return token
}

// Load reads every path with up to workers files in flight and returns their
// items concatenated in path order.
func Load(paths []string, workers int) ([]any, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	results := make([][]any, len(paths))
	queue := parallel.CreateJobQueue(len(paths), workers)
	defer queue.Close()

	for i, path := range paths {
		err := queue.Add(func() error {
			items, err := LoadFile(path)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	if err := queue.Wait(); err != nil {
		return nil, err
	}

	items := []any{}
	for _, result := range results {
		items = append(items, result...)
	}
	return items, nil
}

// LoadFile decodes the items held in one file. The format follows the file
// extension; unknown extensions are read one item per line.
func LoadFile(path string) ([]any, error) {
	content, err := readFile(path)
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_INPUT_PATH,
			InternalError: fmt.Errorf("failed to read input '%v': %w", path, err),
		}
	}

	format, found := GetFormatFromExtension(filepath.Ext(path))
	if !found {
		format = FormatLines
	}

	var items []any
	switch format {
	case FormatJSON:
		items, err = decodeJSON(content)
	case FormatCSV:
		items, err = decodeCSV(content, filepath.Ext(path))
	default:
		items = decodeLines(content)
	}
	if err != nil {
		return nil, &util.ErrorWithCode{
			StatusCode:    util.ERROR_BAD_INPUT_CONTENT,
			InternalError: fmt.Errorf("failed to decode %v input '%v': %w", format, path, err),
		}
	}
	return items, nil
}

// readFile returns the file content as UTF-8, whatever encoding it was
// written in. Missing files are not retried.
func readFile(path string) ([]byte, error) {
	var contentBytes []byte
	err := retry.Do(
		func() error {
			var readErr error
			contentBytes, readErr = os.ReadFile(path)
			return readErr
		},
		retry.Attempts(3),
		retry.Delay(10*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !os.IsNotExist(err) && !os.IsPermission(err)
		}),
	)
	if err != nil {
		return nil, err
	}

	encoding, _, _ := charset.DetermineEncoding(contentBytes, "")
	decodedBytes, err := encoding.NewDecoder().Bytes(contentBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode file: %v", err)
	}
	return bytes.TrimPrefix(decodedBytes, []byte("\xef\xbb\xbf")), nil
}

// decodeJSON reads an array of items. Numbers become ints when integral, the
// same as command line literals, and top-level objects become records.
func decodeJSON(content []byte) ([]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	var raw []any
	if err := decoder.Decode(&raw); err != nil {
		return nil, err
	}
	items := make([]any, len(raw))
	for i, value := range raw {
		value = normalizeJSON(value)
		if object, ok := value.(map[string]any); ok {
			items[i] = linkedlist.Record(object)
			continue
		}
		items[i] = value
	}
	return items, nil
}

func normalizeJSON(value any) any {
	switch v := value.(type) {
	case json.Number:
		return ParseLiteral(v.String())
	case map[string]any:
		for name, field := range v {
			v[name] = normalizeJSON(field)
		}
	case []any:
		for i, element := range v {
			v[i] = normalizeJSON(element)
		}
	}
	return value
}

// decodeCSV reads a header row of field names followed by one record per row.
func decodeCSV(content []byte, ext string) ([]any, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	if strings.EqualFold(ext, ".tsv") {
		reader.Comma = '\t'
	}
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return []any{}, nil
	}
	if err != nil {
		return nil, err
	}

	items := []any{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		record := make(linkedlist.Record, len(header))
		for i, name := range header {
			record[strings.TrimSpace(name)] = ParseLiteral(row[i])
		}
		items = append(items, record)
	}
	return items, nil
}

func decodeLines(content []byte) []any {
	items := []any{}
	for _, line := range strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n") {
		if len(strings.TrimSpace(line)) == 0 {
			continue
		}
		items = append(items, ParseLiteral(line))
	}
	return items
}
