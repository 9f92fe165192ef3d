package input

import "strings"

// Format names how an input file is decoded into list items.
type Format = string

const (
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatLines Format = "lines"
)

var formatToExtensions = map[Format][]string{
	FormatJSON:  {"json"},
	FormatCSV:   {"csv", "tsv"},
	FormatLines: {"txt", "lst", "list"},
}

var extensionToFormat = make(map[string]Format)

func init() {
	for format, extensions := range formatToExtensions {
		for _, extension := range extensions {
			extensionToFormat[extension] = format
		}
	}
}

// GetFormatFromExtension returns the format for a file extension, with or
// without the leading dot. Lookup ignores case.
func GetFormatFromExtension(ext string) (Format, bool) {
	if len(ext) == 0 {
		return "", false
	}
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	format, found := extensionToFormat[ext]
	return format, found
}
