package jsonvalue

import "github.com/tidwall/pretty"

// Format re-indents raw JSON for diagnostics — debug dumps of a matched
// document, or rendering a mismatch in a test failure message.
func Format(data []byte) []byte {
	return pretty.Pretty(data)
}

// FormatColor is Format with ANSI terminal color codes applied, for
// interactive debugging (e.g. a CLI's -explain flag printing spans).
func FormatColor(data []byte) []byte {
	return pretty.Color(pretty.Pretty(data), nil)
}

// Ugly compacts previously-pretty-printed JSON back to a single line, the
// inverse of Format.
func Ugly(data []byte) []byte {
	return pretty.Ugly(data)
}
