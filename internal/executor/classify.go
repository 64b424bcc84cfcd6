package executor

import "strings"

var readKeywords = map[string]bool{
	"SELECT":  true,
	"WITH":    true,
	"VALUES":  true,
	"EXPLAIN": true,
	"PRAGMA":  true,
	"SHOW":    true,
}

// IsReadStatement reports whether the statement's leading keyword
// (case-insensitive, whitespace-trimmed) is a read keyword. Everything else
// is treated as a write. Leading-keyword matching is a heuristic, kept
// behind this one function so it can be replaced by real statement parsing
// without touching Execute's control flow.
func IsReadStatement(sqlText string) bool {
	fields := strings.Fields(sqlText)
	if len(fields) == 0 {
		return false
	}
	kw := strings.ToUpper(strings.TrimLeft(fields[0], "("))
	return readKeywords[kw]
}
