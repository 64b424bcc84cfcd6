package generator

import (
	"regexp"
	"strings"
)

var sqlFence = regexp.MustCompile("(?i)```sql")

// Clean strips markdown code fences from a raw model response and trims
// surrounding whitespace. Opening fences tagged "sql" are matched
// case-insensitively; bare fences are removed wherever they appear.
//
// Clean is idempotent — Clean(Clean(x)) == Clean(x) — and leaves SQL that
// contains no fence markers untouched. It performs no other rewriting.
func Clean(raw string) string {
	sql := sqlFence.ReplaceAllString(raw, "")
	sql = strings.ReplaceAll(sql, "```", "")
	return strings.TrimSpace(sql)
}
