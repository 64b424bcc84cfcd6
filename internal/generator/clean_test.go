package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "no fences",
			raw:  "SELECT * FROM tracks;",
			want: "SELECT * FROM tracks;",
		},
		{
			name: "sql fence",
			raw:  "```sql\nSELECT * FROM tracks;\n```",
			want: "SELECT * FROM tracks;",
		},
		{
			name: "uppercase fence tag",
			raw:  "```SQL\nSELECT 1;\n```",
			want: "SELECT 1;",
		},
		{
			name: "bare fences",
			raw:  "```\nSELECT 1;\n```",
			want: "SELECT 1;",
		},
		{
			name: "nested fences",
			raw:  "```sql\n```sql\nSELECT 1;\n```\n```",
			want: "SELECT 1;",
		},
		{
			name: "surrounding whitespace",
			raw:  "   \n SELECT name FROM artists; \n\n",
			want: "SELECT name FROM artists;",
		},
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "fence markers only",
			raw:  "```sql\n```",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.raw)
			assert.Equal(t, tt.want, got)
			// Idempotence holds for every input.
			assert.Equal(t, got, Clean(got))
		})
	}
}

func TestCleanLeavesContentAlone(t *testing.T) {
	// Fence-free SQL must come back byte-identical apart from trimming:
	// no keyword casing, no statement splitting.
	sql := "select TrackId, Name from tracks where UnitPrice > 0.99 order by Name"
	assert.Equal(t, sql, Clean(sql))
}
