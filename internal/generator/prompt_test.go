package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptDeterministic(t *testing.T) {
	schemaText := "Table: tracks\n  - id (INTEGER)\n  - name (TEXT)\n"
	request := "list all tracks"

	a := BuildPrompt(schemaText, request)
	b := BuildPrompt(schemaText, request)
	assert.Equal(t, a, b)
}

func TestBuildPromptContents(t *testing.T) {
	schemaText := "Table: albums\n  - id (INTEGER)\n"
	request := "how many albums are there"

	p := BuildPrompt(schemaText, request)
	assert.Contains(t, p, schemaText)
	assert.Contains(t, p, "User request: "+request)
	assert.Contains(t, p, "Provide only the plain SQL query")
	assert.Contains(t, p, "SQL Query:")
}
