package generator

import "fmt"

// BuildPrompt creates the instruction we send to the model.
// It tells the AI:
//  1. Its role (SQL assistant)
//  2. The full database schema
//  3. To answer with plain SQL only, no formatting
//  4. The literal user request
//
// Pure function: the same schema text and request always yield the same
// prompt.
func BuildPrompt(schemaText, userRequest string) string {
	return fmt.Sprintf(`You are an SQL assistant. Below is the schema of the database:

%s

Convert the following natural language request into a valid SQL query that can be executed on the above database. Do not include any Markdown formatting or code blocks in your response. Provide only the plain SQL query.

User request: %s
SQL Query:`, schemaText, userRequest)
}
