// Package pipeline wires the translation stages end to end:
// introspect → build prompt → generate → sanitize → validate → execute.
// Both hosts (the one-shot command and the chat TUI) drive requests
// through it one at a time.
package pipeline

import (
	"context"
	"database/sql"

	"github.com/satyammistari/text2sql-ai/internal/executor"
	"github.com/satyammistari/text2sql-ai/internal/generator"
	"github.com/satyammistari/text2sql-ai/internal/schema"
)

// Config carries the knobs the hosts supply.
type Config struct {
	// ReadOnly makes the executor refuse write statements.
	ReadOnly bool
	// MaxSchemaBytes caps the serialized schema handed to the prompt
	// builder; 0 means no cap.
	MaxSchemaBytes int
}

// Pipeline borrows one long-lived connection for its whole lifetime and is
// otherwise stateless across requests. Callers must serialize Run; the
// pipeline applies no internal locking.
type Pipeline struct {
	db        *sql.DB
	driver    string
	gen       *generator.Client
	exec      *executor.Executor
	maxSchema int
}

// New builds a pipeline over an open connection and a completion client.
func New(db *sql.DB, driver string, gen *generator.Client, cfg Config) *Pipeline {
	return &Pipeline{
		db:        db,
		driver:    driver,
		gen:       gen,
		exec:      executor.New(db, driver, cfg.ReadOnly),
		maxSchema: cfg.MaxSchemaBytes,
	}
}

// Turn is the pair of terminal outputs of one request: the generated SQL
// for display, and the execution result.
type Turn struct {
	SQL    string
	Result executor.Result
}

// Run executes one request end to end. The schema is read fresh from the
// catalog on every call. Introspection and generation failures propagate —
// no SQL can be produced without them; everything downstream of generation
// is folded into the Result.
func (p *Pipeline) Run(ctx context.Context, request string) (*Turn, error) {
	s, err := schema.Describe(ctx, p.db, p.driver)
	if err != nil {
		return nil, err
	}
	prompt := generator.BuildPrompt(s.Text(p.maxSchema), request)
	raw, err := p.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}
	sqlText := generator.Clean(raw)
	return &Turn{SQL: sqlText, Result: p.exec.Execute(ctx, sqlText)}, nil
}

// Schema returns the serialized schema as the prompt builder would see it.
func (p *Pipeline) Schema(ctx context.Context) (string, error) {
	s, err := schema.Describe(ctx, p.db, p.driver)
	if err != nil {
		return "", err
	}
	return s.Text(p.maxSchema), nil
}
