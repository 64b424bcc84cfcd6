package executor

import "context"

// Outcome is the result of a plan-only dry run. Diagnostic carries the
// engine's error text when Valid is false, and is empty otherwise.
type Outcome struct {
	Valid      bool
	Diagnostic string
}

// Validate dry-runs the candidate statement through the engine's planner.
// SQLite uses EXPLAIN QUERY PLAN, Postgres plain EXPLAIN; neither
// materializes results or mutates rows, so the database is observably
// unchanged whatever the outcome. Engine failures are carried in the
// Outcome, never returned as errors.
func (e *Executor) Validate(ctx context.Context, sqlText string) Outcome {
	rows, err := e.db.QueryContext(ctx, e.dryRunPrefix()+sqlText)
	if err != nil {
		return Outcome{Valid: false, Diagnostic: err.Error()}
	}
	rows.Close()
	return Outcome{Valid: true}
}

func (e *Executor) dryRunPrefix() string {
	if e.driver == "sqlite3" {
		return "EXPLAIN QUERY PLAN "
	}
	return "EXPLAIN "
}
