// Package executor validates and runs model-generated SQL against the
// shared connection. From Execute inward the contract is total: every
// engine failure is folded into a Result, nothing escapes as a Go error.
package executor

import (
	"context"
	"database/sql"
)

// ResultKind tags the variant carried by a Result.
type ResultKind int

const (
	KindRows   ResultKind = iota // read statement, Columns and Rows set
	KindStatus                   // write statement committed, Message set
	KindError                    // validation or execution failure, Message set
)

// Result is the outcome of one statement. For KindRows, Columns carries the
// result-set column order and each row in Rows aligns with it, so a row is
// an ordered column-name → value mapping. A read matching zero rows yields
// an empty Rows slice, never an error and never nil.
type Result struct {
	Kind    ResultKind
	Columns []string
	Rows    [][]any
	Message string
}

// Executor runs candidate SQL against one borrowed connection.
// It never closes the connection; the host owns its lifecycle.
type Executor struct {
	db       *sql.DB
	driver   string
	readOnly bool
}

// New returns an Executor bound to the given connection. driver is the
// database/sql driver name ("sqlite3" or "pgx") and selects the dry-run
// statement. With readOnly set, non-read statements are refused outright.
func New(db *sql.DB, driver string, readOnly bool) *Executor {
	return &Executor{db: db, driver: driver, readOnly: readOnly}
}

// Execute validates the statement, then runs it. Validation failure
// short-circuits to an error result without touching the database. Reads
// materialize every returned row; writes run inside a transaction and
// commit. Engine errors in either path become error results.
func (e *Executor) Execute(ctx context.Context, sqlText string) Result {
	if e.readOnly && !IsReadStatement(sqlText) {
		return Result{Kind: KindError, Message: "read-only mode: refusing to run a write statement"}
	}
	if out := e.Validate(ctx, sqlText); !out.Valid {
		return Result{Kind: KindError, Message: "Invalid SQL Query: " + out.Diagnostic}
	}
	if IsReadStatement(sqlText) {
		return e.query(ctx, sqlText)
	}
	return e.exec(ctx, sqlText)
}

func (e *Executor) query(ctx context.Context, sqlText string) Result {
	rows, err := e.db.QueryContext(ctx, sqlText)
	if err != nil {
		return execError(err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return execError(err)
	}

	out := make([][]any, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return execError(err)
		}
		// []byte values print as addresses; show them as text.
		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		out = append(out, values)
	}
	if err := rows.Err(); err != nil {
		return execError(err)
	}
	return Result{Kind: KindRows, Columns: cols, Rows: out}
}

func (e *Executor) exec(ctx context.Context, sqlText string) Result {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return execError(err)
	}
	if _, err := tx.ExecContext(ctx, sqlText); err != nil {
		tx.Rollback()
		return execError(err)
	}
	if err := tx.Commit(); err != nil {
		return execError(err)
	}
	return Result{Kind: KindStatus, Message: "Query executed successfully."}
}

func execError(err error) Result {
	return Result{Kind: KindError, Message: "SQL execution error: " + err.Error()}
}
