package schema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Describe reads the live catalog of the connected database and returns its
// schema. Tables come back in catalog order, columns in declaration order,
// foreign keys in catalog order. Engine catalog tables are excluded.
//
// The connection is borrowed, never closed. Catalog query failures propagate
// to the caller; nothing downstream can run without a schema.
func Describe(ctx context.Context, db *sql.DB, driver string) (*Schema, error) {
	switch driver {
	case "sqlite3":
		return describeSQLite(ctx, db)
	case "pgx":
		return describePostgres(ctx, db)
	default:
		return nil, fmt.Errorf("describe schema: unsupported driver %q", driver)
	}
}

func describeSQLite(ctx context.Context, db *sql.DB) (*Schema, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type='table' AND name NOT LIKE 'sqlite_%'")
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	s := &Schema{}
	for _, name := range names {
		t, err := describeSQLiteTable(ctx, db, name)
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, t)
	}
	return s, nil
}

func describeSQLiteTable(ctx context.Context, db *sql.DB, name string) (*Table, error) {
	t := &Table{Name: name}

	// PRAGMA takes no bind parameters, so the identifier is quoted inline.
	cols, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(name)))
	if err != nil {
		return nil, fmt.Errorf("table_info %s: %w", name, err)
	}
	defer cols.Close()
	for cols.Next() {
		var (
			cid, notNull, pk int
			colName, colType string
			dflt             sql.NullString
		)
		if err := cols.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan column of %s: %w", name, err)
		}
		t.Columns = append(t.Columns, Column{Name: colName, Type: colType})
	}
	if err := cols.Err(); err != nil {
		return nil, fmt.Errorf("table_info %s: %w", name, err)
	}

	fks, err := db.QueryContext(ctx, fmt.Sprintf("PRAGMA foreign_key_list(%s)", quoteIdent(name)))
	if err != nil {
		return nil, fmt.Errorf("foreign_key_list %s: %w", name, err)
	}
	defer fks.Close()
	for fks.Next() {
		var (
			id, seq            int
			refTable, from     string
			to                 sql.NullString
			onUpdate, onDelete string
			match              string
		)
		if err := fks.Scan(&id, &seq, &refTable, &from, &to, &onUpdate, &onDelete, &match); err != nil {
			return nil, fmt.Errorf("scan foreign key of %s: %w", name, err)
		}
		t.ForeignKeys = append(t.ForeignKeys, ForeignKey{
			From:      from,
			RefTable:  refTable,
			RefColumn: to.String,
		})
	}
	if err := fks.Err(); err != nil {
		return nil, fmt.Errorf("foreign_key_list %s: %w", name, err)
	}
	return t, nil
}

func describePostgres(ctx context.Context, db *sql.DB) (*Schema, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		 ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	s := &Schema{}
	for _, name := range names {
		t, err := describePostgresTable(ctx, db, name)
		if err != nil {
			return nil, err
		}
		s.Tables = append(s.Tables, t)
	}
	return s, nil
}

func describePostgresTable(ctx context.Context, db *sql.DB, name string) (*Table, error) {
	t := &Table{Name: name}

	cols, err := db.QueryContext(ctx,
		`SELECT column_name, data_type FROM information_schema.columns
		 WHERE table_schema = 'public' AND table_name = $1
		 ORDER BY ordinal_position`, name)
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", name, err)
	}
	defer cols.Close()
	for cols.Next() {
		var colName, colType string
		if err := cols.Scan(&colName, &colType); err != nil {
			return nil, fmt.Errorf("scan column of %s: %w", name, err)
		}
		t.Columns = append(t.Columns, Column{Name: colName, Type: colType})
	}
	if err := cols.Err(); err != nil {
		return nil, fmt.Errorf("columns of %s: %w", name, err)
	}

	// Pairing referencing and referenced columns by ordinal position keeps
	// composite foreign keys from producing a cross product.
	fks, err := db.QueryContext(ctx,
		`SELECT kcu.column_name, ref.table_name, ref.column_name
		 FROM information_schema.referential_constraints rc
		 JOIN information_schema.key_column_usage kcu
		   ON rc.constraint_name = kcu.constraint_name
		  AND rc.constraint_schema = kcu.constraint_schema
		 JOIN information_schema.key_column_usage ref
		   ON rc.unique_constraint_name = ref.constraint_name
		  AND rc.unique_constraint_schema = ref.constraint_schema
		  AND kcu.position_in_unique_constraint = ref.ordinal_position
		 WHERE kcu.table_schema = 'public' AND kcu.table_name = $1
		 ORDER BY rc.constraint_name, kcu.ordinal_position`, name)
	if err != nil {
		return nil, fmt.Errorf("foreign keys of %s: %w", name, err)
	}
	defer fks.Close()
	for fks.Next() {
		var fk ForeignKey
		if err := fks.Scan(&fk.From, &fk.RefTable, &fk.RefColumn); err != nil {
			return nil, fmt.Errorf("scan foreign key of %s: %w", name, err)
		}
		t.ForeignKeys = append(t.ForeignKeys, fk)
	}
	if err := fks.Err(); err != nil {
		return nil, fmt.Errorf("foreign keys of %s: %w", name, err)
	}
	return t, nil
}

func quoteIdent(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
