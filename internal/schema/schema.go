package schema

import (
	"fmt"
	"strings"
)

// Schema holds the introspected tables of one database, in catalog order.
// It is built fresh per request and never cached across requests.
type Schema struct {
	Tables []*Table
}

// Table is one user table with its columns and foreign keys.
type Table struct {
	Name        string
	Columns     []Column
	ForeignKeys []ForeignKey
}

// Column is a table column with its declared type.
type Column struct {
	Name string
	Type string
}

// ForeignKey describes a reference to another table.
type ForeignKey struct {
	From      string
	RefTable  string
	RefColumn string
}

// String returns the full serialized schema text.
func (s *Schema) String() string {
	return s.Text(0)
}

// Text serializes the schema to the block handed to the prompt builder:
// one header line per table, indented column and foreign-key lines, a blank
// line between tables. The output is deterministic for a fixed catalog.
//
// maxBytes > 0 caps the output size: serialization stops at a table
// boundary once the cap would be exceeded and a truncation marker is
// appended. At least one table is always emitted.
func (s *Schema) Text(maxBytes int) string {
	var sb strings.Builder
	for _, t := range s.Tables {
		block := t.text()
		if maxBytes > 0 && sb.Len() > 0 && sb.Len()+len(block) > maxBytes {
			sb.WriteString("-- remaining tables omitted --\n")
			break
		}
		sb.WriteString(block)
	}
	return sb.String()
}

func (t *Table) text() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Table: %s\n", t.Name)
	for _, c := range t.Columns {
		fmt.Fprintf(&sb, "  - %s (%s)\n", c.Name, c.Type)
	}
	for _, fk := range t.ForeignKeys {
		fmt.Fprintf(&sb, "  - Foreign Key: %s references %s(%s)\n", fk.From, fk.RefTable, fk.RefColumn)
	}
	sb.WriteString("\n")
	return sb.String()
}

// TableByName returns the table with the given name, or nil.
func (s *Schema) TableByName(name string) *Table {
	for _, t := range s.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}
