package schema

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribePostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("information_schema.tables").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("order_items"))
	mock.ExpectQuery("information_schema.columns").
		WithArgs("order_items").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "data_type"}).
			AddRow("order_id", "integer").
			AddRow("line_no", "integer").
			AddRow("sku", "text"))
	// A composite foreign key comes back as one row per column pair,
	// already aligned by ordinal position.
	mock.ExpectQuery("referential_constraints").
		WithArgs("order_items").
		WillReturnRows(sqlmock.NewRows([]string{"column_name", "table_name", "column_name"}).
			AddRow("order_id", "order_lines", "order_id").
			AddRow("line_no", "order_lines", "line_no"))

	s, err := Describe(context.Background(), db, "pgx")
	require.NoError(t, err)
	require.Len(t, s.Tables, 1)

	tbl := s.Tables[0]
	assert.Equal(t, "order_items", tbl.Name)
	require.Len(t, tbl.Columns, 3)
	assert.Equal(t, Column{Name: "order_id", Type: "integer"}, tbl.Columns[0])

	require.Len(t, tbl.ForeignKeys, 2)
	assert.Equal(t, ForeignKey{From: "order_id", RefTable: "order_lines", RefColumn: "order_id"}, tbl.ForeignKeys[0])
	assert.Equal(t, ForeignKey{From: "line_no", RefTable: "order_lines", RefColumn: "line_no"}, tbl.ForeignKeys[1])

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDescribePostgresCatalogError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("information_schema.tables").WillReturnError(assert.AnError)

	_, err = Describe(context.Background(), db, "pgx")
	assert.Error(t, err)
}
