// Package table provides the tabular dataset consumed by binary extraction.
//
// A Table is a set of equal-length named columns in a fixed order. Cells are
// dynamically typed: scalars for plain attribute columns, nested slices for
// vector-valued columns such as positions or paths. The table itself never
// interprets cell values; shape classification and numeric conversion live
// in the shape pass and the buffer package.
package table

import (
	"fmt"

	"github.com/vizbind/layerwire/errs"
)

// Column is one named column of cells in row order.
type Column struct {
	Name  string
	Cells []any
}

// Table is an ordered collection of equal-length columns.
type Table struct {
	columns []Column
	index   map[string]int
	numRows int
}

// New creates a Table from the given columns, preserving their order.
//
// All columns must have the same length and distinct names, and at least
// one column is required.
func New(columns ...Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, errs.ErrEmptyTable
	}

	numRows := len(columns[0].Cells)
	index := make(map[string]int, len(columns))
	for i, col := range columns {
		if len(col.Cells) != numRows {
			return nil, fmt.Errorf("%w: column %q has %d rows, expected %d",
				errs.ErrColumnLengthMismatch, col.Name, len(col.Cells), numRows)
		}
		if _, exists := index[col.Name]; exists {
			return nil, fmt.Errorf("duplicate column name: %q", col.Name)
		}
		index[col.Name] = i
	}

	return &Table{columns: columns, index: index, numRows: numRows}, nil
}

// FromRecords creates a Table from row records, with columns in the given
// order. Missing record keys yield nil cells.
func FromRecords(columnOrder []string, records []map[string]any) (*Table, error) {
	columns := make([]Column, 0, len(columnOrder))
	for _, name := range columnOrder {
		cells := make([]any, len(records))
		for i, record := range records {
			cells[i] = record[name]
		}
		columns = append(columns, Column{Name: name, Cells: cells})
	}

	return New(columns...)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.numRows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}

	return names
}

// Columns returns the columns in table order.
// The returned slice is shared with the table; callers must not modify it.
func (t *Table) Columns() []Column {
	return t.columns
}

// Column returns the named column.
func (t *Table) Column(name string) (Column, error) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, name)
	}

	return t.columns[i], nil
}

// Records re-derives one row-record map per row over all columns.
func (t *Table) Records() ([]map[string]any, error) {
	return t.Select(t.ColumnNames())
}

// Select re-derives row-record maps restricted to exactly the named
// columns. An empty selection still yields one (empty) record per row, so
// the row count survives even when every column went to the binary channel.
func (t *Table) Select(names []string) ([]map[string]any, error) {
	selected := make([]Column, 0, len(names))
	for _, name := range names {
		col, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, col)
	}

	records := make([]map[string]any, t.numRows)
	for i := range records {
		record := make(map[string]any, len(selected))
		for _, col := range selected {
			record[col.Name] = col.Cells[i]
		}
		records[i] = record
	}

	return records, nil
}

// IsTabular reports whether value is a Table.
func IsTabular(value any) bool {
	_, ok := value.(*Table)
	return ok
}
