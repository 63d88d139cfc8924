package layer

import (
	"fmt"

	"github.com/vizbind/layerwire/buffer"
	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/internal/strcase"
	"github.com/vizbind/layerwire/table"
)

// BufferDescriptor describes one column converted to a flat numeric buffer
// for the binary side channel.
//
// Descriptors are created by extraction and never mutated afterwards; the
// transport package serializes them independently of the JSON document.
type BufferDescriptor struct {
	// LayerID identifies the owning layer, so the consumer can route the
	// buffer to the right layer instance.
	LayerID string

	// ColumnName is the dataset column this buffer was built from.
	ColumnName string

	// Accessor is the lowerCamel name of the layer field bound to the
	// column, as the receiving engine expects it.
	Accessor string

	// Data is the flattened numeric buffer.
	Data *buffer.Buffer

	// StartIndices holds per-row start offsets for variable-length columns,
	// nil for scalar and fixed-vector columns.
	StartIndices []int

	// Length is the row count of the source column.
	Length int

	// Size is the per-row element count.
	Size int
}

// ExtractBinary converts the numeric columns of dataset into buffer
// descriptors for layerID, removing successfully converted bindings from
// fields so no attribute travels on both channels.
//
// The second result names the columns that could not be converted (non
// numeric element types); the caller re-derives the JSON row records
// restricted to exactly those columns. Their accessor bindings are left
// untouched.
//
// Extraction is all-or-nothing: on any error no descriptors are returned
// and fields is left unmodified. Errors are errs.ErrNotTabular when dataset
// is not a table, errs.ErrUnboundColumn when a numeric column has no field
// bound to it, and errs.ErrRaggedColumn for inconsistent nested rows.
func ExtractBinary(dataset any, fields *FieldMap, layerID string) ([]BufferDescriptor, []string, error) {
	tbl, ok := dataset.(*table.Table)
	if !ok {
		return nil, nil, fmt.Errorf("%w: got %T", errs.ErrNotTabular, dataset)
	}

	bindings := invertAccessors(fields)

	var (
		descriptors []BufferDescriptor
		unconverted []string
		converted   []string
	)
	for _, col := range tbl.Columns() {
		info, err := col.Classify()
		if err != nil {
			return nil, nil, err
		}

		buf, numeric := buffer.FromColumn(col.Cells)
		if !numeric {
			unconverted = append(unconverted, col.Name)
			continue
		}

		fieldName, bound := bindings[col.Name]
		if !bound {
			return nil, nil, fmt.Errorf("%w: %q", errs.ErrUnboundColumn, col.Name)
		}

		converted = append(converted, fieldName)
		descriptors = append(descriptors, BufferDescriptor{
			LayerID:      layerID,
			ColumnName:   col.Name,
			Accessor:     strcase.CamelAndLower(fieldName),
			Data:         buf,
			StartIndices: info.StartIndices,
			Length:       info.Length,
			Size:         info.Size,
		})
	}

	// Bindings are removed only after the whole table converted cleanly, so
	// a failing column cannot leave the field mapping half-stripped.
	for _, fieldName := range converted {
		fields.Delete(fieldName)
	}

	return descriptors, unconverted, nil
}

// invertAccessors derives the column-name-to-field-name map from the raw
// field values. Only plain string values participate: list-valued fields
// are array accessors over several columns and structurally complex values
// cannot name a column.
func invertAccessors(fields *FieldMap) map[string]string {
	bindings := make(map[string]string)
	for _, name := range fields.Keys() {
		raw, _ := fields.Raw(name)
		if columnName, ok := raw.(string); ok {
			// Later fields win on collision, matching map-inversion order.
			bindings[columnName] = name
		}
	}

	return bindings
}
