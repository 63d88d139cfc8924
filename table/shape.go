package table

import (
	"fmt"
	"reflect"

	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/format"
)

// ShapeInfo is the result of classifying one column's row-wise shape.
//
// The classification is performed once per column; extraction branches on
// Shape instead of re-inspecting cell values.
type ShapeInfo struct {
	// Shape is the row-wise shape category.
	Shape format.ColumnShape

	// Length is the row count of the column.
	Length int

	// Size is the per-row element count: 1 for scalar columns, the trailing
	// dimension of the first row otherwise.
	Size int

	// StartIndices holds, for variable-length columns only, the flat-buffer
	// start offset of each row: entry i is the sum of the top-level lengths
	// of rows 0..i-1, so it always begins with 0. Nil for other shapes.
	StartIndices []int
}

// Classify determines the row-wise shape of the column.
//
// A column is vector-shaped when every cell is list-like (a slice or array,
// excluding byte slices, mirroring how tabular libraries treat raw strings).
// Flat vector rows of uniform length form a fixed vector: the consumer can
// slice the buffer with Length and Size alone, so no start offsets are
// produced. Everything else (ragged flat rows, and nested rows such as a
// path column where each row is a list of points) is a variable vector
// with per-row start offsets.
//
// Nested rows must all share the trailing dimension of the first row;
// otherwise the flat buffer could not be sliced back into rows and
// errs.ErrRaggedColumn is returned. Ragged flat rows carry their own length
// in StartIndices, so no such constraint applies to them.
func (c Column) Classify() (ShapeInfo, error) {
	info := ShapeInfo{
		Shape:  format.ShapeScalar,
		Length: len(c.Cells),
		Size:   1,
	}

	if len(c.Cells) == 0 {
		return info, nil
	}

	for _, cell := range c.Cells {
		if !isListLike(cell) {
			return info, nil
		}
	}

	first := reflect.ValueOf(c.Cells[0])
	info.Size = trailingDim(c.Cells[0])
	nested := first.Len() > 0 && isListLike(first.Index(0).Interface())

	uniform := true
	rowLen := first.Len()
	for _, cell := range c.Cells[1:] {
		if reflect.ValueOf(cell).Len() != rowLen {
			uniform = false
			break
		}
	}

	if nested {
		for i, cell := range c.Cells {
			if dim := trailingDim(cell); dim != info.Size {
				return ShapeInfo{}, fmt.Errorf("%w: column %q row %d has trailing dimension %d, expected %d",
					errs.ErrRaggedColumn, c.Name, i, dim, info.Size)
			}
		}
	}

	if uniform && !nested {
		info.Shape = format.ShapeFixedVector
		return info, nil
	}

	info.Shape = format.ShapeVariableVector
	info.StartIndices = make([]int, len(c.Cells))
	offset := 0
	for i, cell := range c.Cells {
		info.StartIndices[i] = offset
		offset += reflect.ValueOf(cell).Len()
	}

	return info, nil
}

// isListLike reports whether v is a slice or array, excluding byte slices.
func isListLike(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Type().Elem().Kind() != reflect.Uint8
	default:
		return false
	}
}

// trailingDim returns the length of the innermost vector of v, following
// first elements: the length of v itself when its rows are flat, the inner
// vector length when nested.
func trailingDim(v any) int {
	rv := reflect.ValueOf(v)
	for {
		if rv.Len() == 0 {
			return 0
		}
		first := rv.Index(0).Interface()
		if !isListLike(first) {
			return rv.Len()
		}
		rv = reflect.ValueOf(first)
	}
}
