// Package buffer builds flat typed buffers from dynamically typed column
// cells.
//
// A Buffer is the numeric payload of one converted column: every leaf value
// of the column (scalars, or the elements of vector rows) flattened into a
// single slice of one element type. The element type is inferred from the
// leaves: any float makes the buffer Float64, otherwise signed integers give
// Int64 and purely unsigned integers give Uint64. Columns containing any
// non-numeric leaf (bools included) cannot be converted and stay in the JSON
// row-record fallback.
package buffer

import (
	"fmt"
	"math"
	"reflect"

	"github.com/vizbind/layerwire/endian"
	"github.com/vizbind/layerwire/format"
)

// Buffer is a flat numeric buffer with a single element type.
type Buffer struct {
	dtype  format.DType
	ints   []int64
	uints  []uint64
	floats []float64
}

// FromColumn flattens the column cells into a typed buffer.
//
// Nested slices are flattened depth-first in row order, so the buffer holds
// all rows' values concatenated with no sub-structure preserved. The second
// return value is false when any leaf is non-numeric; such columns must stay
// in the row-record JSON representation.
func FromColumn(cells []any) (*Buffer, bool) {
	var w walker
	for _, cell := range cells {
		if !w.walk(cell) {
			return nil, false
		}
	}

	return w.build(), true
}

// FromFloat64s wraps values in a Float64 buffer.
func FromFloat64s(values []float64) *Buffer {
	return &Buffer{dtype: format.DTypeFloat64, floats: values}
}

// FromInt64s wraps values in an Int64 buffer.
func FromInt64s(values []int64) *Buffer {
	return &Buffer{dtype: format.DTypeInt64, ints: values}
}

// FromUint64s wraps values in a Uint64 buffer.
func FromUint64s(values []uint64) *Buffer {
	return &Buffer{dtype: format.DTypeUint64, uints: values}
}

// DType returns the element type of the buffer.
func (b *Buffer) DType() format.DType {
	return b.dtype
}

// Len returns the number of elements in the buffer.
func (b *Buffer) Len() int {
	switch b.dtype {
	case format.DTypeInt64:
		return len(b.ints)
	case format.DTypeUint64:
		return len(b.uints)
	case format.DTypeFloat64:
		return len(b.floats)
	default:
		return 0
	}
}

// Int64s returns the backing slice for an Int64 buffer, nil otherwise.
func (b *Buffer) Int64s() []int64 {
	return b.ints
}

// Uint64s returns the backing slice for a Uint64 buffer, nil otherwise.
func (b *Buffer) Uint64s() []uint64 {
	return b.uints
}

// Float64s returns the backing slice for a Float64 buffer, nil otherwise.
func (b *Buffer) Float64s() []float64 {
	return b.floats
}

// AsFloat64s returns the buffer elements converted to float64.
// For Float64 buffers the backing slice is returned directly.
func (b *Buffer) AsFloat64s() []float64 {
	switch b.dtype {
	case format.DTypeFloat64:
		return b.floats
	case format.DTypeInt64:
		out := make([]float64, len(b.ints))
		for i, v := range b.ints {
			out[i] = float64(v)
		}

		return out
	case format.DTypeUint64:
		out := make([]float64, len(b.uints))
		for i, v := range b.uints {
			out[i] = float64(v)
		}

		return out
	default:
		return nil
	}
}

// AppendBytes appends the buffer elements to dst as fixed 8-byte values in
// the engine's byte order and returns the extended slice. Float elements are
// appended as their IEEE 754 bit patterns.
func (b *Buffer) AppendBytes(dst []byte, engine endian.EndianEngine) []byte {
	switch b.dtype {
	case format.DTypeInt64:
		for _, v := range b.ints {
			dst = engine.AppendUint64(dst, uint64(v))
		}
	case format.DTypeUint64:
		for _, v := range b.uints {
			dst = engine.AppendUint64(dst, v)
		}
	case format.DTypeFloat64:
		for _, v := range b.floats {
			dst = engine.AppendUint64(dst, math.Float64bits(v))
		}
	}

	return dst
}

// Decode reconstructs a buffer of the given element type from bytes
// produced by AppendBytes with the same engine.
func Decode(data []byte, dtype format.DType, engine endian.EndianEngine) (*Buffer, error) {
	elemSize := dtype.ElemSize()
	if elemSize == 0 {
		return nil, fmt.Errorf("cannot decode buffer with dtype %s", dtype)
	}
	if len(data)%elemSize != 0 {
		return nil, fmt.Errorf("buffer payload length %d is not a multiple of %d", len(data), elemSize)
	}

	n := len(data) / elemSize
	switch dtype {
	case format.DTypeInt64:
		values := make([]int64, n)
		for i := range values {
			values[i] = int64(engine.Uint64(data[i*elemSize:]))
		}

		return FromInt64s(values), nil
	case format.DTypeUint64:
		values := make([]uint64, n)
		for i := range values {
			values[i] = engine.Uint64(data[i*elemSize:])
		}

		return FromUint64s(values), nil
	default:
		values := make([]float64, n)
		for i := range values {
			values[i] = math.Float64frombits(engine.Uint64(data[i*elemSize:]))
		}

		return FromFloat64s(values), nil
	}
}

// walker accumulates flattened leaves and tracks which numeric kinds were
// seen, deferring the dtype decision until all cells are walked.
type walker struct {
	leaves      []leaf
	sawFloat    bool
	sawSigned   bool
	sawUnsigned bool
}

type leaf struct {
	i int64
	u uint64
	f float64
	k format.DType
}

func (w *walker) walk(v any) bool {
	switch n := v.(type) {
	case int:
		w.pushInt(int64(n))
	case int8:
		w.pushInt(int64(n))
	case int16:
		w.pushInt(int64(n))
	case int32:
		w.pushInt(int64(n))
	case int64:
		w.pushInt(n)
	case uint:
		w.pushUint(uint64(n))
	case uint8:
		w.pushUint(uint64(n))
	case uint16:
		w.pushUint(uint64(n))
	case uint32:
		w.pushUint(uint64(n))
	case uint64:
		w.pushUint(n)
	case float32:
		w.pushFloat(float64(n))
	case float64:
		w.pushFloat(n)
	case []byte:
		// Raw byte strings are opaque values, not vectors of uint8.
		return false
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false
		}
		for i := 0; i < rv.Len(); i++ {
			if !w.walk(rv.Index(i).Interface()) {
				return false
			}
		}
	}

	return true
}

func (w *walker) pushInt(v int64) {
	w.sawSigned = true
	w.leaves = append(w.leaves, leaf{i: v, k: format.DTypeInt64})
}

func (w *walker) pushUint(v uint64) {
	w.sawUnsigned = true
	w.leaves = append(w.leaves, leaf{u: v, k: format.DTypeUint64})
}

func (w *walker) pushFloat(v float64) {
	w.sawFloat = true
	w.leaves = append(w.leaves, leaf{f: v, k: format.DTypeFloat64})
}

func (w *walker) build() *Buffer {
	switch {
	case w.sawFloat:
		values := make([]float64, len(w.leaves))
		for i, l := range w.leaves {
			switch l.k {
			case format.DTypeInt64:
				values[i] = float64(l.i)
			case format.DTypeUint64:
				values[i] = float64(l.u)
			default:
				values[i] = l.f
			}
		}

		return FromFloat64s(values)
	case w.sawUnsigned && !w.sawSigned:
		values := make([]uint64, len(w.leaves))
		for i, l := range w.leaves {
			values[i] = l.u
		}

		return FromUint64s(values)
	case w.sawSigned || w.sawUnsigned:
		values := make([]int64, len(w.leaves))
		for i, l := range w.leaves {
			if l.k == format.DTypeUint64 {
				values[i] = int64(l.u)
			} else {
				values[i] = l.i
			}
		}

		return FromInt64s(values)
	default:
		// No leaves at all: an empty column converts to an empty float buffer.
		return FromFloat64s(nil)
	}
}
