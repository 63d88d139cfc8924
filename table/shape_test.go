package table

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/format"
)

func TestClassify_Scalar(t *testing.T) {
	col := Column{Name: "lat", Cells: []any{1.0, 2.0, 3.0}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeScalar, info.Shape)
	require.Equal(t, 3, info.Length)
	require.Equal(t, 1, info.Size)
	require.Nil(t, info.StartIndices)
}

func TestClassify_MixedCellsAreScalar(t *testing.T) {
	// One non-list cell makes the whole column scalar-shaped.
	col := Column{Name: "v", Cells: []any{[]float64{1, 2}, 3.0}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeScalar, info.Shape)
}

func TestClassify_FixedVector(t *testing.T) {
	col := Column{Name: "path", Cells: []any{
		[]float64{0, 0},
		[]float64{1, 1},
		[]float64{2, 2},
	}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeFixedVector, info.Shape)
	require.Equal(t, 3, info.Length)
	require.Equal(t, 2, info.Size)
	require.Nil(t, info.StartIndices, "uniform rows need no start offsets")
}

func TestClassify_VariableVector(t *testing.T) {
	col := Column{Name: "points", Cells: []any{
		[]float64{0},
		[]float64{1, 2},
		[]float64{3, 4, 5},
	}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeVariableVector, info.Shape)
	require.Equal(t, 3, info.Length)
	require.Equal(t, 1, info.Size, "size comes from the first row's trailing dimension")
	require.Equal(t, []int{0, 1, 3}, info.StartIndices)
}

func TestClassify_NestedRowsAreVariable(t *testing.T) {
	// Paths with a uniform point count still need start offsets: Length and
	// Size alone cannot locate row boundaries in the flattened buffer.
	col := Column{Name: "path", Cells: []any{
		[]any{[]float64{0, 0}, []float64{1, 1}},
		[]any{[]float64{2, 2}, []float64{3, 3}},
	}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeVariableVector, info.Shape)
	require.Equal(t, 2, info.Length)
	require.Equal(t, 2, info.Size)
	require.Equal(t, []int{0, 2}, info.StartIndices)
}

func TestClassify_RaggedNestedRows(t *testing.T) {
	col := Column{Name: "path", Cells: []any{
		[]any{[]float64{0, 0}},
		[]any{[]float64{1, 1, 1}},
	}}

	_, err := col.Classify()
	require.ErrorIs(t, err, errs.ErrRaggedColumn)
}

func TestClassify_StringCellsAreScalar(t *testing.T) {
	col := Column{Name: "city", Cells: []any{"sf", "la"}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeScalar, info.Shape)
}

func TestClassify_ByteSlicesAreScalar(t *testing.T) {
	col := Column{Name: "blob", Cells: []any{[]byte{1}, []byte{2}}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeScalar, info.Shape)
}

func TestClassify_EmptyColumn(t *testing.T) {
	col := Column{Name: "empty", Cells: nil}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeScalar, info.Shape)
	require.Equal(t, 0, info.Length)
	require.Equal(t, 1, info.Size)
}

func TestClassify_TypedIntRows(t *testing.T) {
	col := Column{Name: "rgb", Cells: []any{
		[]int{255, 0, 0},
		[]int{0, 255, 0},
	}}

	info, err := col.Classify()
	require.NoError(t, err)
	require.Equal(t, format.ShapeFixedVector, info.Shape)
	require.Equal(t, 3, info.Size)
}
