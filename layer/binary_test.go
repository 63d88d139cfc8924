package layer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/table"
)

func numericFields(t *testing.T) *FieldMap {
	t.Helper()
	m := NewFieldMap()
	m.Set("get_lat", "lat")
	m.Set("get_lng", "lng")

	return m
}

func TestExtractBinary_ScalarColumns(t *testing.T) {
	fields := numericFields(t)
	tbl, err := table.New(
		table.Column{Name: "lat", Cells: []any{1.0, 2.0, 3.0}},
		table.Column{Name: "lng", Cells: []any{-1.0, -2.0, -3.0}},
	)
	require.NoError(t, err)

	descriptors, unconverted, err := ExtractBinary(tbl, fields, "layer-1")
	require.NoError(t, err)
	require.Empty(t, unconverted)
	require.Len(t, descriptors, 2)

	d := descriptors[0]
	require.Equal(t, "layer-1", d.LayerID)
	require.Equal(t, "lat", d.ColumnName)
	require.Equal(t, "getLat", d.Accessor, "accessor name is case-converted")
	require.Equal(t, 3, d.Length)
	require.Equal(t, 1, d.Size)
	require.Nil(t, d.StartIndices)
	require.Equal(t, []float64{1, 2, 3}, d.Data.Float64s())

	require.Equal(t, 0, fields.Len(), "converted bindings must leave the field mapping")
}

func TestExtractBinary_NonNumericColumnStaysInJSON(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("get_lat", "lat")
	fields.Set("get_label", "city")

	tbl, err := table.New(
		table.Column{Name: "lat", Cells: []any{1.0, 2.0}},
		table.Column{Name: "city", Cells: []any{"sf", "la"}},
	)
	require.NoError(t, err)

	descriptors, unconverted, err := ExtractBinary(tbl, fields, "layer-1")
	require.NoError(t, err)
	require.Equal(t, []string{"city"}, unconverted)
	require.Len(t, descriptors, 1)
	require.Equal(t, "lat", descriptors[0].ColumnName)

	_, ok := fields.Get("get_label")
	require.True(t, ok, "unconverted column's binding must remain")
	_, ok = fields.Get("get_lat")
	require.False(t, ok)
}

func TestExtractBinary_FixedVectorColumn(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("get_path", "path")

	tbl, err := table.New(table.Column{Name: "path", Cells: []any{
		[]float64{0, 0},
		[]float64{1, 1},
		[]float64{2, 2},
	}})
	require.NoError(t, err)

	descriptors, unconverted, err := ExtractBinary(tbl, fields, "layer-1")
	require.NoError(t, err)
	require.Empty(t, unconverted)
	require.Len(t, descriptors, 1)

	d := descriptors[0]
	require.Equal(t, "getPath", d.Accessor)
	require.Equal(t, 3, d.Length)
	require.Equal(t, 2, d.Size)
	require.Nil(t, d.StartIndices, "uniform rows need no start offsets")
	require.Equal(t, []float64{0, 0, 1, 1, 2, 2}, d.Data.Float64s())
}

func TestExtractBinary_VariableVectorColumn(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("get_points", "points")

	tbl, err := table.New(table.Column{Name: "points", Cells: []any{
		[]int{0},
		[]int{1, 2},
		[]int{3, 4, 5},
	}})
	require.NoError(t, err)

	descriptors, _, err := ExtractBinary(tbl, fields, "layer-1")
	require.NoError(t, err)
	require.Len(t, descriptors, 1)

	d := descriptors[0]
	require.Equal(t, []int{0, 1, 3}, d.StartIndices)
	require.Equal(t, 3, d.Length)
	require.Equal(t, 1, d.Size, "size comes from the first row's trailing dimension")
	require.Equal(t, []int64{0, 1, 2, 3, 4, 5}, d.Data.Int64s())
}

func TestExtractBinary_NotTabular(t *testing.T) {
	fields := numericFields(t)

	for name, dataset := range map[string]any{
		"records":  []map[string]any{{"lat": 1.0}},
		"url":      "https://example.com/data.csv",
		"nil data": nil,
	} {
		t.Run(name, func(t *testing.T) {
			_, _, err := ExtractBinary(dataset, fields, "layer-1")
			require.ErrorIs(t, err, errs.ErrNotTabular)
		})
	}
}

func TestExtractBinary_UnboundColumn(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("get_lat", "lat")

	tbl, err := table.New(
		table.Column{Name: "lat", Cells: []any{1.0}},
		table.Column{Name: "elevation", Cells: []any{10.0}},
	)
	require.NoError(t, err)

	descriptors, unconverted, err := ExtractBinary(tbl, fields, "layer-1")
	require.ErrorIs(t, err, errs.ErrUnboundColumn)
	require.Nil(t, descriptors, "no partial results on error")
	require.Nil(t, unconverted)

	_, ok := fields.Get("get_lat")
	require.True(t, ok, "field mapping must be untouched on error")
}

func TestExtractBinary_RaggedColumn(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("get_path", "path")

	tbl, err := table.New(table.Column{Name: "path", Cells: []any{
		[]any{[]float64{0, 0}},
		[]any{[]float64{1, 1, 1}},
	}})
	require.NoError(t, err)

	_, _, err = ExtractBinary(tbl, fields, "layer-1")
	require.ErrorIs(t, err, errs.ErrRaggedColumn)
}

func TestInvertAccessors(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("get_lat", "lat")
	fields.Set("get_position", []string{"lng", "lat"})
	fields.Set("radius", 100)

	bindings := invertAccessors(fields)
	require.Equal(t, map[string]string{"lat": "get_lat"}, bindings,
		"only plain string values participate in inversion")
}

func TestInvertAccessors_LaterFieldWins(t *testing.T) {
	fields := NewFieldMap()
	fields.Set("get_a", "val")
	fields.Set("get_b", "val")

	bindings := invertAccessors(fields)
	require.Equal(t, "get_b", bindings["val"])
}
