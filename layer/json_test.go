package layer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vizbind/layerwire/codec"
	"github.com/vizbind/layerwire/table"
)

func TestMarshalJSON_Document(t *testing.T) {
	l, err := New("HexagonLayer",
		WithID("hex-1"),
		WithField("get_position", []string{"lng", "lat"}),
		WithField("elevation_scale", 50),
		WithField("color_label", "'red'"),
	)
	require.NoError(t, err)

	out, err := l.ToJSON()
	require.NoError(t, err)

	require.JSONEq(t, `{
		"@@type": "HexagonLayer",
		"id": "hex-1",
		"get_position": "@@=[lng, lat]",
		"elevation_scale": 50,
		"color_label": "red"
	}`, out)
}

func TestMarshalJSON_KeyOrder(t *testing.T) {
	l, err := New("HexagonLayer",
		WithID("hex-1"),
		WithField("b_field", 2),
		WithField("a_field", 1),
	)
	require.NoError(t, err)

	out, err := l.ToJSON()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, `{"@@type":"HexagonLayer","id":"hex-1",`),
		"type and id must lead the document, got %s", out)
	require.Less(t, strings.Index(out, "b_field"), strings.Index(out, "a_field"),
		"fields must keep insertion order")
}

func TestMarshalJSON_IncludesData(t *testing.T) {
	tbl, err := table.New(table.Column{Name: "lat", Cells: []any{1.0, 2.0}})
	require.NoError(t, err)

	l, err := New("ScatterplotLayer", WithID("s-1"), WithData(tbl))
	require.NoError(t, err)

	out, err := l.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"@@type": "ScatterplotLayer",
		"id": "s-1",
		"data": [{"lat": 1}, {"lat": 2}]
	}`, out)
}

func TestMarshalJSON_BinaryModeOmitsConvertedFields(t *testing.T) {
	tbl, err := table.New(
		table.Column{Name: "lat", Cells: []any{1.0}},
		table.Column{Name: "city", Cells: []any{"sf"}},
	)
	require.NoError(t, err)

	l, err := New("ScatterplotLayer",
		WithID("s-1"),
		WithBinaryTransport(),
		WithField("get_lat", "lat"),
		WithField("get_label", "city"),
		WithData(tbl),
	)
	require.NoError(t, err)

	out, err := l.ToJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{
		"@@type": "ScatterplotLayer",
		"id": "s-1",
		"get_label": "@@=city",
		"data": [{"city": "sf"}]
	}`, out)
	require.NotContains(t, out, "get_lat")
}

func TestMarshalJSON_CodecsAgree(t *testing.T) {
	build := func(c codec.Codec) string {
		l, err := New("ScatterplotLayer",
			WithID("s-1"),
			WithJSONCodec(c),
			WithField("radius", 100),
		)
		require.NoError(t, err)

		out, err := l.ToJSON()
		require.NoError(t, err)

		return out
	}

	require.JSONEq(t, build(codec.JSON{}), build(codec.GoJSON{}))
}

func TestMarshalJSON_NestedInDocument(t *testing.T) {
	l, err := New("ScatterplotLayer", WithID("s-1"), WithField("radius", 1))
	require.NoError(t, err)

	// Layers embed in larger view documents; the custom marshaller must be
	// honored by both codecs.
	doc := map[string]any{"layers": []any{l}}
	for _, c := range []codec.Codec{codec.JSON{}, codec.GoJSON{}} {
		data, err := c.Marshal(doc)
		require.NoError(t, err)
		require.Contains(t, string(data), `"@@type":"ScatterplotLayer"`)
	}
}
