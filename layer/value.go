package layer

import (
	"fmt"
	"strings"

	"github.com/vizbind/layerwire/codec"
	"github.com/vizbind/layerwire/format"
	"github.com/vizbind/layerwire/types"
)

const (
	// TypeIdentifier is the reserved JSON key holding the layer type name.
	TypeIdentifier = "@@type"

	// FunctionIdentifier marks a string value as an accessor expression to
	// be evaluated per row by the receiving engine.
	FunctionIdentifier = "@@="
)

// quoteChars are the delimiters that mark a string field as a literal.
const quoteChars = "'\"`"

// EncodedValue is the wire form of one configuration field: a value kind
// tag plus the payload for that kind. Exactly one representation applies to
// any input value.
type EncodedValue struct {
	// Kind tags which representation applies.
	Kind format.ValueKind

	// Str holds the rendered string for Literal, Accessor and ArrayAccessor
	// kinds, prefix included.
	Str string

	// Image holds the image reference for the Image kind.
	Image types.Image

	// Raw holds the original value for the Passthrough kind.
	Raw any
}

// Encode classifies a raw configuration value into its wire form.
//
// Classification is total and order-sensitive:
//  1. A string wrapped in matching quote characters (', " or `) is a
//     literal. The quote character is removed from the whole string, not
//     just the ends; "'San' 'Francisco'" therefore encodes as
//     "San Francisco".
//  2. A string naming a local image file becomes an image reference.
//  3. Any other string becomes an accessor expression: "lng" → "@@=lng".
//  4. A non-empty slice whose first element is a string becomes an array
//     accessor: ["lng", "lat"] → "@@=[lng, lat]".
//  5. Everything else (numbers, booleans, empty slices, numeric slices,
//     nested objects) passes through unchanged.
func Encode(value any) EncodedValue {
	switch v := value.(type) {
	case string:
		if len(v) > 0 && strings.IndexByte(quoteChars, v[0]) >= 0 && v[0] == v[len(v)-1] {
			return EncodedValue{
				Kind: format.KindLiteral,
				Str:  strings.ReplaceAll(v, string(v[0]), ""),
			}
		}
		if types.IsImagePath(v) {
			return EncodedValue{Kind: format.KindImage, Image: types.NewImage(v)}
		}

		return EncodedValue{Kind: format.KindAccessor, Str: FunctionIdentifier + v}
	case []string:
		if len(v) > 0 {
			return arrayAccessor(v)
		}
	case []any:
		if len(v) > 0 {
			if _, ok := v[0].(string); ok {
				idents := make([]string, len(v))
				for i, elem := range v {
					idents[i] = fmt.Sprintf("%v", elem)
				}

				return arrayAccessor(idents)
			}
		}
	}

	return EncodedValue{Kind: format.KindPassthrough, Raw: value}
}

func arrayAccessor(idents []string) EncodedValue {
	return EncodedValue{
		Kind: format.KindArrayAccessor,
		Str:  FunctionIdentifier + "[" + strings.Join(idents, ", ") + "]",
	}
}

// MarshalJSON renders the encoded value: string kinds as JSON strings,
// images as data URLs, passthrough values as their plain JSON form.
func (v EncodedValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case format.KindLiteral, format.KindAccessor, format.KindArrayAccessor:
		return codec.Default.Marshal(v.Str)
	case format.KindImage:
		return v.Image.MarshalJSON()
	default:
		return codec.Default.Marshal(v.Raw)
	}
}
