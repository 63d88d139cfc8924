// Package layerwire serializes visualization layer configurations for
// JavaScript rendering clients.
//
// A layer is a typed bag of configuration fields plus an optional dataset.
// Field values are classified on assignment: quoted strings become string
// literals, paths to image files become inlined data URLs, and bare strings
// become accessor expressions evaluated against each data row on the client
// (marked with the "@@=" prefix). The whole layer serializes to a JSON
// document the client-side deserializer understands.
//
// # Core Features
//
//   - Declarative field classification (literal, image, accessor, passthrough)
//   - Ordered JSON documents with stable "@@type", "id", field, "data" layout
//   - Binary transport: tabular columns extracted into flat typed buffers
//     with shape metadata (length, size, start indices)
//   - Length-prefixed wire frames with optional compression (Zstd, S2, LZ4)
//     and xxHash64 payload checksums
//   - Geo-interface datasets flattened into row records
//
// # Basic Usage
//
// Creating a layer and serializing it to JSON:
//
//	import "github.com/vizbind/layerwire"
//
//	l, _ := layerwire.NewLayer("ScatterplotLayer",
//	    layerwire.WithField("get_position", "[lng, lat]"),
//	    layerwire.WithField("get_fill_color", "'[255, 0, 0]'"),
//	    layerwire.WithData("https://example.com/points.json"),
//	)
//	doc, _ := l.ToJSON()
//
// Binary transport for tabular data:
//
//	tbl, _ := layerwire.TableFromRecords(
//	    []string{"lng", "lat"},
//	    []map[string]any{
//	        {"lng": -122.4, "lat": 37.8},
//	        {"lng": -122.3, "lat": 37.7},
//	    },
//	)
//	l, _ := layerwire.NewLayer("ScatterplotLayer",
//	    layerwire.WithField("get_position", "position"),
//	    layerwire.WithBinaryTransport(),
//	    layerwire.WithData(tbl),
//	)
//	buffers, _ := l.BinaryData()
//	frames, _ := layerwire.EncodeFrames(buffers)
//
// Decoding frames on the receiving side:
//
//	desc, _ := layerwire.DecodeFrame(frames[0])
//	values := desc.Data.AsFloat64s()
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the layer,
// table and transport packages, simplifying the most common use cases. For
// advanced usage and fine-grained control, use those packages directly.
package layerwire

import (
	"github.com/vizbind/layerwire/format"
	"github.com/vizbind/layerwire/layer"
	"github.com/vizbind/layerwire/table"
	"github.com/vizbind/layerwire/transport"
)

var defaultFrameOptions = []transport.EncoderOption{
	transport.WithLittleEndian(),
	transport.WithCompression(format.CompressionLZ4),
}

// Re-exported layer option constructors so simple callers only import the
// root package.
var (
	WithID              = layer.WithID
	WithField           = layer.WithField
	WithData            = layer.WithData
	WithBinaryTransport = layer.WithBinaryTransport
	WithJSONCodec       = layer.WithJSONCodec
)

// NewLayer creates a layer of the given client-side type with custom options.
//
// Parameters:
//   - typeName: The client-side layer class name (e.g. "ScatterplotLayer")
//   - opts: Optional configuration functions (see layer.Option)
//
// Returns:
//   - *layer.Layer: The created layer with a generated id when none was set.
//   - error: An error if an option or the dataset is invalid.
//
// Available options:
//   - layerwire.WithID(id)
//   - layerwire.WithField(name, value)
//   - layerwire.WithData(dataset)
//   - layerwire.WithBinaryTransport()
//   - layerwire.WithJSONCodec(codec)
//
// Example:
//
//	l, err := layerwire.NewLayer("HexagonLayer",
//	    layerwire.WithField("get_position", "coordinates"),
//	    layerwire.WithField("radius", 200),
//	)
func NewLayer(typeName string, opts ...layer.Option) (*layer.Layer, error) {
	return layer.New(typeName, opts...)
}

// EncodeField classifies a single field value without attaching it to a
// layer. Useful for inspecting how a value will serialize.
//
// Example:
//
//	v := layerwire.EncodeField("'red'") // string literal "red"
//	v = layerwire.EncodeField("color")  // accessor "@@=color"
func EncodeField(value any) layer.EncodedValue {
	return layer.Encode(value)
}

// NewTable creates a tabular dataset from named columns. All columns must
// have the same number of cells and distinct names.
func NewTable(columns ...table.Column) (*table.Table, error) {
	return table.New(columns...)
}

// TableFromRecords creates a tabular dataset from row-oriented records.
// columnOrder fixes the column order; every record must carry exactly
// those keys.
func TableFromRecords(columnOrder []string, records []map[string]any) (*table.Table, error) {
	return table.FromRecords(columnOrder, records)
}

// NewFrameEncoder creates a wire frame encoder with custom options.
//
// Available options:
//   - transport.WithLittleEndian() / transport.WithBigEndian()
//   - transport.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//
// Example:
//
//	enc, err := layerwire.NewFrameEncoder(
//	    transport.WithCompression(format.CompressionZstd),
//	)
func NewFrameEncoder(opts ...transport.EncoderOption) (*transport.Encoder, error) {
	return transport.NewEncoder(opts...)
}

// EncodeFrames encodes buffer descriptors into wire frames with recommended
// default settings: little-endian byte order and LZ4 compression. LZ4 keeps
// encode latency low while still shrinking typical coordinate payloads.
//
// For other compression algorithms or big-endian peers, use NewFrameEncoder.
func EncodeFrames(descriptors []layer.BufferDescriptor) ([][]byte, error) {
	enc, err := transport.NewEncoder(defaultFrameOptions...)
	if err != nil {
		return nil, err
	}

	return enc.EncodeAll(descriptors)
}

// DecodeFrame decodes a single wire frame back into a buffer descriptor.
// The frame's own header declares byte order and compression, so no
// configuration is needed.
func DecodeFrame(data []byte) (layer.BufferDescriptor, error) {
	return transport.DecodeFrame(data)
}
