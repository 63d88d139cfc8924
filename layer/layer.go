package layer

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vizbind/layerwire/codec"
	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/internal/options"
	"github.com/vizbind/layerwire/table"
)

// Layer is one visual data layer's full configuration.
//
// A Layer is owned exclusively by its constructor's caller and must not be
// shared across goroutines: encoding and binary extraction mutate the field
// mapping incrementally.
type Layer struct {
	typeName           string
	id                 string
	fields             *FieldMap
	useBinaryTransport bool
	data               any
	binaryData         []BufferDescriptor
	jsonCodec          codec.Codec
}

// Config collects constructor options before the Layer is assembled.
//
// Assembly order is fixed regardless of option order: fields are encoded
// first so the accessor map reflects pre-extraction bindings, then the id
// is settled, then data is set (which may trigger binary extraction).
type Config struct {
	id        string
	data      any
	hasData   bool
	binary    bool
	jsonCodec codec.Codec
	fields    []fieldAssignment
}

type fieldAssignment struct {
	name  string
	value any
}

// Option represents a functional option for configuring a Layer.
type Option = options.Option[*Config]

// WithID sets the layer id. Without it a random UUID is generated.
func WithID(id string) Option {
	return options.NoError(func(c *Config) {
		c.id = id
	})
}

// WithField adds one configuration field. Fields are encoded in the order
// the options are given.
func WithField(name string, value any) Option {
	return options.NoError(func(c *Config) {
		c.fields = append(c.fields, fieldAssignment{name: name, value: value})
	})
}

// WithData sets the layer's dataset: a *table.Table, a table.GeoSource, a
// URL string, or pre-built row records.
func WithData(data any) Option {
	return options.NoError(func(c *Config) {
		c.data = data
		c.hasData = true
	})
}

// WithBinaryTransport sends numeric columns as flat typed buffers instead
// of embedding them in the JSON document. Requires tabular data.
func WithBinaryTransport() Option {
	return options.NoError(func(c *Config) {
		c.binary = true
	})
}

// WithJSONCodec overrides the JSON codec used when rendering the layer.
func WithJSONCodec(jc codec.Codec) Option {
	return options.New(func(c *Config) error {
		if jc == nil {
			return fmt.Errorf("json codec must not be nil")
		}
		c.jsonCodec = jc

		return nil
	})
}

// New creates a layer of the given type.
//
//	l, err := layer.New("HexagonLayer",
//		layer.WithData(tbl),
//		layer.WithField("get_position", []string{"lng", "lat"}),
//		layer.WithField("elevation_scale", 50),
//	)
func New(typeName string, opts ...Option) (*Layer, error) {
	cfg := &Config{jsonCodec: codec.Default}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	l := &Layer{
		typeName:           typeName,
		id:                 cfg.id,
		fields:             NewFieldMap(),
		useBinaryTransport: cfg.binary,
		jsonCodec:          cfg.jsonCodec,
	}
	if l.id == "" {
		l.id = uuid.NewString()
	}

	for _, f := range cfg.fields {
		l.fields.Set(f.name, f.value)
	}

	if cfg.hasData {
		if err := l.SetData(cfg.data); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Type returns the layer type name.
func (l *Layer) Type() string {
	return l.typeName
}

// ID returns the layer id.
func (l *Layer) ID() string {
	return l.id
}

// Fields returns the layer's field mapping. Mutating it after SetData in
// binary mode will not re-run extraction.
func (l *Layer) Fields() *FieldMap {
	return l.fields
}

// UsesBinaryTransport reports whether the layer was flagged for binary
// transport.
func (l *Layer) UsesBinaryTransport() bool {
	return l.useBinaryTransport
}

// Set encodes value and stores it as a configuration field.
func (l *Layer) Set(name string, value any) {
	l.fields.Set(name, value)
}

// SetData assigns the layer's dataset.
//
// With binary transport enabled, data must be tabular: numeric columns are
// extracted into buffer descriptors and only the unconverted columns remain
// as JSON row records. Otherwise tabular and geo-interface datasets are
// converted to row records, and anything else (a URL, pre-built records) is
// stored as-is.
func (l *Layer) SetData(data any) error {
	switch {
	case l.useBinaryTransport:
		descriptors, unconverted, err := ExtractBinary(data, l.fields, l.id)
		if err != nil {
			return err
		}

		records, err := data.(*table.Table).Select(unconverted)
		if err != nil {
			return err
		}

		l.binaryData = descriptors
		l.data = records
	case table.IsTabular(data):
		records, err := data.(*table.Table).Records()
		if err != nil {
			return err
		}
		l.data = records
	case table.HasGeoInterface(data):
		l.data = table.RecordsFromGeoInterface(data.(table.GeoSource))
	default:
		l.data = data
	}

	return nil
}

// Data returns the JSON-side dataset representation.
func (l *Layer) Data() any {
	return l.data
}

// BinaryData returns the buffer descriptors produced by binary extraction.
func (l *Layer) BinaryData() ([]BufferDescriptor, error) {
	if !l.useBinaryTransport {
		return nil, errs.ErrBinaryTransportDisabled
	}

	return l.binaryData, nil
}
