package format

type (
	ValueKind       uint8
	ColumnShape     uint8
	DType           uint8
	CompressionType uint8
)

const (
	KindPassthrough   ValueKind = 0x1 // KindPassthrough represents a value emitted unchanged.
	KindLiteral       ValueKind = 0x2 // KindLiteral represents a quote-stripped literal string.
	KindImage         ValueKind = 0x3 // KindImage represents a resolved local-image reference.
	KindAccessor      ValueKind = 0x4 // KindAccessor represents a scalar accessor expression.
	KindArrayAccessor ValueKind = 0x5 // KindArrayAccessor represents an array accessor expression.

	ShapeScalar         ColumnShape = 0x1 // ShapeScalar represents one scalar value per row.
	ShapeFixedVector    ColumnShape = 0x2 // ShapeFixedVector represents a uniform-length vector per row.
	ShapeVariableVector ColumnShape = 0x3 // ShapeVariableVector represents a varying-length vector per row.

	DTypeInvalid DType = 0x0 // DTypeInvalid represents a non-numeric element type.
	DTypeInt64   DType = 0x1 // DTypeInt64 represents signed 64-bit integer elements.
	DTypeUint64  DType = 0x2 // DTypeUint64 represents unsigned 64-bit integer elements.
	DTypeFloat64 DType = 0x3 // DTypeFloat64 represents 64-bit floating point elements.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (k ValueKind) String() string {
	switch k {
	case KindPassthrough:
		return "Passthrough"
	case KindLiteral:
		return "Literal"
	case KindImage:
		return "Image"
	case KindAccessor:
		return "Accessor"
	case KindArrayAccessor:
		return "ArrayAccessor"
	default:
		return "Unknown"
	}
}

func (s ColumnShape) String() string {
	switch s {
	case ShapeScalar:
		return "Scalar"
	case ShapeFixedVector:
		return "FixedVector"
	case ShapeVariableVector:
		return "VariableVector"
	default:
		return "Unknown"
	}
}

func (d DType) String() string {
	switch d {
	case DTypeInt64:
		return "Int64"
	case DTypeUint64:
		return "Uint64"
	case DTypeFloat64:
		return "Float64"
	default:
		return "Invalid"
	}
}

// ElemSize returns the wire size in bytes of one buffer element,
// or 0 for DTypeInvalid.
func (d DType) ElemSize() int {
	switch d {
	case DTypeInt64, DTypeUint64, DTypeFloat64:
		return 8
	default:
		return 0
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
