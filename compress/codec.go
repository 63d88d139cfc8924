package compress

import (
	"fmt"

	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/format"
)

// Compressor compresses a serialized buffer payload.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is owned by the caller; the input slice is not
	// modified. Implementations may reuse internal buffers between calls.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses the corresponding Compressor.
type Decompressor interface {
	// Decompress decompresses data previously produced by the matching
	// Compressor. It returns an error if the data is corrupted or was
	// compressed with a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}
