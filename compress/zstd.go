package compress

// ZstdCompressor provides Zstandard compression for buffer payloads.
//
// Zstd trades compression speed for ratio, which suits the binary side
// channel: frames are produced once per layer and shipped over the wire,
// so smaller payloads matter more than encode latency.
//
// The implementation is selected at build time: valyala/gozstd (cgo) when
// available, github.com/klauspost/compress/zstd otherwise.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
