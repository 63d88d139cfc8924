// Package compress provides compression codecs for binary buffer payloads.
//
// Buffer payloads are flat little-endian numeric arrays, which compress well
// with general-purpose algorithms: coordinate columns tend to share exponent
// bytes and integer columns tend to be small values padded with zero bytes.
// Compression is applied per transport frame, after the buffer is serialized
// and before the frame checksum is computed.
//
// Supported algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Zstd has two implementations selected at build time: valyala/gozstd when
// cgo is available, and the pure-Go klauspost/compress/zstd otherwise. The
// two produce interchangeable streams.
//
// All codecs are stateless values and safe for concurrent use; pooled
// encoder/decoder state is managed internally.
package compress
