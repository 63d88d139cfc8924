package transport

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/vizbind/layerwire/buffer"
	"github.com/vizbind/layerwire/compress"
	"github.com/vizbind/layerwire/endian"
	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/format"
	"github.com/vizbind/layerwire/internal/hash"
	"github.com/vizbind/layerwire/internal/options"
	"github.com/vizbind/layerwire/internal/pool"
	"github.com/vizbind/layerwire/layer"
)

const (
	frameVersion  = 1
	fixedHeadSize = 24

	flagBigEndian = 0x01
)

// frameMagic identifies a layerwire binary frame.
var frameMagic = [4]byte{'L', 'W', 'B', 'F'}

// headerMode is the deterministic CBOR encoder for metadata headers:
// sorted keys, smallest integer encoding, so the same descriptor always
// produces identical frame bytes.
var headerMode cbor.EncMode

func init() {
	var err error
	headerMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("transport: CBOR encoder initialization failed: " + err.Error())
	}
}

// frameHeader is the CBOR metadata header of one frame.
type frameHeader struct {
	LayerID      string  `cbor:"layer_id"`
	ColumnName   string  `cbor:"column_name"`
	Accessor     string  `cbor:"accessor"`
	StartIndices []int64 `cbor:"start_indices,omitempty"`
	Length       int64   `cbor:"length"`
	Size         int64   `cbor:"size"`
}

// Encoder frames buffer descriptors for transport.
// An Encoder is immutable after construction and safe for concurrent use.
type Encoder struct {
	compression format.CompressionType
	codec       compress.Codec
	engine      endian.EndianEngine
	bigEndian   bool
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression selects the payload compression algorithm.
// The default is no compression.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		codec, err := compress.GetCodec(compression)
		if err != nil {
			return err
		}
		e.compression = compression
		e.codec = codec

		return nil
	})
}

// WithLittleEndian serializes payload elements little-endian.
// It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.LittleEndian()
		e.bigEndian = false
	})
}

// WithBigEndian serializes payload elements big-endian. The consuming
// engine views buffers through little-endian TypedArrays, so this only
// serves interoperability testing.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.engine = endian.BigEndian()
		e.bigEndian = true
	})
}

// NewEncoder creates a frame encoder.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		compression: format.CompressionNone,
		codec:       compress.NewNoOpCompressor(),
		engine:      endian.LittleEndian(),
	}
	if err := options.Apply(e, opts...); err != nil {
		return nil, err
	}

	return e, nil
}

// EncodeFrame serializes one descriptor into a self-contained frame.
func (e *Encoder) EncodeFrame(d layer.BufferDescriptor) ([]byte, error) {
	header := frameHeader{
		LayerID:    d.LayerID,
		ColumnName: d.ColumnName,
		Accessor:   d.Accessor,
		Length:     int64(d.Length),
		Size:       int64(d.Size),
	}
	if d.StartIndices != nil {
		header.StartIndices = make([]int64, len(d.StartIndices))
		for i, v := range d.StartIndices {
			header.StartIndices[i] = int64(v)
		}
	}

	headerBytes, err := headerMode.Marshal(header)
	if err != nil {
		return nil, fmt.Errorf("failed to encode frame header: %w", err)
	}

	payload := d.Data.AppendBytes(nil, e.engine)
	checksum := hash.Sum64(payload)

	compressed, err := e.codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	bb := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(bb)

	buf := bb.B
	buf = append(buf, frameMagic[:]...)
	buf = append(buf, frameVersion)
	var flags byte
	if e.bigEndian {
		flags |= flagBigEndian
	}
	buf = append(buf, flags)
	buf = append(buf, byte(e.compression), byte(d.Data.DType()))
	buf = e.engine.AppendUint32(buf, uint32(len(headerBytes)))
	buf = e.engine.AppendUint32(buf, uint32(len(compressed)))
	buf = e.engine.AppendUint64(buf, checksum)
	buf = append(buf, headerBytes...)
	buf = append(buf, compressed...)
	bb.B = buf

	out := make([]byte, len(buf))
	copy(out, buf)

	return out, nil
}

// EncodeAll frames every descriptor in order.
func (e *Encoder) EncodeAll(descriptors []layer.BufferDescriptor) ([][]byte, error) {
	frames := make([][]byte, 0, len(descriptors))
	for _, d := range descriptors {
		frame, err := e.EncodeFrame(d)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

// DecodeFrame reconstructs a buffer descriptor from a frame produced by
// EncodeFrame.
func DecodeFrame(data []byte) (layer.BufferDescriptor, error) {
	var zero layer.BufferDescriptor

	if len(data) < fixedHeadSize {
		return zero, fmt.Errorf("%w: %d bytes is shorter than the fixed head", errs.ErrInvalidFrame, len(data))
	}
	if [4]byte(data[:4]) != frameMagic {
		return zero, fmt.Errorf("%w: bad magic", errs.ErrInvalidFrame)
	}
	if data[4] != frameVersion {
		return zero, fmt.Errorf("%w: unsupported version %d", errs.ErrInvalidFrame, data[4])
	}

	engine := endian.LittleEndian()
	if data[5]&flagBigEndian != 0 {
		engine = endian.BigEndian()
	}

	compression := format.CompressionType(data[6])
	dtype := format.DType(data[7])
	headerLen := int(engine.Uint32(data[8:12]))
	payloadLen := int(engine.Uint32(data[12:16]))
	checksum := engine.Uint64(data[16:24])

	if fixedHeadSize+headerLen+payloadLen != len(data) {
		return zero, fmt.Errorf("%w: declared %d bytes, frame has %d",
			errs.ErrInvalidFrame, fixedHeadSize+headerLen+payloadLen, len(data))
	}

	var header frameHeader
	if err := cbor.Unmarshal(data[fixedHeadSize:fixedHeadSize+headerLen], &header); err != nil {
		return zero, fmt.Errorf("%w: bad metadata header: %w", errs.ErrInvalidFrame, err)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return zero, err
	}
	payload, err := codec.Decompress(data[fixedHeadSize+headerLen:])
	if err != nil {
		return zero, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if hash.Sum64(payload) != checksum {
		return zero, fmt.Errorf("%w: column %q", errs.ErrChecksumMismatch, header.ColumnName)
	}

	buf, err := buffer.Decode(payload, dtype, engine)
	if err != nil {
		return zero, fmt.Errorf("%w: %w", errs.ErrInvalidFrame, err)
	}

	d := layer.BufferDescriptor{
		LayerID:    header.LayerID,
		ColumnName: header.ColumnName,
		Accessor:   header.Accessor,
		Data:       buf,
		Length:     int(header.Length),
		Size:       int(header.Size),
	}
	if header.StartIndices != nil {
		d.StartIndices = make([]int, len(header.StartIndices))
		for i, v := range header.StartIndices {
			d.StartIndices[i] = int(v)
		}
	}

	return d, nil
}
