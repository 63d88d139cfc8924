package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vizbind/layerwire/buffer"
	"github.com/vizbind/layerwire/errs"
	"github.com/vizbind/layerwire/format"
	"github.com/vizbind/layerwire/layer"
)

func scalarDescriptor() layer.BufferDescriptor {
	return layer.BufferDescriptor{
		LayerID:    "layer-1",
		ColumnName: "lat",
		Accessor:   "getLat",
		Data:       buffer.FromFloat64s([]float64{1, 2, 3}),
		Length:     3,
		Size:       1,
	}
}

func variableDescriptor() layer.BufferDescriptor {
	return layer.BufferDescriptor{
		LayerID:      "layer-1",
		ColumnName:   "points",
		Accessor:     "getPoints",
		Data:         buffer.FromInt64s([]int64{0, 1, 2, 3, 4, 5}),
		StartIndices: []int{0, 1, 3},
		Length:       3,
		Size:         1,
	}
}

func TestEncodeFrame_RoundTrip(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	for _, d := range []layer.BufferDescriptor{scalarDescriptor(), variableDescriptor()} {
		frame, err := e.EncodeFrame(d)
		require.NoError(t, err)
		require.Equal(t, []byte("LWBF"), frame[:4])

		decoded, err := DecodeFrame(frame)
		require.NoError(t, err)
		require.Equal(t, d, decoded)
	}
}

func TestEncodeFrame_AllCompressionTypes(t *testing.T) {
	d := layer.BufferDescriptor{
		LayerID:    "layer-1",
		ColumnName: "elevation",
		Accessor:   "getElevation",
		Data:       buffer.FromFloat64s(make([]float64, 4096)),
		Length:     4096,
		Size:       1,
	}

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(ct.String(), func(t *testing.T) {
			e, err := NewEncoder(WithCompression(ct))
			require.NoError(t, err)

			frame, err := e.EncodeFrame(d)
			require.NoError(t, err)

			decoded, err := DecodeFrame(frame)
			require.NoError(t, err)
			require.Equal(t, d, decoded)

			if ct != format.CompressionNone {
				require.Less(t, len(frame), 4096*8, "zero-filled payload should compress")
			}
		})
	}
}

func TestEncodeFrame_BigEndian(t *testing.T) {
	e, err := NewEncoder(WithBigEndian())
	require.NoError(t, err)

	frame, err := e.EncodeFrame(scalarDescriptor())
	require.NoError(t, err)

	decoded, err := DecodeFrame(frame)
	require.NoError(t, err)
	require.Equal(t, scalarDescriptor(), decoded)
}

func TestEncodeFrame_Deterministic(t *testing.T) {
	e, err := NewEncoder(WithCompression(format.CompressionLZ4))
	require.NoError(t, err)

	a, err := e.EncodeFrame(variableDescriptor())
	require.NoError(t, err)
	b, err := e.EncodeFrame(variableDescriptor())
	require.NoError(t, err)
	require.Equal(t, a, b, "same descriptor must frame to identical bytes")
}

func TestEncodeAll_PreservesOrder(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)

	frames, err := e.EncodeAll([]layer.BufferDescriptor{scalarDescriptor(), variableDescriptor()})
	require.NoError(t, err)
	require.Len(t, frames, 2)

	first, err := DecodeFrame(frames[0])
	require.NoError(t, err)
	require.Equal(t, "lat", first.ColumnName)

	second, err := DecodeFrame(frames[1])
	require.NoError(t, err)
	require.Equal(t, "points", second.ColumnName)
}

func TestNewEncoder_InvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0xff)))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestDecodeFrame_Errors(t *testing.T) {
	e, err := NewEncoder()
	require.NoError(t, err)
	frame, err := e.EncodeFrame(scalarDescriptor())
	require.NoError(t, err)

	t.Run("too short", func(t *testing.T) {
		_, err := DecodeFrame(frame[:10])
		require.ErrorIs(t, err, errs.ErrInvalidFrame)
	})

	t.Run("bad magic", func(t *testing.T) {
		corrupted := append([]byte{}, frame...)
		corrupted[0] = 'X'
		_, err := DecodeFrame(corrupted)
		require.ErrorIs(t, err, errs.ErrInvalidFrame)
	})

	t.Run("bad version", func(t *testing.T) {
		corrupted := append([]byte{}, frame...)
		corrupted[4] = 99
		_, err := DecodeFrame(corrupted)
		require.ErrorIs(t, err, errs.ErrInvalidFrame)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := DecodeFrame(frame[:len(frame)-8])
		require.ErrorIs(t, err, errs.ErrInvalidFrame)
	})

	t.Run("corrupted payload", func(t *testing.T) {
		corrupted := append([]byte{}, frame...)
		corrupted[len(corrupted)-1] ^= 0xff
		_, err := DecodeFrame(corrupted)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})
}

func TestFrameRoundTrip_StartIndices(t *testing.T) {
	e, err := NewEncoder(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	d := variableDescriptor()
	frame, err := e.EncodeFrame(d)
	require.NoError(t, err)

	decoded, err := DecodeFrame(frame)
	require.NoError(t, err)
	require.Equal(t, d.StartIndices, decoded.StartIndices)
	require.Equal(t, d.Data.Int64s(), decoded.Data.Int64s())
}
