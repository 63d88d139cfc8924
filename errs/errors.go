// Package errs defines the sentinel errors returned by layerwire.
//
// All errors are exported so callers can use errors.Is to distinguish
// failure modes. Call sites wrap these sentinels with fmt.Errorf("%w: ...")
// to attach context while keeping the sentinel matchable.
package errs

import "errors"

var (
	// ErrNotTabular is returned when binary transport is requested but the
	// layer data is not a tabular dataset.
	ErrNotTabular = errors.New("layer data must be a tabular dataset")

	// ErrUnboundColumn is returned when a numeric column has no accessor
	// binding in the layer's field mapping.
	ErrUnboundColumn = errors.New("column has no accessor binding")

	// ErrRaggedColumn is returned when the rows of a variable-length column
	// disagree on their trailing dimension.
	ErrRaggedColumn = errors.New("column rows have inconsistent trailing dimension")

	// ErrBinaryTransportDisabled is returned when binary data is requested
	// from a layer that was not flagged for binary transport.
	ErrBinaryTransportDisabled = errors.New("layer must be flagged for binary transport")

	// ErrEmptyTable is returned when a table is constructed with no columns.
	ErrEmptyTable = errors.New("table must have at least one column")

	// ErrColumnLengthMismatch is returned when table columns have unequal lengths.
	ErrColumnLengthMismatch = errors.New("table columns must have equal lengths")

	// ErrUnknownColumn is returned when a column name does not exist in a table.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidFrame is returned when a transport frame is malformed.
	ErrInvalidFrame = errors.New("invalid transport frame")

	// ErrChecksumMismatch is returned when a transport frame's payload
	// checksum does not match its header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrUnsupportedCompression is returned when a transport frame declares
	// a compression type this build does not support.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
