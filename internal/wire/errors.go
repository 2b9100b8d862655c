package wire

import "errors"

// ErrCorruptStream indicates the decoder hit bytes that cannot be a valid
// snapshot stream: a truncated field, a bad marker, an out-of-range pool
// reference, or an implausible count. The decode that hit it returns no
// partial result.
var ErrCorruptStream = errors.New("corrupt stream")

// ErrEncodingOverflow indicates a string or blob is too large for the
// stream's int32 length prefix.
var ErrEncodingOverflow = errors.New("encoding overflow")
