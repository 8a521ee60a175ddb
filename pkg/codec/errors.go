package codec

import "errors"

// Sentinel errors returned by the codec. Detailed errors wrap one of these,
// so callers should match with errors.Is.
var (
	ErrInvalidSignature      = errors.New("invalid png signature")
	ErrTruncatedRecord       = errors.New("truncated chunk")
	ErrChecksumMismatch      = errors.New("chunk crc mismatch")
	ErrTrailingBytes         = errors.New("trailing bytes after last chunk")
	ErrInvalidTypeCodeLength = errors.New("chunk type must be exactly 4 bytes")
	ErrInvalidEncoding       = errors.New("chunk data is not valid utf-8")
	ErrChunkNotFound         = errors.New("chunk not found")
)
