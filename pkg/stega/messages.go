package stega

import (
	"errors"

	"github.com/ssargent/stega/pkg/codec"
	"github.com/ssargent/stega/pkg/storage"
)

// Message turns a command error into the text shown to users. Unknown
// errors are returned as-is.
func Message(err error, chunkType string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, storage.ErrNotFound):
		return err.Error()
	case errors.Is(err, codec.ErrInvalidSignature):
		return "Not a PNG file: bad signature"
	case errors.Is(err, codec.ErrTruncatedRecord):
		return "Corrupt PNG: truncated chunk"
	case errors.Is(err, codec.ErrChecksumMismatch):
		return "Corrupt PNG: chunk checksum mismatch"
	case errors.Is(err, codec.ErrTrailingBytes):
		return "Corrupt PNG: unexpected bytes after last chunk"
	case errors.Is(err, codec.ErrInvalidTypeCodeLength), errors.Is(err, ErrInvalidChunkType):
		return "Invalid chunk type"
	case errors.Is(err, codec.ErrInvalidEncoding):
		return "Could not convert data to string"
	case errors.Is(err, codec.ErrChunkNotFound):
		return "No chunk found with type -: " + chunkType
	default:
		return err.Error()
	}
}

// RemoveMessage is Message for a failed remove, which reports an absent
// chunk in its own words.
func RemoveMessage(err error, chunkType string) string {
	if errors.Is(err, codec.ErrChunkNotFound) {
		return "Unable to remove chunk -: " + chunkType
	}
	return Message(err, chunkType)
}
