// Package codec provides chunk-level parsing and serialization of PNG streams.
//
// The codec treats a PNG file as a fixed signature followed by a sequence of
// self-describing chunks. It does not decode image data; it only enforces the
// framing and integrity rules needed to list, add, read, and remove chunks.
//
// # Stream Format
//
// All multi-byte integers are big-endian:
//
//	[Signature(8)] [Chunk] [Chunk] ...
//
// where each chunk is:
//
//	[Length(4)][Type(4)][Data(Length)][CRC(4)]
//
// Fields:
//   - Signature: 89 50 4E 47 0D 0A 1A 0A
//   - Length: number of data bytes
//   - Type: 4-byte chunk type code (see ChunkType)
//   - Data: opaque payload
//   - CRC: CRC-32/ISO-HDLC over Type and Data
//
// The encoded size of a chunk is 12 bytes plus its data length.
//
// # Chunk Types
//
// Bit 5 of each type byte is a property flag:
//   - byte 0: ancillary (set) or critical (clear)
//   - byte 1: private (set) or public (clear)
//   - byte 2: reserved, must be clear
//   - byte 3: safe to copy (set) or unsafe (clear)
//
// A type is valid when all four bytes are ASCII letters and the reserved bit
// is clear. ParseChunkType accepts any bytes so that crafted input can still
// be framed and reported.
//
// # Usage
//
//	p, err := codec.Parse(buf)
//	if err != nil {
//	    return err
//	}
//
//	t, _ := codec.ParseChunkTypeString("ruSt")
//	p.AppendChunk(codec.NewChunk(t, []byte("hidden")))
//
//	out := p.Bytes()
//
// # Error Handling
//
// Parse is all-or-nothing. Failures wrap one of the sentinel errors:
//   - ErrInvalidSignature: missing or wrong signature
//   - ErrTruncatedRecord: a chunk declares more data than the buffer holds
//   - ErrChecksumMismatch: stored CRC differs from the computed CRC
//   - ErrTrailingBytes: stray bytes after the last chunk
//
// Mutations return ErrChunkNotFound when no chunk matches and leave the PNG
// unchanged.
//
// # Thread Safety
//
// Chunk values are immutable after creation. A PNG must not be mutated
// concurrently with any other call on the same instance.
package codec
