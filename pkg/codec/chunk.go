package codec

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"unicode/utf8"
)

const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4

	// chunkOverhead is the framing around the data: length + type + crc.
	chunkOverhead = lengthSize + typeSize + crcSize
)

// Chunk is one length-prefixed, CRC-checked unit of a PNG stream.
type Chunk struct {
	chunkType ChunkType
	data      []byte
	crc       uint32
}

// NewChunk creates a chunk and computes its CRC. The data is copied, so the
// caller may reuse its slice.
func NewChunk(t ChunkType, data []byte) *Chunk {
	owned := make([]byte, len(data))
	copy(owned, data)
	return &Chunk{
		chunkType: t,
		data:      owned,
		crc:       checksum(t, owned),
	}
}

// ParseChunk frames a single chunk at the start of b and verifies its CRC.
// It returns the chunk and the number of bytes consumed.
//
// Format: [Length(4)][Type(4)][Data(Length)][CRC(4)], big-endian.
func ParseChunk(b []byte) (*Chunk, int, error) {
	if len(b) < lengthSize+typeSize {
		return nil, 0, fmt.Errorf("%w: %d bytes left, need %d for header", ErrTruncatedRecord, len(b), lengthSize+typeSize)
	}

	length := uint64(binary.BigEndian.Uint32(b[0:4]))
	var t ChunkType
	copy(t[:], b[4:8])

	available := uint64(len(b) - lengthSize - typeSize)
	if length > available {
		return nil, 0, fmt.Errorf("%w: %s declares %d data bytes, %d available", ErrTruncatedRecord, t, length, available)
	}
	if length+crcSize > available {
		return nil, 0, fmt.Errorf("%w: %s is missing its crc", ErrTruncatedRecord, t)
	}

	dataEnd := lengthSize + typeSize + int(length)
	data := make([]byte, length)
	copy(data, b[lengthSize+typeSize:dataEnd])

	stored := binary.BigEndian.Uint32(b[dataEnd : dataEnd+crcSize])
	if computed := checksum(t, data); computed != stored {
		return nil, 0, fmt.Errorf("%w: %s stored %08x, computed %08x", ErrChecksumMismatch, t, stored, computed)
	}

	return &Chunk{chunkType: t, data: data, crc: stored}, dataEnd + crcSize, nil
}

// Type returns the chunk type.
func (c *Chunk) Type() ChunkType { return c.chunkType }

// Data returns the chunk data. The slice is owned by the chunk and must not
// be modified.
func (c *Chunk) Data() []byte { return c.data }

// CRC returns the chunk checksum.
func (c *Chunk) CRC() uint32 { return c.crc }

// Length returns the number of data bytes.
func (c *Chunk) Length() uint32 { return uint32(len(c.data)) }

// Size returns the encoded size of the chunk, framing included.
func (c *Chunk) Size() int {
	return chunkOverhead + len(c.data)
}

// DataAsString interprets the chunk data as UTF-8 text.
func (c *Chunk) DataAsString() (string, error) {
	if !utf8.Valid(c.data) {
		return "", fmt.Errorf("%w: chunk %s", ErrInvalidEncoding, c.chunkType)
	}
	return string(c.data), nil
}

// Bytes serializes the chunk.
func (c *Chunk) Bytes() []byte {
	return c.appendTo(make([]byte, 0, c.Size()))
}

func (c *Chunk) appendTo(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint32(buf, c.Length())
	buf = append(buf, c.chunkType[:]...)
	buf = append(buf, c.data...)
	return binary.BigEndian.AppendUint32(buf, c.crc)
}

// String returns a short description for diagnostics.
func (c *Chunk) String() string {
	return fmt.Sprintf("%s (%d bytes, crc %08x)", c.chunkType, len(c.data), c.crc)
}

// checksum computes CRC-32/ISO-HDLC over type ++ data.
func checksum(t ChunkType, data []byte) uint32 {
	crc := crc32.Update(0, crc32.IEEETable, t[:])
	return crc32.Update(crc, crc32.IEEETable, data)
}
