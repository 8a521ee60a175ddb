package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// StandardHeader is the 8-byte signature that starts every PNG stream.
var StandardHeader = [8]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNG is an ordered sequence of chunks behind the PNG signature.
//
// A PNG is not safe for concurrent mutation. Callers that share one must
// serialize AppendChunk and RemoveFirstChunk against every other call.
type PNG struct {
	chunks []*Chunk
}

// New returns a PNG holding the given chunks in order.
func New(chunks ...*Chunk) *PNG {
	p := &PNG{chunks: make([]*Chunk, 0, len(chunks))}
	p.chunks = append(p.chunks, chunks...)
	return p
}

// Parse decodes a complete PNG byte stream. Parsing is all-or-nothing: on
// any error no PNG is returned.
func Parse(b []byte) (*PNG, error) {
	if len(b) < len(StandardHeader) {
		return nil, fmt.Errorf("%w: %d bytes is shorter than the signature", ErrInvalidSignature, len(b))
	}
	if !bytes.Equal(b[:len(StandardHeader)], StandardHeader[:]) {
		return nil, fmt.Errorf("%w: got % x", ErrInvalidSignature, b[:len(StandardHeader)])
	}

	p := &PNG{}
	offset := len(StandardHeader)
	for offset < len(b) {
		rest := b[offset:]
		if isTrailing(rest) {
			return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingBytes, len(rest), offset)
		}
		c, n, err := ParseChunk(rest)
		if err != nil {
			return nil, fmt.Errorf("chunk %d at offset %d: %w", len(p.chunks), offset, err)
		}
		p.chunks = append(p.chunks, c)
		offset += n
	}
	return p, nil
}

// isTrailing reports whether rest is stray data rather than a chunk: a
// readable header followed by exactly its declared data and no crc. Every
// other short remainder is a truncated chunk.
func isTrailing(rest []byte) bool {
	if len(rest) < lengthSize+typeSize {
		return false
	}
	length := uint64(binary.BigEndian.Uint32(rest[:lengthSize]))
	return uint64(len(rest)) == lengthSize+typeSize+length
}

// AppendChunk adds c at the end of the chunk sequence.
func (p *PNG) AppendChunk(c *Chunk) {
	p.chunks = append(p.chunks, c)
}

// RemoveFirstChunk removes and returns the first chunk of type t. When no
// chunk matches the PNG is left unchanged.
func (p *PNG) RemoveFirstChunk(t ChunkType) (*Chunk, error) {
	for i, c := range p.chunks {
		if c.Type() == t {
			p.chunks = append(p.chunks[:i:i], p.chunks[i+1:]...)
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrChunkNotFound, t)
}

// RemoveChunk is RemoveFirstChunk taking the text form of the type.
func (p *PNG) RemoveChunk(chunkType string) (*Chunk, error) {
	t, err := ParseChunkTypeString(chunkType)
	if err != nil {
		return nil, err
	}
	return p.RemoveFirstChunk(t)
}

// ChunkByType returns the first chunk whose type matches chunkType, or nil
// when chunkType is not 4 bytes long or nothing matches.
func (p *PNG) ChunkByType(chunkType string) *Chunk {
	t, err := ParseChunkTypeString(chunkType)
	if err != nil {
		return nil
	}
	for _, c := range p.chunks {
		if c.Type() == t {
			return c
		}
	}
	return nil
}

// Chunks returns the chunks in order. The returned slice is a copy; the
// chunks themselves are shared.
func (p *PNG) Chunks() []*Chunk {
	out := make([]*Chunk, len(p.chunks))
	copy(out, p.chunks)
	return out
}

// Header returns the PNG signature.
func (p *PNG) Header() [8]byte {
	return StandardHeader
}

// Size returns the encoded size of the PNG.
func (p *PNG) Size() int {
	n := len(StandardHeader)
	for _, c := range p.chunks {
		n += c.Size()
	}
	return n
}

// Bytes serializes the signature followed by every chunk in order.
func (p *PNG) Bytes() []byte {
	buf := make([]byte, 0, p.Size())
	buf = append(buf, StandardHeader[:]...)
	for _, c := range p.chunks {
		buf = c.appendTo(buf)
	}
	return buf
}
