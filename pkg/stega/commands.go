// Package stega hides text messages in PNG chunks. The functions in this
// file take and return whole buffers; Service binds them to a Storage.
package stega

import (
	"errors"
	"fmt"

	"github.com/ssargent/stega/pkg/codec"
)

// EndChunkType is the terminal chunk that Insert keeps last.
const EndChunkType = "IEND"

// ErrInvalidChunkType is returned when a new chunk would carry a type that
// breaks the chunk naming rules.
var ErrInvalidChunkType = errors.New("invalid chunk type")

var endType = codec.ChunkType{'I', 'E', 'N', 'D'}

// ListTypeCodes returns the type of every chunk in order.
func ListTypeCodes(buf []byte) ([]string, error) {
	p, err := codec.Parse(buf)
	if err != nil {
		return nil, err
	}
	chunks := p.Chunks()
	types := make([]string, 0, len(chunks))
	for _, c := range chunks {
		types = append(types, c.Type().String())
	}
	return types, nil
}

// InsertRecord appends a chunk holding payload. If the buffer has an IEND
// chunk, the first one is moved after the new chunk so it stays last.
func InsertRecord(buf []byte, chunkType, payload string) ([]byte, error) {
	p, err := codec.Parse(buf)
	if err != nil {
		return nil, err
	}
	t, err := newChunkType(chunkType)
	if err != nil {
		return nil, err
	}

	end, err := p.RemoveFirstChunk(endType)
	if err != nil && !errors.Is(err, codec.ErrChunkNotFound) {
		return nil, err
	}
	p.AppendChunk(codec.NewChunk(t, []byte(payload)))
	if end != nil {
		p.AppendChunk(end)
	}
	return p.Bytes(), nil
}

// ExtractPayload returns the text of the first chunk of the given type.
func ExtractPayload(buf []byte, chunkType string) (string, error) {
	p, err := codec.Parse(buf)
	if err != nil {
		return "", err
	}
	c, err := findChunk(p, chunkType)
	if err != nil {
		return "", err
	}
	return c.DataAsString()
}

// DeleteRecord removes the first chunk of the given type.
func DeleteRecord(buf []byte, chunkType string) ([]byte, error) {
	p, err := codec.Parse(buf)
	if err != nil {
		return nil, err
	}
	if _, err := p.RemoveChunk(chunkType); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// ChunkInfo describes one chunk for listings.
type ChunkInfo struct {
	Index      int    `json:"index"`
	Type       string `json:"type"`
	Length     uint32 `json:"length"`
	CRC        uint32 `json:"crc"`
	Valid      bool   `json:"valid"`
	Critical   bool   `json:"critical"`
	Public     bool   `json:"public"`
	SafeToCopy bool   `json:"safe_to_copy"`
}

// InspectChunks returns a ChunkInfo for every chunk in order.
func InspectChunks(buf []byte) ([]ChunkInfo, error) {
	p, err := codec.Parse(buf)
	if err != nil {
		return nil, err
	}
	chunks := p.Chunks()
	infos := make([]ChunkInfo, 0, len(chunks))
	for i, c := range chunks {
		t := c.Type()
		infos = append(infos, ChunkInfo{
			Index:      i,
			Type:       t.String(),
			Length:     c.Length(),
			CRC:        c.CRC(),
			Valid:      t.IsValid(),
			Critical:   t.IsCritical(),
			Public:     t.IsPublic(),
			SafeToCopy: t.IsSafeToCopy(),
		})
	}
	return infos, nil
}

func newChunkType(s string) (codec.ChunkType, error) {
	t, err := codec.ParseChunkTypeString(s)
	if err != nil {
		return codec.ChunkType{}, err
	}
	if !t.IsValid() {
		return codec.ChunkType{}, fmt.Errorf("%w: %q", ErrInvalidChunkType, s)
	}
	return t, nil
}

func findChunk(p *codec.PNG, chunkType string) (*codec.Chunk, error) {
	if _, err := codec.ParseChunkTypeString(chunkType); err != nil {
		return nil, err
	}
	c := p.ChunkByType(chunkType)
	if c == nil {
		return nil, fmt.Errorf("%w: %s", codec.ErrChunkNotFound, chunkType)
	}
	return c, nil
}
