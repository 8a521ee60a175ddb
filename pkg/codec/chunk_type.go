package codec

import (
	"fmt"
)

// propertyBit is bit 5 of each type byte; it carries the PNG chunk property
// flags and is also the ASCII case bit.
const propertyBit = 0x20

// ChunkType is the 4-byte type code of a chunk. It is a value type, so two
// chunk types are equal exactly when their bytes are equal.
type ChunkType [4]byte

// ParseChunkType wraps raw type bytes. It never fails: use IsValid to check
// whether the code follows the naming rules.
func ParseChunkType(b [4]byte) ChunkType {
	return ChunkType(b)
}

// ParseChunkTypeString builds a chunk type from its 4-character text form.
func ParseChunkTypeString(s string) (ChunkType, error) {
	if len(s) != 4 {
		return ChunkType{}, fmt.Errorf("%w: got %d bytes in %q", ErrInvalidTypeCodeLength, len(s), s)
	}
	var t ChunkType
	copy(t[:], s)
	return t, nil
}

// Bytes returns a copy of the raw type bytes.
func (t ChunkType) Bytes() []byte {
	return []byte{t[0], t[1], t[2], t[3]}
}

// IsValid reports whether every byte is an ASCII letter and the reserved bit
// is clear.
func (t ChunkType) IsValid() bool {
	for _, b := range t {
		if !isASCIILetter(b) {
			return false
		}
	}
	return t.IsReservedBitValid()
}

// IsCritical reports whether the ancillary bit of the first byte is clear.
func (t ChunkType) IsCritical() bool {
	return t[0]&propertyBit == 0
}

// IsPublic reports whether the private bit of the second byte is clear.
func (t ChunkType) IsPublic() bool {
	return t[1]&propertyBit == 0
}

// IsReservedBitValid reports whether the reserved bit of the third byte is clear.
func (t ChunkType) IsReservedBitValid() bool {
	return t[2]&propertyBit == 0
}

// IsSafeToCopy reports whether the safe-to-copy bit of the fourth byte is set.
func (t ChunkType) IsSafeToCopy() bool {
	return t[3]&propertyBit != 0
}

// String returns the type bytes as text. The result is only meaningful when
// IsValid is true.
func (t ChunkType) String() string {
	return string(t[:])
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
