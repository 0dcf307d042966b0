package blemidi

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// A UUID is a BLE UUID.
type UUID struct {
	// Hide the bytes, so that we can enforce that they have length 2 or 16,
	// and that they are immutable.
	b []byte
}

// UUID16 converts a uint16 (such as 0x180F) to a UUID.
func UUID16(i uint16) UUID {
	return UUID{[]byte{byte(i >> 8), byte(i)}}
}

// ParseUUID parses a standard-format UUID string, such as "180F" or
// "03B80E5A-EDE8-4B33-A751-6CE34EC4C700".
func ParseUUID(s string) (UUID, error) {
	s = strings.Replace(s, "-", "", -1)
	b, err := hex.DecodeString(s)
	if err != nil {
		return UUID{}, err
	}
	if len(b) != 2 && len(b) != 16 {
		return UUID{}, fmt.Errorf("UUIDs must have length 2 or 16, got %d", len(b))
	}
	return UUID{b}, nil
}

// MustParseUUID parses a standard-format UUID string,
// like ParseUUID, but panics in case of error.
func MustParseUUID(s string) UUID {
	u, err := ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Len returns the length of the UUID, in bytes: 2 or 16.
func (u UUID) Len() int {
	return len(u.b)
}

// String hex-encodes a UUID.
func (u UUID) String() string {
	return fmt.Sprintf("%X", u.b)
}

// Equal reports whether u and v are equal.
func (u UUID) Equal(v UUID) bool {
	return uuidEqual(u, v)
}

func uuidEqual(u, v UUID) bool {
	if len(u.b) != len(v.b) {
		return false
	}
	for i, b := range u.b {
		if b != v.b[i] {
			return false
		}
	}
	return true
}

// reverseBytes returns a reversed copy of the UUID's bytes, which is
// the little-endian order BLE puts UUIDs on the wire in.
func (u UUID) reverseBytes() []byte {
	return reverse(u.b)
}

// reverse returns a reversed copy of u.
func reverse(u []byte) []byte {
	b := make([]byte, len(u))
	for i := 0; i < len(u)/2+1; i++ {
		b[i], b[len(u)-i-1] = u[len(u)-i-1], u[i]
	}
	return b
}
