package blemidi

import (
	"bytes"
	"testing"
)

func TestUUID16(t *testing.T) {
	if want, got := (UUID{[]byte{0x18, 0x0F}}), UUID16(0x180F); !got.Equal(want) {
		t.Errorf("UUID16: got %x, want %x", got, want)
	}
}

func TestParseUUID(t *testing.T) {
	u, err := ParseUUID("03B80E5A-EDE8-4B33-A751-6CE34EC4C700")
	if err != nil {
		t.Fatalf("ParseUUID: %v", err)
	}
	if u.Len() != 16 {
		t.Errorf("Len: got %d want 16", u.Len())
	}
	if got, want := u.String(), "03B80E5AEDE84B33A7516CE34EC4C700"; got != want {
		t.Errorf("String: got %q want %q", got, want)
	}

	for _, s := range []string{"zz", "01", "0102030405"} {
		if _, err := ParseUUID(s); err == nil {
			t.Errorf("ParseUUID(%q) should fail", s)
		}
	}
}

func TestReverse(t *testing.T) {
	cases := []struct {
		fwd  []byte
		back []byte
	}{
		{fwd: []byte{0, 1}, back: []byte{1, 0}},
		{fwd: []byte{0, 1, 2}, back: []byte{2, 1, 0}},
		{fwd: []byte{0, 1, 2, 3}, back: []byte{3, 2, 1, 0}},
		{
			fwd:  []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
			back: []byte{15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
		},
	}

	for _, tt := range cases {
		got := reverse(tt.fwd)
		if !bytes.Equal(got, tt.back) {
			t.Errorf("reverse(%x): got %x want %x", tt.fwd, got, tt.back)
		}

		u := UUID{tt.fwd}
		got = u.reverseBytes()
		if !bytes.Equal(got, tt.back) {
			t.Errorf("UUID.reverseBytes(%x): got %x want %x", tt.fwd, got, tt.back)
		}
	}
}
