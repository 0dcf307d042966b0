package blemidi

import (
	"bytes"
	"testing"
)

func TestEncodePacket(t *testing.T) {
	cases := []struct {
		midi []byte
		want []byte
	}{
		{midi: []byte{0xC0}, want: []byte{0x80, 0x80, 0xC0}},
		{midi: []byte{0xC5, 0x10}, want: []byte{0x80, 0x80, 0xC5, 0x10}},
		{midi: []byte{0x90, 0x3C, 0x64}, want: []byte{0x80, 0x80, 0x90, 0x3C, 0x64}},
	}
	for _, tt := range cases {
		if got := encodePacket(tt.midi); !bytes.Equal(got, tt.want) {
			t.Errorf("encodePacket(% X): got % X want % X", tt.midi, got, tt.want)
		}
	}
}

func TestDecodePacket(t *testing.T) {
	cases := []struct {
		pkt     []byte
		status  byte
		data1   byte
		data2   byte
		dropped bool
	}{
		// full 3-byte message
		{pkt: []byte{0x80, 0x80, 0x90, 0x3C, 0x64}, status: 0x90, data1: 0x3C, data2: 0x64},
		// 2-byte message; data2 defaults to 0
		{pkt: []byte{0x80, 0x80, 0xC5, 0x10}, status: 0xC5, data1: 0x10},
		// only the first message of a coalesced payload is delivered
		{pkt: []byte{0x80, 0x80, 0x90, 0x3C, 0x64, 0x80, 0x80, 0x3C, 0x00}, status: 0x90, data1: 0x3C, data2: 0x64},
		// prefix bytes are stripped without validation
		{pkt: []byte{0x00, 0x00, 0xB0, 0x07, 0x7F}, status: 0xB0, data1: 0x07, data2: 0x7F},
		// too short to carry a message
		{pkt: []byte{0x80, 0x80, 0x90}, dropped: true},
		{pkt: []byte{0x80, 0x80}, dropped: true},
		{pkt: []byte{0x80}, dropped: true},
		{pkt: nil, dropped: true},
	}
	for _, tt := range cases {
		status, data1, data2, ok := decodePacket(tt.pkt)
		if ok == tt.dropped {
			t.Errorf("decodePacket(% X): ok = %v, want %v", tt.pkt, ok, !tt.dropped)
			continue
		}
		if !ok {
			continue
		}
		if status != tt.status || data1 != tt.data1 || data2 != tt.data2 {
			t.Errorf("decodePacket(% X): got (%02X, %02X, %02X) want (%02X, %02X, %02X)",
				tt.pkt, status, data1, data2, tt.status, tt.data1, tt.data2)
		}
	}
}

func TestPacketRoundTrip(t *testing.T) {
	// Any full MIDI message survives an encode-decode round trip.
	for status := 0x80; status <= 0xEF; status += 7 {
		midi := []byte{byte(status), 0x3C, 0x64}
		s, d1, d2, ok := decodePacket(encodePacket(midi))
		if !ok {
			t.Fatalf("round trip of % X dropped", midi)
		}
		if s != midi[0] || d1 != midi[1] || d2 != midi[2] {
			t.Errorf("round trip of % X: got (%02X, %02X, %02X)", midi, s, d1, d2)
		}
	}
}
