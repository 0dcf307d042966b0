package blemidi

// BLE-MIDI notification payloads carry a header byte and a timestamp
// byte ahead of the raw MIDI bytes. Both have their top bit set; the
// remaining bits carry a 13-bit millisecond timestamp. This package
// makes no attempt to correlate with a real-time clock, so both bytes
// are always 0x80: "now", with no higher-resolution information.
const (
	packetHeader    = 0x80
	packetTimestamp = 0x80

	// maxPacketLen bounds a single notification payload. The prefix
	// plus a 3-byte MIDI message is well inside it.
	maxPacketLen = 32
)

// encodePacket prepends the fixed header and timestamp pair to a 1-3
// byte MIDI message. The caller guarantees len(midi)+2 <= maxPacketLen.
func encodePacket(midi []byte) []byte {
	p := make([]byte, 0, len(midi)+2)
	p = append(p, packetHeader, packetTimestamp)
	return append(p, midi...)
}

// decodePacket extracts one MIDI message from an inbound notification
// payload. The two prefix bytes are stripped without validation. If at
// least three bytes remain they form the message; exactly two bytes
// form a message with a zero final data byte; anything shorter is
// dropped and ok is false.
//
// Peers may coalesce several messages into one payload and use running
// status; neither is interpreted here. Only the first message is
// delivered.
func decodePacket(p []byte) (status, data1, data2 byte, ok bool) {
	if len(p) >= 5 {
		return p[2], p[3], p[4], true
	}
	if len(p) == 4 {
		return p[2], p[3], 0, true
	}
	return 0, 0, 0, false
}
