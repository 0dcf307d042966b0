package blemidi

import "errors"

// MaxEIRPacketLength is the maximum allowed advertising
// and scan response packet length.
const MaxEIRPacketLength = 31

// maxAdvNameLength is the longest local name a scan response record can
// carry next to its length and type bytes.
const maxAdvNameLength = 29

// ErrEIRPacketTooLong is the error returned when an advertising
// or scan response packet is too long.
var ErrEIRPacketTooLong = errors.New("max packet length is 31")

// An advPacket accumulates length-prefixed EIR records.
type advPacket struct {
	data []byte
}

// appendField appends a BLE advertising packet field.
// A field consists of len, typ, data; len counts typ plus data.
func (p *advPacket) appendField(typ byte, data []byte) {
	p.data = append(p.data, byte(len(data)+1))
	p.data = append(p.data, typ)
	p.data = append(p.data, data...)
}

// serviceAdvertisingPacket constructs the advertising payload: a flags
// record followed by the complete 128-bit service UUID list carrying u,
// little-endian on the wire.
func serviceAdvertisingPacket(u UUID) []byte {
	adv := new(advPacket)
	adv.appendField(typeFlags, []byte{flagGeneralDiscoverable | flagLEOnly})
	adv.appendField(typeAllUUID128, u.reverseBytes())
	return adv.data
}

// nameScanResponsePacket constructs the scan response payload: a
// complete-local-name record with the name truncated as necessary.
func nameScanResponsePacket(name string) []byte {
	if len(name) > maxAdvNameLength {
		name = name[:maxAdvNameLength]
	}
	scan := new(advPacket)
	scan.appendField(typeCompleteName, []byte(name))
	return scan.data
}
