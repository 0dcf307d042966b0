package blemidi

import (
	"encoding/binary"

	"github.com/sirupsen/logrus"
)

// A ReadRequest is a characteristic read request from the connected
// central.
type ReadRequest struct {
	Conn   uint16 // connection handle
	Handle uint16 // attribute handle
	Offset int    // request value offset, for blob reads
	Cap    int    // maximum allowed reply length; <0 means unbounded
}

// ServeRead returns the value of the attribute named by req, honoring
// the blob-read offset. Reads of offsets at or beyond the value's
// length return a zero-length result, never an error. The MIDI I/O
// characteristic has no value at rest and always reads zero-length, as
// do unknown handles.
func (d *Device) ServeRead(req *ReadRequest) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch req.Handle {
	case d.mfgValue:
		return blob([]byte(d.manufacturer), req.Offset, req.Cap)
	case d.fwValue:
		return blob([]byte(d.firmware), req.Offset, req.Cap)
	case d.battValue:
		return blob([]byte{d.battery}, req.Offset, req.Cap)
	}
	return nil
}

// ServeWrite applies a write to the attribute named by handle and
// returns an ATT status. CCCD writes update the corresponding
// notification gate and refresh the recorded connection handle; writes
// to the MIDI I/O characteristic are decoded as inbound MIDI and
// handed to the registered receive callback. Writes to any other
// handle are accepted and ignored.
func (d *Device) ServeWrite(conn, handle uint16, data []byte) byte {
	d.mu.Lock()

	if handle == d.midiValue {
		rx := d.rx
		d.mu.Unlock()
		status, data1, data2, ok := decodePacket(data)
		if !ok {
			// Too short to carry a usable message; dropped, not an error.
			d.log.WithField("len", len(data)).Debug("dropping short inbound packet")
			return StatusSuccess
		}
		if rx != nil {
			rx(status, data1, data2)
		}
		return StatusSuccess
	}

	defer d.mu.Unlock()

	switch handle {
	case d.midiCCCD:
		d.link.midiNotify = cccEnablesNotify(data)
		d.link.present = true
		d.link.handle = conn
		d.log.WithFields(logrus.Fields{
			"conn":  conn,
			"state": d.link.state(),
		}).Debug("midi notifications configured")
	case d.battCCCD:
		d.link.battNotify = cccEnablesNotify(data)
		d.link.present = true
		d.link.handle = conn
		d.log.WithFields(logrus.Fields{
			"conn":   conn,
			"notify": d.link.battNotify,
		}).Debug("battery notifications configured")
	}
	return StatusSuccess
}

// cccEnablesNotify reads a 16-bit little-endian Client Characteristic
// Configuration value. Only the well-known notification bit pattern
// enables; anything else, including a short write, disables.
func cccEnablesNotify(data []byte) bool {
	return len(data) >= 2 && binary.LittleEndian.Uint16(data) == gattCCCNotifyFlag
}

// blob returns the slice of value selected by an offset-aware read,
// bounded by max. Out-of-range offsets degrade to a zero-length result.
func blob(value []byte, offset, max int) []byte {
	if offset < 0 || offset >= len(value) {
		return nil
	}
	v := value[offset:]
	if max >= 0 && len(v) > max {
		v = v[:max]
	}
	return v
}
