// Package blemidi implements the BLE-MIDI protocol layer of a MIDI
// peripheral: packet encoding and decoding, the connection readiness
// state machine, and the GATT characteristic dispatch for the MIDI,
// Battery, and Device Information services.
//
// The Bluetooth stack itself is not part of this package. It is modeled
// as a Transport that the Device drives (advertising payloads,
// notifications, connection parameter updates) and that in turn delivers
// link events and ATT reads/writes back into the Device. Any stack that
// can satisfy that contract — an HCI user-channel implementation, a
// vendor SDK binding, a test double — can host a Device.
//
// USAGE
//
// Create a Device around a Transport, initialize it with the name to
// advertise, and drive it from your main loop:
//
//	dev := blemidi.NewDevice(transport,
//		blemidi.Manufacturer("RokoT"),
//		blemidi.FirmwareVersion("1.0.0"),
//	)
//	if err := dev.Init("RokoT MIDI"); err != nil {
//		log.Fatal(err)
//	}
//	defer dev.Close()
//
//	dev.HandleMIDIFunc(func(status, data1, data2 byte) {
//		log.Printf("rx: %02X %02X %02X", status, data1, data2)
//	})
//
//	for {
//		dev.Poll()
//		if dev.IsReady() {
//			dev.NoteOn(0, blemidi.NoteC4, 100)
//		}
//	}
//
// Sends are non-blocking and never queue. A send while no central has
// enabled MIDI notifications returns ErrNotReady; a send while the
// transport cannot accept a notification returns ErrTransportBusy. The
// caller owns retry policy by simply trying again on a later poll.
//
// WIRE FORMAT
//
// Every outbound notification carries a minimal two-byte BLE-MIDI
// prefix (header and timestamp, both 0x80, meaning "now") followed by
// one 1-3 byte MIDI message. Inbound notifications are decoded with the
// same single-message policy: the two prefix bytes are stripped, the
// next three bytes (or two, with a zero final data byte) form the
// message, and anything shorter is dropped. Coalesced multi-message
// payloads and running status are not interpreted.
package blemidi
