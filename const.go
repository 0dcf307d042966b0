package blemidi

// This file includes the BLE assigned numbers and MIDI constants the
// peripheral is built from.

// Service and characteristic UUIDs exposed by the peripheral.
var (
	// MIDIServiceUUID is the BLE-MIDI service.
	MIDIServiceUUID = MustParseUUID("03B80E5A-EDE8-4B33-A751-6CE34EC4C700")

	// MIDIIOCharUUID is the single BLE-MIDI data I/O characteristic.
	MIDIIOCharUUID = MustParseUUID("7772E5DB-3868-4112-A1A9-F2669D106BF3")

	// BatteryServiceUUID is the standard Battery Service.
	BatteryServiceUUID = UUID16(0x180F)

	// DeviceInfoServiceUUID is the standard Device Information Service.
	DeviceInfoServiceUUID = UUID16(0x180A)
)

var (
	attrBatteryLevelUUID     = UUID16(0x2A19)
	attrManufacturerNameUUID = UUID16(0x2A29)
	attrFirmwareRevisionUUID = UUID16(0x2A26)
	attrClientCharConfigUUID = UUID16(0x2902)
)

// gattCCCNotifyFlag is the notification bit of a Client Characteristic
// Configuration value.
const gattCCCNotifyFlag = 0x0001

// ATT error codes used for write responses.
const (
	attEcodeSuccess  = 0x00
	attEcodeUnlikely = 0x0e
)

// Supported statuses for GATT characteristic write operations.
const (
	StatusSuccess         = attEcodeSuccess
	StatusUnexpectedError = attEcodeUnlikely
)

// advertising data field types
const (
	typeFlags        = 0x01 // Flags
	typeAllUUID128   = 0x07 // Complete List of 128-bit Service Class UUIDs
	typeCompleteName = 0x09 // Complete Local Name
)

// flag bits
const (
	flagLimitedDiscoverable = 1 << iota // LE Limited Discoverable Mode
	flagGeneralDiscoverable             // LE General Discoverable Mode
	flagLEOnly                          // BR/EDR Not Supported
)

// MIDI channel voice status nibbles. The low nibble of a status byte
// carries the channel.
const (
	StatusNoteOff         = 0x80
	StatusNoteOn          = 0x90
	StatusPolyPressure    = 0xA0
	StatusControlChange   = 0xB0
	StatusProgramChange   = 0xC0
	StatusChannelPressure = 0xD0
	StatusPitchBend       = 0xE0
)

// Common controller numbers.
const (
	CCModWheel    = 1
	CCBreath      = 2
	CCVolume      = 7
	CCPan         = 10
	CCExpression  = 11
	CCSustain     = 64
	CCAllNotesOff = 123
)

// Note numbers for octave 4.
const (
	NoteC4  = 60
	NoteCs4 = 61
	NoteD4  = 62
	NoteDs4 = 63
	NoteE4  = 64
	NoteF4  = 65
	NoteFs4 = 66
	NoteG4  = 67
	NoteGs4 = 68
	NoteA4  = 69
	NoteAs4 = 70
	NoteB4  = 71
)
