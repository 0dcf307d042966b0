package blemidi

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Errors returned by Device operations.
var (
	// ErrAlreadyInitialized is returned by Init on an initialized Device.
	ErrAlreadyInitialized = errors.New("already initialized")

	// ErrTransportInit is returned, wrapped, when the transport fails
	// to start. The Device must not be used after a failed Init.
	ErrTransportInit = errors.New("transport init failed")

	// ErrNotReady is returned by a send while no connected central has
	// enabled MIDI notifications.
	ErrNotReady = errors.New("not ready")

	// ErrTransportBusy is returned by a send the transport cannot
	// accept right now. Retry on a later poll.
	ErrTransportBusy = errors.New("transport busy")

	// ErrInvalidMessage is returned by Send for data outside 1-3 bytes.
	ErrInvalidMessage = errors.New("midi messages are 1-3 bytes")
)

// Storage bounds for the Device Information strings.
const (
	maxManufacturerLen = 31
	maxFirmwareLen     = 15
)

// A Device is a BLE-MIDI peripheral: the BLE-MIDI service plus the
// Battery and Device Information services, multiplexed over a single
// Transport. Device methods are safe for concurrent use, though a
// cooperative single-goroutine loop is the intended shape.
type Device struct {
	mu        sync.Mutex
	transport Transport
	log       logrus.FieldLogger

	name         string
	manufacturer string
	firmware     string
	battery      byte

	intervalMin uint16
	intervalMax uint16

	link    link
	handles *handleRange

	midiValue uint16
	midiCCCD  uint16
	battValue uint16
	battCCCD  uint16
	mfgValue  uint16
	fwValue   uint16

	rx func(status, data1, data2 byte)

	initialized bool
}

// NewDevice creates a Device on the given transport with the specified
// options. See also Device.Option.
func NewDevice(t Transport, opts ...option) *Device {
	d := &Device{
		transport:    t,
		log:          logrus.StandardLogger(),
		manufacturer: "RokoT",
		firmware:     "1.0.0",
		battery:      100,
		intervalMin:  defaultConnIntervalMin,
		intervalMax:  defaultConnIntervalMax,
	}
	d.handles = generateHandles(peripheralLayout, 1) // ble handles start at 1
	d.midiValue = d.handles.valueHandle(MIDIIOCharUUID)
	d.midiCCCD = d.handles.cccdHandle(MIDIIOCharUUID)
	d.battValue = d.handles.valueHandle(attrBatteryLevelUUID)
	d.battCCCD = d.handles.cccdHandle(attrBatteryLevelUUID)
	d.mfgValue = d.handles.valueHandle(attrManufacturerNameUUID)
	d.fwValue = d.handles.valueHandle(attrFirmwareRevisionUUID)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

type option func(*Device) option

// Option sets the options specified.
// It returns an option to restore the last arg's previous value.
func (d *Device) Option(opts ...option) (prev option) {
	for _, opt := range opts {
		prev = opt(d)
	}
	return prev
}

// Manufacturer sets the Device Information manufacturer name string.
func Manufacturer(m string) option {
	return func(d *Device) option {
		prev := d.manufacturer
		d.manufacturer = truncate(m, maxManufacturerLen)
		return Manufacturer(prev)
	}
}

// FirmwareVersion sets the Device Information firmware revision string.
func FirmwareVersion(v string) option {
	return func(d *Device) option {
		prev := d.firmware
		d.firmware = truncate(v, maxFirmwareLen)
		return FirmwareVersion(prev)
	}
}

// ConnInterval sets the connection interval range requested from the
// central after connecting, in 1.25 ms units. Lower is lower latency
// but more power; 6 is the BLE minimum.
func ConnInterval(min, max uint16) option {
	return func(d *Device) option {
		pmin, pmax := d.intervalMin, d.intervalMax
		d.intervalMin, d.intervalMax = min, max
		return ConnInterval(pmin, pmax)
	}
}

// Logger sets the logger used for connection and dispatch logging.
func Logger(l logrus.FieldLogger) option {
	return func(d *Device) option {
		prev := d.log
		d.log = l
		return Logger(prev)
	}
}

// Init starts the transport and begins advertising under the given
// name. A failed Init is terminal for the Device.
func (d *Device) Init(name string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.initialized {
		return ErrAlreadyInitialized
	}
	d.name = name

	adv := serviceAdvertisingPacket(MIDIServiceUUID)
	scan := nameScanResponsePacket(name)
	if len(adv) > MaxEIRPacketLength || len(scan) > MaxEIRPacketLength {
		return ErrEIRPacketTooLong
	}
	if err := d.transport.Start(adv, scan); err != nil {
		return fmt.Errorf("%v: %w", err, ErrTransportInit)
	}
	d.initialized = true
	d.log.WithField("name", name).Info("advertising")
	return nil
}

// Close stops the transport and clears any connection state. The
// Device may be initialized again afterward.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.initialized {
		return errors.New("not initialized")
	}
	d.initialized = false
	d.link.reset()
	return d.transport.Stop()
}

// Poll runs one step of the transport's event processing. Call it
// regularly from the main loop.
func (d *Device) Poll() {
	d.mu.Lock()
	ok := d.initialized
	d.mu.Unlock()
	if ok {
		d.transport.Poll()
	}
}

// State returns the current connection state.
func (d *Device) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.link.state()
}

// IsConnected reports whether a central is connected.
func (d *Device) IsConnected() bool {
	return d.State() != StateDisconnected
}

// IsReady reports whether MIDI can be sent: a central is connected and
// has enabled notifications.
func (d *Device) IsReady() bool {
	return d.State() == StateReady
}

// ConnectionInterval returns the negotiated connection interval in
// milliseconds, or 0 while disconnected.
func (d *Device) ConnectionInterval() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return float64(d.link.interval) * connIntervalScale
}

// SetManufacturer sets the manufacturer name string, truncated to its
// storage bound.
func (d *Device) SetManufacturer(m string) {
	d.mu.Lock()
	d.manufacturer = truncate(m, maxManufacturerLen)
	d.mu.Unlock()
}

// SetFirmwareVersion sets the firmware revision string, truncated to
// its storage bound.
func (d *Device) SetFirmwareVersion(v string) {
	d.mu.Lock()
	d.firmware = truncate(v, maxFirmwareLen)
	d.mu.Unlock()
}

// SetBatteryLevel sets the battery level, clamped to 0-100. If the
// connected central has enabled battery notifications and the
// transport can accept one, the new level is pushed; a busy transport
// simply skips the push.
func (d *Device) SetBatteryLevel(level uint8) {
	if level > 100 {
		level = 100
	}
	d.mu.Lock()
	d.battery = level
	notify := d.link.battNotify && d.link.present
	h := d.battValue
	d.mu.Unlock()

	if notify && d.transport.CanNotifyNow() {
		if err := d.transport.Notify(h, []byte{level}); err != nil {
			d.log.WithError(err).Debug("battery notification failed")
		}
	}
}

// BatteryLevel returns the current battery level, 0-100.
func (d *Device) BatteryLevel() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.battery
}

// NoteOn sends a Note On message. Channel is masked to 0-15, note and
// velocity to 0-127.
func (d *Device) NoteOn(channel, note, velocity uint8) error {
	return d.send([]byte{StatusNoteOn | channel&0x0F, note & 0x7F, velocity & 0x7F})
}

// NoteOff sends a Note Off message.
func (d *Device) NoteOff(channel, note uint8) error {
	return d.send([]byte{StatusNoteOff | channel&0x0F, note & 0x7F, 0})
}

// ControlChange sends a Control Change message.
func (d *Device) ControlChange(channel, controller, value uint8) error {
	return d.send([]byte{StatusControlChange | channel&0x0F, controller & 0x7F, value & 0x7F})
}

// ProgramChange sends a Program Change message.
func (d *Device) ProgramChange(channel, program uint8) error {
	return d.send([]byte{StatusProgramChange | channel&0x0F, program & 0x7F})
}

// PitchBend sends a Pitch Bend message. The value ranges -8192 to
// +8191 with 0 at center; it is biased onto 0-16383 and split into
// 7-bit LSB and MSB fields.
func (d *Device) PitchBend(channel uint8, value int16) error {
	bend := uint16(value + 8192)
	return d.send([]byte{StatusPitchBend | channel&0x0F, byte(bend & 0x7F), byte(bend >> 7 & 0x7F)})
}

// ChannelPressure sends a Channel Pressure (aftertouch) message.
func (d *Device) ChannelPressure(channel, pressure uint8) error {
	return d.send([]byte{StatusChannelPressure | channel&0x0F, pressure & 0x7F})
}

// Send sends a raw 1-3 byte MIDI message as-is.
func (d *Device) Send(data []byte) error {
	if len(data) == 0 || len(data) > 3 {
		return ErrInvalidMessage
	}
	return d.send(data)
}

// send encodes one MIDI message into a BLE-MIDI packet and attempts
// delivery. It never blocks, never queues, and never retries.
func (d *Device) send(midi []byte) error {
	d.mu.Lock()
	ready := d.link.state() == StateReady
	h := d.midiValue
	d.mu.Unlock()

	if !ready {
		return ErrNotReady
	}
	if !d.transport.CanNotifyNow() {
		return ErrTransportBusy
	}
	if err := d.transport.Notify(h, encodePacket(midi)); err != nil {
		d.log.WithError(err).Debug("midi notification failed")
		return ErrTransportBusy
	}
	return nil
}

// HandleMIDIFunc registers f to receive inbound MIDI messages as
// (status, data1, data2) triples. A nil f unregisters; inbound MIDI is
// then silently ignored. The callback is invoked synchronously from
// the transport's dispatch path.
func (d *Device) HandleMIDIFunc(f func(status, data1, data2 byte)) {
	d.mu.Lock()
	d.rx = f
	d.mu.Unlock()
}

// truncate bounds s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
