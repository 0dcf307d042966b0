package blemidi

import "github.com/sirupsen/logrus"

// State describes readiness of the one BLE link.
type State int

const (
	// StateDisconnected means no central is connected.
	StateDisconnected State = iota

	// StateConnected means a central is connected but has not enabled
	// MIDI notifications; sends are rejected.
	StateConnected

	// StateReady means a central is connected and has enabled MIDI
	// notifications; sends are permitted.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// connIntervalScale converts a connection interval tick count to
// milliseconds. Link-layer connection intervals are in 1.25 ms units.
const connIntervalScale = 1.25

// Default connection interval negotiation target in 1.25 ms units.
// 6 is the BLE minimum (7.5 ms); 6-12 trades power for the low latency
// real-time MIDI wants.
const (
	defaultConnIntervalMin = 6
	defaultConnIntervalMax = 12
)

// link is the single optional connection and the per-characteristic
// notification gates tied to its lifetime. All fields are guarded by
// the owning Device's mutex.
type link struct {
	present  bool
	handle   uint16
	interval uint16 // 1.25 ms units

	midiNotify bool
	battNotify bool
}

// state maps link presence and the MIDI notification gate onto the
// three-state readiness model. The gates are meaningless without a
// connection, so absence wins.
func (l *link) state() State {
	if !l.present {
		return StateDisconnected
	}
	if l.midiNotify {
		return StateReady
	}
	return StateConnected
}

// reset clears the connection, both notification gates, and the
// recorded interval in one step.
func (l *link) reset() {
	*l = link{}
}

// Connected records a new link and requests renegotiation of the
// connection interval toward the configured low-latency target. The
// transport calls it on a link-complete event, with the negotiated
// interval in 1.25 ms units.
func (d *Device) Connected(conn, interval uint16) {
	d.mu.Lock()
	d.link.present = true
	d.link.handle = conn
	d.link.interval = interval
	min, max := d.intervalMin, d.intervalMax
	d.mu.Unlock()

	d.log.WithFields(logrus.Fields{
		"conn":     conn,
		"interval": interval,
	}).Info("central connected")

	if err := d.transport.RequestConnectionUpdate(min, max, 0, supervisionTimeout); err != nil {
		d.log.WithError(err).Debug("connection parameter update request failed")
	}
}

// Disconnected clears the connection, both notification gates, and the
// recorded interval. The transport calls it on a disconnect event.
func (d *Device) Disconnected() {
	d.mu.Lock()
	d.link.reset()
	d.mu.Unlock()
	d.log.Info("central disconnected")
}

// IntervalUpdated records a renegotiated connection interval, in
// 1.25 ms units. It does not change connection state.
func (d *Device) IntervalUpdated(interval uint16) {
	d.mu.Lock()
	if d.link.present {
		d.link.interval = interval
	}
	d.mu.Unlock()
	d.log.WithField("interval", interval).Debug("connection interval updated")
}

// supervisionTimeout is the supervision timeout passed along with
// connection parameter update requests, in 10 ms units.
const supervisionTimeout = 100
