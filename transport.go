package blemidi

// A Transport is the Bluetooth stack a Device runs on. The Device
// drives it: starting and stopping advertising, pushing notifications,
// and requesting connection parameter updates. Events flow the other
// way; the transport is expected to invoke the Device's Connected,
// Disconnected, and IntervalUpdated methods for link lifecycle events,
// and ServeRead and ServeWrite for ATT reads and writes, all from the
// same context that calls Poll.
type Transport interface {
	// Start brings the stack up and begins advertising with the given
	// advertising and scan response payloads.
	Start(adv, scanResp []byte) error

	// Stop shuts the stack down.
	Stop() error

	// Poll runs one step of the stack's event processing. It must not
	// block beyond a bounded, short interval.
	Poll()

	// CanNotifyNow reports whether the stack can accept a notification
	// for the active connection right now.
	CanNotifyNow() bool

	// Notify pushes a notification of the given attribute value to the
	// connected central. It fails if the stack is busy; it never queues.
	Notify(valueHandle uint16, data []byte) error

	// RequestConnectionUpdate asks the central to renegotiate the
	// connection parameters. Intervals are in 1.25 ms units, the
	// supervision timeout in 10 ms units.
	RequestConnectionUpdate(intervalMin, intervalMax, latency, timeout uint16) error
}
