package blemidi

type handleType int

const (
	typService handleType = iota
	typCharacteristic
	typCharacteristicValue
	typCCCD
)

// handle is an ATT handle. It is not exported;
// managing handles is an implementation detail.
type handle struct {
	n    uint16 // att handle number
	typ  handleType
	uuid UUID // service or characteristic uuid this attribute belongs to
}

// isCharacteristicValue reports whether this handle is the
// value attribute of the characteristic with uuid uuid.
func (h handle) isCharacteristicValue(uuid UUID) bool {
	return h.typ == typCharacteristicValue && uuidEqual(uuid, h.uuid)
}

// isCCCD reports whether this handle is the client characteristic
// configuration descriptor of the characteristic with uuid uuid.
func (h handle) isCCCD(uuid UUID) bool {
	return h.typ == typCCCD && uuidEqual(uuid, h.uuid)
}

// attrChar describes one characteristic in the fixed attribute layout.
type attrChar struct {
	uuid   UUID
	notify bool // whether the characteristic carries a CCCD
}

// attrService describes one service in the fixed attribute layout.
type attrService struct {
	uuid  UUID
	chars []attrChar
}

// peripheralLayout is the attribute layout of the whole peripheral:
// the BLE-MIDI service, the Battery Service, and the Device
// Information Service. Handle numbers are assigned in declaration
// order, starting at the base passed to generateHandles.
var peripheralLayout = []attrService{
	{
		uuid: MIDIServiceUUID,
		chars: []attrChar{
			{uuid: MIDIIOCharUUID, notify: true},
		},
	},
	{
		uuid: BatteryServiceUUID,
		chars: []attrChar{
			{uuid: attrBatteryLevelUUID, notify: true},
		},
	},
	{
		uuid: DeviceInfoServiceUUID,
		chars: []attrChar{
			{uuid: attrManufacturerNameUUID},
			{uuid: attrFirmwareRevisionUUID},
		},
	},
}

func generateHandles(svcs []attrService, base uint16) *handleRange {
	var handles []handle
	n := base
	for _, svc := range svcs {
		handles = append(handles, handle{n: n, typ: typService, uuid: svc.uuid})
		n++
		for _, char := range svc.chars {
			handles = append(handles, handle{n: n, typ: typCharacteristic, uuid: char.uuid})
			n++
			handles = append(handles, handle{n: n, typ: typCharacteristicValue, uuid: char.uuid})
			n++
			if char.notify {
				handles = append(handles, handle{n: n, typ: typCCCD, uuid: char.uuid})
				n++
			}
		}
	}
	return &handleRange{hh: handles, base: base}
}

// A handleRange is a contiguous range of handles.
type handleRange struct {
	hh   []handle
	base uint16 // handle number for first handle in hh
}

const (
	tooSmall = -1
	tooLarge = -2
)

// idx returns the index into hh corresponding to handle n.
// If n is too small, idx returns tooSmall (-1).
// If n is too large, idx returns tooLarge (-2).
func (r *handleRange) idx(n int) int {
	if n < int(r.base) {
		return tooSmall
	}
	if n >= int(r.base)+len(r.hh) {
		return tooLarge
	}
	return n - int(r.base)
}

// At returns handle n.
func (r *handleRange) At(n uint16) (h handle, ok bool) {
	i := r.idx(int(n))
	if i < 0 {
		return handle{}, false
	}
	return r.hh[i], true
}

// Subrange returns handles in range [start, end]; it may
// return an empty slice. Subrange does not panic for
// out-of-range start or end.
func (r *handleRange) Subrange(start, end uint16) []handle {
	startidx := r.idx(int(start))
	switch startidx {
	case tooSmall:
		startidx = 0
	case tooLarge:
		return []handle{}
	}

	endidx := r.idx(int(end) + 1) // [start, end] includes its upper bound!
	switch endidx {
	case tooSmall:
		return []handle{}
	case tooLarge:
		endidx = len(r.hh)
	}
	return r.hh[startidx:endidx]
}

// valueHandle returns the handle number of the value attribute of the
// characteristic with uuid uuid, or 0 if the layout has no such
// characteristic.
func (r *handleRange) valueHandle(uuid UUID) uint16 {
	for _, h := range r.hh {
		if h.isCharacteristicValue(uuid) {
			return h.n
		}
	}
	return 0
}

// cccdHandle returns the handle number of the client characteristic
// configuration descriptor of the characteristic with uuid uuid, or 0
// if the characteristic has none.
func (r *handleRange) cccdHandle(uuid UUID) uint16 {
	for _, h := range r.hh {
		if h.isCCCD(uuid) {
			return h.n
		}
	}
	return 0
}
