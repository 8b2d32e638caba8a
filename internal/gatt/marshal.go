package gatt

import (
	"reflect"
	"unsafe"

	"github.com/google/uuid"

	"gattshim/internal/btif"
	"gattshim/internal/dispatch"
)

// Conversion from native callback arguments into owned event values.
//
// Every pointer handed to a callback is only valid until the callback
// returns, so nothing here keeps one: fixed structs are copied by value and
// pointer+length buffers into fresh slices.

// emit delivers ev to the handler of category C on the calling goroutine.
func emit[C any](reg *dispatch.Registry, ev C) {
	marshalEventsTotal.WithLabelValues(dispatch.CategoryOf[C]().String(), eventName(ev)).Inc()
	dispatch.Dispatch(reg, ev)
}

func eventName(ev any) string {
	t := reflect.TypeOf(ev)
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}

// copyBuffer copies n bytes at p. A zero length or nil p yields an empty,
// non-nil slice and p is never read.
func copyBuffer(p *byte, n uintptr) []byte {
	if p == nil || n == 0 {
		return []byte{}
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice(p, n))
	return out
}

// copyFixed copies the first n bytes of a fixed-size value array, bounded by
// its capacity.
func copyFixed(buf *[btif.GattMaxAttrLen]byte, n uint16) []byte {
	l := int(n)
	if l > len(buf) {
		l = len(buf)
	}
	out := make([]byte, l)
	copy(out, buf[:l])
	return out
}

// copyElements converts n database elements at p.
func copyElements(p *btif.DbElement, n int) []DBElement {
	if p == nil || n <= 0 {
		return []DBElement{}
	}
	src := unsafe.Slice(p, n)
	out := make([]DBElement, n)
	for i := range src {
		out[i] = elementFrom(&src[i])
	}
	return out
}

func elementFrom(e *btif.DbElement) DBElement {
	return DBElement{
		ID:                 e.ID,
		UUID:               uuid.UUID(e.UUID.UU),
		Type:               AttributeType(e.Type),
		AttributeHandle:    e.AttributeHandle,
		StartHandle:        e.StartHandle,
		EndHandle:          e.EndHandle,
		Properties:         e.Properties,
		ExtendedProperties: e.ExtendedProperties,
		Permissions:        e.Permissions,
	}
}

// addressFrom reinterprets a native address. The native side has already
// validated it. A nil p is a malformed invocation and panics.
func addressFrom(p *btif.RawAddress) Address {
	if p == nil {
		panic("gatt: nil address in native callback")
	}
	return Address(p.Address)
}

func uuidFrom(p *btif.RawUUID) uuid.UUID {
	if p == nil {
		panic("gatt: nil uuid in native callback")
	}
	return uuid.UUID(p.UU)
}

func readParamsFrom(p *btif.ReadParams) ReadParams {
	if p == nil {
		panic("gatt: nil read params in native callback")
	}
	return ReadParams{
		Handle:    p.Handle,
		Value:     copyFixed(&p.Value.Value, p.Value.Len),
		ValueType: p.ValueType,
		Status:    GattStatus(p.Status),
	}
}

func notifyParamsFrom(p *btif.NotifyParams) NotifyParams {
	if p == nil {
		panic("gatt: nil notify params in native callback")
	}
	return NotifyParams{
		Value:    copyFixed(&p.Value, p.Len),
		Addr:     Address(p.BDA.Address),
		Handle:   p.Handle,
		IsNotify: p.IsNotify != 0,
	}
}

// trackInfoFrom converts a tracking record. Advertiser stays nil unless the
// record flags it present.
func trackInfoFrom(in *btif.AdvertisingTrackInfo) TrackInfo {
	if in == nil {
		panic("gatt: nil track info in native callback")
	}
	out := TrackInfo{
		ScannerID:       in.ScannerID,
		FilterIndex:     in.FilterIndex,
		AdvertiserState: in.AdvertiserState,
		AdvPacket:       copyBuffer(in.AdvPacket, uintptr(in.AdvPacketLen)),
		ScanResponse:    copyBuffer(in.ScanResponse, uintptr(in.ScanResponseLen)),
	}
	if in.AdvertiserInfoPresent != 0 {
		out.Advertiser = &AdvertiserInfo{
			Addr:     Address(in.AdvertiserAddress.Address),
			AddrType: in.AdvertiserAddressType,
			TxPower:  in.TxPower,
			RSSI:     in.RSSI,
			Time:     in.Timestamp,
		}
	}
	return out
}
