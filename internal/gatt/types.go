package gatt

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gattshim/internal/btif"
)

// Address is a 6-byte Bluetooth device address, most significant byte first.
type Address [6]byte

func (a Address) String() string {
	var b strings.Builder
	for i, v := range a {
		if i > 0 {
			b.WriteByte(':')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

// ParseAddress parses "AA:BB:CC:DD:EE:FF" (case-insensitive, ':' or '-').
func ParseAddress(s string) (Address, error) {
	var a Address
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ':' || r == '-' })
	if len(parts) != len(a) {
		return a, fmt.Errorf("parse address %q: want 6 octets", s)
	}
	for i, p := range parts {
		if len(p) != 2 {
			return a, fmt.Errorf("parse address %q: bad octet %q", s, p)
		}
		if _, err := hex.Decode(a[i:i+1], []byte(p)); err != nil {
			return a, fmt.Errorf("parse address %q: %w", s, err)
		}
	}
	return a, nil
}

func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Address) UnmarshalText(b []byte) error {
	v, err := ParseAddress(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Address) raw() btif.RawAddress { return btif.RawAddress{Address: a} }

// AttributeType is the kind of a database element.
type AttributeType int32

const (
	PrimaryService   = AttributeType(btif.DbPrimaryService)
	SecondaryService = AttributeType(btif.DbSecondaryService)
	IncludedService  = AttributeType(btif.DbIncludedService)
	Characteristic   = AttributeType(btif.DbCharacteristic)
	Descriptor       = AttributeType(btif.DbDescriptor)
)

func (t AttributeType) String() string {
	switch t {
	case PrimaryService:
		return "PrimaryService"
	case SecondaryService:
		return "SecondaryService"
	case IncludedService:
		return "IncludedService"
	case Characteristic:
		return "Characteristic"
	case Descriptor:
		return "Descriptor"
	}
	return fmt.Sprintf("AttributeType(%d)", int32(t))
}

// DBElement is one entry of a GATT database.
type DBElement struct {
	ID                 uint16
	UUID               uuid.UUID
	Type               AttributeType
	AttributeHandle    uint16
	StartHandle        uint16
	EndHandle          uint16
	Properties         uint8
	ExtendedProperties uint16
	Permissions        uint16
}

func (e DBElement) raw() btif.DbElement {
	return btif.DbElement{
		ID:                 e.ID,
		UUID:               btif.RawUUID{UU: e.UUID},
		Type:               btif.DbAttributeType(e.Type),
		AttributeHandle:    e.AttributeHandle,
		StartHandle:        e.StartHandle,
		EndHandle:          e.EndHandle,
		Properties:         e.Properties,
		ExtendedProperties: e.ExtendedProperties,
		Permissions:        e.Permissions,
	}
}

// ReadParams is the result of a characteristic or descriptor read.
type ReadParams struct {
	Handle    uint16
	Value     []byte
	ValueType uint16
	Status    GattStatus
}

// NotifyParams is a received notification or indication.
type NotifyParams struct {
	Value    []byte
	Addr     Address
	Handle   uint16
	IsNotify bool
}

// AdvertiserInfo is the advertiser part of a tracking event. It is only
// present when the controller reported it.
type AdvertiserInfo struct {
	Addr     Address
	AddrType uint8
	TxPower  uint8
	RSSI     int8
	Time     uint16
}

// TrackInfo is an advertisement found/lost tracking record.
type TrackInfo struct {
	ScannerID       uint8
	FilterIndex     uint8
	AdvertiserState uint8
	Advertiser      *AdvertiserInfo
	AdvPacket       []byte
	ScanResponse    []byte
}

// Response is the value sent back for a peer read request.
type Response struct {
	Handle  uint16
	Offset  uint16
	AuthReq uint8
	Value   []byte
}

// TestParams are the arguments of a client test command.
type TestParams struct {
	Addr *Address
	UUID *uuid.UUID
	U1   uint16
	U2   uint16
	U3   uint16
	U4   uint16
	U5   uint16
}
