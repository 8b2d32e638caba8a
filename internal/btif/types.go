package btif

import "unsafe"

// GattMaxAttrLen is the size of the fixed value buffers in notify/read params.
const GattMaxAttrLen = 600

// RawAddress is the 6-byte device address as laid out by the native stack.
type RawAddress struct {
	Address [6]byte
}

// RawUUID is the 16-byte UUID as laid out by the native stack (big endian).
type RawUUID struct {
	UU [16]byte
}

// Layout checks. These stop compiling if the mirrors drift from the C side,
// which reinterprets pointers to them without copying.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(RawAddress{})-6]
	_ = [1]struct{}{}[unsafe.Sizeof(RawUUID{})-16]
)

// UnformattedValue is btgatt_unformatted_value_t.
type UnformattedValue struct {
	Value [GattMaxAttrLen]byte
	Len   uint16
}

// ReadParams is btgatt_read_params_t.
type ReadParams struct {
	Handle    uint16
	Value     UnformattedValue
	ValueType uint16
	Status    uint8
}

// NotifyParams is btgatt_notify_params_t.
type NotifyParams struct {
	Value    [GattMaxAttrLen]byte
	BDA      RawAddress
	Handle   uint16
	Len      uint16
	IsNotify uint8
}

// DbAttributeType is bt_gatt_db_attribute_type_t.
type DbAttributeType int32

const (
	DbPrimaryService DbAttributeType = iota
	DbSecondaryService
	DbIncludedService
	DbCharacteristic
	DbDescriptor
)

// DbElement is btgatt_db_element_t.
type DbElement struct {
	ID                 uint16
	UUID               RawUUID
	Type               DbAttributeType
	AttributeHandle    uint16
	StartHandle        uint16
	EndHandle          uint16
	Properties         uint8
	ExtendedProperties uint16
	Permissions        uint16
}

// GattValue is btgatt_value_t.
type GattValue struct {
	Value   [GattMaxAttrLen]byte
	Handle  uint16
	Offset  uint16
	Len     uint16
	AuthReq uint8
}

// Response is btgatt_response_t. The native type is a union of a bare
// handle and a full value; the value arm is the one carried here and Handle
// mirrors AttrValue.Handle.
type Response struct {
	Handle    uint16
	AttrValue GattValue
}

// TestParams is btgatt_test_params_t.
type TestParams struct {
	BDA1  *RawAddress
	UUID1 *RawUUID
	U1    uint16
	U2    uint16
	U3    uint16
	U4    uint16
	U5    uint16
}

// AdvertisingTrackInfo is the track-adv record handed to the scanner shim
// callback by value. AdvPacket and ScanResponse point at native buffers of
// AdvPacketLen and ScanResponseLen bytes.
type AdvertisingTrackInfo struct {
	ScannerID             uint8
	FilterIndex           uint8
	AdvertiserState       uint8
	AdvertiserInfoPresent uint8
	AdvertiserAddress     RawAddress
	AdvertiserAddressType uint8
	TxPower               uint8
	RSSI                  int8
	Timestamp             uint16
	AdvPacketLen          uint8
	AdvPacket             *byte
	ScanResponseLen       uint8
	ScanResponse          *byte
}

// Profile identifies a native profile interface.
type Profile string

const (
	ProfileGatt Profile = "gatt"
)

// Status codes returned by native vtable entries.
const (
	StatusSuccess int32 = 0
	StatusFail    int32 = 1
)
