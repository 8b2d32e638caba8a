package gatt

import "fmt"

// GattStatus is an ATT/GATT status code carried in events. Events hold the
// foreign value unchecked; use Valid to test it against the known table.
type GattStatus uint8

const (
	GattSuccess             GattStatus = 0x00
	GattInvalidHandle       GattStatus = 0x01
	GattReadNotPermit       GattStatus = 0x02
	GattWriteNotPermit      GattStatus = 0x03
	GattInvalidPdu          GattStatus = 0x04
	GattInsufAuthentication GattStatus = 0x05
	GattReqNotSupported     GattStatus = 0x06
	GattInvalidOffset       GattStatus = 0x07
	GattInsufAuthorization  GattStatus = 0x08
	GattPrepareQFull        GattStatus = 0x09
	GattNotFound            GattStatus = 0x0a
	GattNotLong             GattStatus = 0x0b
	GattInsufKeySize        GattStatus = 0x0c
	GattInvalidAttrLen      GattStatus = 0x0d
	GattErrUnlikely         GattStatus = 0x0e
	GattInsufEncryption     GattStatus = 0x0f
	GattUnsupportGrpType    GattStatus = 0x10
	GattInsufResource       GattStatus = 0x11
	GattDatabaseOutOfSync   GattStatus = 0x12
	GattValueNotAllowed     GattStatus = 0x13
	GattTooShort            GattStatus = 0x7f
	GattNoResources         GattStatus = 0x80
	GattInternalError       GattStatus = 0x81
	GattWrongState          GattStatus = 0x82
	GattDbFull              GattStatus = 0x83
	GattBusy                GattStatus = 0x84
	GattError               GattStatus = 0x85
	GattCmdStarted          GattStatus = 0x86
	GattIllegalParameter    GattStatus = 0x87
	GattPending             GattStatus = 0x88
	GattAuthFail            GattStatus = 0x89
	GattMore                GattStatus = 0x8a
	GattInvalidCfg          GattStatus = 0x8b
	GattServiceStarted      GattStatus = 0x8c
	GattEncryptedNoMitm     GattStatus = 0x8d
	GattNotEncrypted        GattStatus = 0x8e
	GattCongested           GattStatus = 0x8f
	GattDupReg              GattStatus = 0x90
	GattAlreadyOpen         GattStatus = 0x91
	GattCancel              GattStatus = 0x92
	GattCccCfgErr           GattStatus = 0xfd
	GattPrcInProgress       GattStatus = 0xfe
	GattOutOfRange          GattStatus = 0xff
)

var gattStatusNames = map[GattStatus]string{
	GattSuccess:             "Success",
	GattInvalidHandle:       "InvalidHandle",
	GattReadNotPermit:       "ReadNotPermit",
	GattWriteNotPermit:      "WriteNotPermit",
	GattInvalidPdu:          "InvalidPdu",
	GattInsufAuthentication: "InsufAuthentication",
	GattReqNotSupported:     "ReqNotSupported",
	GattInvalidOffset:       "InvalidOffset",
	GattInsufAuthorization:  "InsufAuthorization",
	GattPrepareQFull:        "PrepareQFull",
	GattNotFound:            "NotFound",
	GattNotLong:             "NotLong",
	GattInsufKeySize:        "InsufKeySize",
	GattInvalidAttrLen:      "InvalidAttrLen",
	GattErrUnlikely:         "ErrUnlikely",
	GattInsufEncryption:     "InsufEncryption",
	GattUnsupportGrpType:    "UnsupportGrpType",
	GattInsufResource:       "InsufResource",
	GattDatabaseOutOfSync:   "DatabaseOutOfSync",
	GattValueNotAllowed:     "ValueNotAllowed",
	GattTooShort:            "TooShort",
	GattNoResources:         "NoResources",
	GattInternalError:       "InternalError",
	GattWrongState:          "WrongState",
	GattDbFull:              "DbFull",
	GattBusy:                "Busy",
	GattError:               "Error",
	GattCmdStarted:          "CmdStarted",
	GattIllegalParameter:    "IllegalParameter",
	GattPending:             "Pending",
	GattAuthFail:            "AuthFail",
	GattMore:                "More",
	GattInvalidCfg:          "InvalidCfg",
	GattServiceStarted:      "ServiceStarted",
	GattEncryptedNoMitm:     "EncryptedNoMitm",
	GattNotEncrypted:        "NotEncrypted",
	GattCongested:           "Congested",
	GattDupReg:              "DupReg",
	GattAlreadyOpen:         "AlreadyOpen",
	GattCancel:              "Cancel",
	GattCccCfgErr:           "CccCfgErr",
	GattPrcInProgress:       "PrcInProgress",
	GattOutOfRange:          "OutOfRange",
}

func (s GattStatus) String() string {
	if n, ok := gattStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("GattStatus(0x%02x)", uint8(s))
}

// MarshalText encodes s by name so JSON event payloads stay readable.
func (s GattStatus) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Valid reports whether s is a defined status code.
func (s GattStatus) Valid() bool {
	_, ok := gattStatusNames[s]
	return ok
}

// ParseGattStatus maps a foreign code to a GattStatus. Codes outside the
// defined table fail with an unknown status error.
func ParseGattStatus(code int64) (GattStatus, error) {
	if code < 0 || code > 0xff || !GattStatus(code).Valid() {
		return 0, ErrUnknownStatus("gatt", code)
	}
	return GattStatus(code), nil
}

// GattStatuses returns every defined GattStatus in ascending order.
func GattStatuses() []GattStatus {
	out := make([]GattStatus, 0, len(gattStatusNames))
	for c := 0; c <= 0xff; c++ {
		if GattStatus(c).Valid() {
			out = append(out, GattStatus(c))
		}
	}
	return out
}

// BtStatus is the admission status returned by facade calls.
type BtStatus int32

const (
	BtSuccess BtStatus = iota
	BtFail
	BtNotReady
	BtNoMemory
	BtBusy
	BtDone
	BtUnsupported
	BtParmInvalid
	BtUnhandled
	BtAuthFailure
	BtRemoteDeviceDown
	BtAuthRejected
	BtJniEnvironmentError
	BtJniThreadAttachError
	BtWakelockError
)

var btStatusNames = [...]string{
	BtSuccess:              "Success",
	BtFail:                 "Fail",
	BtNotReady:             "NotReady",
	BtNoMemory:             "NoMemory",
	BtBusy:                 "Busy",
	BtDone:                 "Done",
	BtUnsupported:          "Unsupported",
	BtParmInvalid:          "ParmInvalid",
	BtUnhandled:            "Unhandled",
	BtAuthFailure:          "AuthFailure",
	BtRemoteDeviceDown:     "RemoteDeviceDown",
	BtAuthRejected:         "AuthRejected",
	BtJniEnvironmentError:  "JniEnvironmentError",
	BtJniThreadAttachError: "JniThreadAttachError",
	BtWakelockError:        "WakelockError",
}

func (s BtStatus) String() string {
	if s.Valid() {
		return btStatusNames[s]
	}
	return fmt.Sprintf("BtStatus(%d)", int32(s))
}

// Valid reports whether s is a defined status code.
func (s BtStatus) Valid() bool { return s >= 0 && int(s) < len(btStatusNames) }

// Code returns the foreign integer for s.
func (s BtStatus) Code() int32 { return int32(s) }

// ParseBtStatus maps a foreign return code to a BtStatus.
func ParseBtStatus(code int32) (BtStatus, error) {
	if !BtStatus(code).Valid() {
		return 0, ErrUnknownStatus("bt", int64(code))
	}
	return BtStatus(code), nil
}

// mustBtStatus converts a foreign return code. An undefined code means the
// native side broke its contract and panics.
func mustBtStatus(code int32) BtStatus {
	s, err := ParseBtStatus(code)
	if err != nil {
		panic("gatt: " + err.Error())
	}
	return s
}

// BtStatuses returns every defined BtStatus in ascending order.
func BtStatuses() []BtStatus {
	out := make([]BtStatus, len(btStatusNames))
	for i := range out {
		out[i] = BtStatus(i)
	}
	return out
}
