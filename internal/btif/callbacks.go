package btif

import "unsafe"

// ClientCallbacks is btgatt_client_callbacks_t plus the read-phy completion
// delivered by the client shim. A nil entry is handed to the native side as
// a NULL function pointer.
type ClientCallbacks struct {
	RegisterClient          func(status, clientIf int32, appUUID *RawUUID)
	Open                    func(connID, status, clientIf int32, bda *RawAddress)
	Close                   func(connID, status, clientIf int32, bda *RawAddress)
	SearchComplete          func(connID, status int32)
	RegisterForNotification func(connID, registered, status int32, handle uint16)
	Notify                  func(connID int32, params *NotifyParams)
	ReadCharacteristic      func(connID, status int32, params *ReadParams)
	WriteCharacteristic     func(connID, status int32, handle, length uint16, value *byte)
	ReadDescriptor          func(connID, status int32, params *ReadParams)
	WriteDescriptor         func(connID, status int32, handle, length uint16, value *byte)
	ExecuteWrite            func(connID, status int32)
	ReadRemoteRSSI          func(clientIf int32, bda *RawAddress, rssi, status int32)
	ConfigureMTU            func(connID, status, mtu int32)
	Congestion              func(connID int32, congested bool)
	GetGattDB               func(connID int32, db *DbElement, count int32)
	ServicesRemoved         func(connID int32, startHandle, endHandle uint16)
	ServicesAdded           func(connID int32, added *DbElement, count int32)
	PhyUpdated              func(connID int32, txPhy, rxPhy, status uint8)
	ConnUpdated             func(connID int32, interval, latency, timeout uint16, status uint8)
	ServiceChanged          func(connID int32)
	ReadPhy                 func(clientIf int32, addr RawAddress, txPhy, rxPhy, status uint8)
}

// ServerCallbacks is btgatt_server_callbacks_t.
type ServerCallbacks struct {
	RegisterServer             func(status, serverIf int32, appUUID *RawUUID)
	Connection                 func(connID, serverIf, connected int32, bda *RawAddress)
	ServiceAdded               func(status, serverIf int32, service *DbElement, count uintptr)
	ServiceStopped             func(status, serverIf, serviceHandle int32)
	ServiceDeleted             func(status, serverIf, serviceHandle int32)
	RequestReadCharacteristic  func(connID, transID int32, bda *RawAddress, attrHandle, offset int32, isLong bool)
	RequestReadDescriptor      func(connID, transID int32, bda *RawAddress, attrHandle, offset int32, isLong bool)
	RequestWriteCharacteristic func(connID, transID int32, bda *RawAddress, attrHandle, offset int32, needRsp, isPrep bool, value *byte, length uintptr)
	RequestWriteDescriptor     func(connID, transID int32, bda *RawAddress, attrHandle, offset int32, needRsp, isPrep bool, value *byte, length uintptr)
	RequestExecWrite           func(connID, transID int32, bda *RawAddress, execWrite int32)
	ResponseConfirmation       func(status, handle int32)
	IndicationSent             func(connID, status int32)
	Congestion                 func(connID int32, congested bool)
	MTUChanged                 func(connID, mtu int32)
	PhyUpdated                 func(connID int32, txPhy, rxPhy, status uint8)
	ConnUpdated                func(connID int32, interval, latency, timeout uint16, status uint8)
}

// LegacyScannerCallbacks is btgatt_scanner_callbacks_t. Scanning is served
// through the scanner shim (ScannerCallbacks) instead, so these entries are
// normally left unset.
type LegacyScannerCallbacks struct {
	ScanResult         func(eventType uint16, addrType uint8, bda *RawAddress, primaryPhy, secondaryPhy, advertisingSID uint8, txPower, rssi int8, periodicAdvInt uint16, advData *byte, advDataLen uintptr)
	BatchscanReports   func(clientIf, status, reportFormat, numRecords int32, data *byte, dataLen uintptr)
	BatchscanThreshold func(clientIf int32)
	TrackAdvEvent      func(info *AdvertisingTrackInfo)
}

// ScannerCallbacks is the table installed on the scanner shim with
// ScannerInterface.RegisterCallbacks.
type ScannerCallbacks struct {
	OnScannerRegistered           func(appUUID *RawUUID, scannerID, status uint8)
	OnSetScannerParameterComplete func(scannerID, status uint8)
	OnScanResult                  func(eventType uint16, addrType uint8, bda *RawAddress, primaryPhy, secondaryPhy, advertisingSID uint8, txPower, rssi int8, periodicAdvInt uint16, advData *byte, advDataLen uintptr)
	OnTrackAdvFoundLost           func(info AdvertisingTrackInfo)
	OnBatchScanReports            func(clientIf, status, reportFormat, numRecords int32, data *byte, dataLen uintptr)
	OnBatchScanThresholdCrossed   func(clientIf int32)
}

// Callbacks is btgatt_callbacks_t: the top-level table passed to Init. Size
// is the byte size of the native struct, four pointer-sized words.
type Callbacks struct {
	Size    uintptr
	Client  *ClientCallbacks
	Server  *ServerCallbacks
	Scanner *LegacyScannerCallbacks
}

// CallbacksSize is the value Init expects in Callbacks.Size.
const CallbacksSize = 4 * unsafe.Sizeof(uintptr(0))
