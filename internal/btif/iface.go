package btif

// BluetoothInterface is the adapter-level native interface. Only the
// profile lookup is used here.
type BluetoothInterface interface {
	// GetProfileInterface returns the interface table for profile, or nil
	// when the native stack does not provide it.
	GetProfileInterface(profile Profile) GattInterface
}

// GattInterface is btgatt_interface_t. The sub-interfaces are static tables
// owned by the native library and stay valid for the process lifetime.
type GattInterface interface {
	// Init hands the callback table to the native stack. The native side
	// keeps pointers into cb without copying. Returns a bt_status_t code.
	Init(cb *Callbacks) int32
	Client() ClientInterface
	Server() ServerInterface
	Scanner() ScannerInterface
	Advertiser() AdvertiserInterface
}

// ClientInterface is btgatt_client_interface_t plus the client shim
// entries (ReadPhy). Pointer arguments are borrowed for the duration of
// the call only.
type ClientInterface interface {
	RegisterClient(appUUID *RawUUID, eattSupport bool) int32
	UnregisterClient(clientIf int32) int32
	Connect(clientIf int32, bda *RawAddress, isDirect bool, transport int32, opportunistic bool, initiatingPhys int32) int32
	Disconnect(clientIf int32, bda *RawAddress, connID int32) int32
	Refresh(clientIf int32, bda *RawAddress) int32
	// SearchService searches all services when filterUUID is nil.
	SearchService(connID int32, filterUUID *RawUUID) int32
	DiscoverServiceByUUID(connID int32, uuid *RawUUID)
	ReadCharacteristic(connID int32, handle uint16, authReq int32) int32
	ReadUsingCharacteristicUUID(connID int32, uuid *RawUUID, startHandle, endHandle uint16, authReq int32) int32
	WriteCharacteristic(connID int32, handle uint16, writeType, authReq int32, value *byte, length uintptr) int32
	ReadDescriptor(connID int32, handle uint16, authReq int32) int32
	WriteDescriptor(connID int32, handle uint16, authReq int32, value *byte, length uintptr) int32
	ExecuteWrite(connID, execute int32) int32
	RegisterForNotification(clientIf int32, bda *RawAddress, handle uint16) int32
	DeregisterForNotification(clientIf int32, bda *RawAddress, handle uint16) int32
	ReadRemoteRSSI(clientIf int32, bda *RawAddress) int32
	GetDeviceType(bda *RawAddress) int32
	ConfigureMTU(connID, mtu int32) int32
	ConnParameterUpdate(bda *RawAddress, minInterval, maxInterval, latency, timeout int32, minCELen, maxCELen uint16) int32
	SetPreferredPhy(bda *RawAddress, txPhy, rxPhy uint8, phyOptions uint16) int32
	ReadPhy(clientIf int32, addr RawAddress) int32
	TestCommand(command int32, params *TestParams) int32
	GetGattDB(connID int32) int32
}

// ServerInterface is btgatt_server_interface_t.
type ServerInterface interface {
	RegisterServer(appUUID *RawUUID, eattSupport bool) int32
	UnregisterServer(serverIf int32) int32
	Connect(serverIf int32, bda *RawAddress, isDirect bool, transport int32) int32
	Disconnect(serverIf int32, bda *RawAddress, connID int32) int32
	AddService(serverIf int32, service *DbElement, count uintptr) int32
	StopService(serverIf, serviceHandle int32) int32
	DeleteService(serverIf, serviceHandle int32) int32
	SendIndication(serverIf, attributeHandle, connID, confirm int32, value *byte, length uintptr) int32
	SendResponse(connID, transID, status int32, response *Response) int32
	SetPreferredPhy(bda *RawAddress, txPhy, rxPhy uint8, phyOptions uint16) int32
}

// ScannerInterface is the BleScannerInterface shim. Its operations report
// completion only through ScannerCallbacks.
type ScannerInterface interface {
	// RegisterCallbacks installs cb on the shim. The shim keeps cb.
	RegisterCallbacks(cb *ScannerCallbacks)
	RegisterScanner(appUUID *RawUUID)
	Unregister(scannerID uint8)
	Scan(start bool)
	SetScanParameters(scannerID uint8, scanInterval, scanWindow int32)
	BatchscanEnable(scanMode, scanInterval, scanWindow, addrType, discardRule int32)
	BatchscanDisable()
	BatchscanReadReports(scannerID uint8, scanMode int32)
}

// AdvertiserInterface is the BleAdvertiserInterface shim.
type AdvertiserInterface interface {
	RegisterAdvertiser() int32
	Unregister(advertiserID uint8)
	SetData(advertiserID uint8, scanResponse bool, data *byte, length uintptr) int32
	Enable(advertiserID uint8, enable bool, duration uint16, maxExtAdvEvents uint8) int32
}
