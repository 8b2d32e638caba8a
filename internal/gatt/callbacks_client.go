package gatt

import (
	"gattshim/internal/btif"
	"gattshim/internal/dispatch"
)

// clientCallbacks builds the client table. ServicesRemoved and ServicesAdded
// stay unset: the stack reports database changes through ServiceChanged.
func clientCallbacks(reg *dispatch.Registry) *btif.ClientCallbacks {
	return &btif.ClientCallbacks{
		RegisterClient: func(status, clientIf int32, appUUID *btif.RawUUID) {
			emit[ClientEvent](reg, ClientRegistered{Status: GattStatus(status), ClientIf: clientIf, AppUUID: uuidFrom(appUUID)})
		},
		Open: func(connID, status, clientIf int32, bda *btif.RawAddress) {
			emit[ClientEvent](reg, ClientConnected{ConnID: connID, Status: GattStatus(status), ClientIf: clientIf, Addr: addressFrom(bda)})
		},
		Close: func(connID, status, clientIf int32, bda *btif.RawAddress) {
			emit[ClientEvent](reg, ClientDisconnected{ConnID: connID, Status: GattStatus(status), ClientIf: clientIf, Addr: addressFrom(bda)})
		},
		SearchComplete: func(connID, status int32) {
			emit[ClientEvent](reg, SearchCompleted{ConnID: connID, Status: GattStatus(status)})
		},
		RegisterForNotification: func(connID, registered, status int32, handle uint16) {
			emit[ClientEvent](reg, NotificationRegistered{ConnID: connID, Registered: registered, Status: GattStatus(status), Handle: handle})
		},
		Notify: func(connID int32, params *btif.NotifyParams) {
			emit[ClientEvent](reg, Notified{ConnID: connID, Params: notifyParamsFrom(params)})
		},
		ReadCharacteristic: func(connID, status int32, params *btif.ReadParams) {
			emit[ClientEvent](reg, CharacteristicRead{ConnID: connID, Status: GattStatus(status), Params: readParamsFrom(params)})
		},
		WriteCharacteristic: func(connID, status int32, handle, length uint16, value *byte) {
			emit[ClientEvent](reg, CharacteristicWritten{ConnID: connID, Status: GattStatus(status), Handle: handle, Value: copyBuffer(value, uintptr(length))})
		},
		ReadDescriptor: func(connID, status int32, params *btif.ReadParams) {
			emit[ClientEvent](reg, DescriptorRead{ConnID: connID, Status: GattStatus(status), Params: readParamsFrom(params)})
		},
		WriteDescriptor: func(connID, status int32, handle, length uint16, value *byte) {
			emit[ClientEvent](reg, DescriptorWritten{ConnID: connID, Status: GattStatus(status), Handle: handle, Value: copyBuffer(value, uintptr(length))})
		},
		ExecuteWrite: func(connID, status int32) {
			emit[ClientEvent](reg, WriteExecuted{ConnID: connID, Status: GattStatus(status)})
		},
		ReadRemoteRSSI: func(clientIf int32, bda *btif.RawAddress, rssi, status int32) {
			emit[ClientEvent](reg, RemoteRSSIRead{ClientIf: clientIf, Addr: addressFrom(bda), RSSI: rssi, Status: GattStatus(status)})
		},
		ConfigureMTU: func(connID, status, mtu int32) {
			emit[ClientEvent](reg, MTUConfigured{ConnID: connID, Status: GattStatus(status), MTU: mtu})
		},
		Congestion: func(connID int32, congested bool) {
			emit[ClientEvent](reg, ClientCongestion{ConnID: connID, Congested: congested})
		},
		GetGattDB: func(connID int32, db *btif.DbElement, count int32) {
			emit[ClientEvent](reg, GattDBRetrieved{ConnID: connID, DB: copyElements(db, int(count)), Count: count})
		},
		PhyUpdated: func(connID int32, txPhy, rxPhy, status uint8) {
			emit[ClientEvent](reg, ClientPhyUpdated{ConnID: connID, TxPhy: txPhy, RxPhy: rxPhy, Status: GattStatus(status)})
		},
		ConnUpdated: func(connID int32, interval, latency, timeout uint16, status uint8) {
			emit[ClientEvent](reg, ClientConnUpdated{ConnID: connID, Interval: interval, Latency: latency, Timeout: timeout, Status: GattStatus(status)})
		},
		ServiceChanged: func(connID int32) {
			emit[ClientEvent](reg, ServiceChanged{ConnID: connID})
		},
		ReadPhy: func(clientIf int32, addr btif.RawAddress, txPhy, rxPhy, status uint8) {
			emit[ClientEvent](reg, PhyRead{ClientIf: clientIf, Addr: Address(addr.Address), TxPhy: txPhy, RxPhy: rxPhy, Status: GattStatus(status)})
		},
	}
}
