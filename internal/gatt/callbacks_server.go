package gatt

import (
	"gattshim/internal/btif"
	"gattshim/internal/dispatch"
)

func serverCallbacks(reg *dispatch.Registry) *btif.ServerCallbacks {
	read := func(descriptor bool) func(connID, transID int32, bda *btif.RawAddress, attrHandle, offset int32, isLong bool) {
		return func(connID, transID int32, bda *btif.RawAddress, attrHandle, offset int32, isLong bool) {
			emit[ServerEvent](reg, ReadRequested{
				ConnID: connID, TransID: transID, Addr: addressFrom(bda),
				AttrHandle: attrHandle, Offset: offset, IsLong: isLong, Descriptor: descriptor,
			})
		}
	}
	write := func(descriptor bool) func(connID, transID int32, bda *btif.RawAddress, attrHandle, offset int32, needRsp, isPrep bool, value *byte, length uintptr) {
		return func(connID, transID int32, bda *btif.RawAddress, attrHandle, offset int32, needRsp, isPrep bool, value *byte, length uintptr) {
			emit[ServerEvent](reg, WriteRequested{
				ConnID: connID, TransID: transID, Addr: addressFrom(bda),
				AttrHandle: attrHandle, Offset: offset, NeedRsp: needRsp, IsPrep: isPrep,
				Value: copyBuffer(value, length), Length: int(length), Descriptor: descriptor,
			})
		}
	}
	return &btif.ServerCallbacks{
		RegisterServer: func(status, serverIf int32, appUUID *btif.RawUUID) {
			emit[ServerEvent](reg, ServerRegistered{Status: GattStatus(status), ServerIf: serverIf, AppUUID: uuidFrom(appUUID)})
		},
		Connection: func(connID, serverIf, connected int32, bda *btif.RawAddress) {
			emit[ServerEvent](reg, ServerConnection{ConnID: connID, ServerIf: serverIf, Connected: connected, Addr: addressFrom(bda)})
		},
		ServiceAdded: func(status, serverIf int32, service *btif.DbElement, count uintptr) {
			emit[ServerEvent](reg, ServiceAdded{Status: GattStatus(status), ServerIf: serverIf, Service: copyElements(service, int(count)), Count: int(count)})
		},
		ServiceStopped: func(status, serverIf, serviceHandle int32) {
			emit[ServerEvent](reg, ServiceStopped{Status: GattStatus(status), ServerIf: serverIf, ServiceHandle: serviceHandle})
		},
		ServiceDeleted: func(status, serverIf, serviceHandle int32) {
			emit[ServerEvent](reg, ServiceDeleted{Status: GattStatus(status), ServerIf: serverIf, ServiceHandle: serviceHandle})
		},
		RequestReadCharacteristic:  read(false),
		RequestReadDescriptor:      read(true),
		RequestWriteCharacteristic: write(false),
		RequestWriteDescriptor:     write(true),
		RequestExecWrite: func(connID, transID int32, bda *btif.RawAddress, execWrite int32) {
			emit[ServerEvent](reg, ExecWriteRequested{ConnID: connID, TransID: transID, Addr: addressFrom(bda), ExecWrite: execWrite})
		},
		ResponseConfirmation: func(status, handle int32) {
			emit[ServerEvent](reg, ResponseConfirmed{Status: GattStatus(status), Handle: handle})
		},
		IndicationSent: func(connID, status int32) {
			emit[ServerEvent](reg, IndicationSent{ConnID: connID, Status: GattStatus(status)})
		},
		Congestion: func(connID int32, congested bool) {
			emit[ServerEvent](reg, ServerCongestion{ConnID: connID, Congested: congested})
		},
		MTUChanged: func(connID, mtu int32) {
			emit[ServerEvent](reg, MTUChanged{ConnID: connID, MTU: mtu})
		},
		PhyUpdated: func(connID int32, txPhy, rxPhy, status uint8) {
			emit[ServerEvent](reg, ServerPhyUpdated{ConnID: connID, TxPhy: txPhy, RxPhy: rxPhy, Status: GattStatus(status)})
		},
		ConnUpdated: func(connID int32, interval, latency, timeout uint16, status uint8) {
			emit[ServerEvent](reg, ServerConnUpdated{ConnID: connID, Interval: interval, Latency: latency, Timeout: timeout, Status: GattStatus(status)})
		},
	}
}
