//go:build btif && cgo

package btif

// Trampolines the native stack calls through the tables built in native.go.
// They live in their own file because a cgo preamble in a file with
// //export directives may only contain declarations.

/*
#include "gattshim.h"
*/
import "C"

import "unsafe"

func rawAddress(p *C.gs_raw_address_t) *RawAddress { return (*RawAddress)(unsafe.Pointer(p)) }
func rawUUID(p *C.gs_uuid_t) *RawUUID             { return (*RawUUID)(unsafe.Pointer(p)) }
func rawBytes(p *C.uint8_t) *byte                 { return (*byte)(unsafe.Pointer(p)) }

func readParamsFromC(p *C.gs_read_params_t) *ReadParams {
	if p == nil {
		return nil
	}
	out := &ReadParams{
		Handle:    uint16(p.handle),
		ValueType: uint16(p.value_type),
		Status:    uint8(p.status),
	}
	out.Value.Len = uint16(p.value.len)
	out.Value.Value = *(*[GattMaxAttrLen]byte)(unsafe.Pointer(&p.value.value[0]))
	return out
}

func notifyParamsFromC(p *C.gs_notify_params_t) *NotifyParams {
	if p == nil {
		return nil
	}
	out := &NotifyParams{
		BDA:      *rawAddress(&p.bda),
		Handle:   uint16(p.handle),
		Len:      uint16(p.len),
		IsNotify: uint8(p.is_notify),
	}
	out.Value = *(*[GattMaxAttrLen]byte)(unsafe.Pointer(&p.value[0]))
	return out
}

// dbElementsFromC converts a native element array. The result is nil for an
// empty array; the caller passes its first element pointer on.
func dbElementsFromC(p *C.gs_db_element_t, n int) []DbElement {
	if p == nil || n <= 0 {
		return nil
	}
	src := unsafe.Slice(p, n)
	out := make([]DbElement, n)
	for i := range src {
		e := &src[i]
		out[i] = DbElement{
			ID:                 uint16(e.id),
			UUID:               *rawUUID(&e.uuid),
			Type:               DbAttributeType(e._type),
			AttributeHandle:    uint16(e.attribute_handle),
			StartHandle:        uint16(e.start_handle),
			EndHandle:          uint16(e.end_handle),
			Properties:         uint8(e.properties),
			ExtendedProperties: uint16(e.extended_properties),
			Permissions:        uint16(e.permissions),
		}
	}
	return out
}

func firstElement(es []DbElement) *DbElement {
	if len(es) == 0 {
		return nil
	}
	return &es[0]
}

// --- client ---

//export goGattcRegisterClient
func goGattcRegisterClient(status, clientIf C.int, appUUID *C.gs_uuid_t) {
	installedClient().RegisterClient(int32(status), int32(clientIf), rawUUID(appUUID))
}

//export goGattcOpen
func goGattcOpen(connID, status, clientIf C.int, bda *C.gs_raw_address_t) {
	installedClient().Open(int32(connID), int32(status), int32(clientIf), rawAddress(bda))
}

//export goGattcClose
func goGattcClose(connID, status, clientIf C.int, bda *C.gs_raw_address_t) {
	installedClient().Close(int32(connID), int32(status), int32(clientIf), rawAddress(bda))
}

//export goGattcSearchComplete
func goGattcSearchComplete(connID, status C.int) {
	installedClient().SearchComplete(int32(connID), int32(status))
}

//export goGattcRegisterForNotification
func goGattcRegisterForNotification(connID, registered, status C.int, handle C.uint16_t) {
	installedClient().RegisterForNotification(int32(connID), int32(registered), int32(status), uint16(handle))
}

//export goGattcNotify
func goGattcNotify(connID C.int, p *C.gs_notify_params_t) {
	installedClient().Notify(int32(connID), notifyParamsFromC(p))
}

//export goGattcReadCharacteristic
func goGattcReadCharacteristic(connID, status C.int, p *C.gs_read_params_t) {
	installedClient().ReadCharacteristic(int32(connID), int32(status), readParamsFromC(p))
}

//export goGattcWriteCharacteristic
func goGattcWriteCharacteristic(connID, status C.int, handle, length C.uint16_t, value *C.uint8_t) {
	installedClient().WriteCharacteristic(int32(connID), int32(status), uint16(handle), uint16(length), rawBytes(value))
}

//export goGattcReadDescriptor
func goGattcReadDescriptor(connID, status C.int, p *C.gs_read_params_t) {
	installedClient().ReadDescriptor(int32(connID), int32(status), readParamsFromC(p))
}

//export goGattcWriteDescriptor
func goGattcWriteDescriptor(connID, status C.int, handle, length C.uint16_t, value *C.uint8_t) {
	installedClient().WriteDescriptor(int32(connID), int32(status), uint16(handle), uint16(length), rawBytes(value))
}

//export goGattcExecuteWrite
func goGattcExecuteWrite(connID, status C.int) {
	installedClient().ExecuteWrite(int32(connID), int32(status))
}

//export goGattcReadRemoteRssi
func goGattcReadRemoteRssi(clientIf C.int, bda *C.gs_raw_address_t, rssi, status C.int) {
	installedClient().ReadRemoteRSSI(int32(clientIf), rawAddress(bda), int32(rssi), int32(status))
}

//export goGattcConfigureMtu
func goGattcConfigureMtu(connID, status, mtu C.int) {
	installedClient().ConfigureMTU(int32(connID), int32(status), int32(mtu))
}

//export goGattcCongestion
func goGattcCongestion(connID C.int, congested C.bool) {
	installedClient().Congestion(int32(connID), bool(congested))
}

//export goGattcGetGattDb
func goGattcGetGattDb(connID C.int, db *C.gs_db_element_t, count C.int) {
	es := dbElementsFromC(db, int(count))
	installedClient().GetGattDB(int32(connID), firstElement(es), int32(len(es)))
}

//export goGattcServicesRemoved
func goGattcServicesRemoved(connID C.int, startHandle, endHandle C.uint16_t) {
	installedClient().ServicesRemoved(int32(connID), uint16(startHandle), uint16(endHandle))
}

//export goGattcServicesAdded
func goGattcServicesAdded(connID C.int, added *C.gs_db_element_t, count C.int) {
	es := dbElementsFromC(added, int(count))
	installedClient().ServicesAdded(int32(connID), firstElement(es), int32(len(es)))
}

//export goGattcPhyUpdated
func goGattcPhyUpdated(connID C.int, txPhy, rxPhy, status C.uint8_t) {
	installedClient().PhyUpdated(int32(connID), uint8(txPhy), uint8(rxPhy), uint8(status))
}

//export goGattcConnUpdated
func goGattcConnUpdated(connID C.int, interval, latency, timeout C.uint16_t, status C.uint8_t) {
	installedClient().ConnUpdated(int32(connID), uint16(interval), uint16(latency), uint16(timeout), uint8(status))
}

//export goGattcServiceChanged
func goGattcServiceChanged(connID C.int) {
	installedClient().ServiceChanged(int32(connID))
}

//export goGattcReadPhy
func goGattcReadPhy(clientIf C.int, addr C.gs_raw_address_t, txPhy, rxPhy, status C.uint8_t) {
	installedClient().ReadPhy(int32(clientIf), *rawAddress(&addr), uint8(txPhy), uint8(rxPhy), uint8(status))
}

// --- server ---

//export goGattsRegisterServer
func goGattsRegisterServer(status, serverIf C.int, appUUID *C.gs_uuid_t) {
	installedServer().RegisterServer(int32(status), int32(serverIf), rawUUID(appUUID))
}

//export goGattsConnection
func goGattsConnection(connID, serverIf, connected C.int, bda *C.gs_raw_address_t) {
	installedServer().Connection(int32(connID), int32(serverIf), int32(connected), rawAddress(bda))
}

//export goGattsServiceAdded
func goGattsServiceAdded(status, serverIf C.int, service *C.gs_db_element_t, count C.size_t) {
	es := dbElementsFromC(service, int(count))
	installedServer().ServiceAdded(int32(status), int32(serverIf), firstElement(es), uintptr(len(es)))
}

//export goGattsServiceStopped
func goGattsServiceStopped(status, serverIf, srvcHandle C.int) {
	installedServer().ServiceStopped(int32(status), int32(serverIf), int32(srvcHandle))
}

//export goGattsServiceDeleted
func goGattsServiceDeleted(status, serverIf, srvcHandle C.int) {
	installedServer().ServiceDeleted(int32(status), int32(serverIf), int32(srvcHandle))
}

//export goGattsRequestReadCharacteristic
func goGattsRequestReadCharacteristic(connID, transID C.int, bda *C.gs_raw_address_t, attrHandle, offset C.int, isLong C.bool) {
	installedServer().RequestReadCharacteristic(int32(connID), int32(transID), rawAddress(bda), int32(attrHandle), int32(offset), bool(isLong))
}

//export goGattsRequestReadDescriptor
func goGattsRequestReadDescriptor(connID, transID C.int, bda *C.gs_raw_address_t, attrHandle, offset C.int, isLong C.bool) {
	installedServer().RequestReadDescriptor(int32(connID), int32(transID), rawAddress(bda), int32(attrHandle), int32(offset), bool(isLong))
}

//export goGattsRequestWriteCharacteristic
func goGattsRequestWriteCharacteristic(connID, transID C.int, bda *C.gs_raw_address_t, attrHandle, offset C.int, needRsp, isPrep C.bool, value *C.uint8_t, length C.size_t) {
	installedServer().RequestWriteCharacteristic(int32(connID), int32(transID), rawAddress(bda), int32(attrHandle), int32(offset), bool(needRsp), bool(isPrep), rawBytes(value), uintptr(length))
}

//export goGattsRequestWriteDescriptor
func goGattsRequestWriteDescriptor(connID, transID C.int, bda *C.gs_raw_address_t, attrHandle, offset C.int, needRsp, isPrep C.bool, value *C.uint8_t, length C.size_t) {
	installedServer().RequestWriteDescriptor(int32(connID), int32(transID), rawAddress(bda), int32(attrHandle), int32(offset), bool(needRsp), bool(isPrep), rawBytes(value), uintptr(length))
}

//export goGattsRequestExecWrite
func goGattsRequestExecWrite(connID, transID C.int, bda *C.gs_raw_address_t, execWrite C.int) {
	installedServer().RequestExecWrite(int32(connID), int32(transID), rawAddress(bda), int32(execWrite))
}

//export goGattsResponseConfirmation
func goGattsResponseConfirmation(status, handle C.int) {
	installedServer().ResponseConfirmation(int32(status), int32(handle))
}

//export goGattsIndicationSent
func goGattsIndicationSent(connID, status C.int) {
	installedServer().IndicationSent(int32(connID), int32(status))
}

//export goGattsCongestion
func goGattsCongestion(connID C.int, congested C.bool) {
	installedServer().Congestion(int32(connID), bool(congested))
}

//export goGattsMtuChanged
func goGattsMtuChanged(connID, mtu C.int) {
	installedServer().MTUChanged(int32(connID), int32(mtu))
}

//export goGattsPhyUpdated
func goGattsPhyUpdated(connID C.int, txPhy, rxPhy, status C.uint8_t) {
	installedServer().PhyUpdated(int32(connID), uint8(txPhy), uint8(rxPhy), uint8(status))
}

//export goGattsConnUpdated
func goGattsConnUpdated(connID C.int, interval, latency, timeout C.uint16_t, status C.uint8_t) {
	installedServer().ConnUpdated(int32(connID), uint16(interval), uint16(latency), uint16(timeout), uint8(status))
}

// --- scanner shim ---

func trackInfoFromC(p *C.gs_adv_track_info_t) AdvertisingTrackInfo {
	return AdvertisingTrackInfo{
		ScannerID:             uint8(p.scanner_id),
		FilterIndex:           uint8(p.filter_index),
		AdvertiserState:       uint8(p.advertiser_state),
		AdvertiserInfoPresent: uint8(p.advertiser_info_present),
		AdvertiserAddress:     *rawAddress(&p.advertiser_address),
		AdvertiserAddressType: uint8(p.advertiser_address_type),
		TxPower:               uint8(p.tx_power),
		RSSI:                  int8(p.rssi),
		Timestamp:             uint16(p.timestamp),
		AdvPacketLen:          uint8(p.adv_packet_len),
		AdvPacket:             rawBytes(p.adv_packet),
		ScanResponseLen:       uint8(p.scan_response_len),
		ScanResponse:          rawBytes(p.scan_response),
	}
}

//export goScanOnScannerRegistered
func goScanOnScannerRegistered(appUUID *C.gs_uuid_t, scannerID, status C.uint8_t) {
	installedScanner().OnScannerRegistered(rawUUID(appUUID), uint8(scannerID), uint8(status))
}

//export goScanOnSetScannerParameterComplete
func goScanOnSetScannerParameterComplete(scannerID, status C.uint8_t) {
	installedScanner().OnSetScannerParameterComplete(uint8(scannerID), uint8(status))
}

//export goScanOnScanResult
func goScanOnScanResult(eventType C.uint16_t, addrType C.uint8_t, bda *C.gs_raw_address_t, primaryPhy, secondaryPhy, advertisingSID C.uint8_t, txPower, rssi C.int8_t, periodicAdvInt C.uint16_t, advData *C.uint8_t, advDataLen C.size_t) {
	installedScanner().OnScanResult(uint16(eventType), uint8(addrType), rawAddress(bda), uint8(primaryPhy), uint8(secondaryPhy), uint8(advertisingSID), int8(txPower), int8(rssi), uint16(periodicAdvInt), rawBytes(advData), uintptr(advDataLen))
}

//export goScanOnTrackAdvFoundLost
func goScanOnTrackAdvFoundLost(info *C.gs_adv_track_info_t) {
	installedScanner().OnTrackAdvFoundLost(trackInfoFromC(info))
}

//export goScanOnBatchScanReports
func goScanOnBatchScanReports(clientIf, status, reportFormat, numRecords C.int, data *C.uint8_t, dataLen C.size_t) {
	installedScanner().OnBatchScanReports(int32(clientIf), int32(status), int32(reportFormat), int32(numRecords), rawBytes(data), uintptr(dataLen))
}

//export goScanOnBatchScanThresholdCrossed
func goScanOnBatchScanThresholdCrossed(clientIf C.int) {
	installedScanner().OnBatchScanThresholdCrossed(int32(clientIf))
}
