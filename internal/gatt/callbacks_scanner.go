package gatt

import (
	"gattshim/internal/btif"
	"gattshim/internal/dispatch"
)

// legacyScannerCallbacks is the scanner sub-table of the top-level table.
// All entries stay unset; scan traffic arrives through the scanner shim.
func legacyScannerCallbacks() *btif.LegacyScannerCallbacks {
	return &btif.LegacyScannerCallbacks{}
}

func scannerCallbacks(reg *dispatch.Registry) *btif.ScannerCallbacks {
	return &btif.ScannerCallbacks{
		OnScannerRegistered: func(appUUID *btif.RawUUID, scannerID, status uint8) {
			emit[ScannerEvent](reg, ScannerRegistered{AppUUID: uuidFrom(appUUID), ScannerID: scannerID, Status: GattStatus(status)})
		},
		OnSetScannerParameterComplete: func(scannerID, status uint8) {
			emit[ScannerEvent](reg, ScanParametersSet{ScannerID: scannerID, Status: GattStatus(status)})
		},
		OnScanResult: func(eventType uint16, addrType uint8, bda *btif.RawAddress, primaryPhy, secondaryPhy, advertisingSID uint8, txPower, rssi int8, periodicAdvInt uint16, advData *byte, advDataLen uintptr) {
			emit[ScannerEvent](reg, ScanResult{
				EventType: eventType, AddrType: addrType, Addr: addressFrom(bda),
				PrimaryPhy: primaryPhy, SecondaryPhy: secondaryPhy, AdvertisingSID: advertisingSID,
				TxPower: txPower, RSSI: rssi, PeriodicAdvInt: periodicAdvInt,
				AdvData: copyBuffer(advData, advDataLen),
			})
		},
		OnTrackAdvFoundLost: func(info btif.AdvertisingTrackInfo) {
			emit[ScannerEvent](reg, AdvTracked{Info: trackInfoFrom(&info)})
		},
		OnBatchScanReports: func(clientIf, status, reportFormat, numRecords int32, data *byte, dataLen uintptr) {
			emit[ScannerEvent](reg, BatchScanReports{
				ClientIf: clientIf, Status: GattStatus(status), ReportFormat: reportFormat,
				NumRecords: numRecords, Data: copyBuffer(data, dataLen),
			})
		},
		OnBatchScanThresholdCrossed: func(clientIf int32) {
			emit[ScannerEvent](reg, BatchScanThresholdCrossed{ClientIf: clientIf})
		},
	}
}
