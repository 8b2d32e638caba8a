package gatt

import "github.com/google/uuid"

// ScannerEvent is delivered to the scanner handler by the scanner shim.
type ScannerEvent interface{ scannerEvent() }

// ScannerRegistered completes Scanner.RegisterScanner.
type ScannerRegistered struct {
	AppUUID   uuid.UUID
	ScannerID uint8
	Status    GattStatus
}

// ScanParametersSet completes Scanner.SetScanParameters.
type ScanParametersSet struct {
	ScannerID uint8
	Status    GattStatus
}

// ScanResult is one received advertisement.
type ScanResult struct {
	EventType      uint16
	AddrType       uint8
	Addr           Address
	PrimaryPhy     uint8
	SecondaryPhy   uint8
	AdvertisingSID uint8
	TxPower        int8
	RSSI           int8
	PeriodicAdvInt uint16
	AdvData        []byte
}

// AdvTracked reports an advertiser found or lost by a tracking filter.
type AdvTracked struct {
	Info TrackInfo
}

// BatchScanReports completes Scanner.BatchscanReadReports.
type BatchScanReports struct {
	ClientIf     int32
	Status       GattStatus
	ReportFormat int32
	NumRecords   int32
	Data         []byte
}

// BatchScanThresholdCrossed reports that the batch scan storage threshold
// was reached.
type BatchScanThresholdCrossed struct {
	ClientIf int32
}

func (ScannerRegistered) scannerEvent()         {}
func (ScanParametersSet) scannerEvent()         {}
func (ScanResult) scannerEvent()                {}
func (AdvTracked) scannerEvent()                {}
func (BatchScanReports) scannerEvent()          {}
func (BatchScanThresholdCrossed) scannerEvent() {}
