package loopback

import "gattshim/internal/btif"

type scannerIface struct{ s *Stack }

var _ btif.ScannerInterface = scannerIface{}

func (v scannerIface) RegisterCallbacks(cb *btif.ScannerCallbacks) {
	v.s.record("RegisterCallbacks", cb)
	v.s.mu.Lock()
	if v.s.scanCb == nil {
		v.s.scanCb = cb
	}
	v.s.mu.Unlock()
}

func (v scannerIface) RegisterScanner(appUUID *btif.RawUUID) {
	u := *appUUID
	v.s.record("RegisterScanner", u)
	id := uint8(v.s.allocIf())
	v.s.scanner(func(cb *btif.ScannerCallbacks) bool {
		if cb.OnScannerRegistered == nil {
			return false
		}
		uu := u
		cb.OnScannerRegistered(&uu, id, 0)
		return true
	})
}

func (v scannerIface) Unregister(scannerID uint8) {
	v.s.record("UnregisterScanner", scannerID)
}

// Scan reports every queued advertisement when start is true.
func (v scannerIface) Scan(start bool) {
	v.s.record("Scan", start)
	if !start {
		return
	}
	v.s.mu.Lock()
	adverts := append([]Advertisement(nil), v.s.adverts...)
	v.s.mu.Unlock()
	for _, ad := range adverts {
		v.s.scanner(func(cb *btif.ScannerCallbacks) bool {
			if cb.OnScanResult == nil {
				return false
			}
			a := ad.Address
			lend(append([]byte(nil), ad.Data...), func(p *byte, n uintptr) {
				cb.OnScanResult(0x1B, 0, &a, 1, 0, 0xFF, 127, ad.RSSI, 0, p, n)
			})
			return true
		})
	}
}

func (v scannerIface) SetScanParameters(scannerID uint8, scanInterval, scanWindow int32) {
	v.s.record("SetScanParameters", scannerID, scanInterval, scanWindow)
	v.s.scanner(func(cb *btif.ScannerCallbacks) bool {
		if cb.OnSetScannerParameterComplete == nil {
			return false
		}
		cb.OnSetScannerParameterComplete(scannerID, 0)
		return true
	})
}

func (v scannerIface) BatchscanEnable(scanMode, scanInterval, scanWindow, addrType, discardRule int32) {
	v.s.record("BatchscanEnable", scanMode, scanInterval, scanWindow, addrType, discardRule)
}

func (v scannerIface) BatchscanDisable() {
	v.s.record("BatchscanDisable")
}

func (v scannerIface) BatchscanReadReports(scannerID uint8, scanMode int32) {
	v.s.record("BatchscanReadReports", scannerID, scanMode)
	v.s.scanner(func(cb *btif.ScannerCallbacks) bool {
		if cb.OnBatchScanReports == nil {
			return false
		}
		cb.OnBatchScanReports(int32(scannerID), 0, scanMode, 0, nil, 0)
		return true
	})
}

// TrackAdv delivers an advertisement tracking event to the scanner shim
// table. Packets are lent for the duration of the callback.
func (s *Stack) TrackAdv(info btif.AdvertisingTrackInfo, advPacket, scanResponse []byte) {
	advPacket = append([]byte(nil), advPacket...)
	scanResponse = append([]byte(nil), scanResponse...)
	s.scanner(func(cb *btif.ScannerCallbacks) bool {
		if cb.OnTrackAdvFoundLost == nil {
			return false
		}
		lend(advPacket, func(ap *byte, an uintptr) {
			lend(scanResponse, func(sp *byte, sn uintptr) {
				in := info
				in.AdvPacket, in.AdvPacketLen = ap, uint8(an)
				in.ScanResponse, in.ScanResponseLen = sp, uint8(sn)
				cb.OnTrackAdvFoundLost(in)
			})
		})
		return true
	})
}

// ThresholdCrossed delivers a batch scan threshold notification.
func (s *Stack) ThresholdCrossed(clientIf int32) {
	s.scanner(func(cb *btif.ScannerCallbacks) bool {
		if cb.OnBatchScanThresholdCrossed == nil {
			return false
		}
		cb.OnBatchScanThresholdCrossed(clientIf)
		return true
	})
}

type advertiserIface struct{ s *Stack }

var _ btif.AdvertiserInterface = advertiserIface{}

func (v advertiserIface) RegisterAdvertiser() int32 {
	return v.s.record("RegisterAdvertiser")
}

func (v advertiserIface) Unregister(advertiserID uint8) {
	v.s.record("UnregisterAdvertiser", advertiserID)
}

func (v advertiserIface) SetData(advertiserID uint8, scanResponse bool, data *byte, length uintptr) int32 {
	return v.s.record("SetData", advertiserID, scanResponse, copyIn(data, length))
}

func (v advertiserIface) Enable(advertiserID uint8, enable bool, duration uint16, maxExtAdvEvents uint8) int32 {
	return v.s.record("Enable", advertiserID, enable, duration, maxExtAdvEvents)
}
