package gatt

import (
	"github.com/google/uuid"

	"gattshim/internal/btif"
)

// Scanner forwards LE scanning operations to the scanner shim. None of them
// return a status: completions arrive as ScannerEvents.
type Scanner struct {
	iface btif.ScannerInterface
	c     caller
}

// registerCallbacks installs the scanner table on the shim. Only the
// lifecycle manager calls it, once, after init succeeded.
func (g *Scanner) registerCallbacks(cb *btif.ScannerCallbacks) {
	g.iface.RegisterCallbacks(cb)
	g.c.issued("RegisterCallbacks")
}

// RegisterScanner registers a scanner; ScannerRegistered carries its id.
func (g *Scanner) RegisterScanner(appUUID uuid.UUID) {
	g.iface.RegisterScanner(rawUUID(appUUID))
	g.c.issued("RegisterScanner")
}

// Unregister releases scannerID. No event follows.
func (g *Scanner) Unregister(scannerID uint8) {
	g.iface.Unregister(scannerID)
	g.c.issued("Unregister")
}

// Scan starts or stops LE scanning; each advertisement arrives as ScanResult.
func (g *Scanner) Scan(start bool) {
	g.iface.Scan(start)
	g.c.issued("Scan")
}

// SetScanParameters sets interval and window; ScanParametersSet follows.
func (g *Scanner) SetScanParameters(scannerID uint8, scanInterval, scanWindow int32) {
	g.iface.SetScanParameters(scannerID, scanInterval, scanWindow)
	g.c.issued("SetScanParameters")
}

// BatchscanEnable turns on batch scanning. BatchScanThresholdCrossed may follow.
func (g *Scanner) BatchscanEnable(scanMode, scanInterval, scanWindow, addrType, discardRule int32) {
	g.iface.BatchscanEnable(scanMode, scanInterval, scanWindow, addrType, discardRule)
	g.c.issued("BatchscanEnable")
}

// BatchscanDisable turns off batch scanning. No event follows.
func (g *Scanner) BatchscanDisable() {
	g.iface.BatchscanDisable()
	g.c.issued("BatchscanDisable")
}

// BatchscanReadReports flushes stored results; BatchScanReports carries them.
func (g *Scanner) BatchscanReadReports(scannerID uint8, scanMode int32) {
	g.iface.BatchscanReadReports(scannerID, scanMode)
	g.c.issued("BatchscanReadReports")
}
