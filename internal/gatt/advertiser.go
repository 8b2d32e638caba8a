package gatt

import "gattshim/internal/btif"

// Advertiser forwards LE advertising operations. There is no advertiser
// event category: only admission statuses come back.
type Advertiser struct {
	iface btif.AdvertiserInterface
	c     caller
}

// RegisterAdvertiser reserves an advertising set.
func (g *Advertiser) RegisterAdvertiser() BtStatus {
	return g.c.status("RegisterAdvertiser", g.iface.RegisterAdvertiser())
}

// Unregister releases advertiserID. The native call returns nothing.
func (g *Advertiser) Unregister(advertiserID uint8) {
	g.iface.Unregister(advertiserID)
	g.c.issued("Unregister")
}

// SetData sets the advertising or scan response payload.
func (g *Advertiser) SetData(advertiserID uint8, scanResponse bool, data []byte) BtStatus {
	p, n := borrow(data)
	return g.c.status("SetData", g.iface.SetData(advertiserID, scanResponse, p, n))
}

// Enable starts or stops advertising set advertiserID.
func (g *Advertiser) Enable(advertiserID uint8, enable bool, duration uint16, maxExtAdvEvents uint8) BtStatus {
	return g.c.status("Enable", g.iface.Enable(advertiserID, enable, duration, maxExtAdvEvents))
}
