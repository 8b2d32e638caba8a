package gatt

import (
	"bytes"
	"testing"

	"gattshim/internal/btif"
	"gattshim/internal/btif/loopback"
)

func TestCopyBufferZeroLength(t *testing.T) {
	b := []byte{1}
	for _, tc := range []struct {
		name string
		p    *byte
		n    uintptr
	}{
		{"nil pointer", nil, 0},
		{"nil pointer with length", nil, 5},
		{"zero length", &b[0], 0},
	} {
		got := copyBuffer(tc.p, tc.n)
		if got == nil || len(got) != 0 {
			t.Fatalf("%s: expected empty non-nil slice, got %#v", tc.name, got)
		}
	}
}

func TestCopyBufferDoesNotAlias(t *testing.T) {
	src := []byte{1, 2, 3}
	got := copyBuffer(&src[0], 3)
	src[0] = 9
	if !bytes.Equal(got, []byte{1, 2, 3}) {
		t.Fatalf("copy aliased the source: %v", got)
	}
}

func TestCopyFixedClampsToCapacity(t *testing.T) {
	var buf [btif.GattMaxAttrLen]byte
	buf[0], buf[btif.GattMaxAttrLen-1] = 1, 2
	got := copyFixed(&buf, 0xFFFF)
	if len(got) != btif.GattMaxAttrLen || got[0] != 1 || got[len(got)-1] != 2 {
		t.Fatalf("unexpected clamp result len=%d", len(got))
	}
	if got := copyFixed(&buf, 0); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice for zero length")
	}
}

func TestNilStructPointersPanic(t *testing.T) {
	expectPanic(t, func() { addressFrom(nil) })
	expectPanic(t, func() { uuidFrom(nil) })
	expectPanic(t, func() { readParamsFrom(nil) })
	expectPanic(t, func() { notifyParamsFrom(nil) })
	expectPanic(t, func() { trackInfoFrom(nil) })
}

func TestTrackInfoOptionalAdvertiser(t *testing.T) {
	pkt := []byte{0x02, 0x01, 0x06}
	in := btif.AdvertisingTrackInfo{ScannerID: 1, AdvPacket: &pkt[0], AdvPacketLen: 3}
	out := trackInfoFrom(&in)
	if out.Advertiser != nil {
		t.Fatalf("advertiser must be absent when not flagged")
	}
	if !bytes.Equal(out.AdvPacket, pkt) || out.ScanResponse == nil || len(out.ScanResponse) != 0 {
		t.Fatalf("unexpected packets %x %x", out.AdvPacket, out.ScanResponse)
	}
	in.AdvertiserInfoPresent = 1
	in.AdvertiserAddress = btif.RawAddress{Address: [6]byte{1, 2, 3, 4, 5, 6}}
	in.RSSI = -70
	out = trackInfoFrom(&in)
	if out.Advertiser == nil || out.Advertiser.RSSI != -70 || out.Advertiser.Addr != (Address{1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected advertiser %+v", out.Advertiser)
	}
}

func TestZeroLengthWriteThroughTable(t *testing.T) {
	_, s, r := startGatt(t)
	s.Inject(func(cb *btif.Callbacks) { cb.Client.WriteCharacteristic(1, 0, 0x10, 0, nil) })
	s.Sync()
	ev := lastClient[CharacteristicWritten](t, r)
	if ev.Value == nil || len(ev.Value) != 0 {
		t.Fatalf("expected empty non-nil value, got %#v", ev.Value)
	}
}

func TestNotifyCopiesDeclaredLength(t *testing.T) {
	_, s, r := startGatt(t)
	s.Inject(func(cb *btif.Callbacks) {
		p := &btif.NotifyParams{BDA: btif.RawAddress{Address: [6]byte{0xAA, 1, 2, 3, 4, 5}}, Handle: 0x21, Len: 2, IsNotify: 1}
		p.Value[0], p.Value[1], p.Value[2] = 7, 8, 9
		cb.Client.Notify(4, p)
		*p = btif.NotifyParams{}
	})
	s.Sync()
	ev := lastClient[Notified](t, r)
	if !bytes.Equal(ev.Params.Value, []byte{7, 8}) || !ev.Params.IsNotify || ev.Params.Addr.String() != "AA:01:02:03:04:05" {
		t.Fatalf("unexpected notification %+v", ev.Params)
	}
}

func TestGattDBCopiesElements(t *testing.T) {
	g, s, r := startGatt(t)
	s.SetDatabase([]btif.DbElement{
		{ID: 1, Type: btif.DbPrimaryService, StartHandle: 1, EndHandle: 3},
		{ID: 2, Type: btif.DbCharacteristic, AttributeHandle: 2, Properties: 0x12},
	})
	if st := g.Client.GetGattDB(1); st != BtSuccess {
		t.Fatalf("get db: %s", st)
	}
	s.Sync()
	ev := lastClient[GattDBRetrieved](t, r)
	if ev.Count != 2 || len(ev.DB) != 2 {
		t.Fatalf("unexpected db %+v", ev)
	}
	// loopback zeroes its array once the callback returns
	if ev.DB[1].Type != Characteristic || ev.DB[1].Properties != 0x12 || ev.DB[0].EndHandle != 3 {
		t.Fatalf("db aliased native memory: %+v", ev.DB)
	}
}

func TestServerWriteRequestCopies(t *testing.T) {
	_, s, r := startGatt(t)
	peer := btif.RawAddress{Address: [6]byte{1, 1, 1, 1, 1, 1}}
	s.RequestWrite(2, 9, peer, 0x30, true, true, []byte("hello"))
	s.RequestRead(2, 10, peer, 0x31, false)
	s.Sync()
	w := lastServer[WriteRequested](t, r)
	if string(w.Value) != "hello" || w.Length != 5 || !w.Descriptor || !w.NeedRsp || w.TransID != 9 {
		t.Fatalf("unexpected write request %+v", w)
	}
	rd := lastServer[ReadRequested](t, r)
	if rd.Descriptor || rd.AttrHandle != 0x31 || rd.TransID != 10 {
		t.Fatalf("unexpected read request %+v", rd)
	}
}

func TestScanResultAndTracking(t *testing.T) {
	g, s, r := startGatt(t)
	s.AddAdvertisement(loopback.Advertisement{Address: btif.RawAddress{Address: [6]byte{9, 8, 7, 6, 5, 4}}, RSSI: -60, Data: []byte{2, 1, 6}})
	g.Scanner.Scan(true)
	s.TrackAdv(btif.AdvertisingTrackInfo{ScannerID: 2, AdvertiserInfoPresent: 1, RSSI: -55}, []byte{1, 2}, nil)
	s.Sync()
	sr := lastScanner[ScanResult](t, r)
	if !bytes.Equal(sr.AdvData, []byte{2, 1, 6}) || sr.RSSI != -60 || sr.Addr != (Address{9, 8, 7, 6, 5, 4}) {
		t.Fatalf("unexpected scan result %+v", sr)
	}
	tr := lastScanner[AdvTracked](t, r)
	if tr.Info.Advertiser == nil || tr.Info.Advertiser.RSSI != -55 || !bytes.Equal(tr.Info.AdvPacket, []byte{1, 2}) {
		t.Fatalf("unexpected tracking event %+v", tr.Info)
	}
	if tr.Info.ScanResponse == nil || len(tr.Info.ScanResponse) != 0 {
		t.Fatalf("expected empty scan response")
	}
}
