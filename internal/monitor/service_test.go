package monitor

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gattshim/internal/btif"
	"gattshim/internal/btif/loopback"
	"gattshim/internal/dispatch"
	"gattshim/internal/gatt"
	"gattshim/pkg/types"
)

func newService(t *testing.T) (*Service, *loopback.Stack) {
	t.Helper()
	s := loopback.New()
	t.Cleanup(s.Close)
	g, err := gatt.New(s, gatt.WithRegistry(dispatch.NewRegistry()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	return NewService(g, NewRecorder(16, zerolog.Nop()), "loopback", zerolog.Nop()), s
}

func TestServiceStartRegistersAndScans(t *testing.T) {
	svc, s := newService(t)
	s.AddAdvertisement(loopback.Advertisement{Address: btif.RawAddress{Address: [6]byte{1, 2, 3, 4, 5, 6}}, RSSI: -40, Data: []byte{2, 1, 6}})
	if svc.Ready() {
		t.Fatalf("ready before start")
	}
	app := uuid.New()
	if err := svc.Start(StartOptions{AppUUID: app, Scan: true}); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.Sync()
	if !svc.Ready() {
		t.Fatalf("not ready after start")
	}
	names := map[string]bool{}
	for _, ev := range svc.Events(0) {
		names[ev.Name] = true
	}
	for _, want := range []string{"ClientRegistered", "ScannerRegistered", "ScanResult"} {
		if !names[want] {
			t.Fatalf("missing %s in %v", want, names)
		}
	}
	st := svc.Status()
	if st.State != "initialized" || st.Backend != "loopback" || len(st.Categories) != 3 {
		t.Fatalf("unexpected status %+v", st)
	}
	if st.TotalEvents != 3 || st.Events[types.CategoryScanner] != 2 || st.Buffered != 3 {
		t.Fatalf("unexpected counts %+v", st)
	}
}

func TestServiceStartFailure(t *testing.T) {
	svc, s := newService(t)
	s.SetInitStatus(btif.StatusFail)
	if err := svc.Start(StartOptions{}); !IsInitFailed(err) {
		t.Fatalf("expected init failure, got %v", err)
	}
	if err := svc.Scan(true); !IsNotReady(err) {
		t.Fatalf("expected not ready, got %v", err)
	}
	if svc.Status().State != "failed" {
		t.Fatalf("unexpected state %s", svc.Status().State)
	}
}

func TestServiceStartRejectedRegistration(t *testing.T) {
	svc, s := newService(t)
	s.SetReturn("RegisterClient", int32(gatt.BtNoMemory))
	err := svc.Start(StartOptions{AppUUID: uuid.New()})
	if err == nil || err.Error() != "RegisterClient rejected: NoMemory" {
		t.Fatalf("unexpected error %v", err)
	}
	if len(s.CallsTo("RegisterScanner")) != 0 {
		t.Fatalf("scanner must not be registered after a rejected client")
	}
}

func TestServiceScan(t *testing.T) {
	svc, s := newService(t)
	if err := svc.Start(StartOptions{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Scan(false); err != nil {
		t.Fatalf("scan: %v", err)
	}
	calls := s.CallsTo("Scan")
	if len(calls) != 1 || calls[0].Args[0] != false {
		t.Fatalf("unexpected scan calls %+v", calls)
	}
}

func TestStatusesTable(t *testing.T) {
	all := Statuses()
	if len(all) != len(gatt.GattStatuses())+len(gatt.BtStatuses()) {
		t.Fatalf("unexpected table size %d", len(all))
	}
	if all[0].Kind != "gatt" || all[0].Name != "Success" || all[len(all)-1].Kind != "bt" {
		t.Fatalf("unexpected ordering %+v %+v", all[0], all[len(all)-1])
	}
}
