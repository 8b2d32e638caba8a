package e2e

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"gattshim/internal/btif"
	"gattshim/internal/btif/loopback"
	"gattshim/internal/gatt"
	"gattshim/internal/monitor"
	"gattshim/pkg/types"
)

func TestE2E_NotReadyBeforeStart(t *testing.T) {
	s := newStack(t, 16)
	resp, _ := httpGet(t, s.srv.URL+"/readyz")
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d", resp.StatusCode)
	}
	resp, body := httpPostJSON(t, s.srv.URL+"/scan", []byte(`{"start":true}`))
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("scan before start status=%d body=%s", resp.StatusCode, body)
	}
	var st types.StatusResponse
	_, body = httpGet(t, s.srv.URL+"/status")
	if err := json.Unmarshal(body, &st); err != nil || st.State != "uninitialized" {
		t.Fatalf("unexpected status %s (%v)", body, err)
	}
}

func TestE2E_ScanOverHTTP(t *testing.T) {
	s := newStack(t, 16)
	s.bt.AddAdvertisement(loopback.Advertisement{
		Address: btif.RawAddress{Address: [6]byte{0xC0, 0xFF, 0xEE, 0, 0, 1}},
		RSSI:    -48,
		Data:    []byte{0x02, 0x01, 0x06},
	})
	if err := s.svc.Start(monitor.StartOptions{AppUUID: uuid.New()}); err != nil {
		t.Fatalf("start: %v", err)
	}
	s.bt.Sync()
	first, _ := events(t, s, "")
	if len(first.Events) != 2 {
		t.Fatalf("expected client and scanner registration, got %+v", first.Events)
	}

	resp, body := httpPostJSON(t, s.srv.URL+"/scan", []byte(`{"start":true}`))
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("scan status=%d body=%s", resp.StatusCode, body)
	}
	got, payloads := events(t, s, "?wait=2s&since="+itoa(first.Next))
	if len(got.Events) != 1 || got.Events[0].Name != "ScanResult" || got.Events[0].Category != types.CategoryScanner {
		t.Fatalf("unexpected events %+v", got.Events)
	}
	if payloads[0]["Addr"] != "C0:FF:EE:00:00:01" {
		t.Fatalf("unexpected payload %v", payloads[0])
	}
	if got.Next != first.Next+1 {
		t.Fatalf("unexpected next %d", got.Next)
	}
}

func TestE2E_ClientFlowRecorded(t *testing.T) {
	s := newStack(t, 64)
	if err := s.svc.Start(monitor.StartOptions{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	peer, _ := gatt.ParseAddress("11:22:33:44:55:66")
	s.g.Client.Connect(1, peer, true, 2, false, 1)
	s.g.Client.WriteCharacteristic(1, 0x2A, 2, 0, []byte("hi"))
	s.g.Client.ReadCharacteristic(1, 0x2A, 0)
	s.g.Client.ReadCharacteristic(1, 0x99, 0)
	s.bt.Sync()

	got, payloads := events(t, s, "")
	names := make([]string, len(got.Events))
	for i, ev := range got.Events {
		names[i] = ev.Name
	}
	want := "ClientConnected,CharacteristicWritten,CharacteristicRead,CharacteristicRead"
	if strings.Join(names, ",") != want {
		t.Fatalf("unexpected order %v", names)
	}
	if payloads[3]["Status"] != "NotFound" {
		t.Fatalf("unexpected status in %v", payloads[3])
	}

	var st types.StatusResponse
	_, body := httpGet(t, s.srv.URL+"/status")
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatalf("status: %v", err)
	}
	if st.State != "initialized" || st.Events[types.CategoryClient] != 4 || st.TotalEvents != 4 {
		t.Fatalf("unexpected status %+v", st)
	}
}

func TestE2E_RecorderRingOverHTTP(t *testing.T) {
	s := newStack(t, 2)
	if err := s.svc.Start(monitor.StartOptions{}); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i := 0; i < 5; i++ {
		s.bt.ThresholdCrossed(int32(i))
	}
	s.bt.Sync()
	got, _ := events(t, s, "")
	if len(got.Events) != 2 || got.Events[0].Seq != 4 || got.Next != 5 {
		t.Fatalf("unexpected ring contents %+v", got)
	}
}

func TestE2E_Statuses(t *testing.T) {
	s := newStack(t, 1)
	_, body := httpGet(t, s.srv.URL+"/statuses")
	var codes []types.StatusCode
	if err := json.Unmarshal(body, &codes); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(codes) != len(gatt.GattStatuses())+len(gatt.BtStatuses()) {
		t.Fatalf("unexpected table size %d", len(codes))
	}
}

func itoa(n uint64) string {
	b, _ := json.Marshal(n)
	return string(b)
}
