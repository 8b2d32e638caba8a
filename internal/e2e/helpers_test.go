package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"gattshim/internal/btif/loopback"
	"gattshim/internal/dispatch"
	"gattshim/internal/gatt"
	"gattshim/internal/httpapi"
	"gattshim/internal/monitor"
	"gattshim/pkg/types"
)

// stack bundles a loopback-backed profile served over HTTP.
type stack struct {
	srv *httptest.Server
	bt  *loopback.Stack
	g   *gatt.Gatt
	svc *monitor.Service
}

// newStack builds an uninitialized profile on a loopback stack with its own
// registry, served by httptest.
func newStack(t *testing.T, buffer int) *stack {
	t.Helper()
	bt := loopback.New()
	t.Cleanup(bt.Close)
	g, err := gatt.New(bt, gatt.WithRegistry(dispatch.NewRegistry()))
	if err != nil {
		t.Fatalf("gatt: %v", err)
	}
	svc := monitor.NewService(g, monitor.NewRecorder(buffer, zerolog.Nop()), "loopback", zerolog.Nop())
	srv := httptest.NewServer(httpapi.NewMux(svc))
	t.Cleanup(srv.Close)
	return &stack{srv: srv, bt: bt, g: g, svc: svc}
}

func httpGet(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

func httpPostJSON(t *testing.T, url string, payload []byte) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("new req: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do req: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return resp, body
}

// events fetches /events?since=since and decodes the payloads as raw JSON.
func events(t *testing.T, s *stack, query string) (types.EventsResponse, []map[string]any) {
	t.Helper()
	resp, body := httpGet(t, s.srv.URL+"/events"+query)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/events status=%d body=%s", resp.StatusCode, body)
	}
	var out types.EventsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("decode events: %v", err)
	}
	payloads := make([]map[string]any, len(out.Events))
	for i, ev := range out.Events {
		payloads[i], _ = ev.Payload.(map[string]any)
	}
	return out, payloads
}
