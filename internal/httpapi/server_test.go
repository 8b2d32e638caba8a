package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"gattshim/pkg/types"
)

type mockService struct {
	mu      sync.Mutex
	status  types.StatusResponse
	events  []types.EventRecord
	ready   bool
	scanErr error
	scans   []bool
}

func (m *mockService) Status() types.StatusResponse { return m.status }
func (m *mockService) Ready() bool                  { return m.ready }
func (m *mockService) Statuses() []types.StatusCode {
	return []types.StatusCode{{Kind: "gatt", Code: 0, Name: "Success"}}
}

func (m *mockService) Events(since uint64) []types.EventRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []types.EventRecord
	for _, ev := range m.events {
		if ev.Seq > since {
			out = append(out, ev)
		}
	}
	return out
}

func (m *mockService) add(ev types.EventRecord) {
	m.mu.Lock()
	m.events = append(m.events, ev)
	m.mu.Unlock()
}

func (m *mockService) Scan(start bool) error {
	m.scans = append(m.scans, start)
	return m.scanErr
}

type mockHTTPError struct {
	msg  string
	code int
}

func (e mockHTTPError) Error() string   { return e.msg }
func (e mockHTTPError) StatusCode() int { return e.code }

func TestStatusHandler(t *testing.T) {
	svc := &mockService{status: types.StatusResponse{State: "initialized", Backend: "loopback", TotalEvents: 3}}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Fatalf("content-type=%s", ct)
	}
	var body types.StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if body.State != "initialized" || body.TotalEvents != 3 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestStatusesHandler(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/statuses", nil))
	var body []types.StatusCode
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 1 || body[0].Name != "Success" {
		t.Fatalf("unexpected body %s (%v)", w.Body.String(), err)
	}
}

func TestEventsSince(t *testing.T) {
	svc := &mockService{}
	for i := uint64(1); i <= 3; i++ {
		svc.add(types.EventRecord{Seq: i, Category: types.CategoryClient, Name: "SearchCompleted"})
	}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events?since=1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var body types.EventsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Events) != 2 || body.Next != 3 || body.Events[0].Seq != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestEventsEmptyIsArray(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events?since=9", nil))
	if !strings.Contains(w.Body.String(), `"events":[]`) || !strings.Contains(w.Body.String(), `"next":9`) {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestEventsBadQuery(t *testing.T) {
	r := NewMux(&mockService{})
	for _, q := range []string{"/events?since=-1", "/events?since=x", "/events?wait=soon", "/events?wait=-1s"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, q, nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status=%d", q, w.Code)
		}
	}
}

func TestEventsLongPoll(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	go func() {
		time.Sleep(20 * time.Millisecond)
		svc.add(types.EventRecord{Seq: 1, Category: types.CategoryScanner, Name: "ScanResult"})
	}()
	w := httptest.NewRecorder()
	start := time.Now()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events?wait=5s", nil))
	if time.Since(start) > 4*time.Second {
		t.Fatalf("long poll did not return on new event")
	}
	var body types.EventsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(body.Events) != 1 || body.Next != 1 {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestEventsLongPollTimesOut(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events?wait=30ms", nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"events":[]`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestScan(t *testing.T) {
	svc := &mockService{}
	r := NewMux(svc)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewBufferString(`{"start":true}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if len(svc.scans) != 1 || !svc.scans[0] {
		t.Fatalf("unexpected scans %v", svc.scans)
	}
}

func TestScanBadRequests(t *testing.T) {
	r := NewMux(&mockService{})
	cases := []struct {
		ct   string
		body string
		want int
	}{
		{"text/plain", `{"start":true}`, http.StatusUnsupportedMediaType},
		{"", `{"start":true}`, http.StatusUnsupportedMediaType},
		{"application/json", "not-json", http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewBufferString(tc.body))
		if tc.ct != "" {
			req.Header.Set("Content-Type", tc.ct)
		}
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("ct=%q body=%q: status=%d want %d", tc.ct, tc.body, w.Code, tc.want)
		}
	}
}

func TestScanBodyTooLarge(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	big := make([]byte, (1<<20)+10)
	for i := range big {
		big[i] = ' '
	}
	req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewReader(big))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for too-large body, got %d", w.Code)
	}
}

func TestScanErrorMapping(t *testing.T) {
	for _, tc := range []struct {
		err  error
		want int
	}{
		{mockHTTPError{msg: "not ready", code: http.StatusServiceUnavailable}, http.StatusServiceUnavailable},
		{fmt.Errorf("scan: %w", mockHTTPError{msg: "rejected", code: http.StatusBadGateway}), http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	} {
		r := NewMux(&mockService{scanErr: tc.err})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/scan", bytes.NewBufferString(`{"start":false}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("status=%d want %d", w.Code, tc.want)
		}
		var body types.ErrorResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Code != tc.want || body.Error != tc.err.Error() {
			t.Fatalf("unexpected error body %s", w.Body.String())
		}
	}
}

func TestReadyz(t *testing.T) {
	r := NewMux(&mockService{ready: true})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestReadyz_NotReady(t *testing.T) {
	r := NewMux(&mockService{ready: false})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("status=%d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("status=%d", w.Code)
	}
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Fatalf("missing security header")
	}
}

func TestCORS(t *testing.T) {
	SetCORSOptions(true, []string{"http://ui.local"}, nil, nil)
	defer SetCORSOptions(false, nil, nil, nil)
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/scan", nil)
	req.Header.Set("Origin", "http://ui.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://ui.local" {
		t.Fatalf("unexpected allow origin %q (status %d)", got, w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Origin", "http://evil.local")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow origin for foreign origin: %q", got)
	}
}

func TestNoCORSByDefault(t *testing.T) {
	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("Origin", "http://ui.local")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("CORS must be opt-in, got %q", got)
	}
}
