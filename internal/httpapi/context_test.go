package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestShutdownEndsEventsLongPoll(t *testing.T) {
	base, shutdown := context.WithCancel(context.Background())
	SetBaseContext(base)
	t.Cleanup(func() { SetBaseContext(nil) })

	r := NewMux(&mockService{})
	w := httptest.NewRecorder()
	done := make(chan struct{})
	go func() {
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/events?wait=20s", nil))
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	shutdown()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("long poll kept waiting after shutdown")
	}
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"events":[]`) {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestPollContextEndsWithRequest(t *testing.T) {
	SetBaseContext(nil)
	reqCtx, cancelReq := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(reqCtx)
	ctx, cancel := pollContext(req)
	defer cancel()
	cancelReq()
	select {
	case <-ctx.Done():
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("poll context outlived its request")
	}
}

func TestPollContextCancelReleasesShutdownHook(t *testing.T) {
	base, shutdown := context.WithCancel(context.Background())
	defer shutdown()
	SetBaseContext(base)
	t.Cleanup(func() { SetBaseContext(nil) })

	ctx, cancel := pollContext(httptest.NewRequest(http.MethodGet, "/events", nil))
	cancel()
	if ctx.Err() == nil {
		t.Fatalf("expected canceled poll context")
	}
	if base.Err() != nil {
		t.Fatalf("canceling a poll must not end the server context")
	}
}

func TestSetBaseContextNilRestoresBackground(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	SetBaseContext(ctx)
	// nolint:staticcheck // SA1012: nil selects the default
	SetBaseContext(nil)
	if baseContext().Err() != nil {
		t.Fatalf("expected an uncanceled base context")
	}
}
