package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"
)

// shutdownCtx is canceled when gattmon begins shutting down. Long-polls on
// /events end with it.
var shutdownCtx atomic.Value // context.Context

func init() { shutdownCtx.Store(context.Background()) }

// SetBaseContext installs the context whose cancellation ends pending event
// long-polls. A nil ctx restores context.Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	shutdownCtx.Store(ctx)
}

func baseContext() context.Context { return shutdownCtx.Load().(context.Context) }

// pollContext returns a context that ends with the request or at shutdown,
// whichever comes first. cancel must be called when the handler returns.
func pollContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(r.Context())
	stop := context.AfterFunc(baseContext(), cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
