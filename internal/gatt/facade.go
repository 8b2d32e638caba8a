package gatt

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gattshim/internal/btif"
)

// noStatus labels fire-and-forget calls in metrics.
const noStatus = "none"

// caller is shared by the sub-facades: it maps native returns and records
// each forwarded call.
type caller struct {
	iface string
	log   zerolog.Logger
}

// status converts a native return code and records the call.
func (c caller) status(op string, code int32) BtStatus {
	st := mustBtStatus(code)
	facadeCallsTotal.WithLabelValues(c.iface, op, st.String()).Inc()
	ev := c.log.Debug()
	if st != BtSuccess {
		ev = c.log.Warn()
	}
	ev.Str("iface", c.iface).Str("op", op).Stringer("status", st).Msg("native call")
	return st
}

// issued records a call that has no return value.
func (c caller) issued(op string) {
	facadeCallsTotal.WithLabelValues(c.iface, op, noStatus).Inc()
	c.log.Debug().Str("iface", c.iface).Str("op", op).Msg("native call")
}

func rawUUID(u uuid.UUID) *btif.RawUUID { return &btif.RawUUID{UU: u} }

func rawAddr(a Address) *btif.RawAddress {
	r := a.raw()
	return &r
}

// borrow returns the pointer+length form of b for one synchronous call.
func borrow(b []byte) (*byte, uintptr) {
	if len(b) == 0 {
		return nil, 0
	}
	return &b[0], uintptr(len(b))
}
