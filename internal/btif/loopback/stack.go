// Package loopback is an in-process stand-in for the native GATT stack.
//
// A Stack implements every btif interface. Operations are recorded and
// answered with configurable return codes; completions are delivered through
// the installed callback tables from a single worker goroutine, which plays
// the part of the native callback thread. Buffers handed to callbacks are
// owned by the stack and scribbled over once the callback returns, so a
// consumer that keeps a reference instead of copying sees garbage.
package loopback

import (
	"sync"

	"gattshim/internal/btif"
)

// DeviceTypeLE is the device type GetDeviceType reports unless overridden.
const DeviceTypeLE int32 = 2

// Call is one recorded operation.
type Call struct {
	Op   string
	Args []any
}

// Stack is a simulated native stack. The zero value is not usable; call New.
type Stack struct {
	mu         sync.Mutex
	calls      []Call
	returns    map[string]int32
	initStatus int32
	noProfile  bool
	cb         *btif.Callbacks
	scanCb     *btif.ScannerCallbacks
	attrs      map[uint16][]byte
	db         []btif.DbElement
	adverts    []Advertisement
	conns      map[btif.RawAddress]int32
	nextIf     int32
	nextConn   int32
	nextHandle uint16
	dropped    int

	// qmu guards the queue only; worker callbacks take mu. The queue is
	// unbounded: callbacks running on the worker may enqueue more.
	qmu     sync.Mutex
	qcond   *sync.Cond
	queue   []func()
	closed  bool
	stopped chan struct{}
}

// Advertisement is a scan result the stack reports once scanning starts.
type Advertisement struct {
	Address btif.RawAddress
	RSSI    int8
	Data    []byte
}

// New starts a stack and its callback worker.
func New() *Stack {
	s := &Stack{
		returns:    make(map[string]int32),
		attrs:      make(map[uint16][]byte),
		conns:      make(map[btif.RawAddress]int32),
		nextIf:     1,
		nextConn:   1,
		nextHandle: 0x0001,
		stopped:    make(chan struct{}),
	}
	s.qcond = sync.NewCond(&s.qmu)
	go s.loop()
	return s
}

func (s *Stack) loop() {
	defer close(s.stopped)
	for {
		s.qmu.Lock()
		for len(s.queue) == 0 && !s.closed {
			s.qcond.Wait()
		}
		if len(s.queue) == 0 {
			s.qmu.Unlock()
			return
		}
		fn := s.queue[0]
		s.queue[0] = nil
		s.queue = s.queue[1:]
		s.qmu.Unlock()
		fn()
	}
}

// Pending returns the number of queued callbacks not yet delivered.
func (s *Stack) Pending() int {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	return len(s.queue)
}

// Close stops the worker after it drains queued callbacks.
func (s *Stack) Close() {
	s.qmu.Lock()
	if s.closed {
		s.qmu.Unlock()
		return
	}
	s.closed = true
	s.qcond.Broadcast()
	s.qmu.Unlock()
	<-s.stopped
}

// Sync blocks until every callback queued so far has been delivered.
func (s *Stack) Sync() {
	done := make(chan struct{})
	if !s.enqueue(func() { close(done) }) {
		return
	}
	<-done
}

func (s *Stack) enqueue(fn func()) bool {
	s.qmu.Lock()
	defer s.qmu.Unlock()
	if s.closed {
		return false
	}
	s.queue = append(s.queue, fn)
	s.qcond.Signal()
	return true
}

// SetReturn makes operation op return code from now on.
func (s *Stack) SetReturn(op string, code int32) {
	s.mu.Lock()
	s.returns[op] = code
	s.mu.Unlock()
}

// SetInitStatus sets the value Init returns.
func (s *Stack) SetInitStatus(code int32) {
	s.mu.Lock()
	s.initStatus = code
	s.mu.Unlock()
}

// HideProfile makes GetProfileInterface report the profile as absent.
func (s *Stack) HideProfile() {
	s.mu.Lock()
	s.noProfile = true
	s.mu.Unlock()
}

// SetAttribute stores the value read back for handle.
func (s *Stack) SetAttribute(handle uint16, value []byte) {
	s.mu.Lock()
	s.attrs[handle] = append([]byte(nil), value...)
	s.mu.Unlock()
}

// Attribute returns a copy of the value stored for handle.
func (s *Stack) Attribute(handle uint16) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.attrs[handle]
	return append([]byte(nil), v...), ok
}

// SetDatabase sets the remote database reported by GetGattDB.
func (s *Stack) SetDatabase(db []btif.DbElement) {
	s.mu.Lock()
	s.db = append([]btif.DbElement(nil), db...)
	s.mu.Unlock()
}

// AddAdvertisement queues an advertisement to report on the next Scan(true).
func (s *Stack) AddAdvertisement(a Advertisement) {
	s.mu.Lock()
	a.Data = append([]byte(nil), a.Data...)
	s.adverts = append(s.adverts, a)
	s.mu.Unlock()
}

// Calls returns a copy of the recorded operations in call order.
func (s *Stack) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

// CallsTo returns the recorded calls of operation op.
func (s *Stack) CallsTo(op string) []Call {
	var out []Call
	for _, c := range s.Calls() {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Installed returns the table passed to Init, or nil.
func (s *Stack) Installed() *btif.Callbacks {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cb
}

// InstalledScanner returns the table passed to the scanner shim, or nil.
func (s *Stack) InstalledScanner() *btif.ScannerCallbacks {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scanCb
}

// Dropped counts completions skipped because their callback entry was unset.
func (s *Stack) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// Inject runs fn with the installed table on the callback worker. It lets
// tests deliver arbitrary raw invocations, malformed ones included.
func (s *Stack) Inject(fn func(cb *btif.Callbacks)) {
	s.enqueue(func() { fn(s.Installed()) })
}

// InjectScanner is Inject for the scanner shim table.
func (s *Stack) InjectScanner(fn func(cb *btif.ScannerCallbacks)) {
	s.enqueue(func() { fn(s.InstalledScanner()) })
}

// record logs a call and returns the configured code for it.
func (s *Stack) record(op string, args ...any) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Op: op, Args: args})
	return s.returns[op]
}

func (s *Stack) drop() {
	s.mu.Lock()
	s.dropped++
	s.mu.Unlock()
}

func (s *Stack) allocIf() int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextIf
	s.nextIf++
	return id
}

func (s *Stack) connFor(addr btif.RawAddress) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.conns[addr]; ok {
		return id
	}
	id := s.nextConn
	s.nextConn++
	s.conns[addr] = id
	return id
}

func (s *Stack) dropConn(addr btif.RawAddress) int32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.conns[addr]
	delete(s.conns, addr)
	return id
}

// client fires fn with the client table; unset tables are counted as drops.
func (s *Stack) client(fn func(c *btif.ClientCallbacks) bool) {
	s.enqueue(func() {
		cb := s.Installed()
		if cb == nil || cb.Client == nil || !fn(cb.Client) {
			s.drop()
		}
	})
}

func (s *Stack) server(fn func(c *btif.ServerCallbacks) bool) {
	s.enqueue(func() {
		cb := s.Installed()
		if cb == nil || cb.Server == nil || !fn(cb.Server) {
			s.drop()
		}
	})
}

func (s *Stack) scanner(fn func(c *btif.ScannerCallbacks) bool) {
	s.enqueue(func() {
		cb := s.InstalledScanner()
		if cb == nil || !fn(cb) {
			s.drop()
		}
	})
}

// lend hands b to fn as a native buffer and scribbles over it afterwards.
func lend(b []byte, fn func(p *byte, n uintptr)) {
	if len(b) == 0 {
		fn(nil, 0)
		return
	}
	fn(&b[0], uintptr(len(b)))
	for i := range b {
		b[i] = 0xEE
	}
}

// copyIn copies a borrowed native buffer.
func copyIn(p *byte, n uintptr) []byte {
	if p == nil || n == 0 {
		return nil
	}
	return append([]byte(nil), unsafeBytes(p, n)...)
}

// GetProfileInterface implements btif.BluetoothInterface.
func (s *Stack) GetProfileInterface(profile btif.Profile) btif.GattInterface {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noProfile || profile != btif.ProfileGatt {
		return nil
	}
	return gattIface{s}
}

type gattIface struct{ s *Stack }

func (g gattIface) Init(cb *btif.Callbacks) int32 {
	s := g.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Op: "Init", Args: []any{cb}})
	if cb == nil || cb.Size != btif.CallbacksSize || s.cb != nil {
		return btif.StatusFail
	}
	if s.initStatus != btif.StatusSuccess {
		return s.initStatus
	}
	s.cb = cb
	return btif.StatusSuccess
}

func (g gattIface) Client() btif.ClientInterface         { return clientIface{g.s} }
func (g gattIface) Server() btif.ServerInterface         { return serverIface{g.s} }
func (g gattIface) Scanner() btif.ScannerInterface       { return scannerIface{g.s} }
func (g gattIface) Advertiser() btif.AdvertiserInterface { return advertiserIface{g.s} }

var (
	_ btif.BluetoothInterface = (*Stack)(nil)
	_ btif.GattInterface      = gattIface{}
)
