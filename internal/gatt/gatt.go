package gatt

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"

	"gattshim/internal/btif"
	"gattshim/internal/dispatch"
)

// State is the lifecycle state of a Gatt.
type State int32

const (
	Uninitialized State = iota
	Initializing
	Initialized
	FailedInit
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Initializing:
		return "initializing"
	case Initialized:
		return "initialized"
	case FailedInit:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Gatt owns the native GATT profile: its sub-facades and, once
// initialized, the callback tables the native side points into.
type Gatt struct {
	Client     *Client
	Server     *Server
	Scanner    *Scanner
	Advertiser *Advertiser

	iface btif.GattInterface
	reg   *dispatch.Registry
	log   zerolog.Logger
	state atomic.Int32
	set   *tables
}

// Option configures a Gatt.
type Option func(*Gatt)

// WithLogger sets the logger for lifecycle and facade calls.
func WithLogger(l zerolog.Logger) Option { return func(g *Gatt) { g.log = l } }

// WithRegistry routes events through r instead of dispatch.Default().
func WithRegistry(r *dispatch.Registry) Option { return func(g *Gatt) { g.reg = r } }

// New looks up the GATT profile on bt and binds the sub-facades to its
// interfaces.
func New(bt btif.BluetoothInterface, opts ...Option) (*Gatt, error) {
	g := &Gatt{reg: dispatch.Default(), log: zerolog.Nop()}
	for _, o := range opts {
		o(g)
	}
	iface := bt.GetProfileInterface(btif.ProfileGatt)
	if iface == nil {
		return nil, ErrProfileUnavailable(string(btif.ProfileGatt))
	}
	g.iface = iface
	g.Client = &Client{iface: iface.Client(), c: caller{iface: "client", log: g.log}}
	g.Server = &Server{iface: iface.Server(), c: caller{iface: "server", log: g.log}}
	g.Scanner = &Scanner{iface: iface.Scanner(), c: caller{iface: "scanner", log: g.log}}
	g.Advertiser = &Advertiser{iface: iface.Advertiser(), c: caller{iface: "advertiser", log: g.log}}
	return g, nil
}

// Registry returns the registry events are dispatched through.
func (g *Gatt) Registry() *dispatch.Registry { return g.reg }

// Initialize registers the three handlers, hands the callback tables to the
// native stack and reports whether the stack accepted them. Handlers run on
// native callback threads and must be safe for concurrent use.
//
// Initialize may be called once. A second call, or a category that already
// has a handler, panics. A rejected init leaves g in FailedInit for good.
func (g *Gatt) Initialize(client func(ClientEvent), server func(ServerEvent), scanner func(ScannerEvent)) bool {
	if !g.state.CompareAndSwap(int32(Uninitialized), int32(Initializing)) {
		panic(fmt.Sprintf("gatt: Initialize called in state %s", g.State()))
	}
	mustRegister(g.reg, client)
	mustRegister(g.reg, server)
	mustRegister(g.reg, scanner)

	top := &btif.Callbacks{
		Size:    btif.CallbacksSize,
		Client:  clientCallbacks(g.reg),
		Server:  serverCallbacks(g.reg),
		Scanner: legacyScannerCallbacks(),
	}
	if missing := unsetEntries(top.Client, top.Server, top.Scanner); len(missing) > 0 {
		panic("gatt: required callback entries unset: " + strings.Join(missing, ", "))
	}
	// Callbacks may fire from inside Init, so the tables are pinned first.
	g.set = &tables{top: top}
	retain(g.set)

	if rc := g.iface.Init(top); rc != btif.StatusSuccess {
		g.state.Store(int32(FailedInit))
		initTotal.WithLabelValues("failed").Inc()
		g.log.Error().Int32("code", rc).Msg("gatt init rejected")
		return false
	}
	g.state.Store(int32(Initialized))
	initTotal.WithLabelValues("ok").Inc()

	g.set.scanner = scannerCallbacks(g.reg)
	g.Scanner.registerCallbacks(g.set.scanner)
	g.log.Info().Msg("gatt initialized")
	return true
}

func mustRegister[E any](reg *dispatch.Registry, h func(E)) {
	if err := dispatch.Register(reg, h); err != nil {
		panic("gatt: " + err.Error())
	}
}

// IsInitialized reports whether the native stack accepted the tables.
func (g *Gatt) IsInitialized() bool { return g.State() == Initialized }

// State returns the current lifecycle state.
func (g *Gatt) State() State { return State(g.state.Load()) }
