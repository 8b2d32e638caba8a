package monitor

import (
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"gattshim/internal/gatt"
	"gattshim/pkg/types"
)

// StartOptions selects what Start does after the profile is initialized.
type StartOptions struct {
	// AppUUID registers a GATT client and an LE scanner under this
	// application UUID when not uuid.Nil.
	AppUUID uuid.UUID
	// Scan starts LE scanning.
	Scan bool
}

// Service drives a gatt.Gatt whose events land in a Recorder. It backs the
// gattmon HTTP API.
type Service struct {
	g       *gatt.Gatt
	rec     *Recorder
	backend string
	log     zerolog.Logger
}

func NewService(g *gatt.Gatt, rec *Recorder, backend string, log zerolog.Logger) *Service {
	return &Service{g: g, rec: rec, backend: backend, log: log}
}

// Start initializes the profile with the recorder's handlers. It panics if
// the profile was already initialized, as gatt.Initialize does.
func (s *Service) Start(opts StartOptions) error {
	if !s.g.Initialize(s.rec.OnClient, s.rec.OnServer, s.rec.OnScanner) {
		return initFailedError{}
	}
	s.log.Info().Str("backend", s.backend).Msg("gatt profile initialized")
	if opts.AppUUID != uuid.Nil {
		if st := s.g.Client.RegisterClient(opts.AppUUID, false); st != gatt.BtSuccess {
			return rejectedError{op: "RegisterClient", status: st.String()}
		}
		s.g.Scanner.RegisterScanner(opts.AppUUID)
	}
	if opts.Scan {
		s.g.Scanner.Scan(true)
	}
	return nil
}

func (s *Service) Ready() bool { return s.g.IsInitialized() }

func (s *Service) Status() types.StatusResponse {
	cats := s.g.Registry().Categories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, c.String())
	}
	counts := s.rec.Counts()
	var total uint64
	for _, n := range counts {
		total += n
	}
	return types.StatusResponse{
		State:       s.g.State().String(),
		Backend:     s.backend,
		Categories:  names,
		Events:      counts,
		TotalEvents: total,
		Buffered:    s.rec.Len(),
	}
}

// Events returns recorded events newer than since.
func (s *Service) Events(since uint64) []types.EventRecord { return s.rec.Since(since) }

// Scan starts or stops LE scanning.
func (s *Service) Scan(start bool) error {
	if !s.g.IsInitialized() {
		return notReadyError{state: s.g.State().String()}
	}
	s.g.Scanner.Scan(start)
	return nil
}

// Statuses lists the GATT and Bluetooth status tables.
func Statuses() []types.StatusCode {
	var out []types.StatusCode
	for _, st := range gatt.GattStatuses() {
		out = append(out, types.StatusCode{Kind: "gatt", Code: int64(st), Name: st.String()})
	}
	for _, st := range gatt.BtStatuses() {
		out = append(out, types.StatusCode{Kind: "bt", Code: int64(st.Code()), Name: st.String()})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == "gatt"
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// Statuses exposes the status tables through the service.
func (s *Service) Statuses() []types.StatusCode { return Statuses() }
