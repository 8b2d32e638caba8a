package monitor

import (
	"reflect"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"gattshim/internal/gatt"
	"gattshim/pkg/types"
)

// DefaultCapacity is the number of events kept when none is configured.
const DefaultCapacity = 256

// Recorder keeps the most recent dispatched events in a bounded ring and
// logs each one. Its On* methods are the category handlers passed to
// gatt.Initialize; they run on the native callback thread and never block
// on anything but the recorder's own lock.
type Recorder struct {
	mu     sync.Mutex
	buf    []types.EventRecord
	next   int
	full   bool
	seq    uint64
	counts map[string]uint64

	log zerolog.Logger
	now func() time.Time
}

// NewRecorder returns a recorder holding up to capacity events.
func NewRecorder(capacity int, log zerolog.Logger) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{
		buf:    make([]types.EventRecord, capacity),
		counts: make(map[string]uint64),
		log:    log,
		now:    time.Now,
	}
}

func (r *Recorder) OnClient(ev gatt.ClientEvent)   { r.publish(types.CategoryClient, ev) }
func (r *Recorder) OnServer(ev gatt.ServerEvent)   { r.publish(types.CategoryServer, ev) }
func (r *Recorder) OnScanner(ev gatt.ScannerEvent) { r.publish(types.CategoryScanner, ev) }

func (r *Recorder) publish(category string, ev any) {
	name := reflect.TypeOf(ev).Name()
	r.mu.Lock()
	r.seq++
	rec := types.EventRecord{Seq: r.seq, Time: r.now(), Category: category, Name: name, Payload: ev}
	if r.full {
		overwrittenTotal.Inc()
	}
	r.buf[r.next] = rec
	r.next++
	if r.next == len(r.buf) {
		r.next = 0
		r.full = true
	}
	r.counts[category]++
	buffered.Set(float64(r.lenLocked()))
	r.mu.Unlock()

	e := r.log.Debug()
	if st, ok := statusOf(ev); ok && st != gatt.GattSuccess {
		e = r.log.Warn().Stringer("status", st)
	}
	e.Uint64("seq", rec.Seq).Str("category", category).Str("event", name).Msg("gatt event")
}

// statusOf returns the Status field of an event, when it has one.
func statusOf(ev any) (gatt.GattStatus, bool) {
	v := reflect.ValueOf(ev)
	if v.Kind() != reflect.Struct {
		return 0, false
	}
	f := v.FieldByName("Status")
	if !f.IsValid() {
		return 0, false
	}
	st, ok := f.Interface().(gatt.GattStatus)
	return st, ok
}

func (r *Recorder) lenLocked() int {
	if r.full {
		return len(r.buf)
	}
	return r.next
}

// Len returns the number of events currently held.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lenLocked()
}

// Events returns the held events, oldest first.
func (r *Recorder) Events() []types.EventRecord { return r.Since(0) }

// Since returns the held events with a sequence number greater than seq,
// oldest first.
func (r *Recorder) Since(seq uint64) []types.EventRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]types.EventRecord, 0, r.lenLocked())
	start := 0
	if r.full {
		start = r.next
	}
	for i := 0; i < r.lenLocked(); i++ {
		rec := r.buf[(start+i)%len(r.buf)]
		if rec.Seq > seq {
			out = append(out, rec)
		}
	}
	return out
}

// Seq returns the sequence number of the newest event, 0 if none.
func (r *Recorder) Seq() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

// Counts returns the number of events seen per category since creation.
func (r *Recorder) Counts() map[string]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]uint64, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}
