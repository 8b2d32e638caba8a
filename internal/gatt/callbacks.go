package gatt

import (
	"reflect"
	"sync"

	"gattshim/internal/btif"
)

// Entries the native side must tolerate as NULL. Anything else left unset
// is rejected before the table is handed over.
var optionalEntries = map[string]bool{
	"ClientCallbacks.ServicesRemoved":           true,
	"ClientCallbacks.ServicesAdded":             true,
	"LegacyScannerCallbacks.ScanResult":         true,
	"LegacyScannerCallbacks.BatchscanReports":   true,
	"LegacyScannerCallbacks.BatchscanThreshold": true,
	"LegacyScannerCallbacks.TrackAdvEvent":      true,
}

// unsetEntries lists the nil function entries of the tables that are not
// in optionalEntries, as "Table.Field".
func unsetEntries(tables ...any) []string {
	var out []string
	for _, tab := range tables {
		v := reflect.ValueOf(tab)
		if v.Kind() == reflect.Pointer {
			if v.IsNil() {
				out = append(out, v.Type().Elem().Name())
				continue
			}
			v = v.Elem()
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Type.Kind() != reflect.Func || !v.Field(i).IsNil() {
				continue
			}
			if name := t.Name() + "." + f.Name; !optionalEntries[name] {
				out = append(out, name)
			}
		}
	}
	return out
}

// tables is one complete set of callback tables. Once a set is handed to
// the native side it is retained for the rest of the process.
type tables struct {
	top     *btif.Callbacks
	scanner *btif.ScannerCallbacks
}

var retained struct {
	mu   sync.Mutex
	sets []*tables
}

// retain pins t for the process lifetime. There is no release.
func retain(t *tables) {
	retained.mu.Lock()
	retained.sets = append(retained.sets, t)
	retained.mu.Unlock()
}
