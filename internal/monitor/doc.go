// Package monitor records dispatched GATT events and exposes them, with the
// profile state, to the gattmon HTTP API.
package monitor
