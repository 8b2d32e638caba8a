package types

import "time"

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Lifecycle state of the GATT profile.
	// example: initialized
	State string `json:"state" example:"initialized"`
	// Native stack backend in use.
	// example: loopback
	Backend string `json:"backend" example:"loopback"`
	// Event categories that have a bound handler.
	// example: ["gatt.ClientEvent","gatt.ScannerEvent","gatt.ServerEvent"]
	Categories []string `json:"categories"`
	// Events seen per category since start.
	Events map[string]uint64 `json:"events"`
	// Total number of events seen since start.
	// example: 42
	TotalEvents uint64 `json:"total_events" example:"42"`
	// Number of events currently held by the recorder.
	// example: 42
	Buffered int `json:"buffered" example:"42"`
}

// EventRecord is one dispatched GATT event as kept by the recorder.
type EventRecord struct {
	// Monotonic sequence number, starting at 1.
	// example: 7
	Seq uint64 `json:"seq" example:"7"`
	// Time the handler received the event.
	Time time.Time `json:"time"`
	// Event category: client, server or scanner.
	// example: client
	Category string `json:"category" example:"client"`
	// Event variant name.
	// example: CharacteristicRead
	Name string `json:"name" example:"CharacteristicRead"`
	// Event fields.
	Payload any `json:"payload" swaggertype:"object"`
}

// EventsResponse wraps GET /events.
type EventsResponse struct {
	Events []EventRecord `json:"events"`
	// Sequence number to pass as ?since= to fetch only newer events.
	// example: 7
	Next uint64 `json:"next" example:"7"`
}

// ScanRequest starts or stops LE scanning via POST /scan.
type ScanRequest struct {
	// example: true
	Start bool `json:"start" example:"true"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
