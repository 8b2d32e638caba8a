// Package gatt binds the native GATT profile to typed Go events.
//
// Native callbacks are converted into owned event values (ClientEvent,
// ServerEvent, ScannerEvent) and dispatched synchronously, on the native
// callback thread, to the one handler registered for their category. No
// native pointer outlives the callback it arrived in.
//
// Outbound operations go through the Client, Server, Scanner and Advertiser
// facades. A facade call returns as soon as the native side has accepted or
// rejected the request; the substantive result arrives later as an event
// carrying identifiers the caller can correlate with the request.
//
// Gatt.Initialize wires both directions exactly once per process. The
// callback tables it hands to the native side are never released.
package gatt
